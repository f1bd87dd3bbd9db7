package domain

import "time"

// Dish is a menu catalog entry. Price is cents.
type Dish struct {
	ID          uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"not null;index"`
	Category    string    `json:"category"`
	Price       int64     `json:"price" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	Ingredients string    `json:"ingredients" gorm:"type:text"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
