package domain

import "time"

type TableStatus string

const (
	TableAvailable TableStatus = "AVAILABLE"
	TableReserved  TableStatus = "RESERVED"
	TableInUse     TableStatus = "IN_USE"
)

// RestaurantTable is a seating unit. Status changes only through the
// table/reservation/order services, never directly from handlers.
type RestaurantTable struct {
	ID             uint64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name           string      `json:"name" gorm:"not null"`
	Capacity       int         `json:"capacity" gorm:"not null"`
	Status         TableStatus `json:"status" gorm:"type:varchar(16);not null;index;default:'AVAILABLE'"`
	Location       string      `json:"location"`
	GridX          int         `json:"gridX" gorm:"not null"`
	GridY          int         `json:"gridY" gorm:"not null"`
	GridWidth      int         `json:"gridWidth" gorm:"not null"`
	GridHeight     int         `json:"gridHeight" gorm:"not null"`
	CurrentOrderID *uint64     `json:"currentOrderId"`
	CreatedAt      time.Time   `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}
