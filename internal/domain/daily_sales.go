package domain

import "time"

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// DailySales is the running revenue total for one calendar day,
// keyed by the local date of each order's close time.
type DailySales struct {
	ID         uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Date       string    `json:"date" gorm:"size:10;not null;uniqueIndex"`
	TotalSales int64     `json:"totalSales" gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
