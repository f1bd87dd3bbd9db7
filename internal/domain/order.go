package domain

import "time"

type OrderStatus string

const (
	OrderOpen   OrderStatus = "OPEN"
	OrderClosed OrderStatus = "CLOSED"
)

// Order is one dining session's running tab. TotalAmount is cents and
// always equals the sum of price*quantity over the order's items.
type Order struct {
	ID          uint64      `json:"id" gorm:"primaryKey;autoIncrement"`
	TableID     uint64      `json:"tableId" gorm:"not null;index"`
	TotalAmount int64       `json:"totalAmount" gorm:"not null;default:0"`
	Status      OrderStatus `json:"status" gorm:"type:varchar(8);not null;index;default:'OPEN'"`
	StartTime   time.Time   `json:"startTime" gorm:"not null;index"`
	CloseTime   *time.Time  `json:"closeTime" gorm:"index"`
	CreatedAt   time.Time   `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// OrderItem is one line of an order. Price is the dish price in cents
// snapshotted at add-time; later dish edits never touch it.
type OrderItem struct {
	ID        uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID   uint64    `json:"orderId" gorm:"not null;index"`
	DishID    uint64    `json:"dishId" gorm:"not null"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Price     int64     `json:"price" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
