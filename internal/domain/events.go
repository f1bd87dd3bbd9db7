package domain

import "time"

type OrderOpenedEvent struct {
	OrderID   uint64    `json:"orderId"`
	TableID   uint64    `json:"tableId"`
	StartTime time.Time `json:"startTime"`
}

type OrderClosedEvent struct {
	OrderID     uint64    `json:"orderId"`
	TableID     uint64    `json:"tableId"`
	TotalAmount int64     `json:"totalAmount"`
	CloseTime   time.Time `json:"closeTime"`
}

type ReservationConfirmedEvent struct {
	ReservationID uint64    `json:"reservationId"`
	TableID       uint64    `json:"tableId"`
	CustomerName  string    `json:"customerName"`
	Time          time.Time `json:"time"`
}
