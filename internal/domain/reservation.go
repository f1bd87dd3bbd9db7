package domain

import "time"

type ReservationStatus string

const (
	ReservationCreated   ReservationStatus = "CREATED"
	ReservationConfirmed ReservationStatus = "CONFIRMED"
	ReservationCancelled ReservationStatus = "CANCELLED"
	ReservationCompleted ReservationStatus = "COMPLETED"
)

// Reservation is a customer's advance booking. TableID stays nil until
// the reservation is confirmed against an available table.
type Reservation struct {
	ID              uint64            `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerName    string            `json:"customerName" gorm:"not null"`
	CustomerPhone   string            `json:"customerPhone" gorm:"not null;index"`
	ReservationTime time.Time         `json:"reservationTime" gorm:"not null;index"`
	NumberOfGuests  int               `json:"numberOfGuests" gorm:"not null"`
	Status          ReservationStatus `json:"status" gorm:"type:varchar(16);not null;index;default:'CREATED'"`
	TableID         *uint64           `json:"tableId"`
	CreatedAt       time.Time         `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}
