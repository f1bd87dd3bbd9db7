package http

import "time"

type TableRequest struct {
	Name       string `json:"name" binding:"required"`
	Capacity   int    `json:"capacity" binding:"required,min=1"`
	Status     string `json:"status"`
	Location   string `json:"location"`
	GridX      int    `json:"gridX"`
	GridY      int    `json:"gridY"`
	GridWidth  int    `json:"gridWidth"`
	GridHeight int    `json:"gridHeight"`
}

type TableStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ReservationRequest struct {
	CustomerName    string    `json:"customerName" binding:"required"`
	CustomerPhone   string    `json:"customerPhone" binding:"required"`
	ReservationTime time.Time `json:"reservationTime" binding:"required"`
	NumberOfGuests  int       `json:"numberOfGuests" binding:"required,min=1"`
}

type ConfirmReservationRequest struct {
	TableID uint64 `json:"tableId" binding:"required"`
}

type DishRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category"`
	Price       int64  `json:"price" binding:"min=0"`
	Description string `json:"description"`
	Ingredients string `json:"ingredients"`
	ImageURL    string `json:"imageUrl"`
}

type OpenOrderRequest struct {
	TableID uint64 `json:"tableId" binding:"required"`
}

type OrderItemRequest struct {
	DishID   uint64 `json:"dishId" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

type CloseOrderRequest struct {
	TableID *uint64 `json:"tableId"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
