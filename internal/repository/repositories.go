package repository

import (
	"context"
	"time"

	"diner-service/internal/domain"
)

// Repositories return (nil, nil) when a row does not exist; services
// decide whether that is a NotFound error for the caller.

type TableRepository interface {
	Save(ctx context.Context, table *domain.RestaurantTable) error
	FindByID(ctx context.Context, id uint64) (*domain.RestaurantTable, error)
	FindAll(ctx context.Context) ([]domain.RestaurantTable, error)
	FindByStatus(ctx context.Context, status domain.TableStatus) ([]domain.RestaurantTable, error)
	Delete(ctx context.Context, id uint64) error
}

type ReservationRepository interface {
	Save(ctx context.Context, reservation *domain.Reservation) error
	FindByID(ctx context.Context, id uint64) (*domain.Reservation, error)
	FindAll(ctx context.Context) ([]domain.Reservation, error)
	FindByCustomerPhone(ctx context.Context, phone string) ([]domain.Reservation, error)
	FindByCustomerName(ctx context.Context, name string) ([]domain.Reservation, error)
	FindByStatus(ctx context.Context, status domain.ReservationStatus) ([]domain.Reservation, error)
	FindByReservationTimeBetween(ctx context.Context, start, end time.Time) ([]domain.Reservation, error)
	// ExistsActiveByTableID reports whether any CREATED or CONFIRMED
	// reservation references the table.
	ExistsActiveByTableID(ctx context.Context, tableID uint64) (bool, error)
}

type OrderRepository interface {
	Save(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id uint64) (*domain.Order, error)
	// FindPaged returns one page sorted by start_time descending plus
	// the total row count. An empty status matches all orders.
	FindPaged(ctx context.Context, status domain.OrderStatus, page, size int) ([]domain.Order, int64, error)
	FindClosedByCloseTimeBetween(ctx context.Context, start, end time.Time) ([]domain.Order, error)
	SumTotalAmountByCloseTimeBetween(ctx context.Context, start, end time.Time) (int64, error)
	ExistsOpenByTableID(ctx context.Context, tableID uint64) (bool, error)
}

type OrderItemRepository interface {
	SaveAll(ctx context.Context, items []*domain.OrderItem) error
	FindByID(ctx context.Context, id uint64) (*domain.OrderItem, error)
	FindByOrderID(ctx context.Context, orderID uint64) ([]domain.OrderItem, error)
	Delete(ctx context.Context, id uint64) error
	// SumAmountByOrderID aggregates SUM(price*quantity) on the
	// database side.
	SumAmountByOrderID(ctx context.Context, orderID uint64) (int64, error)
}

type DishRepository interface {
	Save(ctx context.Context, dish *domain.Dish) error
	FindByID(ctx context.Context, id uint64) (*domain.Dish, error)
	FindByName(ctx context.Context, name string) (*domain.Dish, error)
	FindAll(ctx context.Context) ([]domain.Dish, error)
	Delete(ctx context.Context, id uint64) error
}

type DailySalesRepository interface {
	Save(ctx context.Context, sales *domain.DailySales) error
	FindByDate(ctx context.Context, date string) (*domain.DailySales, error)
	FindByDateBetween(ctx context.Context, start, end string) ([]domain.DailySales, error)
}

type AdminUserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.AdminUser, error)
	Save(ctx context.Context, user *domain.AdminUser) error
}

// Store bundles the repositories and scopes them to one database
// handle. Transaction runs fn against a store bound to a single
// transaction; any error rolls back every write.
type Store interface {
	Tables() TableRepository
	Reservations() ReservationRepository
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	Dishes() DishRepository
	DailySales() DailySalesRepository
	AdminUsers() AdminUserRepository
	Transaction(ctx context.Context, fn func(Store) error) error
}
