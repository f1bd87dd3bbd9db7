package mysql

import (
	"context"

	"diner-service/internal/repository"

	"gorm.io/gorm"
)

type store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) repository.Store {
	return &store{db: db}
}

func (s *store) Tables() repository.TableRepository           { return &tableRepo{db: s.db} }
func (s *store) Reservations() repository.ReservationRepository { return &reservationRepo{db: s.db} }
func (s *store) Orders() repository.OrderRepository           { return &orderRepo{db: s.db} }
func (s *store) OrderItems() repository.OrderItemRepository   { return &orderItemRepo{db: s.db} }
func (s *store) Dishes() repository.DishRepository            { return &dishRepo{db: s.db} }
func (s *store) DailySales() repository.DailySalesRepository  { return &dailySalesRepo{db: s.db} }
func (s *store) AdminUsers() repository.AdminUserRepository   { return &adminUserRepo{db: s.db} }

func (s *store) Transaction(ctx context.Context, fn func(repository.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&store{db: tx})
	})
}
