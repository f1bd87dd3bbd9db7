package mysql

import (
	"context"
	"errors"

	"diner-service/internal/domain"

	"gorm.io/gorm"
)

type orderItemRepo struct {
	db *gorm.DB
}

func (r *orderItemRepo) SaveAll(ctx context.Context, items []*domain.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(items).Error
}

func (r *orderItemRepo) FindByID(ctx context.Context, id uint64) (*domain.OrderItem, error) {
	var item domain.OrderItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *orderItemRepo) FindByOrderID(ctx context.Context, orderID uint64) ([]domain.OrderItem, error) {
	var out []domain.OrderItem
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *orderItemRepo) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&domain.OrderItem{}, id).Error
}

func (r *orderItemRepo) SumAmountByOrderID(ctx context.Context, orderID uint64) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&domain.OrderItem{}).
		Where("order_id = ?", orderID).
		Select("COALESCE(SUM(price * quantity), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
