package mysql

import (
	"context"
	"errors"
	"time"

	"diner-service/internal/domain"

	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func (r *orderRepo) Save(ctx context.Context, order *domain.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *orderRepo) FindByID(ctx context.Context, id uint64) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindPaged(ctx context.Context, status domain.OrderStatus, page, size int) ([]domain.Order, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Order{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []domain.Order
	if err := q.Order("start_time DESC").Offset(page * size).Limit(size).Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *orderRepo) FindClosedByCloseTimeBetween(ctx context.Context, start, end time.Time) ([]domain.Order, error) {
	var out []domain.Order
	if err := r.db.WithContext(ctx).
		Where("status = ? AND close_time >= ? AND close_time < ?", domain.OrderClosed, start, end).
		Order("close_time DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) SumTotalAmountByCloseTimeBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("status = ? AND close_time >= ? AND close_time < ?", domain.OrderClosed, start, end).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *orderRepo) ExistsOpenByTableID(ctx context.Context, tableID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("table_id = ? AND status = ?", tableID, domain.OrderOpen).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
