package mysql

import (
	"context"
	"errors"

	"diner-service/internal/domain"

	"gorm.io/gorm"
)

type dailySalesRepo struct {
	db *gorm.DB
}

func (r *dailySalesRepo) Save(ctx context.Context, sales *domain.DailySales) error {
	return r.db.WithContext(ctx).Save(sales).Error
}

func (r *dailySalesRepo) FindByDate(ctx context.Context, date string) (*domain.DailySales, error) {
	var s domain.DailySales
	if err := r.db.WithContext(ctx).Where("date = ?", date).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *dailySalesRepo) FindByDateBetween(ctx context.Context, start, end string) ([]domain.DailySales, error) {
	var out []domain.DailySales
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
