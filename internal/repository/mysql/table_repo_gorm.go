package mysql

import (
	"context"
	"errors"

	"diner-service/internal/domain"

	"gorm.io/gorm"
)

type tableRepo struct {
	db *gorm.DB
}

func (r *tableRepo) Save(ctx context.Context, table *domain.RestaurantTable) error {
	return r.db.WithContext(ctx).Save(table).Error
}

func (r *tableRepo) FindByID(ctx context.Context, id uint64) (*domain.RestaurantTable, error) {
	var t domain.RestaurantTable
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *tableRepo) FindAll(ctx context.Context) ([]domain.RestaurantTable, error) {
	var out []domain.RestaurantTable
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *tableRepo) FindByStatus(ctx context.Context, status domain.TableStatus) ([]domain.RestaurantTable, error) {
	var out []domain.RestaurantTable
	if err := r.db.WithContext(ctx).Where("status = ?", status).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *tableRepo) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&domain.RestaurantTable{}, id).Error
}
