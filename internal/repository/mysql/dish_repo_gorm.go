package mysql

import (
	"context"
	"errors"

	"diner-service/internal/domain"

	"gorm.io/gorm"
)

type dishRepo struct {
	db *gorm.DB
}

func (r *dishRepo) Save(ctx context.Context, dish *domain.Dish) error {
	return r.db.WithContext(ctx).Save(dish).Error
}

func (r *dishRepo) FindByID(ctx context.Context, id uint64) (*domain.Dish, error) {
	var d domain.Dish
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *dishRepo) FindByName(ctx context.Context, name string) (*domain.Dish, error) {
	var d domain.Dish
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *dishRepo) FindAll(ctx context.Context) ([]domain.Dish, error) {
	var out []domain.Dish
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *dishRepo) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&domain.Dish{}, id).Error
}
