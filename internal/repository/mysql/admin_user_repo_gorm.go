package mysql

import (
	"context"
	"errors"

	"diner-service/internal/domain"

	"gorm.io/gorm"
)

type adminUserRepo struct {
	db *gorm.DB
}

func (r *adminUserRepo) FindByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	var u domain.AdminUser
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *adminUserRepo) Save(ctx context.Context, user *domain.AdminUser) error {
	return r.db.WithContext(ctx).Save(user).Error
}
