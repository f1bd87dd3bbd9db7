package services

import (
	"context"
	"errors"

	"diner-service/internal/domain"
	"diner-service/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for both unknown usernames and
// wrong passwords so login responses don't leak which one failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AdminUserService authenticates back-office users. There is no
// self-service registration; admin accounts are provisioned directly
// in the database.
type AdminUserService struct {
	store repository.Store
}

func NewAdminUserService(store repository.Store) *AdminUserService {
	return &AdminUserService{store: store}
}

func (s *AdminUserService) Authenticate(ctx context.Context, username, password string) (*domain.AdminUser, error) {
	user, err := s.store.AdminUsers().FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
