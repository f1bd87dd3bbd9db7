package mysql

import (
	"context"
	"errors"
	"time"

	"diner-service/internal/domain"

	"gorm.io/gorm"
)

type reservationRepo struct {
	db *gorm.DB
}

func (r *reservationRepo) Save(ctx context.Context, reservation *domain.Reservation) error {
	return r.db.WithContext(ctx).Save(reservation).Error
}

func (r *reservationRepo) FindByID(ctx context.Context, id uint64) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (r *reservationRepo) FindAll(ctx context.Context) ([]domain.Reservation, error) {
	var out []domain.Reservation
	if err := r.db.WithContext(ctx).Order("reservation_time DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *reservationRepo) FindByCustomerPhone(ctx context.Context, phone string) ([]domain.Reservation, error) {
	var out []domain.Reservation
	if err := r.db.WithContext(ctx).Where("customer_phone = ?", phone).Order("reservation_time DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *reservationRepo) FindByCustomerName(ctx context.Context, name string) ([]domain.Reservation, error) {
	var out []domain.Reservation
	if err := r.db.WithContext(ctx).Where("customer_name = ?", name).Order("reservation_time DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *reservationRepo) FindByStatus(ctx context.Context, status domain.ReservationStatus) ([]domain.Reservation, error) {
	var out []domain.Reservation
	if err := r.db.WithContext(ctx).Where("status = ?", status).Order("reservation_time DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *reservationRepo) FindByReservationTimeBetween(ctx context.Context, start, end time.Time) ([]domain.Reservation, error) {
	var out []domain.Reservation
	if err := r.db.WithContext(ctx).
		Where("reservation_time >= ? AND reservation_time < ?", start, end).
		Order("reservation_time ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *reservationRepo) ExistsActiveByTableID(ctx context.Context, tableID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("table_id = ? AND status IN ?", tableID, []domain.ReservationStatus{domain.ReservationCreated, domain.ReservationConfirmed}).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
