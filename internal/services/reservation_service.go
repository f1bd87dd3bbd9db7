package services

import (
	"context"
	"log"
	"time"

	"diner-service/internal/apperr"
	"diner-service/internal/domain"
	rabbit "diner-service/internal/infra/rabbitmq"
	"diner-service/internal/repository"
)

type ReservationService struct {
	store     repository.Store
	publisher rabbit.PublisherInterface
	clock     Clock
}

func NewReservationService(store repository.Store, pub rabbit.PublisherInterface, clock Clock) *ReservationService {
	return &ReservationService{store: store, publisher: pub, clock: clock}
}

// Create stores a new reservation. Caller-supplied status and table
// link are ignored; every reservation starts CREATED and unlinked.
func (s *ReservationService) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if res.CustomerName == "" || res.CustomerPhone == "" {
		return nil, apperr.New(apperr.InvalidArgument, "customerName and customerPhone are required")
	}
	if res.NumberOfGuests <= 0 {
		return nil, apperr.New(apperr.InvalidArgument, "numberOfGuests must be positive")
	}

	res.ID = 0
	res.Status = domain.ReservationCreated
	res.TableID = nil
	if err := s.store.Reservations().Save(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ReservationService) Get(ctx context.Context, id uint64) (*domain.Reservation, error) {
	res, err := s.store.Reservations().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, apperr.Newf(apperr.NotFound, "reservation %d not found", id)
	}
	return res, nil
}

// Update overwrites time, guest count, and customer contact fields.
// Status and table link are only touched by Confirm and Cancel.
func (s *ReservationService) Update(ctx context.Context, id uint64, updated *domain.Reservation) (*domain.Reservation, error) {
	res, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	res.ReservationTime = updated.ReservationTime
	res.NumberOfGuests = updated.NumberOfGuests
	res.CustomerName = updated.CustomerName
	res.CustomerPhone = updated.CustomerPhone

	if err := s.store.Reservations().Save(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Confirm links the reservation to an available table and reserves
// it. Both writes run in one transaction.
func (s *ReservationService) Confirm(ctx context.Context, id, tableID uint64) error {
	var evt domain.ReservationConfirmedEvent

	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		res, err := tx.Reservations().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if res == nil {
			return apperr.Newf(apperr.NotFound, "reservation %d not found", id)
		}

		table, err := tx.Tables().FindByID(ctx, tableID)
		if err != nil {
			return err
		}
		if table == nil {
			return apperr.Newf(apperr.NotFound, "table %d not found", tableID)
		}
		if table.Status != domain.TableAvailable {
			return apperr.Newf(apperr.Conflict, "table %d is not available", tableID)
		}

		res.Status = domain.ReservationConfirmed
		res.TableID = &table.ID
		table.Status = domain.TableReserved

		if err := tx.Tables().Save(ctx, table); err != nil {
			return err
		}
		if err := tx.Reservations().Save(ctx, res); err != nil {
			return err
		}

		evt = domain.ReservationConfirmedEvent{
			ReservationID: res.ID,
			TableID:       table.ID,
			CustomerName:  res.CustomerName,
			Time:          s.clock.Now(),
		}
		return nil
	})
	if err != nil {
		return err
	}

	go s.publish("reservation.confirmed", evt)
	return nil
}

// Cancel marks the reservation CANCELLED and frees its table if that
// table is still RESERVED. Cancelling twice is rejected.
func (s *ReservationService) Cancel(ctx context.Context, id uint64) error {
	return s.store.Transaction(ctx, func(tx repository.Store) error {
		res, err := tx.Reservations().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if res == nil {
			return apperr.Newf(apperr.NotFound, "reservation %d not found", id)
		}
		if res.Status == domain.ReservationCancelled {
			return apperr.Newf(apperr.Conflict, "reservation %d is already cancelled", id)
		}

		res.Status = domain.ReservationCancelled

		if res.TableID != nil {
			table, err := tx.Tables().FindByID(ctx, *res.TableID)
			if err != nil {
				return err
			}
			if table != nil && table.Status == domain.TableReserved {
				table.Status = domain.TableAvailable
				if err := tx.Tables().Save(ctx, table); err != nil {
					return err
				}
			}
		}

		return tx.Reservations().Save(ctx, res)
	})
}

func (s *ReservationService) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	return s.store.Reservations().FindAll(ctx)
}

func (s *ReservationService) ListByCustomerPhone(ctx context.Context, phone string) ([]domain.Reservation, error) {
	return s.store.Reservations().FindByCustomerPhone(ctx, phone)
}

func (s *ReservationService) ListByCustomerName(ctx context.Context, name string) ([]domain.Reservation, error) {
	return s.store.Reservations().FindByCustomerName(ctx, name)
}

func (s *ReservationService) ListByStatus(ctx context.Context, status domain.ReservationStatus) ([]domain.Reservation, error) {
	return s.store.Reservations().FindByStatus(ctx, status)
}

// ListToday returns reservations whose time falls inside the current
// local calendar day.
func (s *ReservationService) ListToday(ctx context.Context) ([]domain.Reservation, error) {
	start, end := dayBounds(s.clock.Now())
	return s.store.Reservations().FindByReservationTimeBetween(ctx, start, end)
}

func (s *ReservationService) publish(routingKey string, data any) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.publisher.Publish(ctx, routingKey, data); err != nil {
		log.Printf("Failed to publish %s event: %v", routingKey, err)
	}
}
