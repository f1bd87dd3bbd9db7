package services

import (
	"context"

	"diner-service/internal/apperr"
	"diner-service/internal/domain"
	"diner-service/internal/repository"
)

type TableService struct {
	store repository.Store
}

func NewTableService(store repository.Store) *TableService {
	return &TableService{store: store}
}

func (s *TableService) List(ctx context.Context) ([]domain.RestaurantTable, error) {
	return s.store.Tables().FindAll(ctx)
}

func (s *TableService) ListAvailable(ctx context.Context) ([]domain.RestaurantTable, error) {
	return s.store.Tables().FindByStatus(ctx, domain.TableAvailable)
}

func (s *TableService) Get(ctx context.Context, id uint64) (*domain.RestaurantTable, error) {
	table, err := s.store.Tables().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, apperr.Newf(apperr.NotFound, "table %d not found", id)
	}
	return table, nil
}

// Create stores a new table. Caller-supplied status and current order
// are ignored; a new table always starts AVAILABLE.
func (s *TableService) Create(ctx context.Context, table *domain.RestaurantTable) (*domain.RestaurantTable, error) {
	table.ID = 0
	table.Status = domain.TableAvailable
	table.CurrentOrderID = nil
	if err := s.store.Tables().Save(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

func (s *TableService) UpdateStatus(ctx context.Context, id uint64, status domain.TableStatus) (*domain.RestaurantTable, error) {
	switch status {
	case domain.TableAvailable, domain.TableReserved, domain.TableInUse:
	default:
		return nil, apperr.Newf(apperr.InvalidArgument, "unknown table status %q", status)
	}

	table, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	table.Status = status
	if err := s.store.Tables().Save(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

// Update overwrites the mutable fields unconditionally. There are no
// partial-patch semantics.
func (s *TableService) Update(ctx context.Context, id uint64, updated *domain.RestaurantTable) (*domain.RestaurantTable, error) {
	table, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	table.Name = updated.Name
	table.Status = updated.Status
	table.Location = updated.Location
	table.Capacity = updated.Capacity
	table.GridX = updated.GridX
	table.GridY = updated.GridY
	table.GridWidth = updated.GridWidth
	table.GridHeight = updated.GridHeight

	if err := s.store.Tables().Save(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

// Delete refuses to remove a table that is still referenced by an
// open order or an active reservation; dangling references were a
// bug in earlier revisions of this system.
func (s *TableService) Delete(ctx context.Context, id uint64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	openOrder, err := s.store.Orders().ExistsOpenByTableID(ctx, id)
	if err != nil {
		return err
	}
	if openOrder {
		return apperr.Newf(apperr.Conflict, "table %d has an open order", id)
	}

	activeReservation, err := s.store.Reservations().ExistsActiveByTableID(ctx, id)
	if err != nil {
		return err
	}
	if activeReservation {
		return apperr.Newf(apperr.Conflict, "table %d has an active reservation", id)
	}

	return s.store.Tables().Delete(ctx, id)
}
