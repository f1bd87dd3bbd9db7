package services

import (
	"context"

	"diner-service/internal/apperr"
	"diner-service/internal/domain"
	"diner-service/internal/repository"
)

type SalesService struct {
	store repository.Store
	clock Clock
}

func NewSalesService(store repository.Store, clock Clock) *SalesService {
	return &SalesService{store: store, clock: clock}
}

// Record adds amount to today's running total in its own transaction.
func (s *SalesService) Record(ctx context.Context, amount int64) error {
	return s.store.Transaction(ctx, func(tx repository.Store) error {
		return s.RecordIn(ctx, tx, amount)
	})
}

// RecordIn is the accumulation step, exposed so order closing can run
// it inside the same transaction as its other writes. The row for
// today is created on first use.
func (s *SalesService) RecordIn(ctx context.Context, st repository.Store, amount int64) error {
	today := s.clock.Now().Format(domain.DateLayout)

	sales, err := st.DailySales().FindByDate(ctx, today)
	if err != nil {
		return err
	}
	if sales == nil {
		sales = &domain.DailySales{Date: today, TotalSales: 0}
	}

	sales.TotalSales += amount
	return st.DailySales().Save(ctx, sales)
}

// Between returns daily sales rows for the inclusive date range.
func (s *SalesService) Between(ctx context.Context, start, end string) ([]domain.DailySales, error) {
	if start == "" || end == "" {
		return nil, apperr.New(apperr.InvalidArgument, "start and end dates are required")
	}
	if start > end {
		return nil, apperr.New(apperr.InvalidArgument, "start date is after end date")
	}
	return s.store.DailySales().FindByDateBetween(ctx, start, end)
}
