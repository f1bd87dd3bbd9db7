package services

import (
	"time"

	"diner-service/internal/domain"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2025, 6, 15, 20, 30, 0, 0, time.Local)

func availableTable(id uint64) *domain.RestaurantTable {
	return &domain.RestaurantTable{
		ID:       id,
		Name:     "T1",
		Capacity: 4,
		Status:   domain.TableAvailable,
	}
}

func openOrder(id, tableID uint64, total int64) *domain.Order {
	return &domain.Order{
		ID:          id,
		TableID:     tableID,
		TotalAmount: total,
		Status:      domain.OrderOpen,
		StartTime:   testNow,
	}
}

func testDish(id uint64, price int64) *domain.Dish {
	return &domain.Dish{
		ID:    id,
		Name:  "Test Dish",
		Price: price,
	}
}
