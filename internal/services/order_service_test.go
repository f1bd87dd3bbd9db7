package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"diner-service/internal/apperr"
	"diner-service/internal/domain"
	"diner-service/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newOrderService(store *mocks.MockStore, pub *mocks.MockPublisher) *OrderService {
	clock := fixedClock{t: testNow}
	return NewOrderService(store, NewSalesService(store, clock), pub, clock)
}

func TestOrderService_Open(t *testing.T) {
	tests := []struct {
		name         string
		tableID      uint64
		setupMocks   func(*mocks.MockStore, *mocks.MockPublisher)
		expectedKind apperr.Kind
		expectedErr  string
	}{
		{
			name:    "successful open",
			tableID: 1,
			setupMocks: func(store *mocks.MockStore, pub *mocks.MockPublisher) {
				store.TableRepo.On("FindByID", mock.Anything, uint64(1)).Return(availableTable(1), nil)
				store.OrderRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil).Run(func(args mock.Arguments) {
					args.Get(1).(*domain.Order).ID = 7
				})
				store.TableRepo.On("Save", mock.Anything, mock.MatchedBy(func(tbl *domain.RestaurantTable) bool {
					return tbl.Status == domain.TableInUse && tbl.CurrentOrderID != nil && *tbl.CurrentOrderID == 7
				})).Return(nil)
				pub.On("Publish", mock.Anything, "order.opened", mock.Anything).Return(nil).Maybe()
			},
		},
		{
			name:    "table not found",
			tableID: 99,
			setupMocks: func(store *mocks.MockStore, pub *mocks.MockPublisher) {
				store.TableRepo.On("FindByID", mock.Anything, uint64(99)).Return(nil, nil)
			},
			expectedKind: apperr.NotFound,
			expectedErr:  "table 99 not found",
		},
		{
			name:    "table in use",
			tableID: 2,
			setupMocks: func(store *mocks.MockStore, pub *mocks.MockPublisher) {
				table := availableTable(2)
				table.Status = domain.TableInUse
				store.TableRepo.On("FindByID", mock.Anything, uint64(2)).Return(table, nil)
			},
			expectedKind: apperr.Conflict,
			expectedErr:  "not available",
		},
		{
			name:    "repository error",
			tableID: 1,
			setupMocks: func(store *mocks.MockStore, pub *mocks.MockPublisher) {
				store.TableRepo.On("FindByID", mock.Anything, uint64(1)).Return(nil, errors.New("database error"))
			},
			expectedErr: "database error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMockStore()
			pub := new(mocks.MockPublisher)
			tt.setupMocks(store, pub)

			service := newOrderService(store, pub)
			order, err := service.Open(context.Background(), tt.tableID)

			if tt.expectedErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				assert.Nil(t, order)
				if tt.expectedKind != apperr.Internal {
					assert.Equal(t, tt.expectedKind, apperr.KindOf(err))
				}
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, order)
				assert.Equal(t, tt.tableID, order.TableID)
				assert.Equal(t, domain.OrderOpen, order.Status)
				assert.Equal(t, int64(0), order.TotalAmount)
				assert.Equal(t, testNow, order.StartTime)
			}

			time.Sleep(50 * time.Millisecond)
			store.AssertExpectations(t)
			pub.AssertExpectations(t)
		})
	}
}

func TestOrderService_AddItems(t *testing.T) {
	tests := []struct {
		name          string
		orderID       uint64
		lines         []OrderItemLine
		setupMocks    func(*mocks.MockStore)
		expectedKind  apperr.Kind
		expectedErr   string
		expectedTotal int64
	}{
		{
			name:    "items added and total re-aggregated",
			orderID: 1,
			lines:   []OrderItemLine{{DishID: 10, Quantity: 2}},
			setupMocks: func(store *mocks.MockStore) {
				store.OrderRepo.On("FindByID", mock.Anything, uint64(1)).Return(openOrder(1, 3, 0), nil)
				store.DishRepo.On("FindByID", mock.Anything, uint64(10)).Return(testDish(10, 1000), nil)
				store.OrderItemRepo.On("SaveAll", mock.Anything, mock.MatchedBy(func(items []*domain.OrderItem) bool {
					return len(items) == 1 && items[0].Price == 1000 && items[0].Quantity == 2
				})).Return(nil)
				store.OrderItemRepo.On("SumAmountByOrderID", mock.Anything, uint64(1)).Return(int64(2000), nil)
				store.OrderRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
			},
			expectedTotal: 2000,
		},
		{
			name:         "empty request",
			orderID:      1,
			lines:        nil,
			setupMocks:   func(store *mocks.MockStore) {},
			expectedKind: apperr.InvalidArgument,
			expectedErr:  "no items",
		},
		{
			name:    "order not found",
			orderID: 99,
			lines:   []OrderItemLine{{DishID: 10, Quantity: 1}},
			setupMocks: func(store *mocks.MockStore) {
				store.OrderRepo.On("FindByID", mock.Anything, uint64(99)).Return(nil, nil)
			},
			expectedKind: apperr.NotFound,
			expectedErr:  "order 99 not found",
		},
		{
			name:    "dish not found",
			orderID: 1,
			lines:   []OrderItemLine{{DishID: 42, Quantity: 1}},
			setupMocks: func(store *mocks.MockStore) {
				store.OrderRepo.On("FindByID", mock.Anything, uint64(1)).Return(openOrder(1, 3, 0), nil)
				store.DishRepo.On("FindByID", mock.Anything, uint64(42)).Return(nil, nil)
			},
			expectedKind: apperr.NotFound,
			expectedErr:  "dish 42 not found",
		},
		{
			name:    "closed order rejected",
			orderID: 1,
			lines:   []OrderItemLine{{DishID: 10, Quantity: 1}},
			setupMocks: func(store *mocks.MockStore) {
				order := openOrder(1, 3, 500)
				order.Status = domain.OrderClosed
				store.OrderRepo.On("FindByID", mock.Anything, uint64(1)).Return(order, nil)
			},
			expectedKind: apperr.Conflict,
			expectedErr:  "closed",
		},
		{
			name:    "non-positive quantity rejected",
			orderID: 1,
			lines:   []OrderItemLine{{DishID: 10, Quantity: 0}},
			setupMocks: func(store *mocks.MockStore) {
				store.OrderRepo.On("FindByID", mock.Anything, uint64(1)).Return(openOrder(1, 3, 0), nil)
			},
			expectedKind: apperr.InvalidArgument,
			expectedErr:  "quantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMockStore()
			tt.setupMocks(store)

			service := newOrderService(store, new(mocks.MockPublisher))
			order, err := service.AddItems(context.Background(), tt.orderID, tt.lines)

			if tt.expectedErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				assert.Equal(t, tt.expectedKind, apperr.KindOf(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedTotal, order.TotalAmount)
			}

			store.AssertExpectations(t)
		})
	}
}

func TestOrderService_RemoveItem(t *testing.T) {
	t.Run("item removed and total refreshed", func(t *testing.T) {
		store := mocks.NewMockStore()
		store.OrderRepo.On("FindByID", mock.Anything, uint64(1)).Return(openOrder(1, 3, 2000), nil)
		store.OrderItemRepo.On("FindByID", mock.Anything, uint64(5)).Return(&domain.OrderItem{ID: 5, OrderID: 1, DishID: 10, Quantity: 2, Price: 1000}, nil)
		store.OrderItemRepo.On("Delete", mock.Anything, uint64(5)).Return(nil)
		store.OrderItemRepo.On("SumAmountByOrderID", mock.Anything, uint64(1)).Return(int64(0), nil)
		store.OrderRepo.On("Save", mock.Anything, mock.MatchedBy(func(o *domain.Order) bool {
			return o.TotalAmount == 0
		})).Return(nil)

		service := newOrderService(store, new(mocks.MockPublisher))
		err := service.RemoveItem(context.Background(), 1, 5)

		assert.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("item from another order rejected", func(t *testing.T) {
		store := mocks.NewMockStore()
		store.OrderRepo.On("FindByID", mock.Anything, uint64(1)).Return(openOrder(1, 3, 2000), nil)
		store.OrderItemRepo.On("FindByID", mock.Anything, uint64(5)).Return(&domain.OrderItem{ID: 5, OrderID: 2}, nil)

		service := newOrderService(store, new(mocks.MockPublisher))
		err := service.RemoveItem(context.Background(), 1, 5)

		assert.Error(t, err)
		assert.Equal(t, apperr.InvalidArgument, apperr.KindOf(err))
		store.AssertExpectations(t)
	})

	t.Run("missing item", func(t *testing.T) {
		store := mocks.NewMockStore()
		store.OrderRepo.On("FindByID", mock.Anything, uint64(1)).Return(openOrder(1, 3, 0), nil)
		store.OrderItemRepo.On("FindByID", mock.Anything, uint64(5)).Return(nil, nil)

		service := newOrderService(store, new(mocks.MockPublisher))
		err := service.RemoveItem(context.Background(), 1, 5)

		assert.Error(t, err)
		assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
		store.AssertExpectations(t)
	})
}

func TestOrderService_Close(t *testing.T) {
	t.Run("closes order, frees table, records sales", func(t *testing.T) {
		store := mocks.NewMockStore()
		pub := new(mocks.MockPublisher)

		table := availableTable(3)
		table.Status = domain.TableInUse
		orderID := uint64(7)
		table.CurrentOrderID = &orderID

		store.OrderRepo.On("FindByID", mock.Anything, uint64(7)).Return(openOrder(7, 3, 2000), nil)
		store.OrderRepo.On("Save", mock.Anything, mock.MatchedBy(func(o *domain.Order) bool {
			return o.Status == domain.OrderClosed && o.CloseTime != nil && o.CloseTime.Equal(testNow)
		})).Return(nil)
		store.TableRepo.On("FindByID", mock.Anything, uint64(3)).Return(table, nil)
		store.TableRepo.On("Save", mock.Anything, mock.MatchedBy(func(tbl *domain.RestaurantTable) bool {
			return tbl.Status == domain.TableAvailable && tbl.CurrentOrderID == nil
		})).Return(nil)
		store.DailySalesRepo.On("FindByDate", mock.Anything, testNow.Format(domain.DateLayout)).Return(nil, nil)
		store.DailySalesRepo.On("Save", mock.Anything, mock.MatchedBy(func(s *domain.DailySales) bool {
			return s.TotalSales == 2000 && s.Date == testNow.Format(domain.DateLayout)
		})).Return(nil)
		pub.On("Publish", mock.Anything, "order.closed", mock.Anything).Return(nil).Maybe()

		service := newOrderService(store, pub)
		order, err := service.Close(context.Background(), 7, nil)

		assert.NoError(t, err)
		assert.Equal(t, domain.OrderClosed, order.Status)

		time.Sleep(50 * time.Millisecond)
		store.AssertExpectations(t)
	})

	t.Run("double close rejected", func(t *testing.T) {
		store := mocks.NewMockStore()
		order := openOrder(7, 3, 2000)
		order.Status = domain.OrderClosed
		store.OrderRepo.On("FindByID", mock.Anything, uint64(7)).Return(order, nil)

		service := newOrderService(store, new(mocks.MockPublisher))
		_, err := service.Close(context.Background(), 7, nil)

		assert.Error(t, err)
		assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
		store.AssertExpectations(t)
	})

	t.Run("mismatched table id rejected", func(t *testing.T) {
		store := mocks.NewMockStore()
		store.OrderRepo.On("FindByID", mock.Anything, uint64(7)).Return(openOrder(7, 3, 2000), nil)

		service := newOrderService(store, new(mocks.MockPublisher))
		other := uint64(4)
		_, err := service.Close(context.Background(), 7, &other)

		assert.Error(t, err)
		assert.Equal(t, apperr.InvalidArgument, apperr.KindOf(err))
		store.AssertExpectations(t)
	})

	t.Run("matching table id accepted", func(t *testing.T) {
		store := mocks.NewMockStore()
		pub := new(mocks.MockPublisher)

		store.OrderRepo.On("FindByID", mock.Anything, uint64(7)).Return(openOrder(7, 3, 500), nil)
		store.OrderRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
		store.TableRepo.On("FindByID", mock.Anything, uint64(3)).Return(availableTable(3), nil)
		store.TableRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.RestaurantTable")).Return(nil)
		store.DailySalesRepo.On("FindByDate", mock.Anything, mock.Anything).Return(&domain.DailySales{ID: 1, Date: testNow.Format(domain.DateLayout), TotalSales: 1500}, nil)
		store.DailySalesRepo.On("Save", mock.Anything, mock.MatchedBy(func(s *domain.DailySales) bool {
			return s.TotalSales == 2000
		})).Return(nil)
		pub.On("Publish", mock.Anything, "order.closed", mock.Anything).Return(nil).Maybe()

		service := newOrderService(store, pub)
		same := uint64(3)
		order, err := service.Close(context.Background(), 7, &same)

		assert.NoError(t, err)
		assert.Equal(t, domain.OrderClosed, order.Status)

		time.Sleep(50 * time.Millisecond)
		store.AssertExpectations(t)
	})
}

func TestOrderService_DayQueries(t *testing.T) {
	store := mocks.NewMockStore()
	clock := fixedClock{t: testNow}
	service := NewOrderService(store, NewSalesService(store, clock), new(mocks.MockPublisher), clock)

	dayStart := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	dayEnd := dayStart.AddDate(0, 0, 1)

	store.OrderRepo.On("FindClosedByCloseTimeBetween", mock.Anything, dayStart, dayEnd).Return([]domain.Order{*openOrder(1, 2, 100)}, nil)
	store.OrderRepo.On("SumTotalAmountByCloseTimeBetween", mock.Anything, dayStart, dayEnd).Return(int64(100), nil)

	orders, err := service.TodayClosed(context.Background())
	assert.NoError(t, err)
	assert.Len(t, orders, 1)

	total, err := service.TodaySales(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(100), total)

	store.AssertExpectations(t)
}

func TestOrderService_Page(t *testing.T) {
	store := mocks.NewMockStore()
	service := newOrderService(store, new(mocks.MockPublisher))

	store.OrderRepo.On("FindPaged", mock.Anything, domain.OrderClosed, 0, 10).Return([]domain.Order{*openOrder(1, 2, 100)}, int64(1), nil)

	page, err := service.Page(context.Background(), domain.OrderClosed, 0, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Len(t, page.Items, 1)

	_, err = service.Page(context.Background(), "", -1, 10)
	assert.Error(t, err)
	assert.Equal(t, apperr.InvalidArgument, apperr.KindOf(err))

	store.AssertExpectations(t)
}
