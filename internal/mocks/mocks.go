package mocks

import (
	"context"
	"time"

	"diner-service/internal/domain"
	"diner-service/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockStore bundles mock repositories and runs Transaction callbacks
// against itself, so service tests see the same mocks inside and
// outside a transaction.
type MockStore struct {
	TableRepo       *MockTableRepository
	ReservationRepo *MockReservationRepository
	OrderRepo       *MockOrderRepository
	OrderItemRepo   *MockOrderItemRepository
	DishRepo        *MockDishRepository
	DailySalesRepo  *MockDailySalesRepository
	AdminUserRepo   *MockAdminUserRepository
}

func NewMockStore() *MockStore {
	return &MockStore{
		TableRepo:       new(MockTableRepository),
		ReservationRepo: new(MockReservationRepository),
		OrderRepo:       new(MockOrderRepository),
		OrderItemRepo:   new(MockOrderItemRepository),
		DishRepo:        new(MockDishRepository),
		DailySalesRepo:  new(MockDailySalesRepository),
		AdminUserRepo:   new(MockAdminUserRepository),
	}
}

func (s *MockStore) Tables() repository.TableRepository             { return s.TableRepo }
func (s *MockStore) Reservations() repository.ReservationRepository { return s.ReservationRepo }
func (s *MockStore) Orders() repository.OrderRepository             { return s.OrderRepo }
func (s *MockStore) OrderItems() repository.OrderItemRepository     { return s.OrderItemRepo }
func (s *MockStore) Dishes() repository.DishRepository              { return s.DishRepo }
func (s *MockStore) DailySales() repository.DailySalesRepository    { return s.DailySalesRepo }
func (s *MockStore) AdminUsers() repository.AdminUserRepository     { return s.AdminUserRepo }

func (s *MockStore) Transaction(ctx context.Context, fn func(repository.Store) error) error {
	return fn(s)
}

func (s *MockStore) AssertExpectations(t mock.TestingT) {
	s.TableRepo.AssertExpectations(t)
	s.ReservationRepo.AssertExpectations(t)
	s.OrderRepo.AssertExpectations(t)
	s.OrderItemRepo.AssertExpectations(t)
	s.DishRepo.AssertExpectations(t)
	s.DailySalesRepo.AssertExpectations(t)
	s.AdminUserRepo.AssertExpectations(t)
}

type MockTableRepository struct {
	mock.Mock
}

func (m *MockTableRepository) Save(ctx context.Context, table *domain.RestaurantTable) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

func (m *MockTableRepository) FindByID(ctx context.Context, id uint64) (*domain.RestaurantTable, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RestaurantTable), args.Error(1)
}

func (m *MockTableRepository) FindAll(ctx context.Context) ([]domain.RestaurantTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RestaurantTable), args.Error(1)
}

func (m *MockTableRepository) FindByStatus(ctx context.Context, status domain.TableStatus) ([]domain.RestaurantTable, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RestaurantTable), args.Error(1)
}

func (m *MockTableRepository) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Save(ctx context.Context, reservation *domain.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockReservationRepository) FindByID(ctx context.Context, id uint64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) FindAll(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) FindByCustomerPhone(ctx context.Context, phone string) ([]domain.Reservation, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) FindByCustomerName(ctx context.Context, name string) ([]domain.Reservation, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) FindByStatus(ctx context.Context, status domain.ReservationStatus) ([]domain.Reservation, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) FindByReservationTimeBetween(ctx context.Context, start, end time.Time) ([]domain.Reservation, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) ExistsActiveByTableID(ctx context.Context, tableID uint64) (bool, error) {
	args := m.Called(ctx, tableID)
	return args.Bool(0), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Save(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uint64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindPaged(ctx context.Context, status domain.OrderStatus, page, size int) ([]domain.Order, int64, error) {
	args := m.Called(ctx, status, page, size)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) FindClosedByCloseTimeBetween(ctx context.Context, start, end time.Time) ([]domain.Order, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) SumTotalAmountByCloseTimeBetween(ctx context.Context, start, end time.Time) (int64, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) ExistsOpenByTableID(ctx context.Context, tableID uint64) (bool, error) {
	args := m.Called(ctx, tableID)
	return args.Bool(0), args.Error(1)
}

type MockOrderItemRepository struct {
	mock.Mock
}

func (m *MockOrderItemRepository) SaveAll(ctx context.Context, items []*domain.OrderItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockOrderItemRepository) FindByID(ctx context.Context, id uint64) (*domain.OrderItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderItem), args.Error(1)
}

func (m *MockOrderItemRepository) FindByOrderID(ctx context.Context, orderID uint64) ([]domain.OrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderItem), args.Error(1)
}

func (m *MockOrderItemRepository) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderItemRepository) SumAmountByOrderID(ctx context.Context, orderID uint64) (int64, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(int64), args.Error(1)
}

type MockDishRepository struct {
	mock.Mock
}

func (m *MockDishRepository) Save(ctx context.Context, dish *domain.Dish) error {
	args := m.Called(ctx, dish)
	return args.Error(0)
}

func (m *MockDishRepository) FindByID(ctx context.Context, id uint64) (*domain.Dish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dish), args.Error(1)
}

func (m *MockDishRepository) FindByName(ctx context.Context, name string) (*domain.Dish, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dish), args.Error(1)
}

func (m *MockDishRepository) FindAll(ctx context.Context) ([]domain.Dish, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Dish), args.Error(1)
}

func (m *MockDishRepository) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDailySalesRepository struct {
	mock.Mock
}

func (m *MockDailySalesRepository) Save(ctx context.Context, sales *domain.DailySales) error {
	args := m.Called(ctx, sales)
	return args.Error(0)
}

func (m *MockDailySalesRepository) FindByDate(ctx context.Context, date string) (*domain.DailySales, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailySales), args.Error(1)
}

func (m *MockDailySalesRepository) FindByDateBetween(ctx context.Context, start, end string) ([]domain.DailySales, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailySales), args.Error(1)
}

type MockAdminUserRepository struct {
	mock.Mock
}

func (m *MockAdminUserRepository) FindByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminUser), args.Error(1)
}

func (m *MockAdminUserRepository) Save(ctx context.Context, user *domain.AdminUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, data any) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}
