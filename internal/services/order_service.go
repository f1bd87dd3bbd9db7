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

// OrderItemLine is one requested line when adding items to an order.
type OrderItemLine struct {
	DishID   uint64
	Quantity int
}

// OrderPage is one page of orders sorted by start time descending.
type OrderPage struct {
	Items []domain.Order `json:"items"`
	Page  int            `json:"page"`
	Size  int            `json:"size"`
	Total int64          `json:"total"`
}

type OrderService struct {
	store     repository.Store
	sales     *SalesService
	publisher rabbit.PublisherInterface
	clock     Clock
}

func NewOrderService(store repository.Store, sales *SalesService, pub rabbit.PublisherInterface, clock Clock) *OrderService {
	return &OrderService{store: store, sales: sales, publisher: pub, clock: clock}
}

// Open starts a new order on an available table. The table flips to
// IN_USE and records the order as its current one, all in one
// transaction.
func (s *OrderService) Open(ctx context.Context, tableID uint64) (*domain.Order, error) {
	var order *domain.Order

	err := s.store.Transaction(ctx, func(tx repository.Store) error {
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

		order = &domain.Order{
			TableID:     tableID,
			TotalAmount: 0,
			Status:      domain.OrderOpen,
			StartTime:   s.clock.Now(),
		}
		if err := tx.Orders().Save(ctx, order); err != nil {
			return err
		}

		table.Status = domain.TableInUse
		table.CurrentOrderID = &order.ID
		return tx.Tables().Save(ctx, table)
	})
	if err != nil {
		return nil, err
	}

	go s.publish("order.opened", domain.OrderOpenedEvent{
		OrderID:   order.ID,
		TableID:   order.TableID,
		StartTime: order.StartTime,
	})

	return order, nil
}

// AddItems appends lines to an open order, snapshotting each dish's
// current price, then re-aggregates the total from the database. The
// full re-aggregation guards against drift at the cost of one query.
func (s *OrderService) AddItems(ctx context.Context, orderID uint64, lines []OrderItemLine) (*domain.Order, error) {
	if len(lines) == 0 {
		return nil, apperr.New(apperr.InvalidArgument, "no items to add")
	}

	var order *domain.Order
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		var err error
		order, err = s.getOpen(ctx, tx, orderID)
		if err != nil {
			return err
		}

		items := make([]*domain.OrderItem, 0, len(lines))
		for _, line := range lines {
			if line.Quantity <= 0 {
				return apperr.Newf(apperr.InvalidArgument, "quantity must be positive for dish %d", line.DishID)
			}
			dish, err := tx.Dishes().FindByID(ctx, line.DishID)
			if err != nil {
				return err
			}
			if dish == nil {
				return apperr.Newf(apperr.NotFound, "dish %d not found", line.DishID)
			}
			items = append(items, &domain.OrderItem{
				OrderID:  order.ID,
				DishID:   dish.ID,
				Quantity: line.Quantity,
				Price:    dish.Price,
			})
		}

		if err := tx.OrderItems().SaveAll(ctx, items); err != nil {
			return err
		}
		return s.refreshTotal(ctx, tx, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// RemoveItem deletes one line from an open order and re-aggregates
// the total. Items belonging to another order are rejected.
func (s *OrderService) RemoveItem(ctx context.Context, orderID, itemID uint64) error {
	return s.store.Transaction(ctx, func(tx repository.Store) error {
		order, err := s.getOpen(ctx, tx, orderID)
		if err != nil {
			return err
		}

		item, err := tx.OrderItems().FindByID(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return apperr.Newf(apperr.NotFound, "order item %d not found", itemID)
		}
		if item.OrderID != orderID {
			return apperr.Newf(apperr.InvalidArgument, "item %d does not belong to order %d", itemID, orderID)
		}

		if err := tx.OrderItems().Delete(ctx, itemID); err != nil {
			return err
		}
		return s.refreshTotal(ctx, tx, order)
	})
}

// Close finishes an order: status CLOSED, close time stamped, the
// order's table freed, and the total recorded into the day's sales.
// A tableID that names a different table than the order's own is
// rejected; earlier revisions let callers free the wrong table.
func (s *OrderService) Close(ctx context.Context, orderID uint64, tableID *uint64) (*domain.Order, error) {
	var order *domain.Order

	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		var err error
		order, err = s.find(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if order.Status == domain.OrderClosed {
			return apperr.Newf(apperr.Conflict, "order %d is already closed", orderID)
		}
		if tableID != nil && *tableID != order.TableID {
			return apperr.Newf(apperr.InvalidArgument, "order %d belongs to table %d, not %d", orderID, order.TableID, *tableID)
		}

		now := s.clock.Now()
		order.Status = domain.OrderClosed
		order.CloseTime = &now
		if err := tx.Orders().Save(ctx, order); err != nil {
			return err
		}

		table, err := tx.Tables().FindByID(ctx, order.TableID)
		if err != nil {
			return err
		}
		if table != nil {
			table.Status = domain.TableAvailable
			table.CurrentOrderID = nil
			if err := tx.Tables().Save(ctx, table); err != nil {
				return err
			}
		}

		return s.sales.RecordIn(ctx, tx, order.TotalAmount)
	})
	if err != nil {
		return nil, err
	}

	go s.publish("order.closed", domain.OrderClosedEvent{
		OrderID:     order.ID,
		TableID:     order.TableID,
		TotalAmount: order.TotalAmount,
		CloseTime:   *order.CloseTime,
	})

	return order, nil
}

func (s *OrderService) Get(ctx context.Context, id uint64) (*domain.Order, error) {
	return s.find(ctx, s.store, id)
}

func (s *OrderService) Items(ctx context.Context, orderID uint64) ([]domain.OrderItem, error) {
	if _, err := s.find(ctx, s.store, orderID); err != nil {
		return nil, err
	}
	return s.store.OrderItems().FindByOrderID(ctx, orderID)
}

// Page returns one page of orders, optionally filtered by status.
func (s *OrderService) Page(ctx context.Context, status domain.OrderStatus, page, size int) (*OrderPage, error) {
	if page < 0 || size <= 0 {
		return nil, apperr.New(apperr.InvalidArgument, "page must be >= 0 and size > 0")
	}
	items, total, err := s.store.Orders().FindPaged(ctx, status, page, size)
	if err != nil {
		return nil, err
	}
	return &OrderPage{Items: items, Page: page, Size: size, Total: total}, nil
}

func (s *OrderService) TodayClosed(ctx context.Context) ([]domain.Order, error) {
	start, end := dayBounds(s.clock.Now())
	return s.store.Orders().FindClosedByCloseTimeBetween(ctx, start, end)
}

func (s *OrderService) TodaySales(ctx context.Context) (int64, error) {
	start, end := dayBounds(s.clock.Now())
	return s.store.Orders().SumTotalAmountByCloseTimeBetween(ctx, start, end)
}

func (s *OrderService) ClosedByDate(ctx context.Context, date time.Time) ([]domain.Order, error) {
	start, end := dayBounds(date)
	return s.store.Orders().FindClosedByCloseTimeBetween(ctx, start, end)
}

func (s *OrderService) SalesByDate(ctx context.Context, date time.Time) (int64, error) {
	start, end := dayBounds(date)
	return s.store.Orders().SumTotalAmountByCloseTimeBetween(ctx, start, end)
}

func (s *OrderService) find(ctx context.Context, st repository.Store, id uint64) (*domain.Order, error) {
	order, err := st.Orders().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperr.Newf(apperr.NotFound, "order %d not found", id)
	}
	return order, nil
}

func (s *OrderService) getOpen(ctx context.Context, st repository.Store, id uint64) (*domain.Order, error) {
	order, err := s.find(ctx, st, id)
	if err != nil {
		return nil, err
	}
	if order.Status == domain.OrderClosed {
		return nil, apperr.Newf(apperr.Conflict, "order %d is closed", id)
	}
	return order, nil
}

func (s *OrderService) refreshTotal(ctx context.Context, st repository.Store, order *domain.Order) error {
	total, err := st.OrderItems().SumAmountByOrderID(ctx, order.ID)
	if err != nil {
		return err
	}
	order.TotalAmount = total
	return st.Orders().Save(ctx, order)
}

func (s *OrderService) publish(routingKey string, data any) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.publisher.Publish(ctx, routingKey, data); err != nil {
		log.Printf("Failed to publish %s event: %v", routingKey, err)
	}
}
