package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/mely/internal/auth"
	"github.com/example/mely/internal/events"
	"github.com/example/mely/internal/models"
	"github.com/example/mely/internal/repository"
	"github.com/example/mely/pkg/logger"
)

// OrderNotifier tells staff about new orders.
type OrderNotifier interface {
	NotifyNewOrder(order OrderNotification) error
}

// OrderService places orders and moves them through fulfilment.
type OrderService struct {
	orders    repository.OrderRepository
	products  repository.ProductRepository
	publisher events.Publisher
	notifier  OrderNotifier
	log       logger.Logger
}

// NewOrderService constructs OrderService. notifier may be nil.
func NewOrderService(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	publisher events.Publisher,
	notifier OrderNotifier,
	log logger.Logger,
) *OrderService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &OrderService{
		orders:    orders,
		products:  products,
		publisher: publisher,
		notifier:  notifier,
		log:       log,
	}
}

// CustomerInfo is the contact block of the checkout form.
type CustomerInfo struct {
	Name    string `json:"customer_name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Normalize trims every field.
func (c CustomerInfo) Normalize() CustomerInfo {
	return CustomerInfo{
		Name:    strings.TrimSpace(c.Name),
		Phone:   strings.TrimSpace(c.Phone),
		Address: strings.TrimSpace(c.Address),
	}
}

// Validate requires every field to be non-empty.
func (c CustomerInfo) Validate() error {
	if c.Name == "" || c.Phone == "" || c.Address == "" {
		return ErrMissingCustomerField
	}
	return nil
}

// PlaceOrderInput is a checkout of one product.
type PlaceOrderInput struct {
	Customer  CustomerInfo
	ProductID uuid.UUID
	Quantity  int
}

// PlaceOrder stores a pending order with a single line item priced at the
// product's current price. Stock is left untouched.
func (s *OrderService) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*models.Order, error) {
	customer := in.Customer.Normalize()
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if in.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.products.FindByID(ctx, in.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("load product %s: %w", in.ProductID, err)
	}

	if err := ValidateQuantity(in.Quantity, product.Stock); err != nil {
		return nil, err
	}

	order := models.Order{
		CustomerName: customer.Name,
		Phone:        customer.Phone,
		Address:      customer.Address,
		Status:       models.OrderStatusPending,
		TotalAmount:  ComputeLineTotal(product.Price, in.Quantity),
		Items: []models.OrderItem{{
			ProductID:   product.ID,
			Quantity:    in.Quantity,
			PriceAtTime: product.Price,
		}},
	}

	if err := s.orders.Create(ctx, &order); err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}

	log := s.log.WithContext(ctx).WithFields(logger.Any("order_id", order.ID))
	log.Info("order placed",
		logger.Any("product_id", product.ID),
		logger.Int("quantity", in.Quantity),
		logger.String("total", order.TotalAmount.StringFixed(2)),
	)

	if err := s.publisher.Publish(ctx, events.TopicOrderPlaced, order.ID.String(), events.NewOrderPlaced(order)); err != nil {
		log.Warn("order placed event not published", logger.Error(err))
	}
	s.notify(order, *product)

	return &order, nil
}

func (s *OrderService) notify(order models.Order, product models.Product) {
	if s.notifier == nil {
		return
	}

	item := order.Items[0]
	notification := OrderNotification{
		OrderID:      order.ID.String(),
		CustomerName: order.CustomerName,
		Phone:        order.Phone,
		Address:      order.Address,
		TotalAmount:  order.TotalAmount,
		Items: []OrderItemNotification{{
			Name:     product.Name,
			Quantity: item.Quantity,
			Price:    item.PriceAtTime,
		}},
	}

	go func() {
		if err := s.notifier.NotifyNewOrder(notification); err != nil {
			s.log.Warn("new order notification failed",
				logger.String("order_id", notification.OrderID),
				logger.Error(err),
			)
		}
	}()
}

// ListOrders returns orders in one status, newest first. An empty status
// means pending.
func (s *OrderService) ListOrders(ctx context.Context, status models.OrderStatus, limit, offset int) ([]models.Order, int64, error) {
	if status == "" {
		status = models.OrderStatusPending
	}
	if !status.Valid() {
		return nil, 0, ErrInvalidStatus
	}

	orders, total, err := s.orders.ListByStatus(ctx, status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list %s orders: %w", status, err)
	}
	return orders, total, nil
}

// PendingCount returns the number of orders waiting to ship.
func (s *OrderService) PendingCount(ctx context.Context) (int, error) {
	n, err := s.orders.CountByStatus(ctx, models.OrderStatusPending)
	if err != nil {
		return 0, fmt.Errorf("count pending orders: %w", err)
	}
	return int(n), nil
}

// TransitionOrderStatus advances an order one step (pending to shipped, or
// shipped to delivered) on behalf of the admin in ctx. The write only applies
// if the order is still in the previous status.
func (s *OrderService) TransitionOrderStatus(ctx context.Context, id uuid.UUID, target models.OrderStatus) (*models.Order, error) {
	session, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}

	if !target.Valid() {
		return nil, ErrInvalidStatus
	}
	from, ok := target.Previous()
	if !ok {
		return nil, ErrInvalidTransition
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("load order %s: %w", id, err)
	}
	if order.Status != from {
		return nil, ErrInvalidTransition
	}

	updated, err := s.orders.UpdateStatus(ctx, id, from, target)
	if err != nil {
		return nil, fmt.Errorf("update order %s status: %w", id, err)
	}
	if !updated {
		return nil, ErrStatusConflict
	}

	order.Status = target
	order.UpdatedAt = time.Now()

	log := s.log.WithContext(ctx).WithFields(logger.Any("order_id", id))
	log.Info("order status updated",
		logger.String("from", string(from)),
		logger.String("to", string(target)),
		logger.Any("admin_id", session.AdminID),
	)

	event := events.OrderStatusUpdated{OrderID: id, From: from, To: target, ChangedAt: order.UpdatedAt}
	if err := s.publisher.Publish(ctx, events.TopicOrderStatusUpdated, id.String(), event); err != nil {
		log.Warn("order status event not published", logger.Error(err))
	}

	return order, nil
}
