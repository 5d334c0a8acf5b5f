// Package events publishes order lifecycle events.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/example/mely/internal/models"
)

const (
	TopicOrderPlaced        = "order-placed"
	TopicOrderStatusUpdated = "order-status-updated"
)

// Publisher delivers a JSON-encodable payload to a topic.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload any) error
	Close() error
}

type OrderPlacedItem struct {
	ProductID   uuid.UUID       `json:"product_id"`
	Quantity    int             `json:"quantity"`
	PriceAtTime decimal.Decimal `json:"price_at_time"`
}

// OrderPlaced is emitted once an order and its items are stored.
type OrderPlaced struct {
	OrderID      uuid.UUID         `json:"order_id"`
	CustomerName string            `json:"customer_name"`
	TotalAmount  decimal.Decimal   `json:"total_amount"`
	Items        []OrderPlacedItem `json:"items"`
	CreatedAt    time.Time         `json:"created_at"`
}

// NewOrderPlaced builds the event from a stored order.
func NewOrderPlaced(order models.Order) OrderPlaced {
	items := make([]OrderPlacedItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderPlacedItem{
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			PriceAtTime: item.PriceAtTime,
		})
	}
	return OrderPlaced{
		OrderID:      order.ID,
		CustomerName: order.CustomerName,
		TotalAmount:  order.TotalAmount,
		Items:        items,
		CreatedAt:    order.CreatedAt,
	}
}

// OrderStatusUpdated is emitted after an admin advances an order.
type OrderStatusUpdated struct {
	OrderID   uuid.UUID          `json:"order_id"`
	From      models.OrderStatus `json:"from"`
	To        models.OrderStatus `json:"to"`
	ChangedAt time.Time          `json:"changed_at"`
}

// Nop drops every event. It is used when no brokers are configured.
type Nop struct{}

func (Nop) Publish(context.Context, string, string, any) error { return nil }

func (Nop) Close() error { return nil }
