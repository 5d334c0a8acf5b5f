package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus tracks fulfilment. It only moves forward: pending, shipped, delivered.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

// Previous returns the only status an order may move to s from.
func (s OrderStatus) Previous() (OrderStatus, bool) {
	switch s {
	case OrderStatusShipped:
		return OrderStatusPending, true
	case OrderStatusDelivered:
		return OrderStatusShipped, true
	}
	return "", false
}

// Order is a customer purchase with its line items and a total fixed at
// placement time.
type Order struct {
	BaseModel
	CustomerName string          `gorm:"not null" json:"customer_name"`
	Phone        string          `gorm:"not null" json:"phone"`
	Address      string          `gorm:"type:text;not null" json:"address"`
	Status       OrderStatus     `gorm:"type:varchar(16);index;not null;default:pending" json:"status"`
	TotalAmount  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	Items        []OrderItem     `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// OrderItem is one product line of an order. ProductID is deliberately not a
// foreign key so history survives catalog deletions.
type OrderItem struct {
	BaseModel
	OrderID     uuid.UUID       `gorm:"type:uuid;index;not null" json:"order_id"`
	ProductID   uuid.UUID       `gorm:"type:uuid;index;not null" json:"product_id"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	PriceAtTime decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price_at_time"`
}
