// Package repository holds the gorm-backed stores for catalog, orders and admins.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/mely/internal/models"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// ProductRepository is the catalog store.
type ProductRepository interface {
	ListByCategory(ctx context.Context, category models.Category) ([]models.Product, error)
	List(ctx context.Context, limit, offset int) ([]models.Product, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FindByName(ctx context.Context, name string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// OrderRepository is the order store.
type OrderRepository interface {
	// Create inserts the order and its items in one transaction.
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	// ListByStatus returns orders newest first. A limit <= 0 returns every match.
	ListByStatus(ctx context.Context, status models.OrderStatus, limit, offset int) ([]models.Order, int64, error)
	CountByStatus(ctx context.Context, status models.OrderStatus) (int64, error)
	ListDeliveredSince(ctx context.Context, since time.Time) ([]models.Order, error)
	// UpdateStatus moves an order from one status to another. It reports false
	// when the order was not in the expected status.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.OrderStatus) (bool, error)
}

// AdminRepository stores admin accounts and their sessions.
type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	CreateSession(ctx context.Context, session *models.AdminSession) error
	FindSession(ctx context.Context, id uuid.UUID) (*models.AdminSession, error)
	RevokeSession(ctx context.Context, id uuid.UUID, at time.Time) error
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
