package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/mely/internal/models"
)

// OrderStore implements OrderRepository with gorm.
type OrderStore struct {
	db *gorm.DB
}

// NewOrderStore constructs OrderStore.
func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{db: db}
}

func (s *OrderStore) Create(ctx context.Context, order *models.Order) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Create(order).Error; err != nil {
			return err
		}
		if len(order.Items) == 0 {
			return nil
		}
		for i := range order.Items {
			order.Items[i].OrderID = order.ID
		}
		return tx.Create(&order.Items).Error
	})
}

func (s *OrderStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.WithContext(ctx).Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (s *OrderStore) byStatus(ctx context.Context, status models.OrderStatus) *gorm.DB {
	return s.db.WithContext(ctx).Model(&models.Order{}).Where("status = ?", status)
}

func (s *OrderStore) ListByStatus(ctx context.Context, status models.OrderStatus, limit, offset int) ([]models.Order, int64, error) {
	total, err := s.CountByStatus(ctx, status)
	if err != nil {
		return nil, 0, err
	}

	query := s.byStatus(ctx, status)
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var orders []models.Order
	if err := query.Preload("Items").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (s *OrderStore) CountByStatus(ctx context.Context, status models.OrderStatus) (int64, error) {
	var total int64
	if err := s.byStatus(ctx, status).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (s *OrderStore) ListDeliveredSince(ctx context.Context, since time.Time) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.WithContext(ctx).
		Select("id", "status", "total_amount", "created_at").
		Where("status = ? AND created_at >= ?", models.OrderStatusDelivered, since).
		Order("created_at").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderStore) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.OrderStatus) (bool, error) {
	res := s.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{"status": to, "updated_at": time.Now()})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
