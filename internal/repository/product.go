package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/mely/internal/models"
)

// ProductStore implements ProductRepository with gorm.
type ProductStore struct {
	db *gorm.DB
}

// NewProductStore constructs ProductStore.
func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{db: db}
}

func (s *ProductStore) ListByCategory(ctx context.Context, category models.Category) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).
		Where("category = ?", category).
		Order("created_at desc").Order("id").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductStore) List(ctx context.Context, limit, offset int) ([]models.Product, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	if err := s.db.WithContext(ctx).Order("created_at desc").Order("id").
		Limit(limit).Offset(offset).
		Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (s *ProductStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (s *ProductStore) FindByName(ctx context.Context, name string) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&product).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (s *ProductStore) Create(ctx context.Context, product *models.Product) error {
	return s.db.WithContext(ctx).Create(product).Error
}

func (s *ProductStore) Update(ctx context.Context, product *models.Product) error {
	return s.db.WithContext(ctx).Model(product).
		Select("Name", "Description", "Price", "Category", "ImageURL", "Stock").
		Updates(product).Error
}

func (s *ProductStore) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
