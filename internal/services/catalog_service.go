package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/example/mely/internal/auth"
	"github.com/example/mely/internal/models"
	"github.com/example/mely/internal/repository"
	"github.com/example/mely/pkg/logger"
)

// CatalogService serves storefront browsing and admin product management.
type CatalogService struct {
	products repository.ProductRepository
	log      logger.Logger
}

// NewCatalogService constructs CatalogService.
func NewCatalogService(products repository.ProductRepository, log logger.Logger) *CatalogService {
	return &CatalogService{products: products, log: log}
}

// ProductInput is an admin-submitted product.
type ProductInput struct {
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description" yaml:"description"`
	Price       decimal.Decimal `json:"price" yaml:"price"`
	Category    string          `json:"category" yaml:"category"`
	ImageURL    string          `json:"image_url" yaml:"image_url"`
	Stock       int             `json:"stock" yaml:"stock"`
}

// Product validates the input and converts it to a model.
func (in ProductInput) Product() (models.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Product{}, fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if in.Price.IsNegative() {
		return models.Product{}, fmt.Errorf("%w: price must not be negative", ErrInvalidProduct)
	}
	if in.Stock < 0 {
		return models.Product{}, fmt.Errorf("%w: stock must not be negative", ErrInvalidProduct)
	}

	category := models.CategoryParfums
	if strings.TrimSpace(in.Category) != "" {
		parsed, ok := models.ParseCategory(in.Category)
		if !ok {
			return models.Product{}, ErrInvalidCategory
		}
		category = parsed
	}

	return models.Product{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Category:    category,
		ImageURL:    strings.TrimSpace(in.ImageURL),
		Stock:       in.Stock,
	}, nil
}

// Quote is the order form state after a quantity change.
type Quote struct {
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Stock     int             `json:"stock"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
	Orderable bool            `json:"orderable"`
}

// Categories returns the fixed category list.
func (s *CatalogService) Categories() []models.CategoryInfo {
	return models.Categories()
}

// ListByCategory returns a category's products newest first, filtered by a
// case-insensitive name search.
func (s *CatalogService) ListByCategory(ctx context.Context, category, search string) ([]models.Product, error) {
	c, ok := models.ParseCategory(category)
	if !ok {
		return nil, ErrInvalidCategory
	}

	products, err := s.products.ListByCategory(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("list %s products: %w", c, err)
	}
	return FilterByName(products, search), nil
}

// GetProduct loads one product.
func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("load product %s: %w", id, err)
	}
	return product, nil
}

// Quote applies delta to quantity against the product's current stock.
func (s *CatalogService) Quote(ctx context.Context, id uuid.UUID, quantity, delta int) (*Quote, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if quantity < 1 {
		quantity = 1
	}
	quantity = AdjustQuantity(quantity, delta, product.Stock)

	return &Quote{
		ProductID: product.ID,
		Quantity:  quantity,
		Stock:     product.Stock,
		UnitPrice: product.Price,
		LineTotal: ComputeLineTotal(product.Price, quantity),
		Orderable: ValidateQuantity(quantity, product.Stock) == nil,
	}, nil
}

// ListProducts returns every product newest first.
func (s *CatalogService) ListProducts(ctx context.Context, limit, offset int) ([]models.Product, int64, error) {
	products, total, err := s.products.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	return products, total, nil
}

// CreateProduct adds a product on behalf of the admin in ctx.
func (s *CatalogService) CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error) {
	session, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}

	product, err := in.Product()
	if err != nil {
		return nil, err
	}

	if err := s.products.Create(ctx, &product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.log.WithContext(ctx).Info("product created",
		logger.Any("product_id", product.ID),
		logger.Any("admin_id", session.AdminID),
	)
	return &product, nil
}

// DeleteProduct removes a product on behalf of the admin in ctx. Order items
// that reference it keep their price snapshot.
func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	session, err := auth.Require(ctx)
	if err != nil {
		return err
	}

	if err := s.products.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("delete product %s: %w", id, err)
	}

	s.log.WithContext(ctx).Info("product deleted",
		logger.Any("product_id", id),
		logger.Any("admin_id", session.AdminID),
	)
	return nil
}

// UpsertProduct creates a product or updates the one with the same name.
// It reports whether a new row was created.
func (s *CatalogService) UpsertProduct(ctx context.Context, in ProductInput) (*models.Product, bool, error) {
	product, err := in.Product()
	if err != nil {
		return nil, false, err
	}

	existing, err := s.products.FindByName(ctx, product.Name)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		if err := s.products.Create(ctx, &product); err != nil {
			return nil, false, fmt.Errorf("create product %q: %w", product.Name, err)
		}
		return &product, true, nil
	case err != nil:
		return nil, false, fmt.Errorf("find product %q: %w", product.Name, err)
	}

	product.BaseModel = existing.BaseModel
	if err := s.products.Update(ctx, &product); err != nil {
		return nil, false, fmt.Errorf("update product %q: %w", product.Name, err)
	}
	return &product, false, nil
}
