package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/example/mely/internal/models"
	"github.com/example/mely/internal/services"
)

func init() {
	// Prices and totals travel as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// CatalogHandler serves storefront browsing.
type CatalogHandler struct {
	catalog *services.CatalogService
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(catalog *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// productResponse resolves the display image.
type productResponse struct {
	models.Product
	ImageURL string `json:"image_url"`
}

func toProductResponse(p models.Product) productResponse {
	return productResponse{Product: p, ImageURL: p.Image()}
}

func toProductResponses(products []models.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}

// ListCategories returns the category picker entries.
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": h.catalog.Categories()})
}

// ListCategoryProducts returns one category's products with optional name search.
func (h *CatalogHandler) ListCategoryProducts(c *fiber.Ctx) error {
	products, err := h.catalog.ListByCategory(c.UserContext(), c.Params("category"), c.Query("search"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": toProductResponses(products)})
}

// GetProduct returns a single product.
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	product, err := h.catalog.GetProduct(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": toProductResponse(*product)})
}

// Quote applies a quantity step for the order form.
func (h *CatalogHandler) Quote(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	quantity, err := strconv.Atoi(c.Query("quantity", "1"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid quantity")
	}
	delta, err := strconv.Atoi(c.Query("delta", "0"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid delta")
	}

	quote, err := h.catalog.Quote(c.UserContext(), id, quantity, delta)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": quote})
}
