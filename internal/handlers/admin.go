package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/mely/internal/models"
	"github.com/example/mely/internal/services"
	"github.com/example/mely/internal/utils"
)

// AdminHandler manages admin-only endpoints.
type AdminHandler struct {
	catalog *services.CatalogService
	orders  *services.OrderService
	finance *services.FinanceService
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(catalog *services.CatalogService, orders *services.OrderService, finance *services.FinanceService) *AdminHandler {
	return &AdminHandler{catalog: catalog, orders: orders, finance: finance}
}

// Dashboard returns the badge counters of the admin shell.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	pending, err := h.orders.PendingCount(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"pending_orders": pending,
		},
	})
}

// ListProducts returns all products, newest first.
func (h *AdminHandler) ListProducts(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	products, total, err := h.catalog.ListProducts(c.UserContext(), pg.Limit, pg.Offset)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       toProductResponses(products),
		"pagination": pg.Meta(total),
	})
}

// CreateProduct adds a product to the catalog.
func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	var req services.ProductInput
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	product, err := h.catalog.CreateProduct(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": toProductResponse(*product)})
}

// DeleteProduct removes a product from the catalog.
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.catalog.DeleteProduct(c.UserContext(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ListOrders returns orders in the selected status window, pending by default.
func (h *AdminHandler) ListOrders(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	status := models.OrderStatus(c.Query("status", string(models.OrderStatusPending)))

	orders, total, err := h.orders.ListOrders(c.UserContext(), status, pg.Limit, pg.Offset)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       orders,
		"status":     status,
		"pagination": pg.Meta(total),
	})
}

type updateStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

// UpdateOrderStatus advances an order to the next status.
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	order, err := h.orders.TransitionOrderStatus(c.UserContext(), id, req.Status)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": order})
}

// Finance returns delivered revenue for the trailing window in ?months=.
func (h *AdminHandler) Finance(c *fiber.Ctx) error {
	months, err := strconv.Atoi(c.Query("months", "3"))
	if err != nil {
		return services.ErrInvalidWindow
	}

	summary, err := h.finance.Sales(c.UserContext(), months)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": summary})
}
