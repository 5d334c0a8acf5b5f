package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/mely/internal/services"
)

// OrderHandler manages customer checkout.
type OrderHandler struct {
	orders *services.OrderService
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(orders *services.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type createOrderRequest struct {
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	ProductID    string `json:"product_id"`
	Quantity     int    `json:"quantity"`
}

// CreateOrder places an order for one product.
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product_id")
	}

	order, err := h.orders.PlaceOrder(c.UserContext(), services.PlaceOrderInput{
		Customer: services.CustomerInfo{
			Name:    req.CustomerName,
			Phone:   req.Phone,
			Address: req.Address,
		},
		ProductID: productID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": order})
}
