package handlers

import "github.com/gofiber/fiber/v2"

// HealthHandler reports whether the service can reach its database.
type HealthHandler struct {
	ping func() error
}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler(ping func() error) *HealthHandler {
	return &HealthHandler{ping: ping}
}

// Check responds 200 when the database answers and 503 otherwise.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	if err := h.ping(); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "database connection failed",
		})
	}

	return c.JSON(fiber.Map{"status": "ok", "service": "mely"})
}
