package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/example/mely/pkg/logger"
)

// RequestContext copies the request id set by requestid.New into the user
// context so service logs can be correlated. It must run after requestid.
func RequestContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok && id != "" {
			c.SetUserContext(logger.ContextWithRequestID(c.UserContext(), id))
		}
		return c.Next()
	}
}
