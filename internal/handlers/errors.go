package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/mely/internal/services"
	"github.com/example/mely/pkg/logger"
)

// ErrorHandler renders every error returned by a handler as the standard
// failure envelope.
func ErrorHandler(log logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code, message := statusFor(err)
		if code >= fiber.StatusInternalServerError {
			log.WithContext(c.UserContext()).Error("request failed",
				logger.String("method", c.Method()),
				logger.String("path", c.Path()),
				logger.Error(err),
			)
		}

		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   message,
		})
	}
}

func statusFor(err error) (int, string) {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, fe.Message
	}

	switch {
	case services.IsValidation(err):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrUnauthorized), errors.Is(err, services.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, err.Error()
	case services.IsNotFound(err):
		return fiber.StatusNotFound, err.Error()
	case errors.Is(err, services.ErrStatusConflict):
		return fiber.StatusConflict, err.Error()
	case errors.Is(err, services.ErrInvalidTransition):
		return fiber.StatusUnprocessableEntity, err.Error()
	}
	return fiber.StatusInternalServerError, "internal server error"
}
