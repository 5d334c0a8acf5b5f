package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/mely/internal/auth"
)

// Authenticator resolves a bearer token into an admin session.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (auth.Session, error)
}

// AdminAuth validates the bearer token and stores the admin session in the user context.
func AdminAuth(authenticator Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization header")
		}

		session, err := authenticator.Authenticate(c.UserContext(), strings.TrimSpace(parts[1]))
		if err != nil {
			return err
		}

		c.SetUserContext(auth.WithSession(c.UserContext(), session))
		return c.Next()
	}
}
