package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"smartretail/internal/services"
)

// LocalUserID is the Locals key under which the authenticated user's id is
// stored for downstream handlers.
const LocalUserID = "userId"

// AuthRequired is a Fiber middleware that guards a route with bearer-token
// authentication. It is attached per protected route, not by declaration
// order, so adding routes later cannot silently expose them.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if authHeader == "" || len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Access token missing",
			})
		}

		userID, err := authService.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Invalid or expired token",
			})
		}

		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// GetUserID returns the authenticated user's id set by AuthRequired, or ""
// on an unprotected route.
func GetUserID(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalUserID).(string)
	return v
}
