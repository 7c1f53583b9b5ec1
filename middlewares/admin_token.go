package middleware

import (
	"mergington-server/services"

	"github.com/gofiber/fiber/v2"
)

// AdminToken guards teacher-only endpoints. The token from the
// X-Admin-Token header must belong to a live session; a missing or unknown
// token is rejected the same way.
func AdminToken(sessions *services.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get("X-Admin-Token")
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "admin token required",
			})
		}

		username, ok := sessions.Lookup(token)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "admin token required",
			})
		}

		c.Locals("teacher", username)
		return c.Next()
	}
}
