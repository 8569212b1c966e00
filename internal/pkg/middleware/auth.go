package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dewatanation/admin-panel/internal/pkg/usercontext"
)

// RequireAuth lets a request through only when the session finished both login
// steps. API routes get a JSON 401 instead of a redirect.
func RequireAuth(c *fiber.Ctx) error {
	if !usercontext.IsAuthenticated(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized",
		})
	}
	return c.Next()
}
