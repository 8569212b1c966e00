package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dewatanation/admin-panel/internal/pkg/usercontext"
)

const PanelTitle = "DewataNation Admin Panel"

// HandleStart renders the panel shell. Every other path falls back to it too.
func HandleStart(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	return c.Render("index", fiber.Map{
		"Title":         PanelTitle,
		"Authenticated": userCtx.IsAuthenticated,
		"Username":      userCtx.Username,
	})
}
