package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/dewatanation/admin-panel/app/controllers"
	"github.com/dewatanation/admin-panel/internal/pkg/middleware"
)

type ApiRouter struct {
	deps Dependencies
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	maxRequests := h.deps.Config.Security.APIRateLimit
	api := app.Group("/api", limiter.New(limiter.Config{
		// API_RATE_LIMIT=0 turns the limiter off
		Next: func(c *fiber.Ctx) bool {
			return maxRequests <= 0
		},
		Max:        maxRequests,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"message": "Terlalu banyak permintaan, coba lagi nanti",
			})
		},
	}))

	authController := controllers.NewAuthController(h.deps.Verifier, h.deps.Sessions)
	dbController := controllers.NewDatabaseController(h.deps.Pool)
	adminController := controllers.NewAdminController(h.deps.Repos)

	// Database
	api.Get("/db-status", dbController.HandleStatus)
	api.Post("/db-connect", dbController.HandleConnect)

	// Login
	api.Post("/login", authController.HandleLogin)
	api.Post("/verify-admin", authController.HandleVerifyAdmin)
	api.Post("/verify-admin-key", authController.HandleVerifyAdmin)
	api.Post("/logout", authController.HandleLogout)
	api.Get("/session", authController.HandleSession)

	// Admin
	api.Get("/getcord", middleware.RequireAuth, adminController.HandleGetcordList)
	api.Delete("/getcord/:id", middleware.RequireAuth, adminController.HandleGetcordDelete)
	api.Get("/check-user/:username", middleware.RequireAuth, adminController.HandleCheckUser)
	api.Get("/admin-log", middleware.RequireAuth, adminController.HandleAdminLog)

	api.All("*", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Not found",
		})
	})
}

func NewApiRouter(deps Dependencies) *ApiRouter {
	return &ApiRouter{deps: deps}
}
