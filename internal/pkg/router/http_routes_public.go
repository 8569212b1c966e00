package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dewatanation/admin-panel/app/controllers"
	"github.com/dewatanation/admin-panel/internal/pkg/logger"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	app.Get("/", controllers.HandleStart)
	app.Get("/healthz", controllers.NewDatabaseController(h.deps.Pool).HandleHealth)

	// prometheus
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// fiber monitor, only with credentials configured
	sec := h.deps.Config.Security
	if sec.MonitorPassword == "" {
		logger.Get().Info().Msg("MONITOR_PASSWORD not set, /monitor disabled")
		return
	}
	app.Get("/monitor", basicauth.New(basicauth.Config{
		Users: map[string]string{
			sec.MonitorUser: sec.MonitorPassword,
		},
	}), monitor.New(monitor.Config{Title: controllers.PanelTitle}))
}
