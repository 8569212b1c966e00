package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dewatanation/admin-panel/app/controllers"
	"github.com/dewatanation/admin-panel/app/repository"
	"github.com/dewatanation/admin-panel/internal/pkg/auth"
	"github.com/dewatanation/admin-panel/internal/pkg/config"
	"github.com/dewatanation/admin-panel/internal/pkg/session"
)

type Router interface {
	InstallRouter(app *fiber.App)
}

// Dependencies are the services the routes are built on. They are created once
// in main and shared by every request.
type Dependencies struct {
	Config   *config.Config
	Sessions *session.Store
	Verifier *auth.Verifier
	Pool     controllers.DatabasePool
	Repos    *repository.Repositories
}

func InstallRouter(app *fiber.App, deps Dependencies) {
	// Install HttpRouter first so the UserContext middleware runs before any
	// API route that depends on it (e.g. RequireAuth).
	setup(app, NewHttpRouter(deps), NewApiRouter(deps))

	// The panel is a single page; unknown paths render it.
	app.Get("*", controllers.HandleStart)
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
