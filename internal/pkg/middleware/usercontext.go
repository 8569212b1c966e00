package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dewatanation/admin-panel/internal/pkg/auth"
	"github.com/dewatanation/admin-panel/internal/pkg/logger"
	"github.com/dewatanation/admin-panel/internal/pkg/session"
	"github.com/dewatanation/admin-panel/internal/pkg/usercontext"
)

// UserContextMiddleware loads the login state of the session once per request
// and exposes it through usercontext.
func UserContextMiddleware(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, state, err := store.Load(c)
		if err != nil {
			// On error: treat as anonymous
			logger.Get().Warn().Err(err).Str("path", c.Path()).Msg("failed to load session")
			state = auth.Anonymous{}
		}
		usercontext.Set(c, usercontext.FromState(state))
		return c.Next()
	}
}
