package controllers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/dewatanation/admin-panel/internal/pkg/auth"
	"github.com/dewatanation/admin-panel/internal/pkg/logger"
	"github.com/dewatanation/admin-panel/internal/pkg/metrics"
)

var validate = validator.New()

// respondFailure answers a failed panel action. Input errors keep HTTP 200 so the
// panel shows the message; an unreachable database answers 503.
func respondFailure(c *fiber.Ctx, err error) error {
	status := fiber.StatusOK
	if errors.Is(err, auth.ErrStoreUnavailable) {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": auth.Message(err),
	})
}

// handleError logs an unexpected failure and answers with a generic message.
func handleError(c *fiber.Ctx, msg string, err error) error {
	logger.Get().Error().Err(err).Str("path", c.Path()).Msg(msg)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": auth.Message(err),
	})
}

// storeFailure wraps a repository error so it maps to a 503.
func storeFailure(c *fiber.Ctx, msg string, err error) error {
	logger.Get().Error().Err(err).Str("path", c.Path()).Msg(msg)
	return respondFailure(c, errors.Join(auth.ErrStoreUnavailable, err))
}

// logAttemptFailure logs a rejected login step. A database outage is an
// operator problem and is logged as an error with the request path.
func logAttemptFailure(c *fiber.Ctx, username string, err error, msg string) {
	event := logger.Get().Info()
	if errors.Is(err, auth.ErrStoreUnavailable) {
		event = logger.Get().Error().Err(err).Str("path", c.Path())
	}
	event.
		Str("username", username).
		Str("ip", GetClientIP(c)).
		Str("result", attemptResult(err)).
		Msg(msg)
}

func recordAttempt(step string, err error) {
	metrics.LoginAttempts.WithLabelValues(step, attemptResult(err)).Inc()
}

func attemptResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, auth.ErrNotFound):
		return "not_found"
	case errors.Is(err, auth.ErrMismatch):
		return "mismatch"
	case errors.Is(err, auth.ErrSessionExpired):
		return "session_expired"
	case errors.Is(err, auth.ErrNotAdmin):
		return "not_admin"
	case errors.Is(err, auth.ErrKeyMismatch):
		return "key_mismatch"
	case errors.Is(err, auth.ErrStoreUnavailable):
		return "store_unavailable"
	default:
		return "error"
	}
}

// GetClientIP returns the address of the client, honoring the usual proxy headers.
func GetClientIP(c *fiber.Ctx) string {
	// 1. Cloudflare
	if ip := strings.TrimSpace(c.Get("CF-Connecting-IP")); ip != "" {
		return ip
	}

	// 2. X-Forwarded-For, first entry is the original client
	if xff := c.Get("X-Forwarded-For"); xff != "" {
		if ip := strings.TrimSpace(strings.Split(xff, ",")[0]); ip != "" {
			return ip
		}
	}

	// 3. X-Real-IP
	if ip := strings.TrimSpace(c.Get("X-Real-IP")); ip != "" {
		return ip
	}

	return strings.TrimPrefix(c.IP(), "::ffff:")
}
