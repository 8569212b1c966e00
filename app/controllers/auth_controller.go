package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dewatanation/admin-panel/internal/pkg/auth"
	"github.com/dewatanation/admin-panel/internal/pkg/logger"
	"github.com/dewatanation/admin-panel/internal/pkg/session"
	"github.com/dewatanation/admin-panel/internal/pkg/usercontext"
)

// AuthController handles the two login steps and the session endpoints
type AuthController struct {
	verifier *auth.Verifier
	sessions *session.Store
}

func NewAuthController(verifier *auth.Verifier, sessions *session.Store) *AuthController {
	return &AuthController{
		verifier: verifier,
		sessions: sessions,
	}
}

type loginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// adminKeyRequest accepts the key as "adminKey" (panel) or "key".
type adminKeyRequest struct {
	AdminKey string `json:"adminKey" form:"adminKey"`
	Key      string `json:"key" form:"key"`
}

func (r adminKeyRequest) presented() string {
	if r.AdminKey != "" {
		return r.AdminKey
	}
	return r.Key
}

// HandleLogin is step one: the SA-MP account password.
func (ac *AuthController) HandleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.JSON(fiber.Map{"success": false, "message": "Permintaan tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(fiber.Map{"success": false, "message": "Username dan password wajib diisi"})
	}

	sess, current, err := ac.sessions.Load(c)
	if err != nil {
		return handleError(c, "failed to load session", err)
	}

	next, err := ac.verifier.VerifyPassword(c.UserContext(), current, req.Username, req.Password)
	recordAttempt("password", err)
	if err != nil {
		logAttemptFailure(c, req.Username, err, "password step failed")
		return respondFailure(c, err)
	}

	if err := ac.sessions.Rotate(sess); err != nil {
		return handleError(c, "failed to rotate session", err)
	}
	if err := ac.sessions.Save(sess, next); err != nil {
		return handleError(c, "failed to save session", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Password benar, masukkan Admin Key",
	})
}

// HandleVerifyAdmin is step two: the admin key of the account from step one.
func (ac *AuthController) HandleVerifyAdmin(c *fiber.Ctx) error {
	var req adminKeyRequest
	// An empty or unparsable body is checked as an empty key.
	_ = c.BodyParser(&req)

	sess, current, err := ac.sessions.Load(c)
	if err != nil {
		return handleError(c, "failed to load session", err)
	}

	next, err := ac.verifier.VerifyAdminKey(c.UserContext(), current, req.presented())
	recordAttempt("admin_key", err)
	if err != nil {
		username, _ := auth.Subject(current)
		logAttemptFailure(c, username, err, "admin key step failed")
		return respondFailure(c, err)
	}

	if err := ac.sessions.Save(sess, next); err != nil {
		return handleError(c, "failed to save session", err)
	}

	username, _ := auth.Subject(next)
	logger.Get().Info().Str("username", username).Str("ip", GetClientIP(c)).Msg("admin logged in")

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login berhasil!",
	})
}

func (ac *AuthController) HandleLogout(c *fiber.Ctx) error {
	if err := ac.sessions.Destroy(c); err != nil {
		return handleError(c, "failed to destroy session", err)
	}
	return c.JSON(fiber.Map{"success": true})
}

type sessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
}

// HandleSession reports the login state. The username is only revealed once
// both steps passed.
func (ac *AuthController) HandleSession(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	resp := sessionResponse{Authenticated: userCtx.IsAuthenticated}
	if userCtx.IsAuthenticated {
		resp.Username = userCtx.Username
	}
	return c.JSON(resp)
}
