package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dewatanation/admin-panel/internal/pkg/auth"
	"github.com/dewatanation/admin-panel/internal/pkg/session"
	"github.com/dewatanation/admin-panel/internal/pkg/usercontext"
)

func newApp(store *session.Store, state auth.State) *fiber.App {
	app := fiber.New()
	app.Use(UserContextMiddleware(store))
	app.Post("/set", func(c *fiber.Ctx) error {
		sess, _, err := store.Load(c)
		if err != nil {
			return err
		}
		return store.Save(sess, state)
	})
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.JSON(usercontext.GetUserContext(c))
	})
	app.Get("/protected", RequireAuth, func(c *fiber.Ctx) error {
		return c.SendString("ok " + usercontext.GetUsername(c))
	})
	return app
}

func sessionCookie(t *testing.T, app *fiber.App) *http.Cookie {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/set", nil), -1)
	require.NoError(t, err)
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatal("no session cookie")
	return nil
}

func TestRequireAuth_RejectsAnonymous(t *testing.T) {
	app := newApp(session.New(session.Options{}), auth.Anonymous{})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/protected", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Unauthorized", body["message"])
}

func TestRequireAuth_RejectsPasswordOnly(t *testing.T) {
	app := newApp(session.New(session.Options{}), auth.PasswordVerified{Username: "Renzy_Takashi"})
	cookie := sessionCookie(t, app)

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(fiber.MethodGet, "/whoami", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	var uc map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&uc))
	assert.Equal(t, "Renzy_Takashi", uc["username"])
	assert.Equal(t, false, uc["authenticated"])
}

func TestRequireAuth_AllowsAuthenticated(t *testing.T) {
	app := newApp(session.New(session.Options{}), auth.Authenticated{Username: "Renzy_Takashi"})
	cookie := sessionCookie(t, app)

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "ok Renzy_Takashi", string(body))
}
