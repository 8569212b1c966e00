package usercontext

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dewatanation/admin-panel/internal/pkg/auth"
)

// UserContext represents the login state of the current request
type UserContext struct {
	Username        string     `json:"username"`
	IsAuthenticated bool       `json:"authenticated"`
	State           auth.State `json:"-"`
}

// FromState builds the request context for a session state
func FromState(state auth.State) UserContext {
	if state == nil {
		state = auth.Anonymous{}
	}
	username, _ := auth.Subject(state)
	return UserContext{
		Username:        username,
		IsAuthenticated: auth.IsAuthenticated(state),
		State:           state,
	}
}

// Set stores the user context in fiber locals
func Set(c *fiber.Ctx, uc UserContext) {
	c.Locals(KeyUserContext, uc)
}

// GetUserContext retrieves the user context from fiber context
// Returns an anonymous context if none is set
func GetUserContext(c *fiber.Ctx) UserContext {
	if uc, ok := c.Locals(KeyUserContext).(UserContext); ok {
		return uc
	}
	return FromState(auth.Anonymous{})
}

// IsAuthenticated checks if the current session completed both login steps
func IsAuthenticated(c *fiber.Ctx) bool {
	return GetUserContext(c).IsAuthenticated
}

// GetUsername returns the username bound to the session, or empty string
func GetUsername(c *fiber.Ctx) string {
	return GetUserContext(c).Username
}
