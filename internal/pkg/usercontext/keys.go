package usercontext

// Shared Locals/session keys used across controllers and middlewares
const (
	KeyStep        = "step"
	KeyUsername    = "username"
	KeyCreatedAt   = "created_at"
	KeyUserContext = "USER_CONTEXT"
)
