package middleware

// contextKey is a private type for context keys defined in this package.
// Using a custom type prevents collisions with keys from other packages.
type contextKey string

const (
	// loggerCtxKey stores the request-scoped *slog.Logger.
	loggerCtxKey = contextKey("logger")

	// userIDKey stores the authenticated user's ID.
	userIDKey = contextKey("userID")
)
