// Package context carries request-scoped values between the delivery
// layer and the use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID stores the request ID in echo.Context.
	KeyRequestID ContextKey = "request_id"

	keyScope ContextKey = "scope"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// scope is what a request or push message hands down to the use cases.
type scope struct {
	requestID string
	logger    *slog.Logger
}

// NewRequestID returns id, or a fresh UUID when id is empty.
func NewRequestID(id string) string {
	if id != "" {
		return id
	}

	return uuid.NewString()
}

// GetRequestID extracts the request ID from echo.Context.
// If not found, generates a new UUID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// WithScope returns ctx carrying requestID and a logger tagged with it.
func WithScope(ctx context.Context, requestID string, base *slog.Logger) context.Context {
	return context.WithValue(ctx, keyScope, &scope{
		requestID: requestID,
		logger:    base.With(slog.String("request_id", requestID)),
	})
}

func scopeOf(ctx context.Context) *scope {
	s, _ := ctx.Value(keyScope).(*scope)

	return s
}

// GetRequestIDFromContext returns the request ID of ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	if s := scopeOf(ctx); s != nil {
		return s.requestID
	}

	return ""
}

// GetLoggerOrDefault returns the request-scoped logger of ctx, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if s := scopeOf(ctx); s != nil {
		return s.logger
	}

	return fallback
}
