// Package context carries per-request state between the HTTP pipeline and
// the layers below it.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"

	"budget/internal/domain/entity"
)

// ContextKey is a private key type for values stored on context.Context.
type ContextKey string

const (
	// KeyRequestID holds the request correlation id.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger holds the request-scoped logger.
	KeyLogger ContextKey = "logger"

	// KeySession holds the verified caller.
	KeySession ContextKey = "session"

	// HeaderXRequestID is the correlation header read from and echoed to clients.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the request id stored on the echo context, or an
// empty string before the request id middleware ran.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(string(KeyRequestID)).(string)

	return id
}

// SetRequestID stores the request id on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request id carried by ctx.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// WithRequestID attaches the request id to ctx.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLoggerOrDefault returns the request-scoped logger of ctx, or fallback
// when none was attached.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithLogger attaches a request-scoped logger to ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetSession stores the verified caller on the echo context and on the
// request context, so handlers and services see the same identity.
func SetSession(c echo.Context, session *entity.Session) {
	c.Set(string(KeySession), session)
	c.SetRequest(c.Request().WithContext(WithSession(c.Request().Context(), session)))
}

// GetSession returns the caller attached by the authentication middleware.
func GetSession(c echo.Context) (*entity.Session, bool) {
	session, ok := c.Get(string(KeySession)).(*entity.Session)

	return session, ok && session != nil
}

// WithSession attaches the caller to ctx.
func WithSession(ctx context.Context, session *entity.Session) context.Context {
	return context.WithValue(ctx, KeySession, session)
}

// SessionFromContext returns the caller carried by ctx.
func SessionFromContext(ctx context.Context) (*entity.Session, bool) {
	session, ok := ctx.Value(KeySession).(*entity.Session)

	return session, ok && session != nil
}
