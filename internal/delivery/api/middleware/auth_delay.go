package middleware

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"budget/config"
)

// AuthDelayMiddleware pads sign-in and registration to a fixed minimum
// latency, so response times do not reveal which check failed.
type AuthDelayMiddleware struct {
	maxDelay time.Duration
}

// NewAuthDelayMiddleware creates the guard with the configured floor.
func NewAuthDelayMiddleware(cfg *config.Config) *AuthDelayMiddleware {
	return &AuthDelayMiddleware{maxDelay: cfg.Auth.MaxDelay}
}

// Guard holds the handler's response back until maxDelay has elapsed since
// the request entered the guard. Slower handlers are not delayed further.
func (m *AuthDelayMiddleware) Guard(next echo.HandlerFunc) echo.HandlerFunc {
	if m.maxDelay <= 0 {
		return next
	}

	return func(c echo.Context) error {
		start := time.Now()

		res := c.Response()
		original := res.Writer
		buffered := &bufferedWriter{header: original.Header()}
		res.Writer = buffered

		err := next(c)

		wait(c.Request().Context(), m.maxDelay-time.Since(start))

		res.Writer = original
		if buffered.wroteHeader {
			original.WriteHeader(buffered.status)
			_, _ = original.Write(buffered.body.Bytes())
		}

		return err
	}
}

func wait(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// bufferedWriter keeps the status and body in memory until the guard
// releases them. Headers go straight to the real writer's header map, which
// is only sent on the final WriteHeader.
type bufferedWriter struct {
	header      http.Header
	status      int
	wroteHeader bool
	body        bytes.Buffer
}

func (w *bufferedWriter) Header() http.Header {
	return w.header
}

func (w *bufferedWriter) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.status = status
	w.wroteHeader = true
}

func (w *bufferedWriter) Write(p []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}

	return w.body.Write(p)
}
