package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budget/config"
	domainerrors "budget/internal/domain/errors"
	"budget/internal/errors"
)

func delayConfig(d time.Duration) *config.Config {
	return &config.Config{Auth: config.AuthConfig{MaxDelay: d}}
}

func TestAuthDelayMiddleware_PadsFastResponses(t *testing.T) {
	m := NewAuthDelayMiddleware(delayConfig(80 * time.Millisecond))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/sessions", nil), rec)

	start := time.Now()
	err := m.Guard(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"token": "t"})
	})(c)
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"t"}`, rec.Body.String())
}

func TestAuthDelayMiddleware_PadsFailures(t *testing.T) {
	m := NewAuthDelayMiddleware(delayConfig(60 * time.Millisecond))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/sessions", nil), rec)

	start := time.Now()
	err := m.Guard(func(echo.Context) error {
		return errors.WithStack(domainerrors.ErrInvalidCredentials)
	})(c)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond)
	assert.False(t, c.Response().Committed)
}

func TestAuthDelayMiddleware_SlowHandlerNotDelayedFurther(t *testing.T) {
	m := NewAuthDelayMiddleware(delayConfig(20 * time.Millisecond))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/users", nil), rec)

	start := time.Now()
	err := m.Guard(func(c echo.Context) error {
		time.Sleep(60 * time.Millisecond)

		return c.NoContent(http.StatusOK)
	})(c)
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, elapsed, 60*time.Millisecond)
	assert.Less(t, elapsed, 60*time.Millisecond+20*time.Millisecond+500*time.Millisecond)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthDelayMiddleware_Disabled(t *testing.T) {
	m := NewAuthDelayMiddleware(delayConfig(0))
	next := func(echo.Context) error { return nil }

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())

	require.NoError(t, m.Guard(next)(c))
}
