package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budget/config"
	domainerrors "budget/internal/domain/errors"
	"budget/internal/errors"
)

func errorMiddleware(env string) *ErrorMiddleware {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewErrorMiddleware(logger, &config.Config{Env: config.EnvConfig{Env: env}})
}

func handle(t *testing.T, m *ErrorMiddleware, target string, err error) (int, domainerrors.ErrorBody) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, target, nil), rec)

	m.HandleHTTPError(err, c)

	var body domainerrors.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestErrorMiddleware_AppError(t *testing.T) {
	m := errorMiddleware("development")

	status, body := handle(t, m, "/api/places/9", errors.WithStack(domainerrors.ErrPlaceNotFound))

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, domainerrors.CodeNotFound, body.Code)
	assert.Equal(t, "No place with this id exists", body.Message)
	assert.NotEmpty(t, body.Stack)
}

func TestErrorMiddleware_ValidationDetails(t *testing.T) {
	m := errorMiddleware("production")
	details := domainerrors.ValidationDetails{}
	details.Add(domainerrors.LocationBody, "extra", domainerrors.Issue{Type: "object.unknown", Message: `"extra" is not allowed`})

	status, body := handle(t, m, "/api/places", domainerrors.NewValidationError(details))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, domainerrors.CodeValidationFailed, body.Code)
	assert.Empty(t, body.Stack)

	raw, err := json.Marshal(body.Details)
	require.NoError(t, err)
	assert.JSONEq(t, `{"body":{"extra":[{"type":"object.unknown","message":"\"extra\" is not allowed"}]}}`, string(raw))
}

func TestErrorMiddleware_UnknownRoute(t *testing.T) {
	m := errorMiddleware("development")

	status, body := handle(t, m, "/api/nothing?x=1", echo.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, domainerrors.CodeNotFound, body.Code)
	assert.Equal(t, "Unknown resource: /api/nothing?x=1", body.Message)
}

func TestErrorMiddleware_MethodNotAllowed(t *testing.T) {
	m := errorMiddleware("development")

	status, body := handle(t, m, "/api/health/ping", echo.ErrMethodNotAllowed)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, domainerrors.CodeNotFound, body.Code)
}

func TestErrorMiddleware_UnexpectedError(t *testing.T) {
	cause := errors.New("connection reset by peer")

	t.Run("development keeps diagnostics", func(t *testing.T) {
		status, body := handle(t, errorMiddleware("development"), "/api/transactions", cause)

		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, domainerrors.CodeInternal, body.Code)
		assert.Equal(t, "connection reset by peer", body.Message)
		assert.Contains(t, body.Stack, "connection reset by peer")
	})

	t.Run("production strips diagnostics", func(t *testing.T) {
		status, body := handle(t, errorMiddleware("production"), "/api/transactions", cause)

		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, domainerrors.CodeInternal, body.Code)
		assert.Equal(t, "Internal server error", body.Message)
		assert.Empty(t, body.Stack)
	})
}

func TestErrorMiddleware_AccessFailuresHaveNoDetails(t *testing.T) {
	m := errorMiddleware("production")

	status, body := handle(t, m, "/api/users", errors.WithStack(domainerrors.ErrMissingRole))

	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, domainerrors.CodeForbidden, body.Code)
	assert.Nil(t, body.Details)
}
