package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"budget/config"
	"budget/internal/delivery/api/response"
	deliverycontext "budget/internal/delivery/context"
	domainerrors "budget/internal/domain/errors"
	"budget/internal/errors"
)

// ErrorMiddleware turns every failure of the pipeline into an error body.
type ErrorMiddleware struct {
	logger     *slog.Logger
	production bool
}

// NewErrorMiddleware creates the error normalizer.
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:     logger,
		production: cfg.IsProduction(),
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := m.Normalize(err, c)
	if status >= http.StatusInternalServerError {
		logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
		logger.Error("Unhandled error",
			slog.Any("error", err),
			slog.String("method", c.Request().Method),
			slog.String("path", c.Request().URL.Path),
		)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)

		return
	}

	_ = response.Error(c, status, body)
}

// Normalize maps err to its status code and response body.
func (m *ErrorMiddleware) Normalize(err error, c echo.Context) (int, domainerrors.ErrorBody) {
	var (
		status int
		body   domainerrors.ErrorBody
	)

	var appErr domainerrors.AppError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		status = appErr.HTTPCode()
		body = domainerrors.ErrorBody{
			Code:    appErr.ErrorCode(),
			Message: appErr.Message(),
			Details: appErr.Details(),
		}

	case errors.As(err, &httpErr):
		status = httpErr.Code
		if status == http.StatusMethodNotAllowed {
			status = http.StatusNotFound
		}
		body = domainerrors.ErrorBody{
			Code:    codeForStatus(status),
			Message: httpMessage(httpErr),
		}
		if status == http.StatusNotFound {
			body.Message = "Unknown resource: " + c.Request().URL.String()
		}
		if httpErr.Internal != nil {
			err = httpErr.Internal
		}

	default:
		status = http.StatusInternalServerError
		body = domainerrors.ErrorBody{
			Code:    domainerrors.CodeInternal,
			Message: err.Error(),
		}
	}

	if m.production {
		if status >= http.StatusInternalServerError {
			body.Message = domainerrors.ErrInternal.Message()
			body.Details = nil
		}
	} else {
		body.Stack = errors.StackTrace(err)
	}

	return status, body
}

func codeForStatus(status int) string {
	switch {
	case status == http.StatusUnauthorized:
		return domainerrors.CodeUnauthorized
	case status == http.StatusForbidden:
		return domainerrors.CodeForbidden
	case status == http.StatusNotFound:
		return domainerrors.CodeNotFound
	case status >= http.StatusInternalServerError:
		return domainerrors.CodeInternal
	case status >= http.StatusBadRequest:
		return domainerrors.CodeValidationFailed
	default:
		return domainerrors.CodeInternal
	}
}

func httpMessage(httpErr *echo.HTTPError) string {
	if msg, ok := httpErr.Message.(string); ok && msg != "" {
		return msg
	}
	if httpErr.Message != nil {
		return fmt.Sprint(httpErr.Message)
	}

	return http.StatusText(httpErr.Code)
}
