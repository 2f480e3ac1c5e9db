package middleware

import (
	"github.com/labstack/echo/v4"

	"budget/internal/delivery/api/validator"
)

// ValidationMiddleware rejects requests that do not match their route schema
// before any handler runs.
type ValidationMiddleware struct {
	validator *validator.CustomValidator
}

// NewValidationMiddleware creates the validation gate.
func NewValidationMiddleware(v *validator.CustomValidator) *ValidationMiddleware {
	return &ValidationMiddleware{validator: v}
}

// Validate checks params, query and body against schema. A nil schema lets
// the request through unchanged.
func (m *ValidationMiddleware) Validate(schema *validator.Schema) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if schema == nil {
			return next
		}

		return func(c echo.Context) error {
			if err := m.validator.Check(c, schema); err != nil {
				return err
			}

			return next(c)
		}
	}
}
