package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	deliverycontext "budget/internal/delivery/context"
	"budget/internal/domain/entity"
	domainerrors "budget/internal/domain/errors"
	"budget/internal/errors"
	"budget/internal/usecase"
)

const bearerPrefix = "Bearer "

// AuthMiddleware holds the access checks of protected routes.
type AuthMiddleware struct {
	sessions usecase.SessionUsecase
}

// NewAuthMiddleware creates the access checks.
func NewAuthMiddleware(sessions usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Authenticate verifies the bearer token and attaches the caller's session.
// It must run before RequireRole and RequireOwnershipOrRole.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return errors.WithStack(domainerrors.ErrMissingToken)
		}

		token, found := strings.CutPrefix(header, bearerPrefix)
		token = strings.TrimSpace(token)
		if !found || token == "" {
			return errors.WithStack(domainerrors.ErrMalformedToken)
		}

		session, err := m.sessions.Authenticate(c.Request().Context(), token)
		if err != nil {
			return err
		}

		deliverycontext.SetSession(c, session)

		return next(c)
	}
}

// RequireRole lets only callers holding role through.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := deliverycontext.GetSession(c)
			if !ok {
				return errors.WithStack(domainerrors.ErrMissingToken)
			}
			if !session.Roles.Contains(role) {
				return errors.WithStack(domainerrors.ErrMissingRole)
			}

			return next(c)
		}
	}
}

// RequireOwnershipOrRole lets a caller through when the user addressed by
// the path parameter param is the caller, or when the caller holds role.
// The self sentinel always addresses the caller.
func (m *AuthMiddleware) RequireOwnershipOrRole(role entity.Role, param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := deliverycontext.GetSession(c)
			if !ok {
				return errors.WithStack(domainerrors.ErrMissingToken)
			}

			if session.Roles.Contains(role) {
				return next(c)
			}

			ref, err := entity.ParseUserRef(c.Param(param))
			if err != nil || !ref.RefersTo(session.UserID) {
				return errors.WithStack(domainerrors.ErrNotOwner)
			}

			return next(c)
		}
	}
}
