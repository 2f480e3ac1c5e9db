// Package handler contains the HTTP handlers of the API. Handlers run after
// the validation gate and the access checks and only read values those
// middlewares stored on the echo context.
package handler

import (
	"github.com/labstack/echo/v4"

	"budget/internal/delivery/api/validator"
	deliverycontext "budget/internal/delivery/context"
	"budget/internal/domain/entity"
	domainerrors "budget/internal/domain/errors"
	"budget/internal/errors"
)

var errNoSchema = errors.New("route has no validation schema for this request part")

func params[T any](c echo.Context) (T, error) {
	v, ok := validator.Params[T](c)
	if !ok {
		return v, errors.Wrap(errNoSchema, "params")
	}

	return v, nil
}

func body[T any](c echo.Context) (T, error) {
	v, ok := validator.Body[T](c)
	if !ok {
		return v, errors.Wrap(errNoSchema, "body")
	}

	return v, nil
}

func session(c echo.Context) (*entity.Session, error) {
	s, ok := deliverycontext.GetSession(c)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrMissingToken)
	}

	return s, nil
}

// userID resolves the user path parameter against the caller.
func userID(c echo.Context) (int, error) {
	p, err := params[UserParams](c)
	if err != nil {
		return 0, err
	}
	s, err := session(c)
	if err != nil {
		return 0, err
	}

	ref, err := entity.ParseUserRef(p.ID)
	if err != nil {
		return 0, errors.WithStack(domainerrors.ErrUserNotFound)
	}

	return ref.Resolve(s.UserID), nil
}
