// Package response writes the JSON bodies of the API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	domainerrors "budget/internal/domain/errors"
)

// List wraps collection results.
type List[T any] struct {
	Items []T `json:"items"`
}

// Items builds a list body that never serializes as null.
func Items[T any](items []T) List[T] {
	if items == nil {
		items = []T{}
	}

	return List[T]{Items: items}
}

// OK writes a 200 response.
func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

// Created writes a 201 response.
func Created(c echo.Context, data any) error {
	return c.JSON(http.StatusCreated, data)
}

// NoContent writes a 204 response.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error writes a normalized error body.
func Error(c echo.Context, status int, body domainerrors.ErrorBody) error {
	// Access failures never describe the request back to the caller.
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		body.Details = nil
	}

	return c.JSON(status, body)
}
