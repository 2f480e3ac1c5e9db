package handler

import (
	"github.com/labstack/echo/v4"

	"budget/internal/delivery/api/response"
	"budget/internal/usecase"
)

// SessionHandler signs users in.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
}

// NewSessionHandler creates the sign-in handler.
func NewSessionHandler(sessionUC usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{sessionUC: sessionUC}
}

// Login exchanges credentials for a token.
func (h *SessionHandler) Login(c echo.Context) error {
	req, err := body[LoginRequest](c)
	if err != nil {
		return err
	}

	out, err := h.sessionUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.OK(c, AuthResponse{Token: out.Token})
}
