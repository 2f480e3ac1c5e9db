package handler

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"budget/internal/delivery/api/response"
	"budget/internal/usecase"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC        usecase.UserUsecase
	TransactionUC usecase.TransactionUsecase
	Logger        *slog.Logger
}

// UserHandler serves the user resource.
type UserHandler struct {
	userUC        usecase.UserUsecase
	transactionUC usecase.TransactionUsecase
	logger        *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC:        params.UserUC,
		transactionUC: params.TransactionUC,
		logger:        params.Logger,
	}
}

// Register creates an account and signs it in.
func (h *UserHandler) Register(c echo.Context) error {
	req, err := body[RegisterRequest](c)
	if err != nil {
		return err
	}

	out, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	h.logger.Info("User registered", slog.Int("user_id", out.User.ID))

	return response.OK(c, AuthResponse{Token: out.Token})
}

// List returns every user.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userUC.List(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, response.Items(toUserResponses(users)))
}

// Get returns one user.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}

	user, err := h.userUC.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, toUserResponse(user))
}

// Update changes a user's name and email.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}
	req, err := body[UpdateUserRequest](c)
	if err != nil {
		return err
	}

	user, err := h.userUC.Update(c.Request().Context(), id, &usecase.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return err
	}

	return response.OK(c, toUserResponse(user))
}

// Delete removes a user and its transactions.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}

	if err := h.userUC.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return response.NoContent(c)
}

// Transactions lists the transactions of one user.
func (h *UserHandler) Transactions(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}

	txs, err := h.transactionUC.ListByUser(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, response.Items(toTransactionResponses(txs)))
}
