package handler

import (
	"github.com/labstack/echo/v4"

	"budget/internal/delivery/api/response"
	"budget/internal/usecase"
)

// TransactionHandler serves the transaction resource. Every operation acts
// on the caller's own transactions unless the caller is an admin.
type TransactionHandler struct {
	transactionUC usecase.TransactionUsecase
}

// NewTransactionHandler is the constructor for TransactionHandler.
func NewTransactionHandler(transactionUC usecase.TransactionUsecase) *TransactionHandler {
	return &TransactionHandler{transactionUC: transactionUC}
}

// List returns the caller's transactions.
func (h *TransactionHandler) List(c echo.Context) error {
	s, err := session(c)
	if err != nil {
		return err
	}

	txs, err := h.transactionUC.List(c.Request().Context(), s)
	if err != nil {
		return err
	}

	return response.OK(c, response.Items(toTransactionResponses(txs)))
}

// Get returns one transaction.
func (h *TransactionHandler) Get(c echo.Context) error {
	p, err := params[IDParams](c)
	if err != nil {
		return err
	}
	s, err := session(c)
	if err != nil {
		return err
	}

	tx, err := h.transactionUC.Get(c.Request().Context(), s, p.ID)
	if err != nil {
		return err
	}

	return response.OK(c, toTransactionResponse(tx))
}

// Create books a transaction for the caller.
func (h *TransactionHandler) Create(c echo.Context) error {
	req, err := body[TransactionRequest](c)
	if err != nil {
		return err
	}
	s, err := session(c)
	if err != nil {
		return err
	}

	tx, err := h.transactionUC.Create(c.Request().Context(), s, toTransactionInput(req))
	if err != nil {
		return err
	}

	return response.Created(c, toTransactionResponse(tx))
}

// Update replaces a transaction's amount, date and place.
func (h *TransactionHandler) Update(c echo.Context) error {
	p, err := params[IDParams](c)
	if err != nil {
		return err
	}
	req, err := body[TransactionRequest](c)
	if err != nil {
		return err
	}
	s, err := session(c)
	if err != nil {
		return err
	}

	tx, err := h.transactionUC.Update(c.Request().Context(), s, p.ID, toTransactionInput(req))
	if err != nil {
		return err
	}

	return response.OK(c, toTransactionResponse(tx))
}

// Delete removes a transaction.
func (h *TransactionHandler) Delete(c echo.Context) error {
	p, err := params[IDParams](c)
	if err != nil {
		return err
	}
	s, err := session(c)
	if err != nil {
		return err
	}

	if err := h.transactionUC.Delete(c.Request().Context(), s, p.ID); err != nil {
		return err
	}

	return response.NoContent(c)
}

func toTransactionInput(req TransactionRequest) *usecase.TransactionInput {
	return &usecase.TransactionInput{
		Amount:  req.Amount,
		Date:    req.Date,
		PlaceID: req.PlaceID,
	}
}
