package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"budget/internal/delivery/api/response"
	"budget/internal/usecase"
)

// PlaceHandlerParams holds dependencies for PlaceHandler, injected by Fx.
type PlaceHandlerParams struct {
	fx.In

	PlaceUC       usecase.PlaceUsecase
	TransactionUC usecase.TransactionUsecase
}

// PlaceHandler serves the place resource.
type PlaceHandler struct {
	placeUC       usecase.PlaceUsecase
	transactionUC usecase.TransactionUsecase
}

// NewPlaceHandler is the constructor for PlaceHandler.
func NewPlaceHandler(params PlaceHandlerParams) *PlaceHandler {
	return &PlaceHandler{
		placeUC:       params.PlaceUC,
		transactionUC: params.TransactionUC,
	}
}

// List returns every place.
func (h *PlaceHandler) List(c echo.Context) error {
	places, err := h.placeUC.List(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, response.Items(toPlaceResponses(places)))
}

// Get returns a place with the caller's transactions there.
func (h *PlaceHandler) Get(c echo.Context) error {
	p, err := params[IDParams](c)
	if err != nil {
		return err
	}
	s, err := session(c)
	if err != nil {
		return err
	}

	detail, err := h.placeUC.Get(c.Request().Context(), s, p.ID)
	if err != nil {
		return err
	}

	return response.OK(c, PlaceDetailResponse{
		PlaceResponse: toPlaceResponse(detail.Place),
		Transactions:  toTransactionResponses(detail.Transactions),
	})
}

// Create adds a place.
func (h *PlaceHandler) Create(c echo.Context) error {
	req, err := body[PlaceRequest](c)
	if err != nil {
		return err
	}

	place, err := h.placeUC.Create(c.Request().Context(), &usecase.PlaceInput{
		Name:   req.Name,
		Rating: req.Rating,
	})
	if err != nil {
		return err
	}

	return response.Created(c, toPlaceResponse(place))
}

// Update replaces a place's name and rating.
func (h *PlaceHandler) Update(c echo.Context) error {
	p, err := params[IDParams](c)
	if err != nil {
		return err
	}
	req, err := body[UpdatePlaceRequest](c)
	if err != nil {
		return err
	}

	place, err := h.placeUC.Update(c.Request().Context(), p.ID, &usecase.PlaceInput{
		Name:   req.Name,
		Rating: &req.Rating,
	})
	if err != nil {
		return err
	}

	return response.OK(c, toPlaceResponse(place))
}

// Delete removes a place and its transactions.
func (h *PlaceHandler) Delete(c echo.Context) error {
	p, err := params[IDParams](c)
	if err != nil {
		return err
	}

	if err := h.placeUC.Delete(c.Request().Context(), p.ID); err != nil {
		return err
	}

	return response.NoContent(c)
}

// Transactions lists the caller's transactions at a place; admins see all.
func (h *PlaceHandler) Transactions(c echo.Context) error {
	p, err := params[IDParams](c)
	if err != nil {
		return err
	}
	s, err := session(c)
	if err != nil {
		return err
	}

	txs, err := h.transactionUC.ListByPlace(c.Request().Context(), s, p.ID)
	if err != nil {
		return err
	}

	return response.OK(c, response.Items(toTransactionResponses(txs)))
}
