package handler

import (
	"github.com/labstack/echo/v4"

	"budget/internal/delivery/api/response"
	"budget/internal/usecase"
)

// HealthHandler answers the unauthenticated probes.
type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

// NewHealthHandler creates the probe handler.
func NewHealthHandler(healthUC usecase.HealthUsecase) *HealthHandler {
	return &HealthHandler{healthUC: healthUC}
}

// Ping reports liveness.
func (h *HealthHandler) Ping(c echo.Context) error {
	return response.OK(c, map[string]bool{"pong": h.healthUC.Ping()})
}

// Version reports the running build.
func (h *HealthHandler) Version(c echo.Context) error {
	info := h.healthUC.Version()

	return response.OK(c, map[string]string{
		"env":     info.Env,
		"version": info.Version,
		"name":    info.Name,
	})
}
