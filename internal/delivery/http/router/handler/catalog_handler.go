package handler

import (
	"log/slog"
	"net/http"

	"dashboard/internal/delivery/http/response"
	"dashboard/internal/domain/entity"
	"dashboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the vehicle and review endpoints behind the user
// and trip detail panels.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// GetVehicle handles GET /api/vehicles/:id.
func (h *CatalogHandler) GetVehicle(c echo.Context) error {
	vehicle, err := h.catalogUC.Vehicle(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, vehicle, "")
}

// UpdateVehicle handles PUT /api/vehicles/:id.
func (h *CatalogHandler) UpdateVehicle(c echo.Context) error {
	var vehicle entity.Vehicle
	if err := c.Bind(&vehicle); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vehicle input")
	}

	updated, err := h.catalogUC.UpdateVehicle(c.Request().Context(), c.Param("id"), &vehicle)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, updated, "Vehicle updated")
}

// DeleteVehicle handles DELETE /api/vehicles/:id.
func (h *CatalogHandler) DeleteVehicle(c echo.Context) error {
	if err := h.catalogUC.DeleteVehicle(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Vehicle deleted")
}

// ReviewsByUser handles GET /api/reviews/user/:id.
func (h *CatalogHandler) ReviewsByUser(c echo.Context) error {
	var p entity.Pagination
	if err := c.Bind(&p); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pagination")
	}

	paged, err := h.catalogUC.ReviewsByUser(c.Request().Context(), c.Param("id"), p)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, paged, "")
}

// ReviewsByTrip handles GET /api/reviews/trip/:id.
func (h *CatalogHandler) ReviewsByTrip(c echo.Context) error {
	var p entity.Pagination
	if err := c.Bind(&p); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pagination")
	}

	paged, err := h.catalogUC.ReviewsByTrip(c.Request().Context(), c.Param("id"), p)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, paged, "")
}

// DeleteReview handles DELETE /api/reviews/:id.
func (h *CatalogHandler) DeleteReview(c echo.Context) error {
	if err := h.catalogUC.DeleteReview(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Review deleted")
}
