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

// TripHandlerParams holds dependencies for TripHandler, injected by Fx.
type TripHandlerParams struct {
	fx.In

	TripUC    usecase.TripUsecase
	BookingUC usecase.BookingUsecase
	Logger    *slog.Logger
}

// TripHandler holds dependencies for the trips and bookings screens.
type TripHandler struct {
	tripUC    usecase.TripUsecase
	bookingUC usecase.BookingUsecase
	logger    *slog.Logger
}

// NewTripHandler is the constructor for TripHandler
func NewTripHandler(params TripHandlerParams) *TripHandler {
	return &TripHandler{
		tripUC:    params.TripUC,
		bookingUC: params.BookingUC,
		logger:    params.Logger,
	}
}

// CancelRequest carries the mandatory moderation reason.
type CancelRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// ListTrips handles GET /api/trips.
func (h *TripHandler) ListTrips(c echo.Context) error {
	var filters entity.TripFilters
	if err := c.Bind(&filters); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid trip filters")
	}
	if err := c.Validate(&filters); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	paged, err := h.tripUC.List(c.Request().Context(), filters)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, paged, "")
}

// CancelTrip handles PUT /api/trips/:id/cancel.
func (h *TripHandler) CancelTrip(c echo.Context) error {
	var req CancelRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cancel input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "A cancellation reason is required")
	}

	if err := h.tripUC.Cancel(c.Request().Context(), c.Param("id"), req.Reason); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Trip cancelled")
}

// DeleteTrip handles DELETE /api/trips/:id.
func (h *TripHandler) DeleteTrip(c echo.Context) error {
	if err := h.tripUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Trip deleted")
}

// SimilarTrips handles GET /api/trips/:id/similar.
func (h *TripHandler) SimilarTrips(c echo.Context) error {
	trips, err := h.tripUC.Similar(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, trips, "")
}

// ListBookings handles GET /api/bookings.
func (h *TripHandler) ListBookings(c echo.Context) error {
	var filters entity.BookingFilters
	if err := c.Bind(&filters); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking filters")
	}
	if err := c.Validate(&filters); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	paged, err := h.bookingUC.List(c.Request().Context(), filters)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, paged, "")
}

// CancelBooking handles PUT /api/bookings/:id/cancel.
func (h *TripHandler) CancelBooking(c echo.Context) error {
	var req CancelRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cancel input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "A cancellation reason is required")
	}

	if err := h.bookingUC.Cancel(c.Request().Context(), c.Param("id"), req.Reason); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Booking cancelled")
}
