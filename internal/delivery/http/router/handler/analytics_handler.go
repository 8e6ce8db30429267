package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"dashboard/internal/delivery/http/response"
	"dashboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AnalyticsHandlerParams holds dependencies for AnalyticsHandler, injected by Fx.
type AnalyticsHandlerParams struct {
	fx.In

	AnalyticsUC usecase.AnalyticsUsecase
	Logger      *slog.Logger
}

// AnalyticsHandler holds dependencies for the dashboard and analytics screens.
type AnalyticsHandler struct {
	analyticsUC usecase.AnalyticsUsecase
	logger      *slog.Logger
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler
func NewAnalyticsHandler(params AnalyticsHandlerParams) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUC: params.AnalyticsUC,
		logger:      params.Logger,
	}
}

// Stats handles GET /api/stats, the dashboard overview cards.
func (h *AnalyticsHandler) Stats(c echo.Context) error {
	stats, err := h.analyticsUC.Stats(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// Report handles GET /api/analytics/report?days=N.
func (h *AnalyticsHandler) Report(c echo.Context) error {
	days := 0
	if raw := c.QueryParam("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", "days must be an integer")
		}
		days = parsed
	}

	report, err := h.analyticsUC.Report(c.Request().Context(), days)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, report, "")
}
