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

// BannerHandlerParams holds dependencies for BannerHandler, injected by Fx.
type BannerHandlerParams struct {
	fx.In

	BannerUC usecase.BannerUsecase
	Logger   *slog.Logger
}

// BannerHandler holds dependencies for the banner management screen.
type BannerHandler struct {
	bannerUC usecase.BannerUsecase
	logger   *slog.Logger
}

// NewBannerHandler is the constructor for BannerHandler
func NewBannerHandler(params BannerHandlerParams) *BannerHandler {
	return &BannerHandler{
		bannerUC: params.BannerUC,
		logger:   params.Logger,
	}
}

// ReorderRequest describes one drag: which banner moved and where it landed.
type ReorderRequest struct {
	DraggedID   string `json:"draggedId" validate:"required"`
	TargetIndex int    `json:"targetIndex" validate:"min=0"`
}

// ListByPackage handles GET /api/banners/package/:packageId.
func (h *BannerHandler) ListByPackage(c echo.Context) error {
	var isActive *bool
	if raw := c.QueryParam("isActive"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", "isActive must be true or false")
		}
		isActive = &parsed
	}

	banners, err := h.bannerUC.ListByPackage(c.Request().Context(), c.Param("packageId"), isActive)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, banners, "")
}

// Get handles GET /api/banners/:id.
func (h *BannerHandler) Get(c echo.Context) error {
	banner, err := h.bannerUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, banner, "")
}

// Create handles POST /api/banners.
func (h *BannerHandler) Create(c echo.Context) error {
	var input usecase.BannerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid banner input")
	}

	banner, err := h.bannerUC.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, banner, "Banner created")
}

// Update handles PUT /api/banners/:id.
func (h *BannerHandler) Update(c echo.Context) error {
	var input usecase.BannerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid banner input")
	}

	banner, err := h.bannerUC.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, banner, "Banner updated")
}

// Delete handles DELETE /api/banners/:id.
func (h *BannerHandler) Delete(c echo.Context) error {
	if err := h.bannerUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Banner deleted")
}

// ToggleStatus handles PATCH /api/banners/:id/toggle-status.
func (h *BannerHandler) ToggleStatus(c echo.Context) error {
	banner, err := h.bannerUC.ToggleStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, banner, "Banner status toggled")
}

// Reorder handles PATCH /api/banners/reorder/:packageId. The response is
// the authoritative ordering after the move: the new one on success, the
// server's on failure.
func (h *BannerHandler) Reorder(c echo.Context) error {
	var req ReorderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reorder input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	banners, err := h.bannerUC.Reorder(c.Request().Context(), c.Param("packageId"), req.DraggedID, req.TargetIndex)
	if err != nil {
		if banners != nil {
			// The move was rejected upstream; hand the operator the
			// server's ordering along with the failure.
			return c.JSON(http.StatusConflict, response.Response{
				Success: false,
				Code:    http.StatusConflict,
				Message: "Reorder failed, restored server order",
				Data:    banners,
				Error:   &response.ErrorInfo{Code: "REORDER_FAILED"},
			})
		}

		return err
	}

	return response.Success(c, http.StatusOK, banners, "Banners reordered")
}

// Stats handles GET /api/banners/stats/:packageId.
func (h *BannerHandler) Stats(c echo.Context) error {
	stats, err := h.bannerUC.Stats(c.Request().Context(), c.Param("packageId"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// RegisterView handles POST /api/banners/:id/register-view.
func (h *BannerHandler) RegisterView(c echo.Context) error {
	if err := h.bannerUC.RegisterView(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "")
}

// RegisterClick handles POST /api/banners/:id/register-click.
func (h *BannerHandler) RegisterClick(c echo.Context) error {
	if err := h.bannerUC.RegisterClick(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "")
}

// QRPreview handles GET /api/banners/:id/qr, answering a PNG rather than
// the JSON envelope.
func (h *BannerHandler) QRPreview(c echo.Context) error {
	png, err := h.bannerUC.QRPreview(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
