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

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler holds dependencies for the notifications screen.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// List handles GET /api/notifications.
func (h *NotificationHandler) List(c echo.Context) error {
	var filters entity.NotificationFilters
	if err := c.Bind(&filters); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification filters")
	}
	if err := c.Validate(&filters); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	paged, err := h.notificationUC.List(c.Request().Context(), filters)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, paged, "")
}

// UnreadCount handles GET /api/notifications/unread-count.
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	count, err := h.notificationUC.UnreadCount(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]int{"count": count}, "")
}

// MarkAllRead handles PUT /api/notifications/read-all.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	if err := h.notificationUC.MarkAllRead(c.Request().Context()); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "All notifications marked read")
}

// MarkRead handles PUT /api/notifications/:id/read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	if err := h.notificationUC.MarkRead(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Notification marked read")
}

// Delete handles DELETE /api/notifications/:id.
func (h *NotificationHandler) Delete(c echo.Context) error {
	if err := h.notificationUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Notification deleted")
}

// ClearRead handles DELETE /api/notifications/clear-read.
func (h *NotificationHandler) ClearRead(c echo.Context) error {
	if err := h.notificationUC.ClearRead(c.Request().Context()); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Read notifications cleared")
}
