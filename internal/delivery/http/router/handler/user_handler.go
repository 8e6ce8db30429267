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

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for the users screen.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// List handles GET /api/users with search/status/verified filters.
func (h *UserHandler) List(c echo.Context) error {
	var filters entity.UserFilters
	if err := c.Bind(&filters); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user filters")
	}
	if err := c.Validate(&filters); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	paged, err := h.userUC.List(c.Request().Context(), filters)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, paged, "")
}

// Update handles PUT /api/users/:id with a partial field map.
func (h *UserHandler) Update(c echo.Context) error {
	var fields map[string]any
	if err := c.Bind(&fields); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	user, err := h.userUC.Update(c.Request().Context(), c.Param("id"), fields)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, user, "User updated")
}

// Activate handles PUT /api/users/:id/activate.
func (h *UserHandler) Activate(c echo.Context) error {
	if err := h.userUC.Activate(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "User activated")
}

// Deactivate handles DELETE /api/users/:id (a soft delete upstream).
func (h *UserHandler) Deactivate(c echo.Context) error {
	if err := h.userUC.Deactivate(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "User deactivated")
}

// Verify handles PUT /api/users/:id/verify.
func (h *UserHandler) Verify(c echo.Context) error {
	if err := h.userUC.Verify(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "User verified")
}
