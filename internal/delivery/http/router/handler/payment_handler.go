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

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC    usecase.PaymentUsecase
	CommissionUC usecase.CommissionUsecase
	Logger       *slog.Logger
}

// PaymentHandler holds dependencies for the payments and commissions screens.
type PaymentHandler struct {
	paymentUC    usecase.PaymentUsecase
	commissionUC usecase.CommissionUsecase
	logger       *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC:    params.PaymentUC,
		commissionUC: params.CommissionUC,
		logger:       params.Logger,
	}
}

// CalculateRequest selects the commission period.
type CalculateRequest struct {
	Month int `json:"month" validate:"required,min=1,max=12"`
	Year  int `json:"year" validate:"required,min=2020"`
}

// ListPayments handles GET /api/payments.
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	var filters entity.PaymentFilters
	if err := c.Bind(&filters); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment filters")
	}
	if err := c.Validate(&filters); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	paged, err := h.paymentUC.List(c.Request().Context(), filters)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, paged, "")
}

// PaymentSummary handles GET /api/payments/summary.
func (h *PaymentHandler) PaymentSummary(c echo.Context) error {
	summary, err := h.paymentUC.Summary(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, summary, "")
}

// CreatePayment handles POST /api/payments.
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	var payment entity.Payment
	if err := c.Bind(&payment); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}

	created, err := h.paymentUC.Create(c.Request().Context(), &payment)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, created, "Payment created")
}

// ConfirmPayment handles PUT /api/payments/:id/confirm.
func (h *PaymentHandler) ConfirmPayment(c echo.Context) error {
	if err := h.paymentUC.Confirm(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Payment confirmed")
}

// RefundPayment handles PUT /api/payments/:id/refund.
func (h *PaymentHandler) RefundPayment(c echo.Context) error {
	var req CancelRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refund input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "A refund reason is required")
	}

	if err := h.paymentUC.Refund(c.Request().Context(), c.Param("id"), req.Reason); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Payment refunded")
}

// ListCommissions handles GET /api/commissions.
func (h *PaymentHandler) ListCommissions(c echo.Context) error {
	var filters entity.CommissionFilters
	if err := c.Bind(&filters); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid commission filters")
	}
	if err := c.Validate(&filters); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	paged, err := h.commissionUC.List(c.Request().Context(), filters)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, paged, "")
}

// CommissionSummary handles GET /api/commissions/summary.
func (h *PaymentHandler) CommissionSummary(c echo.Context) error {
	summary, err := h.commissionUC.Summary(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, summary, "")
}

// CalculateCommissions handles POST /api/commissions/calculate.
func (h *PaymentHandler) CalculateCommissions(c echo.Context) error {
	var req CalculateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid calculation input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.commissionUC.Calculate(c.Request().Context(), req.Month, req.Year); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Commission calculation started")
}

// SendCommissionNotifications handles POST /api/commissions/send-notifications.
func (h *PaymentHandler) SendCommissionNotifications(c echo.Context) error {
	if err := h.commissionUC.SendNotifications(c.Request().Context()); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Notifications sent")
}

// WaiveCommission handles PUT /api/commissions/:id/waive.
func (h *PaymentHandler) WaiveCommission(c echo.Context) error {
	var req CancelRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid waive input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "A waive reason is required")
	}

	if err := h.commissionUC.Waive(c.Request().Context(), c.Param("id"), req.Reason); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Commission waived")
}
