package apiclient

import (
	"context"
	"net/http"

	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/platform"
)

type paymentAPI struct {
	client *Client
}

// NewPaymentAPI is the constructor for the /payments endpoints.
func NewPaymentAPI(client *Client) platform.PaymentAPI {
	return &paymentAPI{client: client}
}

func (a *paymentAPI) Create(ctx context.Context, payment *entity.Payment) (*entity.Payment, error) {
	var out entity.Payment
	if err := a.client.do(ctx, http.MethodPost, "/payments", nil, payment, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *paymentAPI) ListSent(ctx context.Context, filters entity.PaymentFilters) (*entity.Paged[entity.Payment], error) {
	return a.list(ctx, "/payments/sent", filters)
}

func (a *paymentAPI) ListReceived(ctx context.Context, filters entity.PaymentFilters) (*entity.Paged[entity.Payment], error) {
	return a.list(ctx, "/payments/received", filters)
}

func (a *paymentAPI) list(ctx context.Context, path string, filters entity.PaymentFilters) (*entity.Paged[entity.Payment], error) {
	var out struct {
		Payments []entity.Payment `json:"payments"`
		Total    int              `json:"total"`
		Page     int              `json:"page"`
		Limit    int              `json:"limit"`
	}
	if err := a.client.do(ctx, http.MethodGet, path, filters.Values(), nil, &out); err != nil {
		return nil, err
	}

	return &entity.Paged[entity.Payment]{Items: out.Payments, Total: out.Total, Page: out.Page, Limit: out.Limit}, nil
}

func (a *paymentAPI) Summary(ctx context.Context) (*entity.PaymentSummary, error) {
	var out entity.PaymentSummary
	if err := a.client.do(ctx, http.MethodGet, "/payments/summary", nil, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *paymentAPI) Confirm(ctx context.Context, id string) error {
	return a.client.do(ctx, http.MethodPut, "/payments/"+id+"/confirm", nil, nil, nil)
}

func (a *paymentAPI) Refund(ctx context.Context, id, reason string) error {
	return a.client.do(ctx, http.MethodPut, "/payments/"+id+"/refund", nil, map[string]string{"reason": reason}, nil)
}
