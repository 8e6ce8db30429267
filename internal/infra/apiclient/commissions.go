package apiclient

import (
	"context"
	"net/http"

	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/platform"
)

type commissionAPI struct {
	client *Client
}

// NewCommissionAPI is the constructor for the /commissions admin endpoints.
func NewCommissionAPI(client *Client) platform.CommissionAPI {
	return &commissionAPI{client: client}
}

func (a *commissionAPI) AdminSummary(ctx context.Context) (*entity.CommissionSummary, error) {
	var out entity.CommissionSummary
	if err := a.client.do(ctx, http.MethodGet, "/commissions/admin/summary", nil, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *commissionAPI) ListAll(ctx context.Context, filters entity.CommissionFilters) (*entity.Paged[entity.Commission], error) {
	var out struct {
		Commissions []entity.Commission `json:"commissions"`
		Total       int                 `json:"total"`
		Page        int                 `json:"page"`
		Limit       int                 `json:"limit"`
	}
	if err := a.client.do(ctx, http.MethodGet, "/commissions/admin/all", filters.Values(), nil, &out); err != nil {
		return nil, err
	}

	return &entity.Paged[entity.Commission]{Items: out.Commissions, Total: out.Total, Page: out.Page, Limit: out.Limit}, nil
}

func (a *commissionAPI) Calculate(ctx context.Context, month, year int) error {
	return a.client.do(ctx, http.MethodPost, "/commissions/admin/calculate", nil, map[string]int{"month": month, "year": year}, nil)
}

func (a *commissionAPI) SendNotifications(ctx context.Context) error {
	return a.client.do(ctx, http.MethodPost, "/commissions/admin/send-notifications", nil, nil, nil)
}

func (a *commissionAPI) Waive(ctx context.Context, id, reason string) error {
	return a.client.do(ctx, http.MethodPut, "/commissions/admin/"+id+"/waive", nil, map[string]string{"reason": reason}, nil)
}
