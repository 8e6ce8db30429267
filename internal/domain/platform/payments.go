package platform

import (
	"context"

	"dashboard/internal/domain/entity"
)

// PaymentAPI covers the /payments endpoints.
type PaymentAPI interface {
	Create(ctx context.Context, payment *entity.Payment) (*entity.Payment, error)
	ListSent(ctx context.Context, filters entity.PaymentFilters) (*entity.Paged[entity.Payment], error)
	ListReceived(ctx context.Context, filters entity.PaymentFilters) (*entity.Paged[entity.Payment], error)
	Summary(ctx context.Context) (*entity.PaymentSummary, error)
	Confirm(ctx context.Context, id string) error
	Refund(ctx context.Context, id, reason string) error
}

// CommissionAPI covers the /commissions admin endpoints.
type CommissionAPI interface {
	AdminSummary(ctx context.Context) (*entity.CommissionSummary, error)
	ListAll(ctx context.Context, filters entity.CommissionFilters) (*entity.Paged[entity.Commission], error)
	Calculate(ctx context.Context, month, year int) error
	SendNotifications(ctx context.Context) error
	Waive(ctx context.Context, id, reason string) error
}
