package usecase

import (
	"context"

	"dashboard/internal/domain/entity"
)

// PaymentUsecase backs the payments screen. The filter's Direction selects
// between the sent and received listings.
type PaymentUsecase interface {
	List(ctx context.Context, filters entity.PaymentFilters) (*entity.Paged[entity.Payment], error)
	Summary(ctx context.Context) (*entity.PaymentSummary, error)
	Create(ctx context.Context, payment *entity.Payment) (*entity.Payment, error)
	Confirm(ctx context.Context, id string) error
	Refund(ctx context.Context, id, reason string) error
}

// CommissionUsecase backs the commissions screen.
type CommissionUsecase interface {
	Summary(ctx context.Context) (*entity.CommissionSummary, error)
	List(ctx context.Context, filters entity.CommissionFilters) (*entity.Paged[entity.Commission], error)
	// Calculate triggers the monthly commission run for the given period.
	Calculate(ctx context.Context, month, year int) error
	// SendNotifications emails every driver with a pending commission.
	SendNotifications(ctx context.Context) error
	Waive(ctx context.Context, id, reason string) error
}
