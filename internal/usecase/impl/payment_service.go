package impl

import (
	"context"
	"log/slog"

	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/platform"
	"dashboard/internal/querycache"
	"dashboard/internal/usecase"
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	api     platform.PaymentAPI
	cache   *querycache.Cache
	logger  *slog.Logger
	filters filterTracker
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(
	api platform.PaymentAPI,
	cache *querycache.Cache,
	logger *slog.Logger,
) usecase.PaymentUsecase {
	return &paymentService{
		api:    api,
		cache:  cache,
		logger: logger,
	}
}

func (srv *paymentService) List(ctx context.Context, filters entity.PaymentFilters) (*entity.Paged[entity.Payment], error) {
	filters.Normalize()
	if srv.filters.changed(filters.Signature()) {
		filters.Page = entity.DefaultPage
		srv.cache.Drop(paymentsPrefix)
	}

	key := paymentsPrefix + filters.Direction + "?" + filters.Values().Encode()

	return querycache.Fetch(ctx, srv.cache, key, func(ctx context.Context) (*entity.Paged[entity.Payment], error) {
		if filters.Direction == "received" {
			return srv.api.ListReceived(ctx, filters)
		}

		return srv.api.ListSent(ctx, filters)
	})
}

func (srv *paymentService) Summary(ctx context.Context) (*entity.PaymentSummary, error) {
	key := paymentsPrefix + "summary"

	return querycache.Fetch(ctx, srv.cache, key, func(ctx context.Context) (*entity.PaymentSummary, error) {
		return srv.api.Summary(ctx)
	})
}

func (srv *paymentService) Create(ctx context.Context, payment *entity.Payment) (*entity.Payment, error) {
	created, err := srv.api.Create(ctx, payment)
	if err != nil {
		return nil, err
	}
	srv.cache.Invalidate(paymentsPrefix, statsPrefix)

	return created, nil
}

func (srv *paymentService) Confirm(ctx context.Context, id string) error {
	if err := srv.api.Confirm(ctx, id); err != nil {
		return err
	}
	srv.logger.Info("payment confirmed", slog.String("paymentID", id))
	srv.cache.Invalidate(paymentsPrefix, commissionsPrefix, statsPrefix)

	return nil
}

func (srv *paymentService) Refund(ctx context.Context, id, reason string) error {
	if err := srv.api.Refund(ctx, id, reason); err != nil {
		return err
	}
	srv.logger.Info("payment refunded", slog.String("paymentID", id), slog.String("reason", reason))
	srv.cache.Invalidate(paymentsPrefix, commissionsPrefix, statsPrefix)

	return nil
}

// commissionService implements the CommissionUsecase interface.
type commissionService struct {
	api     platform.CommissionAPI
	cache   *querycache.Cache
	logger  *slog.Logger
	filters filterTracker
}

// NewCommissionService is the constructor for commissionService.
func NewCommissionService(
	api platform.CommissionAPI,
	cache *querycache.Cache,
	logger *slog.Logger,
) usecase.CommissionUsecase {
	return &commissionService{
		api:    api,
		cache:  cache,
		logger: logger,
	}
}

func (srv *commissionService) Summary(ctx context.Context) (*entity.CommissionSummary, error) {
	key := commissionsPrefix + "summary"

	return querycache.Fetch(ctx, srv.cache, key, func(ctx context.Context) (*entity.CommissionSummary, error) {
		return srv.api.AdminSummary(ctx)
	})
}

func (srv *commissionService) List(ctx context.Context, filters entity.CommissionFilters) (*entity.Paged[entity.Commission], error) {
	filters.Normalize()
	if srv.filters.changed(filters.Signature()) {
		filters.Page = entity.DefaultPage
		srv.cache.Drop(commissionsPrefix)
	}

	key := commissionsPrefix + "?" + filters.Values().Encode()

	return querycache.Fetch(ctx, srv.cache, key, func(ctx context.Context) (*entity.Paged[entity.Commission], error) {
		return srv.api.ListAll(ctx, filters)
	})
}

func (srv *commissionService) Calculate(ctx context.Context, month, year int) error {
	if err := srv.api.Calculate(ctx, month, year); err != nil {
		return err
	}
	srv.logger.Info("commission run triggered", slog.Int("month", month), slog.Int("year", year))
	srv.cache.Invalidate(commissionsPrefix)

	return nil
}

func (srv *commissionService) SendNotifications(ctx context.Context) error {
	if err := srv.api.SendNotifications(ctx); err != nil {
		return err
	}
	srv.logger.Info("commission notifications sent")

	return nil
}

func (srv *commissionService) Waive(ctx context.Context, id, reason string) error {
	if err := srv.api.Waive(ctx, id, reason); err != nil {
		return err
	}
	srv.logger.Info("commission waived", slog.String("commissionID", id), slog.String("reason", reason))
	srv.cache.Invalidate(commissionsPrefix)

	return nil
}
