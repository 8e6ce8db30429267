package main

import (
	"context"
	"log/slog"
	"os"

	"dashboard/config"
	"dashboard/internal/delivery"
	"dashboard/internal/delivery/http"
	"dashboard/internal/delivery/http/middleware"
	"dashboard/internal/delivery/http/router/handler"
	"dashboard/internal/domain/service"
	"dashboard/internal/infra/apiclient"
	"dashboard/internal/infra/auth"
	logs "dashboard/internal/infra/log"
	"dashboard/internal/infra/notify"
	"dashboard/internal/infra/qrcode"
	"dashboard/internal/infra/sessionstore"
	"dashboard/internal/querycache"
	"dashboard/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectPlatformAPI(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		sessionstore.New,
		querycache.New,
		apiclient.New,
	)
}

// injectPlatformAPI provides the per-resource clients of the upstream
// platform REST API.
func injectPlatformAPI() fx.Option {
	return fx.Options(
		fx.Provide(
			apiclient.NewAuthAPI,
			apiclient.NewAdminAPI,
			apiclient.NewPaymentAPI,
			apiclient.NewCommissionAPI,
			apiclient.NewBannerAPI,
			apiclient.NewNotificationAPI,
			apiclient.NewVehicleAPI,
			apiclient.NewReviewAPI,
			apiclient.NewRecommendationAPI,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			notify.New,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService() service.QRCodeService {
	return qrcode.NewQRCodeService(256, "M")
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewUserService,
			impl.NewTripService,
			impl.NewBookingService,
			impl.NewPaymentService,
			impl.NewCommissionService,
			impl.NewBannerService,
			impl.NewNotificationService,
			impl.NewAnalyticsService,
			impl.NewCatalogService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewTripHandler,
			handler.NewPaymentHandler,
			handler.NewBannerHandler,
			handler.NewNotificationHandler,
			handler.NewAnalyticsHandler,
			handler.NewCatalogHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
