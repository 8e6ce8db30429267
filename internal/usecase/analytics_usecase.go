package usecase

import (
	"context"

	"dashboard/internal/domain/entity"
)

// AnalyticsUsecase backs the dashboard and analytics screens. The report
// shapes chart-ready series deterministically from the platform aggregates.
type AnalyticsUsecase interface {
	Stats(ctx context.Context) (*entity.PlatformStats, error)
	Report(ctx context.Context, days int) (*entity.AnalyticsReport, error)
}
