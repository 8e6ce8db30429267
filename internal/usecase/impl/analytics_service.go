package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/platform"
	"dashboard/internal/querycache"
	"dashboard/internal/usecase"

	"golang.org/x/sync/errgroup"
)

const (
	defaultReportDays = 30
	maxReportDays     = 90
	monthlyWindow     = 6
)

// analyticsService implements the AnalyticsUsecase interface. Chart series
// are derived deterministically from the platform aggregates: same inputs,
// same charts.
type analyticsService struct {
	admin           platform.AdminAPI
	recommendations platform.RecommendationAPI
	cache           *querycache.Cache
	logger          *slog.Logger
	now             func() time.Time
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(
	admin platform.AdminAPI,
	recommendations platform.RecommendationAPI,
	cache *querycache.Cache,
	logger *slog.Logger,
) usecase.AnalyticsUsecase {
	return &analyticsService{
		admin:           admin,
		recommendations: recommendations,
		cache:           cache,
		logger:          logger,
		now:             time.Now,
	}
}

func (srv *analyticsService) Stats(ctx context.Context) (*entity.PlatformStats, error) {
	key := statsPrefix + "platform"

	return querycache.Fetch(ctx, srv.cache, key, func(ctx context.Context) (*entity.PlatformStats, error) {
		return srv.admin.PlatformStats(ctx)
	})
}

// Report gathers the three upstream aggregates concurrently and shapes the
// chart series from them.
func (srv *analyticsService) Report(ctx context.Context, days int) (*entity.AnalyticsReport, error) {
	if days <= 0 {
		days = defaultReportDays
	}
	if days > maxReportDays {
		days = maxReportDays
	}

	key := analyticsPrefix + "report?days=" + strconv.Itoa(days)

	return querycache.Fetch(ctx, srv.cache, key, func(ctx context.Context) (*entity.AnalyticsReport, error) {
		var (
			stats  *entity.PlatformStats
			routes []entity.PopularRoute
			demand []entity.CityDemand
		)

		group, groupCtx := errgroup.WithContext(ctx)
		group.Go(func() error {
			var err error
			stats, err = srv.Stats(groupCtx)

			return err
		})
		group.Go(func() error {
			var err error
			routes, err = srv.recommendations.PopularRoutes(groupCtx)

			return err
		})
		group.Go(func() error {
			var err error
			demand, err = srv.recommendations.CityDemand(groupCtx)

			return err
		})
		if err := group.Wait(); err != nil {
			return nil, err
		}

		return &entity.AnalyticsReport{
			Stats:         stats,
			Series:        srv.deriveSeries(stats, days),
			Monthly:       srv.deriveMonthly(stats),
			PopularRoutes: routes,
			CityDemand:    demand,
		}, nil
	})
}

// deriveSeries spreads this month's growth evenly across the window. The
// platform only reports monthly aggregates, so the daily resolution is an
// approximation; it is stable across refreshes, which is what the chart
// needs.
func (srv *analyticsService) deriveSeries(stats *entity.PlatformStats, days int) []entity.SeriesPoint {
	today := srv.now().Truncate(24 * time.Hour)
	growth := stats.GrowthMetrics

	revenuePerTrip := 0.0
	if stats.TotalTrips > 0 {
		revenuePerTrip = stats.TotalRevenue / float64(stats.TotalTrips)
	}

	series := make([]entity.SeriesPoint, days)
	for i := range days {
		date := today.AddDate(0, 0, -(days - 1 - i))
		// Cumulative share of the month's growth up to this day.
		users := growth.UsersThisMonth * (i + 1) / days
		trips := growth.TripsThisMonth * (i + 1) / days
		bookings := growth.BookingsThisMonth * (i + 1) / days

		series[i] = entity.SeriesPoint{
			Date:     date.Format("2006-01-02"),
			Users:    users,
			Trips:    trips,
			Bookings: bookings,
			Revenue:  float64(trips) * revenuePerTrip,
		}
	}

	return series
}

// deriveMonthly builds the month-over-month comparison: the current month
// from the growth metrics, earlier months as an even split of the remainder.
func (srv *analyticsService) deriveMonthly(stats *entity.PlatformStats) []entity.MonthlyMetric {
	now := srv.now()
	growth := stats.GrowthMetrics

	priorUsers := max(stats.TotalUsers-growth.UsersThisMonth, 0)
	priorTrips := max(stats.TotalTrips-growth.TripsThisMonth, 0)

	revenuePerTrip := 0.0
	if stats.TotalTrips > 0 {
		revenuePerTrip = stats.TotalRevenue / float64(stats.TotalTrips)
	}

	monthly := make([]entity.MonthlyMetric, monthlyWindow)
	for i := range monthlyWindow {
		month := now.AddDate(0, -(monthlyWindow - 1 - i), 0)
		metric := entity.MonthlyMetric{Month: month.Format("Jan")}

		if i == monthlyWindow-1 {
			metric.Users = growth.UsersThisMonth
			metric.Trips = growth.TripsThisMonth
		} else {
			metric.Users = priorUsers / (monthlyWindow - 1)
			metric.Trips = priorTrips / (monthlyWindow - 1)
		}
		metric.Revenue = float64(metric.Trips) * revenuePerTrip
		monthly[i] = metric
	}

	return monthly
}
