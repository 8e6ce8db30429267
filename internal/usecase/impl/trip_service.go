package impl

import (
	"context"
	"log/slog"

	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/platform"
	"dashboard/internal/querycache"
	"dashboard/internal/usecase"
)

// tripService implements the TripUsecase interface.
type tripService struct {
	api             platform.AdminAPI
	recommendations platform.RecommendationAPI
	cache           *querycache.Cache
	logger          *slog.Logger
	filters         filterTracker
}

// NewTripService is the constructor for tripService.
func NewTripService(
	api platform.AdminAPI,
	recommendations platform.RecommendationAPI,
	cache *querycache.Cache,
	logger *slog.Logger,
) usecase.TripUsecase {
	return &tripService{
		api:             api,
		recommendations: recommendations,
		cache:           cache,
		logger:          logger,
	}
}

func (srv *tripService) List(ctx context.Context, filters entity.TripFilters) (*entity.Paged[entity.Trip], error) {
	filters.Normalize()
	if srv.filters.changed(filters.Signature()) {
		filters.Page = entity.DefaultPage
		srv.cache.Drop(tripsPrefix)
	}

	key := tripsPrefix + "?" + filters.Values().Encode()

	return querycache.Fetch(ctx, srv.cache, key, func(ctx context.Context) (*entity.Paged[entity.Trip], error) {
		return srv.api.ListTrips(ctx, filters)
	})
}

// Cancel also touches bookings and stats: cancelling a trip cascades to its
// bookings upstream.
func (srv *tripService) Cancel(ctx context.Context, id, reason string) error {
	if err := srv.api.CancelTrip(ctx, id, reason); err != nil {
		return err
	}
	srv.logger.Info("trip cancelled", slog.String("tripID", id), slog.String("reason", reason))
	srv.cache.Invalidate(tripsPrefix, bookingsPrefix, statsPrefix)

	return nil
}

func (srv *tripService) Delete(ctx context.Context, id string) error {
	if err := srv.api.DeleteTrip(ctx, id); err != nil {
		return err
	}
	srv.logger.Info("trip deleted", slog.String("tripID", id))
	srv.cache.Invalidate(tripsPrefix, bookingsPrefix, statsPrefix)

	return nil
}

func (srv *tripService) Similar(ctx context.Context, id string) ([]entity.Trip, error) {
	key := tripsPrefix + "similar/" + id

	return querycache.Fetch(ctx, srv.cache, key, func(ctx context.Context) ([]entity.Trip, error) {
		return srv.recommendations.SimilarTrips(ctx, id)
	})
}

// bookingService implements the BookingUsecase interface.
type bookingService struct {
	api     platform.AdminAPI
	cache   *querycache.Cache
	logger  *slog.Logger
	filters filterTracker
}

// NewBookingService is the constructor for bookingService.
func NewBookingService(
	api platform.AdminAPI,
	cache *querycache.Cache,
	logger *slog.Logger,
) usecase.BookingUsecase {
	return &bookingService{
		api:    api,
		cache:  cache,
		logger: logger,
	}
}

func (srv *bookingService) List(ctx context.Context, filters entity.BookingFilters) (*entity.Paged[entity.Booking], error) {
	filters.Normalize()
	if srv.filters.changed(filters.Signature()) {
		filters.Page = entity.DefaultPage
		srv.cache.Drop(bookingsPrefix)
	}

	key := bookingsPrefix + "?" + filters.Values().Encode()

	return querycache.Fetch(ctx, srv.cache, key, func(ctx context.Context) (*entity.Paged[entity.Booking], error) {
		return srv.api.ListBookings(ctx, filters)
	})
}

func (srv *bookingService) Cancel(ctx context.Context, id, reason string) error {
	if err := srv.api.CancelBooking(ctx, id, reason); err != nil {
		return err
	}
	srv.logger.Info("booking cancelled", slog.String("bookingID", id), slog.String("reason", reason))
	srv.cache.Invalidate(bookingsPrefix, tripsPrefix, statsPrefix)

	return nil
}
