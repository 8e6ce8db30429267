package impl

import (
	"context"
	"log/slog"

	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/platform"
	"dashboard/internal/querycache"
	"dashboard/internal/usecase"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	vehicles platform.VehicleAPI
	reviews  platform.ReviewAPI
	cache    *querycache.Cache
	logger   *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	vehicles platform.VehicleAPI,
	reviews platform.ReviewAPI,
	cache *querycache.Cache,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		vehicles: vehicles,
		reviews:  reviews,
		cache:    cache,
		logger:   logger,
	}
}

func (srv *catalogService) Vehicle(ctx context.Context, id string) (*entity.Vehicle, error) {
	key := vehiclesPrefix + id

	return querycache.Fetch(ctx, srv.cache, key, func(ctx context.Context) (*entity.Vehicle, error) {
		return srv.vehicles.Get(ctx, id)
	})
}

func (srv *catalogService) UpdateVehicle(ctx context.Context, id string, vehicle *entity.Vehicle) (*entity.Vehicle, error) {
	updated, err := srv.vehicles.Update(ctx, id, vehicle)
	if err != nil {
		return nil, err
	}
	srv.cache.Invalidate(vehiclesPrefix)

	return updated, nil
}

func (srv *catalogService) DeleteVehicle(ctx context.Context, id string) error {
	if err := srv.vehicles.Delete(ctx, id); err != nil {
		return err
	}
	srv.logger.Info("vehicle deleted", slog.String("vehicleID", id))
	srv.cache.Invalidate(vehiclesPrefix)

	return nil
}

func (srv *catalogService) ReviewsByUser(ctx context.Context, userID string, p entity.Pagination) (*entity.Paged[entity.Review], error) {
	key := reviewsPrefix + "user/" + userID + "?" + p.Values().Encode()

	return querycache.Fetch(ctx, srv.cache, key, func(ctx context.Context) (*entity.Paged[entity.Review], error) {
		return srv.reviews.ListByUser(ctx, userID, p)
	})
}

func (srv *catalogService) ReviewsByTrip(ctx context.Context, tripID string, p entity.Pagination) (*entity.Paged[entity.Review], error) {
	key := reviewsPrefix + "trip/" + tripID + "?" + p.Values().Encode()

	return querycache.Fetch(ctx, srv.cache, key, func(ctx context.Context) (*entity.Paged[entity.Review], error) {
		return srv.reviews.ListByTrip(ctx, tripID, p)
	})
}

func (srv *catalogService) DeleteReview(ctx context.Context, id string) error {
	if err := srv.reviews.Delete(ctx, id); err != nil {
		return err
	}
	srv.logger.Info("review deleted", slog.String("reviewID", id))
	srv.cache.Invalidate(reviewsPrefix, usersPrefix)

	return nil
}
