package platform

import (
	"context"

	"dashboard/internal/domain/entity"
)

// VehicleAPI covers the /vehicles endpoints.
type VehicleAPI interface {
	Get(ctx context.Context, id string) (*entity.Vehicle, error)
	Update(ctx context.Context, id string, vehicle *entity.Vehicle) (*entity.Vehicle, error)
	Delete(ctx context.Context, id string) error
}

// ReviewAPI covers the /reviews endpoints.
type ReviewAPI interface {
	ListByUser(ctx context.Context, userID string, p entity.Pagination) (*entity.Paged[entity.Review], error)
	ListByTrip(ctx context.Context, tripID string, p entity.Pagination) (*entity.Paged[entity.Review], error)
	Delete(ctx context.Context, id string) error
}

// RecommendationAPI covers the aggregated /recommendations endpoints that
// feed the analytics screen.
type RecommendationAPI interface {
	PopularRoutes(ctx context.Context) ([]entity.PopularRoute, error)
	CityDemand(ctx context.Context) ([]entity.CityDemand, error)
	SimilarTrips(ctx context.Context, tripID string) ([]entity.Trip, error)
}
