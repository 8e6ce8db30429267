package usecase

import (
	"context"

	"dashboard/internal/domain/entity"
)

// CatalogUsecase groups the secondary resources reachable from the user and
// trip detail panels: vehicles and reviews.
type CatalogUsecase interface {
	Vehicle(ctx context.Context, id string) (*entity.Vehicle, error)
	UpdateVehicle(ctx context.Context, id string, vehicle *entity.Vehicle) (*entity.Vehicle, error)
	DeleteVehicle(ctx context.Context, id string) error

	ReviewsByUser(ctx context.Context, userID string, p entity.Pagination) (*entity.Paged[entity.Review], error)
	ReviewsByTrip(ctx context.Context, tripID string, p entity.Pagination) (*entity.Paged[entity.Review], error)
	DeleteReview(ctx context.Context, id string) error
}
