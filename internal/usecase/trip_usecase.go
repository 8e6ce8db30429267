package usecase

import (
	"context"

	"dashboard/internal/domain/entity"
)

// TripUsecase backs the trips screen.
type TripUsecase interface {
	List(ctx context.Context, filters entity.TripFilters) (*entity.Paged[entity.Trip], error)
	Cancel(ctx context.Context, id, reason string) error
	Delete(ctx context.Context, id string) error
	// Similar lists trips resembling the given one, for the detail panel.
	Similar(ctx context.Context, id string) ([]entity.Trip, error)
}

// BookingUsecase backs the bookings screen.
type BookingUsecase interface {
	List(ctx context.Context, filters entity.BookingFilters) (*entity.Paged[entity.Booking], error)
	Cancel(ctx context.Context, id, reason string) error
}
