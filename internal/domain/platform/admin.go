package platform

import (
	"context"

	"dashboard/internal/domain/entity"
)

// AdminAPI covers the /admin moderation endpoints: platform stats plus user,
// trip and booking management.
type AdminAPI interface {
	PlatformStats(ctx context.Context) (*entity.PlatformStats, error)

	ListUsers(ctx context.Context, filters entity.UserFilters) (*entity.Paged[entity.User], error)
	UpdateUser(ctx context.Context, id string, fields map[string]any) (*entity.User, error)
	ActivateUser(ctx context.Context, id string) error
	DeactivateUser(ctx context.Context, id string) error
	VerifyUser(ctx context.Context, id string) error

	ListTrips(ctx context.Context, filters entity.TripFilters) (*entity.Paged[entity.Trip], error)
	CancelTrip(ctx context.Context, id, reason string) error
	DeleteTrip(ctx context.Context, id string) error

	ListBookings(ctx context.Context, filters entity.BookingFilters) (*entity.Paged[entity.Booking], error)
	CancelBooking(ctx context.Context, id, reason string) error
}
