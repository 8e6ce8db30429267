package apiclient

import (
	"context"
	"net/http"

	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/platform"
)

type adminAPI struct {
	client *Client
}

// NewAdminAPI is the constructor for the /admin moderation endpoints.
func NewAdminAPI(client *Client) platform.AdminAPI {
	return &adminAPI{client: client}
}

func (a *adminAPI) PlatformStats(ctx context.Context) (*entity.PlatformStats, error) {
	var out entity.PlatformStats
	if err := a.client.do(ctx, http.MethodGet, "/admin/stats", nil, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *adminAPI) ListUsers(ctx context.Context, filters entity.UserFilters) (*entity.Paged[entity.User], error) {
	var out struct {
		Users []entity.User `json:"users"`
		Total int           `json:"total"`
		Page  int           `json:"page"`
		Limit int           `json:"limit"`
	}
	if err := a.client.do(ctx, http.MethodGet, "/admin/users", filters.Values(), nil, &out); err != nil {
		return nil, err
	}

	return &entity.Paged[entity.User]{Items: out.Users, Total: out.Total, Page: out.Page, Limit: out.Limit}, nil
}

func (a *adminAPI) UpdateUser(ctx context.Context, id string, fields map[string]any) (*entity.User, error) {
	var out entity.User
	if err := a.client.do(ctx, http.MethodPut, "/admin/users/"+id, nil, fields, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *adminAPI) ActivateUser(ctx context.Context, id string) error {
	return a.client.do(ctx, http.MethodPut, "/admin/users/"+id+"/activate", nil, nil, nil)
}

// DeactivateUser maps to DELETE on the user resource; the platform soft
// deletes by flipping isActive.
func (a *adminAPI) DeactivateUser(ctx context.Context, id string) error {
	return a.client.do(ctx, http.MethodDelete, "/admin/users/"+id, nil, nil, nil)
}

func (a *adminAPI) VerifyUser(ctx context.Context, id string) error {
	return a.client.do(ctx, http.MethodPut, "/admin/users/"+id+"/verify", nil, nil, nil)
}

func (a *adminAPI) ListTrips(ctx context.Context, filters entity.TripFilters) (*entity.Paged[entity.Trip], error) {
	var out struct {
		Trips []entity.Trip `json:"trips"`
		Total int           `json:"total"`
		Page  int           `json:"page"`
		Limit int           `json:"limit"`
	}
	if err := a.client.do(ctx, http.MethodGet, "/admin/trips", filters.Values(), nil, &out); err != nil {
		return nil, err
	}

	return &entity.Paged[entity.Trip]{Items: out.Trips, Total: out.Total, Page: out.Page, Limit: out.Limit}, nil
}

func (a *adminAPI) CancelTrip(ctx context.Context, id, reason string) error {
	return a.client.do(ctx, http.MethodPut, "/admin/trips/"+id+"/cancel", nil, map[string]string{"reason": reason}, nil)
}

func (a *adminAPI) DeleteTrip(ctx context.Context, id string) error {
	return a.client.do(ctx, http.MethodDelete, "/admin/trips/"+id, nil, nil, nil)
}

func (a *adminAPI) ListBookings(ctx context.Context, filters entity.BookingFilters) (*entity.Paged[entity.Booking], error) {
	var out struct {
		Bookings []entity.Booking `json:"bookings"`
		Total    int              `json:"total"`
		Page     int              `json:"page"`
		Limit    int              `json:"limit"`
	}
	if err := a.client.do(ctx, http.MethodGet, "/admin/bookings", filters.Values(), nil, &out); err != nil {
		return nil, err
	}

	return &entity.Paged[entity.Booking]{Items: out.Bookings, Total: out.Total, Page: out.Page, Limit: out.Limit}, nil
}

func (a *adminAPI) CancelBooking(ctx context.Context, id, reason string) error {
	return a.client.do(ctx, http.MethodPut, "/admin/bookings/"+id+"/cancel", nil, map[string]string{"reason": reason}, nil)
}
