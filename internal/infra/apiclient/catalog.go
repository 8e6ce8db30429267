package apiclient

import (
	"context"
	"net/http"

	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/platform"
)

type vehicleAPI struct {
	client *Client
}

// NewVehicleAPI is the constructor for the /vehicles endpoints.
func NewVehicleAPI(client *Client) platform.VehicleAPI {
	return &vehicleAPI{client: client}
}

func (a *vehicleAPI) Get(ctx context.Context, id string) (*entity.Vehicle, error) {
	var out entity.Vehicle
	if err := a.client.do(ctx, http.MethodGet, "/vehicles/"+id, nil, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *vehicleAPI) Update(ctx context.Context, id string, vehicle *entity.Vehicle) (*entity.Vehicle, error) {
	var out entity.Vehicle
	if err := a.client.do(ctx, http.MethodPut, "/vehicles/"+id, nil, vehicle, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *vehicleAPI) Delete(ctx context.Context, id string) error {
	return a.client.do(ctx, http.MethodDelete, "/vehicles/"+id, nil, nil, nil)
}

type reviewAPI struct {
	client *Client
}

// NewReviewAPI is the constructor for the /reviews endpoints.
func NewReviewAPI(client *Client) platform.ReviewAPI {
	return &reviewAPI{client: client}
}

func (a *reviewAPI) ListByUser(ctx context.Context, userID string, p entity.Pagination) (*entity.Paged[entity.Review], error) {
	return a.list(ctx, "/reviews/user/"+userID, p)
}

func (a *reviewAPI) ListByTrip(ctx context.Context, tripID string, p entity.Pagination) (*entity.Paged[entity.Review], error) {
	return a.list(ctx, "/reviews/trip/"+tripID, p)
}

func (a *reviewAPI) list(ctx context.Context, path string, p entity.Pagination) (*entity.Paged[entity.Review], error) {
	var out struct {
		Reviews []entity.Review `json:"reviews"`
		Total   int             `json:"total"`
		Page    int             `json:"page"`
		Limit   int             `json:"limit"`
	}
	if err := a.client.do(ctx, http.MethodGet, path, p.Values(), nil, &out); err != nil {
		return nil, err
	}

	return &entity.Paged[entity.Review]{Items: out.Reviews, Total: out.Total, Page: out.Page, Limit: out.Limit}, nil
}

func (a *reviewAPI) Delete(ctx context.Context, id string) error {
	return a.client.do(ctx, http.MethodDelete, "/reviews/"+id, nil, nil, nil)
}

type recommendationAPI struct {
	client *Client
}

// NewRecommendationAPI is the constructor for the /recommendations endpoints.
func NewRecommendationAPI(client *Client) platform.RecommendationAPI {
	return &recommendationAPI{client: client}
}

func (a *recommendationAPI) PopularRoutes(ctx context.Context) ([]entity.PopularRoute, error) {
	var out []entity.PopularRoute
	if err := a.client.do(ctx, http.MethodGet, "/recommendations/popular-routes", nil, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (a *recommendationAPI) CityDemand(ctx context.Context) ([]entity.CityDemand, error) {
	var out []entity.CityDemand
	if err := a.client.do(ctx, http.MethodGet, "/recommendations/city-demand", nil, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (a *recommendationAPI) SimilarTrips(ctx context.Context, tripID string) ([]entity.Trip, error) {
	var out []entity.Trip
	if err := a.client.do(ctx, http.MethodGet, "/recommendations/similar/"+tripID, nil, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}
