package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/platform"
)

type bannerAPI struct {
	client *Client
}

// NewBannerAPI is the constructor for the /banners endpoints.
func NewBannerAPI(client *Client) platform.BannerAPI {
	return &bannerAPI{client: client}
}

func (a *bannerAPI) ListByPackage(ctx context.Context, packageID string, isActive *bool) ([]entity.Banner, error) {
	var query url.Values
	if isActive != nil {
		query = url.Values{"isActive": []string{strconv.FormatBool(*isActive)}}
	}

	var out []entity.Banner
	if err := a.client.do(ctx, http.MethodGet, "/banners/package/"+packageID, query, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (a *bannerAPI) Get(ctx context.Context, id string) (*entity.Banner, error) {
	var out entity.Banner
	if err := a.client.do(ctx, http.MethodGet, "/banners/"+id, nil, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *bannerAPI) Create(ctx context.Context, banner *entity.Banner) (*entity.Banner, error) {
	var out entity.Banner
	if err := a.client.do(ctx, http.MethodPost, "/banners", nil, banner, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *bannerAPI) Update(ctx context.Context, id string, banner *entity.Banner) (*entity.Banner, error) {
	var out entity.Banner
	if err := a.client.do(ctx, http.MethodPut, "/banners/"+id, nil, banner, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *bannerAPI) Delete(ctx context.Context, id string) error {
	return a.client.do(ctx, http.MethodDelete, "/banners/"+id, nil, nil, nil)
}

func (a *bannerAPI) ToggleStatus(ctx context.Context, id string) (*entity.Banner, error) {
	var out entity.Banner
	if err := a.client.do(ctx, http.MethodPatch, "/banners/"+id+"/toggle-status", nil, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *bannerAPI) Reorder(ctx context.Context, packageID string, orders []entity.BannerOrder) error {
	body := map[string][]entity.BannerOrder{"banners": orders}

	return a.client.do(ctx, http.MethodPatch, "/banners/reorder/"+packageID, nil, body, nil)
}

func (a *bannerAPI) Stats(ctx context.Context, packageID string) (*entity.BannerStats, error) {
	var out entity.BannerStats
	if err := a.client.do(ctx, http.MethodGet, "/banners/stats/"+packageID, nil, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *bannerAPI) RegisterView(ctx context.Context, id string) error {
	return a.client.do(ctx, http.MethodPost, "/banners/"+id+"/register-view", nil, nil, nil)
}

func (a *bannerAPI) RegisterClick(ctx context.Context, id string) error {
	return a.client.do(ctx, http.MethodPost, "/banners/"+id+"/register-click", nil, nil, nil)
}
