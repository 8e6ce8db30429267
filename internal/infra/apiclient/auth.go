package apiclient

import (
	"context"
	"net/http"

	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/platform"
)

type authAPI struct {
	client *Client
}

// NewAuthAPI is the constructor for the auth endpoints.
func NewAuthAPI(client *Client) platform.AuthAPI {
	return &authAPI{client: client}
}

func (a *authAPI) Login(ctx context.Context, credentials entity.Credentials) (string, *entity.User, error) {
	var out struct {
		Token string       `json:"token"`
		User  *entity.User `json:"user"`
	}
	if err := a.client.do(ctx, http.MethodPost, "/auth/login", nil, credentials, &out); err != nil {
		return "", nil, err
	}

	return out.Token, out.User, nil
}

func (a *authAPI) CurrentUser(ctx context.Context) (*entity.User, error) {
	var out entity.User
	if err := a.client.do(ctx, http.MethodGet, "/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *authAPI) UpdateProfile(ctx context.Context, fields map[string]any) (*entity.User, error) {
	var out entity.User
	if err := a.client.do(ctx, http.MethodPut, "/auth/profile", nil, fields, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
