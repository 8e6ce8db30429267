// Package platform declares the contracts of the upstream carpooling REST
// API the dashboard consumes. Implementations live in infra/apiclient; the
// usecase layer depends only on these interfaces.
package platform

import (
	"context"

	"dashboard/internal/domain/entity"
)

// AuthAPI covers the session lifecycle endpoints.
type AuthAPI interface {
	// Login exchanges credentials for a bearer token and the user snapshot.
	Login(ctx context.Context, credentials entity.Credentials) (token string, user *entity.User, err error)
	// CurrentUser fetches the authenticated user behind the stored token.
	CurrentUser(ctx context.Context) (*entity.User, error)
	// UpdateProfile patches the authenticated user's profile fields.
	UpdateProfile(ctx context.Context, fields map[string]any) (*entity.User, error)
}
