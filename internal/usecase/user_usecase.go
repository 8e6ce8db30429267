package usecase

import (
	"context"

	"dashboard/internal/domain/entity"
)

// UserUsecase backs the users screen: filtered listing plus the moderation
// actions, each invalidating the user listings.
type UserUsecase interface {
	List(ctx context.Context, filters entity.UserFilters) (*entity.Paged[entity.User], error)
	Update(ctx context.Context, id string, fields map[string]any) (*entity.User, error)
	Activate(ctx context.Context, id string) error
	Deactivate(ctx context.Context, id string) error
	Verify(ctx context.Context, id string) error
}
