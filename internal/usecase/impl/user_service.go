package impl

import (
	"context"
	"log/slog"

	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/platform"
	"dashboard/internal/querycache"
	"dashboard/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	api     platform.AdminAPI
	cache   *querycache.Cache
	logger  *slog.Logger
	filters filterTracker
}

// NewUserService is the constructor for userService.
func NewUserService(
	api platform.AdminAPI,
	cache *querycache.Cache,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		api:    api,
		cache:  cache,
		logger: logger,
	}
}

func (srv *userService) List(ctx context.Context, filters entity.UserFilters) (*entity.Paged[entity.User], error) {
	filters.Normalize()
	if srv.filters.changed(filters.Signature()) {
		filters.Page = entity.DefaultPage
		srv.cache.Drop(usersPrefix)
	}

	key := usersPrefix + "?" + filters.Values().Encode()

	return querycache.Fetch(ctx, srv.cache, key, func(ctx context.Context) (*entity.Paged[entity.User], error) {
		return srv.api.ListUsers(ctx, filters)
	})
}

func (srv *userService) Update(ctx context.Context, id string, fields map[string]any) (*entity.User, error) {
	user, err := srv.api.UpdateUser(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	srv.cache.Invalidate(usersPrefix)

	return user, nil
}

func (srv *userService) Activate(ctx context.Context, id string) error {
	if err := srv.api.ActivateUser(ctx, id); err != nil {
		return err
	}
	srv.logger.Info("user activated", slog.String("userID", id))
	srv.cache.Invalidate(usersPrefix, statsPrefix)

	return nil
}

func (srv *userService) Deactivate(ctx context.Context, id string) error {
	if err := srv.api.DeactivateUser(ctx, id); err != nil {
		return err
	}
	srv.logger.Info("user deactivated", slog.String("userID", id))
	srv.cache.Invalidate(usersPrefix, statsPrefix)

	return nil
}

func (srv *userService) Verify(ctx context.Context, id string) error {
	if err := srv.api.VerifyUser(ctx, id); err != nil {
		return err
	}
	srv.logger.Info("user verified", slog.String("userID", id))
	srv.cache.Invalidate(usersPrefix)

	return nil
}
