package impl

import (
	"context"
	"log/slog"

	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/platform"
	"dashboard/internal/querycache"
	"dashboard/internal/usecase"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	api     platform.NotificationAPI
	cache   *querycache.Cache
	logger  *slog.Logger
	filters filterTracker
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(
	api platform.NotificationAPI,
	cache *querycache.Cache,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		api:    api,
		cache:  cache,
		logger: logger,
	}
}

func (srv *notificationService) List(ctx context.Context, filters entity.NotificationFilters) (*entity.Paged[entity.Notification], error) {
	filters.Normalize()
	if srv.filters.changed(filters.Signature()) {
		filters.Page = entity.DefaultPage
		srv.cache.Drop(notificationsPrefix)
	}

	key := notificationsPrefix + "?" + filters.Values().Encode()

	return querycache.Fetch(ctx, srv.cache, key, func(ctx context.Context) (*entity.Paged[entity.Notification], error) {
		return srv.api.List(ctx, filters)
	})
}

func (srv *notificationService) UnreadCount(ctx context.Context) (int, error) {
	key := notificationsPrefix + "unread-count"

	return querycache.Fetch(ctx, srv.cache, key, func(ctx context.Context) (int, error) {
		return srv.api.UnreadCount(ctx)
	})
}

func (srv *notificationService) MarkAllRead(ctx context.Context) error {
	if err := srv.api.MarkAllRead(ctx); err != nil {
		return err
	}
	srv.cache.Invalidate(notificationsPrefix)

	return nil
}

func (srv *notificationService) MarkRead(ctx context.Context, id string) error {
	if err := srv.api.MarkRead(ctx, id); err != nil {
		return err
	}
	srv.cache.Invalidate(notificationsPrefix)

	return nil
}

func (srv *notificationService) Delete(ctx context.Context, id string) error {
	if err := srv.api.Delete(ctx, id); err != nil {
		return err
	}
	srv.cache.Invalidate(notificationsPrefix)

	return nil
}

func (srv *notificationService) ClearRead(ctx context.Context) error {
	if err := srv.api.ClearRead(ctx); err != nil {
		return err
	}
	srv.logger.Info("read notifications cleared")
	srv.cache.Invalidate(notificationsPrefix)

	return nil
}
