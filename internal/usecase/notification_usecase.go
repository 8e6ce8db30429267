package usecase

import (
	"context"

	"dashboard/internal/domain/entity"
)

// NotificationUsecase backs the notifications screen and the unread badge.
type NotificationUsecase interface {
	List(ctx context.Context, filters entity.NotificationFilters) (*entity.Paged[entity.Notification], error)
	UnreadCount(ctx context.Context) (int, error)
	MarkAllRead(ctx context.Context) error
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	ClearRead(ctx context.Context) error
}
