package platform

import (
	"context"

	"dashboard/internal/domain/entity"
)

// NotificationAPI covers the /notifications endpoints.
type NotificationAPI interface {
	List(ctx context.Context, filters entity.NotificationFilters) (*entity.Paged[entity.Notification], error)
	UnreadCount(ctx context.Context) (int, error)
	MarkAllRead(ctx context.Context) error
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	ClearRead(ctx context.Context) error
}
