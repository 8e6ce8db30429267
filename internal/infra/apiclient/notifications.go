package apiclient

import (
	"context"
	"net/http"

	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/platform"
)

type notificationAPI struct {
	client *Client
}

// NewNotificationAPI is the constructor for the /notifications endpoints.
func NewNotificationAPI(client *Client) platform.NotificationAPI {
	return &notificationAPI{client: client}
}

func (a *notificationAPI) List(ctx context.Context, filters entity.NotificationFilters) (*entity.Paged[entity.Notification], error) {
	var out struct {
		Notifications []entity.Notification `json:"notifications"`
		Total         int                   `json:"total"`
		Page          int                   `json:"page"`
		Limit         int                   `json:"limit"`
	}
	if err := a.client.do(ctx, http.MethodGet, "/notifications", filters.Values(), nil, &out); err != nil {
		return nil, err
	}

	return &entity.Paged[entity.Notification]{Items: out.Notifications, Total: out.Total, Page: out.Page, Limit: out.Limit}, nil
}

func (a *notificationAPI) UnreadCount(ctx context.Context) (int, error) {
	var out entity.UnreadCount
	if err := a.client.do(ctx, http.MethodGet, "/notifications/unread-count", nil, nil, &out); err != nil {
		return 0, err
	}

	return out.Count, nil
}

func (a *notificationAPI) MarkAllRead(ctx context.Context) error {
	return a.client.do(ctx, http.MethodPut, "/notifications/read-all", nil, nil, nil)
}

func (a *notificationAPI) MarkRead(ctx context.Context, id string) error {
	return a.client.do(ctx, http.MethodPut, "/notifications/"+id+"/read", nil, nil, nil)
}

func (a *notificationAPI) Delete(ctx context.Context, id string) error {
	return a.client.do(ctx, http.MethodDelete, "/notifications/"+id, nil, nil, nil)
}

func (a *notificationAPI) ClearRead(ctx context.Context) error {
	return a.client.do(ctx, http.MethodDelete, "/notifications/clear-read", nil, nil, nil)
}
