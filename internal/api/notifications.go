package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopview/dashboard/internal/domain"
)

// ListNotifications returns every notification for the customer, newest first.
func (c *Client) ListNotifications(ctx context.Context) ([]domain.Notification, error) {
	var out dataEnvelope[[]domain.Notification]
	if err := c.get(ctx, "notifications.list", "/notifications", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// MarkNotificationRead marks a single notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, notificationID string) error {
	return c.do(ctx, "notifications.mark_read", http.MethodPut,
		"/notifications/"+url.PathEscape(notificationID)+"/read", nil, nil, nil)
}

// MarkAllNotificationsRead marks every notification as read in one call.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.do(ctx, "notifications.mark_all_read", http.MethodPut,
		"/notifications/read-all", nil, nil, nil)
}

// DeleteNotification deletes a notification.
func (c *Client) DeleteNotification(ctx context.Context, notificationID string) error {
	return c.do(ctx, "notifications.delete", http.MethodDelete,
		"/notifications/"+url.PathEscape(notificationID), nil, nil, nil)
}
