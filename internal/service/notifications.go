package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shopview/dashboard/internal/domain"
)

// NotificationAPI is the slice of the commerce API the notification center
// consumes.
type NotificationAPI interface {
	ListNotifications(ctx context.Context) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, notificationID string) error
	MarkAllNotificationsRead(ctx context.Context) error
	DeleteNotification(ctx context.Context, notificationID string) error
}

// NotificationService maintains the customer's notification list. Every
// mutation does the server call and then refetches the full list: notification
// volume is small, and refetching keeps the local list consistent with server
// truth without patch logic. The unread count is always derived from the list,
// never stored, so it cannot drift.
type NotificationService struct {
	mu     sync.Mutex
	api    NotificationAPI
	logger *slog.Logger
	list   []domain.Notification
}

// NewNotificationService creates a new notification service with an empty list.
func NewNotificationService(notificationAPI NotificationAPI, logger *slog.Logger) *NotificationService {
	return &NotificationService{
		api:    notificationAPI,
		logger: logger,
	}
}

// Refresh refetches the notification list from the server.
func (s *NotificationService) Refresh(ctx context.Context) error {
	list, err := s.api.ListNotifications(ctx)
	if err != nil {
		return fmt.Errorf("refresh notifications: %w", err)
	}

	s.mu.Lock()
	s.list = list
	s.mu.Unlock()
	return nil
}

// Notifications returns a copy of the current list.
func (s *NotificationService) Notifications() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Notification, len(s.list))
	copy(out, s.list)
	return out
}

// UnreadCount returns the number of unread notifications, derived from the
// list on every call.
func (s *NotificationService) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for i := range s.list {
		if !s.list[i].IsRead {
			count++
		}
	}
	return count
}

// MarkAsRead marks one notification as read, then refetches the list.
// The transition is one-way; a read notification never becomes unread.
func (s *NotificationService) MarkAsRead(ctx context.Context, notificationID string) error {
	if err := s.api.MarkNotificationRead(ctx, notificationID); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	s.logger.InfoContext(ctx, "notification marked as read",
		slog.String("notification_id", notificationID),
	)
	return s.Refresh(ctx)
}

// MarkAllAsRead marks every notification as read in a single server call,
// then refetches the list.
func (s *NotificationService) MarkAllAsRead(ctx context.Context) error {
	if err := s.api.MarkAllNotificationsRead(ctx); err != nil {
		return fmt.Errorf("mark all notifications read: %w", err)
	}
	return s.Refresh(ctx)
}

// Delete removes a notification, then refetches the list. Deletion is
// terminal for both read and unread notifications.
func (s *NotificationService) Delete(ctx context.Context, notificationID string) error {
	if err := s.api.DeleteNotification(ctx, notificationID); err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	s.logger.InfoContext(ctx, "notification deleted",
		slog.String("notification_id", notificationID),
	)
	return s.Refresh(ctx)
}

// FormatRelativeTime renders a timestamp relative to now: minutes under an
// hour, hours under a day, days under a week, then an absolute date. The
// buckets are half-open (exactly 60 minutes is "1h ago", exactly 24 hours is
// "1d ago", exactly 7 days is the absolute date). Both instants are passed in
// so the function stays pure.
func FormatRelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours())/24)
	default:
		return t.Format("Jan 2, 2006")
	}
}
