package employee

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/staffsync/go-staffsync/client"
	"github.com/staffsync/go-staffsync/model"
)

// Notifications returns the personal inbox, broadcasts included.
func (s *Service) Notifications(ctx context.Context, unreadOnly bool, limit int) (*model.Inbox, error) {
	values := url.Values{}
	if unreadOnly {
		values.Set("unread_only", "true")
	}
	setInt(values, "limit", limit)

	var inbox model.Inbox
	err := s.client.DoDecoded(ctx, client.Request{
		Method: http.MethodGet,
		Path:   "/employee/notifications",
		Query:  values,
	}, &inbox)
	if err != nil {
		return nil, fmt.Errorf("[Service.Notifications] %w", err)
	}
	return &inbox, nil
}

// MarkNotificationRead marks one notification as read.
func (s *Service) MarkNotificationRead(ctx context.Context, notificationID string) error {
	_, err := s.client.Do(ctx, client.Request{
		Method: http.MethodPut,
		Path:   "/employee/notifications/" + notificationID + "/read",
	})
	if err != nil {
		return fmt.Errorf("[Service.MarkNotificationRead] %w", err)
	}
	return nil
}

// MarkAllNotificationsRead marks the whole inbox as read.
func (s *Service) MarkAllNotificationsRead(ctx context.Context) error {
	_, err := s.client.Do(ctx, client.Request{
		Method: http.MethodPut,
		Path:   "/employee/notifications/read-all",
	})
	if err != nil {
		return fmt.Errorf("[Service.MarkAllNotificationsRead] %w", err)
	}
	return nil
}
