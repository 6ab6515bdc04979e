package hr

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/staffsync/go-staffsync/client"
	"github.com/staffsync/go-staffsync/model"
)

// NotificationInput is the payload for sending a notification. A nil
// RecipientID broadcasts to all employees.
type NotificationInput struct {
	RecipientID *string `json:"recipient_id,omitempty"`
	Title       string  `json:"title"`
	Message     string  `json:"message"`
	Type        string  `json:"type,omitempty"`
}

// SentNotification is one entry of the sent-notifications view.
type SentNotification struct {
	ID            string `json:"id"`
	RecipientName string `json:"recipient_name"`
	Title         string `json:"title"`
	Message       string `json:"message"`
	Type          string `json:"type"`
	IsRead        bool   `json:"is_read"`
	CreatedAt     string `json:"created_at"`
}

// SendNotification delivers a notification to one employee or to everyone.
func (s *Service) SendNotification(ctx context.Context, input NotificationInput) (*model.Notification, error) {
	var sent model.Notification
	err := s.client.DoDecoded(ctx, client.Request{
		Method: http.MethodPost,
		Path:   "/hr/notifications",
		Body:   input,
	}, &sent)
	if err != nil {
		return nil, fmt.Errorf("[Service.SendNotification] %w", err)
	}
	return &sent, nil
}

// SentNotifications lists notifications this HR user has sent, newest first.
func (s *Service) SentNotifications(ctx context.Context, limit int) ([]SentNotification, error) {
	values := url.Values{}
	setInt(values, "limit", limit)

	var payload struct {
		Notifications []SentNotification `json:"notifications"`
		Total         int                `json:"total"`
	}
	err := s.client.DoDecoded(ctx, client.Request{
		Method: http.MethodGet,
		Path:   "/hr/notifications/sent",
		Query:  values,
	}, &payload)
	if err != nil {
		return nil, fmt.Errorf("[Service.SentNotifications] %w", err)
	}
	return payload.Notifications, nil
}

// Notifications returns the HR user's own inbox, broadcasts included.
func (s *Service) Notifications(ctx context.Context, limit int) (*model.Inbox, error) {
	values := url.Values{}
	setInt(values, "limit", limit)

	var inbox model.Inbox
	err := s.client.DoDecoded(ctx, client.Request{
		Method: http.MethodGet,
		Path:   "/hr/notifications",
		Query:  values,
	}, &inbox)
	if err != nil {
		return nil, fmt.Errorf("[Service.Notifications] %w", err)
	}
	return &inbox, nil
}

// MarkNotificationRead marks one received notification as read.
func (s *Service) MarkNotificationRead(ctx context.Context, notificationID string) error {
	_, err := s.client.Do(ctx, client.Request{
		Method: http.MethodPut,
		Path:   "/hr/notifications/" + notificationID + "/read",
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
		Path:   "/hr/notifications/read-all",
	})
	if err != nil {
		return fmt.Errorf("[Service.MarkAllNotificationsRead] %w", err)
	}
	return nil
}
