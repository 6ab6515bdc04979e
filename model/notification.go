package model

// Notification types.
const (
	NotificationInfo    = "info"
	NotificationWarning = "warning"
	NotificationSuccess = "success"
	NotificationError   = "error"
)

// Notification is one message delivered to a user. RecipientID is nil for
// broadcast notifications.
type Notification struct {
	ID          string  `json:"id"`
	SenderID    string  `json:"sender_id"`
	SenderName  string  `json:"sender_name,omitempty"`
	RecipientID *string `json:"recipient_id,omitempty"`
	Title       string  `json:"title"`
	Message     string  `json:"message"`
	Type        string  `json:"type"`
	IsRead      bool    `json:"is_read"`
	CreatedAt   string  `json:"created_at"`
	ReadAt      *string `json:"read_at,omitempty"`
}

// Inbox is the notifications endpoint's data payload.
type Inbox struct {
	Notifications []Notification `json:"notifications"`
	Total         int            `json:"total"`
	UnreadCount   int            `json:"unread_count"`
}
