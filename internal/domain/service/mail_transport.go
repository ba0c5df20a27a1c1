package service

import (
	"context"
)

// MailEvent is the transport payload of a notification.
type MailEvent struct {
	RequestID      string   `json:"request_id,omitempty"` // For distributed tracing
	NotificationID string   `json:"notification_id"`
	AdminID        string   `json:"admin_id,omitempty"`
	From           string   `json:"from"`
	To             []string `json:"to"`
	Subject        string   `json:"subject"`
	Body           string   `json:"body"`
}

// MailTransport hands a MailEvent to the delivery channel (SMTP relay, message queue).
type MailTransport interface {
	Dispatch(ctx context.Context, event *MailEvent) error

	// Close releases any resources held by the transport
	Close() error
}
