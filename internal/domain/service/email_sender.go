package service

import (
	"context"

	"parcel/internal/domain/entity"

	"github.com/google/uuid"
)

// SendInput is one message to a list of addresses.
type SendInput struct {
	Emails  []string
	Title   string
	Content string
	AdminID *uuid.UUID
}

// EmailSender dispatches a message and records it as a Notification. The
// record is persisted whatever the transport outcome.
type EmailSender interface {
	Send(ctx context.Context, input SendInput) (*entity.Notification, error)
}
