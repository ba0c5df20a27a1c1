package repository

import (
	"context"

	"parcel/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationFilter selects notification records. AdminID is always applied.
type NotificationFilter struct {
	AdminID    uuid.UUID
	Email      *string // Matches when the address is one of the record's recipients.
	Title      *string
	Pagination Pagination
}

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// Create persists a dispatched notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// List returns notifications newest first.
	List(ctx context.Context, filter NotificationFilter) (*Page[*entity.Notification], error)
}
