package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is the durable log of a dispatched e-mail. It is written once and never mutated.
type Notification struct {
	ID        uuid.UUID
	Emails    []string   // Recipients of the message.
	Title     string     // Subject line.
	Content   string     // Plain text body.
	AdminID   *uuid.UUID // Set when the message concerns an admin's tenant.
	CreatedAt time.Time
}
