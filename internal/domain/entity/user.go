// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account of one of the three roles.
type User struct {
	ID        uuid.UUID  // Global unique identifier.
	Name      string     // Display name.
	CPF       string     // National ID, digits only, unique.
	Email     string     // Login identifier, unique.
	Password  string     // bcrypt hash, never plaintext.
	Role      Role       // ADMIN, DELIVERYMAN or RECIPIENT.
	Location  Location   // Current location.
	AdminID   *uuid.UUID // Owning admin; set only for DELIVERYMAN.
	CreatedAt time.Time  // Creation timestamp.
}

// IsAdmin reports whether the user has the ADMIN role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsDeliveryman reports whether the user has the DELIVERYMAN role.
func (u *User) IsDeliveryman() bool {
	return u.Role == RoleDeliveryman
}

// BelongsTo reports whether the user is a delivery person owned by adminID.
func (u *User) BelongsTo(adminID uuid.UUID) bool {
	return u.AdminID != nil && *u.AdminID == adminID
}
