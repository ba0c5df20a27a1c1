package repository

import (
	"context"
	"errors"

	"parcel/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrUserAlreadyExists is returned when a unique column (email, cpf) collides.
var ErrUserAlreadyExists = errors.New("user already exists")

// UserUpdate carries the columns to change. Nil fields are left untouched.
type UserUpdate struct {
	Name     *string
	Password *string
	Location *entity.Location
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByCPF retrieves a single user by their digits-only CPF.
	FindByCPF(ctx context.Context, cpf string) (*entity.User, error)

	// ListByAdminID lists the delivery personnel owned by an admin.
	ListByAdminID(ctx context.Context, adminID uuid.UUID, pagination Pagination) (*Page[*entity.User], error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update applies a partial update and returns the stored user.
	Update(ctx context.Context, id uuid.UUID, update UserUpdate) (*entity.User, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
