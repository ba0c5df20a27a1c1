package usecase

import (
	"context"

	"parcel/internal/domain/entity"
	"parcel/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register an account. AdminID is
// required for DELIVERYMAN and ignored for the other roles.
type RegisterInput struct {
	Name     string
	CPF      string
	Email    string
	Password string
	Role     entity.Role
	Location entity.Location
	AdminID  *uuid.UUID
}

// AuthenticateInput identifies the account by CPF or e-mail.
type AuthenticateInput struct {
	CPF      string
	Email    string
	Password string
}

// ChangePasswordInput identifies the target by CPF or e-mail. AdminID is the
// owning admin when the target is a delivery person; RequesterID, when set,
// must be the target itself for any other role.
type ChangePasswordInput struct {
	CPF         string
	Email       string
	Password    string
	AdminID     *uuid.UUID
	RequesterID *uuid.UUID
}

// ChangeLocationInput moves a user.
type ChangeLocationInput struct {
	UserID   uuid.UUID
	AdminID  *uuid.UUID
	Location entity.Location
}

// DeleteUserInput removes an account.
type DeleteUserInput struct {
	UserID  uuid.UUID
	AdminID *uuid.UUID
}

// FetchByAdminInput lists an admin's delivery personnel.
type FetchByAdminInput struct {
	AdminID    *uuid.UUID
	Pagination repository.Pagination
}

// --- Output DTOs ---

// AuthOutput returns the account and a signed access token.
type AuthOutput struct {
	User        *entity.User
	AccessToken string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthOutput, error)
	ChangePassword(ctx context.Context, input *ChangePasswordInput) error
	ChangeLocation(ctx context.Context, input *ChangeLocationInput) error
	Delete(ctx context.Context, input *DeleteUserInput) error
	FetchByAdminID(ctx context.Context, input *FetchByAdminInput) (*repository.Page[*entity.User], error)
}
