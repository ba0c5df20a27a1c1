package repository

import (
	"context"
	"errors"

	"parcel/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPackageNotFound is returned when no live package matches the id.
var ErrPackageNotFound = errors.New("package not found")

// PackageFilter selects packages for a listing. Nil fields do not filter.
type PackageFilter struct {
	Status           *entity.PackageStatus
	DeliveryPersonID *uuid.UUID
	RecipientID      *uuid.UUID
	IsDeleted        *bool
	FileName         *string
	Near             *entity.Location // Orders by distance to this point instead of creation time.
	Pagination       Pagination
}

// PackageRepository defines persistence for packages. Every status change is a
// single update guarded by id and is_deleted = false; it returns
// ErrPackageNotFound when that guard matches no row.
type PackageRepository interface {
	// FindByID returns the package, soft-deleted or not.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Package, error)

	List(ctx context.Context, filter PackageFilter) (*Page[*entity.Package], error)

	Create(ctx context.Context, pack *entity.Package) error

	ChangeStatusToDelivered(ctx context.Context, id, deliveryPersonID uuid.UUID, location entity.Location) (*entity.Package, error)

	ChangeStatusToAvailablePickup(ctx context.Context, id uuid.UUID, photo entity.Photo, location entity.Location) (*entity.Package, error)

	ChangeStatusToPickup(ctx context.Context, id uuid.UUID, photo entity.Photo, location entity.Location) (*entity.Package, error)

	ChangeStatusToReturned(ctx context.Context, id uuid.UUID, photo entity.Photo, location entity.Location) (*entity.Package, error)

	// Delete soft-deletes the package and returns the updated record.
	Delete(ctx context.Context, id uuid.UUID) (*entity.Package, error)
}
