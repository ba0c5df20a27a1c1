// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"parcel/internal/domain/entity"
	"parcel/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AttachmentInput is an uploaded photo. FileType is raw (extension or MIME subtype)
// and validated by the use case.
type AttachmentInput struct {
	FileName string
	FileType string
	FileBody []byte
}

// CreatePackageInput defines the data required for a recipient to buy a product.
type CreatePackageInput struct {
	RecipientID     uuid.UUID
	ProductID       uuid.UUID
	ProductQuantity int
}

// DeliverPackageInput assigns the calling delivery person to a waiting package.
type DeliverPackageInput struct {
	PackageID        uuid.UUID
	DeliveryPersonID uuid.UUID
}

// PhotoTransitionInput moves a package while attaching a photo. ActorID is the
// assigned delivery person for available-pickup and pickup, and the owning
// recipient for return.
type PhotoTransitionInput struct {
	PackageID  uuid.UUID
	ActorID    uuid.UUID
	Attachment AttachmentInput
	Location   entity.Location
}

// CancelPackageInput soft-deletes a package on behalf of its recipient.
type CancelPackageInput struct {
	PackageID   uuid.UUID
	RecipientID uuid.UUID
}

// FetchPackagesInput tracks packages. Either Filter.RecipientID or
// Filter.DeliveryPersonID is required; AdminID, when set, must own
// Filter.DeliveryPersonID.
type FetchPackagesInput struct {
	PackageID *uuid.UUID
	AdminID   *uuid.UUID
	Filter    repository.PackageFilter
}

// PackageLabelInput requests the QR tracking label of a package.
type PackageLabelInput struct {
	PackageID   uuid.UUID
	RequesterID uuid.UUID
	Role        entity.Role
}

// PackageUsecase defines the package lifecycle operations.
type PackageUsecase interface {
	Create(ctx context.Context, input *CreatePackageInput) (*entity.Package, error)
	Deliver(ctx context.Context, input *DeliverPackageInput) (*entity.Package, error)
	MarkAvailableForPickup(ctx context.Context, input *PhotoTransitionInput) (*entity.Package, error)
	Pickup(ctx context.Context, input *PhotoTransitionInput) (*entity.Package, error)
	Return(ctx context.Context, input *PhotoTransitionInput) (*entity.Package, error)
	Cancel(ctx context.Context, input *CancelPackageInput) (*entity.Package, error)
	Fetch(ctx context.Context, input *FetchPackagesInput) (*repository.Page[*entity.Package], error)
	Label(ctx context.Context, input *PackageLabelInput) ([]byte, error)
}
