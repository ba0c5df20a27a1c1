package impl

import (
	"context"

	"parcel/internal/domain/entity"
	domainerrors "parcel/internal/domain/errors"
	"parcel/internal/domain/repository"
	"parcel/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// guard holds the lookups and predicates shared by the package and user use cases.
type guard struct {
	userRepo    repository.UserRepository
	packageRepo repository.PackageRepository
}

// findUser resolves a user, mapping absence to NotFound(subject).
func (g guard) findUser(ctx context.Context, id uuid.UUID, subject string) (*entity.User, error) {
	user, err := g.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.NotFound(subject)
		}

		return nil, errors.Wrapf(err, "failed to find %s", subject)
	}

	return user, nil
}

// findAdmin resolves adminID to a user holding the ADMIN role.
func (g guard) findAdmin(ctx context.Context, adminID *uuid.UUID) (*entity.User, error) {
	if adminID == nil {
		return nil, domainerrors.ParamsNotProvided("adminId")
	}

	admin, err := g.findUser(ctx, *adminID, "admin")
	if err != nil {
		return nil, err
	}
	if !admin.IsAdmin() {
		return nil, domainerrors.NotFound("admin")
	}

	return admin, nil
}

// validateAdmin checks that adminID is an admin owning deliveryPerson.
func (g guard) validateAdmin(ctx context.Context, adminID *uuid.UUID, deliveryPerson *entity.User) error {
	admin, err := g.findAdmin(ctx, adminID)
	if err != nil {
		return err
	}

	return ownedBy(admin, deliveryPerson)
}

// validateAdminFor is validateAdmin for a delivery person known only by id.
// An unknown delivery person is NotAllowed, like a foreign one.
func (g guard) validateAdminFor(ctx context.Context, adminID *uuid.UUID, deliveryPersonID uuid.UUID) error {
	admin, err := g.findAdmin(ctx, adminID)
	if err != nil {
		return err
	}

	deliveryPerson, err := g.userRepo.FindByID(ctx, deliveryPersonID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.NotAllowed()
		}

		return errors.Wrap(err, "failed to find delivery person")
	}

	return ownedBy(admin, deliveryPerson)
}

func ownedBy(admin, deliveryPerson *entity.User) error {
	if !deliveryPerson.BelongsTo(admin.ID) {
		return domainerrors.NotAllowed()
	}

	return nil
}

// selfOnly restricts an admin acting on a recipient or another admin to its own account.
func selfOnly(adminID *uuid.UUID, user *entity.User) error {
	if adminID != nil && *adminID != user.ID {
		return domainerrors.NotAllowed()
	}

	return nil
}

// validatePackage loads a live package and checks, in order, its status and
// the optional recipient and delivery person bindings.
func (g guard) validatePackage(
	ctx context.Context,
	packageID uuid.UUID,
	requireStatus []entity.PackageStatus,
	recipientID *uuid.UUID,
	deliveryPersonID *uuid.UUID,
) (*entity.Package, error) {
	pack, err := g.packageRepo.FindByID(ctx, packageID)
	if err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return nil, domainerrors.NotFound("package")
		}

		return nil, errors.Wrap(err, "failed to find package")
	}

	if pack.IsDeleted {
		return nil, domainerrors.NotFound("package")
	}

	if !pack.HasStatus(requireStatus...) {
		return nil, domainerrors.NotAllowed()
	}

	if recipientID != nil && pack.RecipientID != *recipientID {
		return nil, domainerrors.NotAllowed()
	}

	if deliveryPersonID != nil && !pack.DeliveredBy(*deliveryPersonID) {
		return nil, domainerrors.NotAllowed()
	}

	return pack, nil
}

// accessClaims builds the token payload of a user.
func accessClaims(user *entity.User) service.Claims {
	return service.Claims{
		Sub:  user.ID,
		Role: user.Role,
	}
}
