package postgres

import (
	"context"
	"time"

	"parcel/internal/domain/entity"
	domainerrors "parcel/internal/domain/errors"
	"parcel/internal/domain/repository"
	"parcel/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// packageRepository implements the repository.PackageRepository interface.
type packageRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewPackageRepository is the constructor for packageRepository.
func NewPackageRepository(db *gorm.DB) repository.PackageRepository {
	return &packageRepository{
		db:  db,
		now: time.Now,
	}
}

// FindByID returns the package whether or not it is soft-deleted.
func (repo *packageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Package, error) {
	var packageM model.PackageModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&packageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPackageNotFound
		}

		return nil, errors.Wrap(err, "failed to find package by id")
	}

	return toPackageDomain(&packageM), nil
}

// List returns one page of packages matching filter.
func (repo *packageRepository) List(ctx context.Context, filter repository.PackageFilter) (*repository.Page[*entity.Package], error) {
	pagination := filter.Pagination.Normalize()

	var packageModels []*model.PackageModel

	query := applyPredicates(repo.db.WithContext(ctx).Model(&model.PackageModel{}), packagePredicates(filter))
	if err := query.
		Clauses(packageOrder(filter)).
		Offset(pagination.Page).
		Limit(pagination.Limit).
		Find(&packageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list packages")
	}

	packages := make([]*entity.Package, 0, len(packageModels))
	for _, packageM := range packageModels {
		packages = append(packages, toPackageDomain(packageM))
	}

	return repository.NewPage(packages, pagination), nil
}

// Create persists a new package.
func (repo *packageRepository) Create(ctx context.Context, pack *entity.Package) error {
	packageM := fromPackageDomain(pack)

	if err := repo.db.WithContext(ctx).Create(packageM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create package")
	}

	return nil
}

func (repo *packageRepository) ChangeStatusToDelivered(
	ctx context.Context,
	id, deliveryPersonID uuid.UUID,
	location entity.Location,
) (*entity.Package, error) {
	return repo.update(ctx, id, map[string]any{
		"status":             entity.PackageStatusDelivered.String(),
		"delivery_person_id": deliveryPersonID,
		"latitude":           location.Latitude,
		"longitude":          location.Longitude,
		"delivery_at":        repo.now(),
	})
}

func (repo *packageRepository) ChangeStatusToAvailablePickup(
	ctx context.Context,
	id uuid.UUID,
	photo entity.Photo,
	location entity.Location,
) (*entity.Package, error) {
	return repo.updateWithPhoto(ctx, id, entity.PackageStatusAvailablePickup, "available_pickup_at", photo, location)
}

func (repo *packageRepository) ChangeStatusToPickup(
	ctx context.Context,
	id uuid.UUID,
	photo entity.Photo,
	location entity.Location,
) (*entity.Package, error) {
	return repo.updateWithPhoto(ctx, id, entity.PackageStatusPickup, "pickup_at", photo, location)
}

func (repo *packageRepository) ChangeStatusToReturned(
	ctx context.Context,
	id uuid.UUID,
	photo entity.Photo,
	location entity.Location,
) (*entity.Package, error) {
	return repo.updateWithPhoto(ctx, id, entity.PackageStatusReturned, "returned_at", photo, location)
}

// Delete soft-deletes the package.
func (repo *packageRepository) Delete(ctx context.Context, id uuid.UUID) (*entity.Package, error) {
	return repo.update(ctx, id, map[string]any{
		"is_deleted": true,
		"deleted_at": repo.now(),
	})
}

func (repo *packageRepository) updateWithPhoto(
	ctx context.Context,
	id uuid.UUID,
	status entity.PackageStatus,
	timestampColumn string,
	photo entity.Photo,
	location entity.Location,
) (*entity.Package, error) {
	return repo.update(ctx, id, map[string]any{
		"status":        status.String(),
		"file_name":     photo.FileName,
		"file_type":     string(photo.FileType),
		"file_body":     photo.FileBody,
		"latitude":      location.Latitude,
		"longitude":     location.Longitude,
		timestampColumn: repo.now(),
	})
}

// update applies columns to a live package in one statement and returns the new row.
func (repo *packageRepository) update(ctx context.Context, id uuid.UUID, columns map[string]any) (*entity.Package, error) {
	var packageM model.PackageModel

	result := repo.db.WithContext(ctx).
		Model(&packageM).
		Clauses(clause.Returning{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(columns)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update package")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrPackageNotFound
	}

	return toPackageDomain(&packageM), nil
}

func toPackageDomain(data *model.PackageModel) *entity.Package {
	pack := &entity.Package{
		ID:                data.ID,
		ProductID:         data.ProductID,
		RecipientID:       data.RecipientID,
		DeliveryPersonID:  data.DeliveryPersonID,
		ProductQuantity:   data.ProductQuantity,
		Status:            entity.PackageStatus(data.Status),
		Location:          entity.Location{Latitude: data.Latitude, Longitude: data.Longitude},
		CreatedAt:         data.CreatedAt,
		DeliveryAt:        data.DeliveryAt,
		AvailablePickupAt: data.AvailablePickupAt,
		PickupAt:          data.PickupAt,
		ReturnedAt:        data.ReturnedAt,
		IsDeleted:         data.IsDeleted,
		DeletedAt:         data.DeletedAt,
	}

	if data.FileName != nil && data.FileType != nil {
		pack.Photo = &entity.Photo{
			FileName: *data.FileName,
			FileType: entity.FileType(*data.FileType),
			FileBody: data.FileBody,
		}
	}

	return pack
}

func fromPackageDomain(data *entity.Package) *model.PackageModel {
	packageM := &model.PackageModel{
		ID:                data.ID,
		ProductID:         data.ProductID,
		RecipientID:       data.RecipientID,
		DeliveryPersonID:  data.DeliveryPersonID,
		ProductQuantity:   data.ProductQuantity,
		Status:            data.Status.String(),
		Latitude:          data.Location.Latitude,
		Longitude:         data.Location.Longitude,
		CreatedAt:         data.CreatedAt,
		DeliveryAt:        data.DeliveryAt,
		AvailablePickupAt: data.AvailablePickupAt,
		PickupAt:          data.PickupAt,
		ReturnedAt:        data.ReturnedAt,
		IsDeleted:         data.IsDeleted,
		DeletedAt:         data.DeletedAt,
	}

	if data.Photo != nil {
		fileType := string(data.Photo.FileType)
		packageM.FileName = &data.Photo.FileName
		packageM.FileType = &fileType
		packageM.FileBody = data.Photo.FileBody
	}

	return packageM
}
