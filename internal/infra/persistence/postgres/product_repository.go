package postgres

import (
	"context"
	"strings"

	"parcel/internal/domain/entity"
	domainerrors "parcel/internal/domain/errors"
	"parcel/internal/domain/repository"
	"parcel/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if err := repo.db.WithContext(ctx).Create(fromProductDomain(product)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	return nil
}

// ListByName matches name case-insensitively anywhere in the product name.
func (repo *productRepository) ListByName(ctx context.Context, name string, pagination repository.Pagination) (*repository.Page[*entity.Product], error) {
	pagination = pagination.Normalize()

	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+escapeLike(name)+"%").
		Order("created_at ASC").
		Order("id ASC").
		Offset(pagination.Page).
		Limit(pagination.Limit).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products by name")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return repository.NewPage(products, pagination), nil
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// escapeLike escapes the LIKE wildcards of s.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Location:    entity.Location{Latitude: data.Latitude, Longitude: data.Longitude},
		CreatedAt:   data.CreatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Latitude:    data.Location.Latitude,
		Longitude:   data.Location.Longitude,
		CreatedAt:   data.CreatedAt,
	}
}
