package repository

import (
	"context"
	"errors"

	"parcel/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines persistence for the product catalog.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	Create(ctx context.Context, product *entity.Product) error

	// ListByName matches name case-insensitively as a substring.
	ListByName(ctx context.Context, name string, pagination Pagination) (*Page[*entity.Product], error)

	Delete(ctx context.Context, id uuid.UUID) error
}
