package usecase

import (
	"context"

	"parcel/internal/domain/entity"
	"parcel/internal/domain/repository"
)

// CreateProductInput defines a new catalog item.
type CreateProductInput struct {
	Name        string
	Description string
	Location    entity.Location
}

// FetchProductsInput searches the catalog by name.
type FetchProductsInput struct {
	Name       string
	Pagination repository.Pagination
}

// ProductUsecase defines the catalog operations.
type ProductUsecase interface {
	Create(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	FetchByName(ctx context.Context, input *FetchProductsInput) (*repository.Page[*entity.Product], error)
}
