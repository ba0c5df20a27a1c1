package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "parcel/internal/delivery/context"
	"parcel/internal/domain/entity"
	domainerrors "parcel/internal/domain/errors"
	"parcel/internal/domain/repository"
	"parcel/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewProductService creates a new product service instance
func NewProductService(productRepo repository.ProductRepository, logger *slog.Logger) usecase.ProductUsecase {
	return &productService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create adds an item to the catalog.
func (s *productService) Create(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ParamsNotProvided("name")
	}
	if !input.Location.IsValid() {
		return nil, domainerrors.InvalidFormat("location")
	}

	product := &entity.Product{
		ID:          uuid.New(),
		Name:        name,
		Description: input.Description,
		Location:    input.Location,
		CreatedAt:   time.Now(),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Product created",
		slog.String("product_id", product.ID.String()),
		slog.String("name", product.Name),
	)

	return product, nil
}

// FetchByName searches the catalog by a case-insensitive name fragment.
func (s *productService) FetchByName(ctx context.Context, input *usecase.FetchProductsInput) (*repository.Page[*entity.Product], error) {
	page, err := s.productRepo.ListByName(ctx, strings.TrimSpace(input.Name), input.Pagination.Normalize())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return page, nil
}
