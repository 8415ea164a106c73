package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/adonisdeptrai/r4bbit-sub001/internal/domain/errors"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/domain/model"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/domain/repository"
)

// CatalogUseCase manages the product catalog.
type CatalogUseCase struct {
	products repository.ProductRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

// ListActive returns products available for purchase.
func (u *CatalogUseCase) ListActive(ctx context.Context) ([]model.Product, error) {
	return u.products.ListActive(ctx)
}

// GetByID fetches a single product.
func (u *CatalogUseCase) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// Create adds a product after validating its fields.
func (u *CatalogUseCase) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	return u.products.Create(ctx, product)
}

// Update modifies an existing product.
func (u *CatalogUseCase) Update(ctx context.Context, product *model.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	return u.products.Update(ctx, product)
}

func validateProduct(product *model.Product) error {
	product.Title = strings.TrimSpace(product.Title)
	if product.Title == "" {
		return domainErrors.ErrInvalidProduct
	}
	if !product.Price.IsPositive() {
		return domainErrors.ErrInvalidProduct
	}
	switch product.Kind {
	case model.ProductKindScript, model.ProductKindLicenseKey, model.ProductKindCourse:
	default:
		return domainErrors.ErrInvalidProduct
	}
	return nil
}
