package usecase

import (
	"context"

	domainErrors "github.com/adonisdeptrai/r4bbit-sub001/internal/domain/errors"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/domain/model"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/domain/repository"
)

// CartUseCase manages per-user cart contents.
type CartUseCase struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository, products repository.ProductRepository) *CartUseCase {
	return &CartUseCase{carts: carts, products: products}
}

// Add puts quantity units of a product into the user's cart. The product must
// exist and be active.
func (u *CartUseCase) Add(ctx context.Context, userID, productID int64, quantity int) error {
	if quantity <= 0 {
		quantity = 1
	}

	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if !product.Active {
		return domainErrors.ErrNotFound
	}

	return u.carts.Add(ctx, userID, productID, quantity)
}

// List returns the user's cart lines with product data attached.
func (u *CartUseCase) List(ctx context.Context, userID int64) ([]model.CartLine, error) {
	return u.carts.ListByUser(ctx, userID)
}

// Remove drops one product from the cart.
func (u *CartUseCase) Remove(ctx context.Context, userID, productID int64) error {
	return u.carts.Remove(ctx, userID, productID)
}

// Clear empties the cart.
func (u *CartUseCase) Clear(ctx context.Context, userID int64) error {
	return u.carts.Clear(ctx, userID)
}
