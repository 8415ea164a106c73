package usecase

import (
	"context"

	"github.com/adonisdeptrai/r4bbit-sub001/internal/domain/model"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/domain/repository"
)

// OrdersUseCase exposes completed order records.
type OrdersUseCase struct {
	orders repository.OrderRepository
}

// NewOrdersUseCase constructs OrdersUseCase.
func NewOrdersUseCase(orders repository.OrderRepository) *OrdersUseCase {
	return &OrdersUseCase{orders: orders}
}

// ListByUser returns the user's orders sorted by creation time.
func (u *OrdersUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// List returns the most recent orders across all users.
func (u *OrdersUseCase) List(ctx context.Context, limit int) ([]model.Order, error) {
	if limit <= 0 {
		limit = 100
	}
	return u.orders.List(ctx, limit)
}
