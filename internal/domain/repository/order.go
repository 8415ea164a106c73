package repository

import (
	"context"

	"github.com/adonisdeptrai/r4bbit-sub001/internal/domain/model"
)

// OrderRepository describes persistence operations with completed orders.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	List(ctx context.Context, limit int) ([]model.Order, error)
}
