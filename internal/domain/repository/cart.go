package repository

import (
	"context"

	"github.com/adonisdeptrai/r4bbit-sub001/internal/domain/model"
)

// CartRepository describes persistence operations with per-user cart rows.
type CartRepository interface {
	Add(ctx context.Context, userID, productID int64, quantity int) error
	ListByUser(ctx context.Context, userID int64) ([]model.CartLine, error)
	Remove(ctx context.Context, userID, productID int64) error
	Clear(ctx context.Context, userID int64) error
}
