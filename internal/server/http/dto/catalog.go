package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest describes a product create/update payload.
type ProductRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Kind        string          `json:"kind"`
	Price       decimal.Decimal `json:"price"`
	Active      bool            `json:"active"`
}

// ProductResponse describes a catalog product entry.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Kind        string          `json:"kind"`
	Price       decimal.Decimal `json:"price"`
	PriceLabel  string          `json:"price_label"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
}
