package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderResponse describes a completed order record.
type OrderResponse struct {
	OrderID   string          `json:"order_id"`
	Summary   string          `json:"summary"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	Method    string          `json:"method"`
	CreatedAt time.Time       `json:"created_at"`
}

// AdminOrderResponse extends the order record with ownership data.
type AdminOrderResponse struct {
	OrderResponse
	UserID int64 `json:"user_id"`
}
