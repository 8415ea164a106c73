package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes completed order record state.
type OrderStatus string

const (
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusRefunded  OrderStatus = "REFUNDED"
)

// Order is the durable record created once a payment is confirmed.
type Order struct {
	ID             int64
	DisplayID      string
	UserID         int64
	ProductSummary string
	Amount         decimal.Decimal
	Status         OrderStatus
	Method         string
	CreatedAt      time.Time
}
