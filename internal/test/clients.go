package test

import (
	"context"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"github.com/adonisdeptrai/r4bbit-sub001/internal/domain/model"
)

// BankClientStub simulates the bank verification gateway.
type BankClientStub struct {
	VerifyFn func(context.Context, string, int64) (bool, error)
	Verified bool
	Err      error
	calls    int64
}

// Verify returns the configured outcome and counts invocations.
func (s *BankClientStub) Verify(ctx context.Context, paymentCode string, amountVND int64) (bool, error) {
	atomic.AddInt64(&s.calls, 1)
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, paymentCode, amountVND)
	}
	if s.Err != nil {
		return false, s.Err
	}
	return s.Verified, nil
}

// Calls returns the number of Verify invocations.
func (s *BankClientStub) Calls() int {
	return int(atomic.LoadInt64(&s.calls))
}

// BinanceClientStub simulates the Binance Pay service.
type BinanceClientStub struct {
	CreateFn func(context.Context, decimal.Decimal, string) (*model.RemoteOrder, error)
	StatusFn func(context.Context, string) (model.RemoteOrderStatus, error)

	Order       *model.RemoteOrder
	Status      model.RemoteOrderStatus
	CreateErr   error
	StatusErr   error
	statusCalls int64
}

// CreateOrder returns the configured remote order.
func (s *BinanceClientStub) CreateOrder(ctx context.Context, amount decimal.Decimal, productName string) (*model.RemoteOrder, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, amount, productName)
	}
	if s.CreateErr != nil {
		return nil, s.CreateErr
	}
	if s.Order != nil {
		return s.Order, nil
	}
	return &model.RemoteOrder{ID: "bp-1", Status: model.RemoteOrderStatusCreated, PayURL: "https://pay.example/bp-1"}, nil
}

// OrderStatus returns the configured status and counts invocations.
func (s *BinanceClientStub) OrderStatus(ctx context.Context, orderID string) (model.RemoteOrderStatus, error) {
	atomic.AddInt64(&s.statusCalls, 1)
	if s.StatusFn != nil {
		return s.StatusFn(ctx, orderID)
	}
	if s.StatusErr != nil {
		return "", s.StatusErr
	}
	if s.Status != "" {
		return s.Status, nil
	}
	return model.RemoteOrderStatusCreated, nil
}

// StatusCalls returns the number of OrderStatus invocations.
func (s *BinanceClientStub) StatusCalls() int {
	return int(atomic.LoadInt64(&s.statusCalls))
}
