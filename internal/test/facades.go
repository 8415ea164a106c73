package test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/adonisdeptrai/r4bbit-sub001/internal/domain/model"
)

// CatalogFacadeStub provides controllable behaviour for catalog endpoints.
type CatalogFacadeStub struct {
	ProductsFn func(context.Context) ([]model.Product, error)
	CreateFn   func(context.Context, *model.Product) (*model.Product, error)
	UpdateFn   func(context.Context, *model.Product) error
}

// Products returns predefined catalog entries.
func (s CatalogFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: 1, Title: "AutoFarm Script", Kind: model.ProductKindScript, Price: decimal.NewFromFloat(49.99), Active: true}}, nil
}

// CreateProduct delegates to override or echoes the product back.
func (s CatalogFacadeStub) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, product)
	}
	created := *product
	created.ID = 1
	return &created, nil
}

// UpdateProduct executes configured update handler.
func (s CatalogFacadeStub) UpdateProduct(ctx context.Context, product *model.Product) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, product)
	}
	return nil
}

// CartFacadeStub simulates cart operations.
type CartFacadeStub struct {
	ItemsFn  func(context.Context, int64) ([]model.CartLine, error)
	AddFn    func(context.Context, int64, int64, int) error
	RemoveFn func(context.Context, int64, int64) error
	ClearFn  func(context.Context, int64) error
}

// CartItems returns predefined cart contents.
func (s CartFacadeStub) CartItems(ctx context.Context, userID int64) ([]model.CartLine, error) {
	if s.ItemsFn != nil {
		return s.ItemsFn(ctx, userID)
	}
	return []model.CartLine{{Product: model.Product{ID: 1, Title: "AutoFarm Script", Price: decimal.NewFromFloat(49.99)}, Quantity: 1, AddedAt: time.Unix(0, 0)}}, nil
}

// AddToCart executes configured handler.
func (s CartFacadeStub) AddToCart(ctx context.Context, userID, productID int64, quantity int) error {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, productID, quantity)
	}
	return nil
}

// RemoveFromCart executes configured handler.
func (s CartFacadeStub) RemoveFromCart(ctx context.Context, userID, productID int64) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, userID, productID)
	}
	return nil
}

// ClearCart executes configured handler.
func (s CartFacadeStub) ClearCart(ctx context.Context, userID int64) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, userID)
	}
	return nil
}

// CheckoutFacadeStub simulates checkout session operations.
type CheckoutFacadeStub struct {
	CheckoutFn func(context.Context, int64) (model.CheckoutSession, error)
	DirectFn   func(context.Context, int64, int64, int) (model.CheckoutSession, error)
	SessionFn  func(context.Context, string, int64) (*model.SessionView, error)
	ConfirmFn  func(context.Context, string, int64, model.PaymentMethod, string) (model.CheckoutSession, error)
	CancelFn   func(context.Context, string, int64) error
}

func defaultSession(userID int64) model.CheckoutSession {
	return model.CheckoutSession{
		ID:          "sess-1",
		UserID:      userID,
		Items:       []model.CheckoutItem{{ProductID: 1, Title: "AutoFarm Script", Price: decimal.NewFromFloat(49.99), Quantity: 1}},
		Total:       decimal.NewFromFloat(49.99),
		PaymentCode: "R4B ABC234",
		State:       model.SessionStateOpen,
	}
}

// Checkout opens a default cart session.
func (s CheckoutFacadeStub) Checkout(ctx context.Context, userID int64) (model.CheckoutSession, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, userID)
	}
	sess := defaultSession(userID)
	sess.FromCart = true
	return sess, nil
}

// CheckoutDirect opens a default buy-now session.
func (s CheckoutFacadeStub) CheckoutDirect(ctx context.Context, userID, productID int64, quantity int) (model.CheckoutSession, error) {
	if s.DirectFn != nil {
		return s.DirectFn(ctx, userID, productID, quantity)
	}
	return defaultSession(userID), nil
}

// CheckoutSession returns the assembled view for the default session.
func (s CheckoutFacadeStub) CheckoutSession(ctx context.Context, id string, userID int64) (*model.SessionView, error) {
	if s.SessionFn != nil {
		return s.SessionFn(ctx, id, userID)
	}
	view := &model.SessionView{Session: defaultSession(userID)}
	view.Session.ID = id
	view.Countdown = "00:00"
	return view, nil
}

// ConfirmCheckout executes configured handler.
func (s CheckoutFacadeStub) ConfirmCheckout(ctx context.Context, id string, userID int64, method model.PaymentMethod, network string) (model.CheckoutSession, error) {
	if s.ConfirmFn != nil {
		return s.ConfirmFn(ctx, id, userID, method, network)
	}
	sess := defaultSession(userID)
	sess.ID = id
	sess.Method = method
	sess.State = model.SessionStateVerifying
	return sess, nil
}

// CancelCheckout executes configured handler.
func (s CheckoutFacadeStub) CancelCheckout(ctx context.Context, id string, userID int64) error {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, id, userID)
	}
	return nil
}

// OrdersFacadeStub serves configured order history.
type OrdersFacadeStub struct {
	OrdersFn    func(context.Context, int64) ([]model.Order, error)
	AllOrdersFn func(context.Context, int) ([]model.Order, error)
}

// Orders returns predefined orders for given user.
func (s OrdersFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{{ID: 1, DisplayID: "R4B-1A2B3C4D", UserID: userID, Amount: decimal.NewFromFloat(49.99), Status: model.OrderStatusCompleted, Method: "Bank Transfer (QR)"}}, nil
}

// AllOrders returns predefined orders for admin views.
func (s OrdersFacadeStub) AllOrders(ctx context.Context, limit int) ([]model.Order, error) {
	if s.AllOrdersFn != nil {
		return s.AllOrdersFn(ctx, limit)
	}
	return []model.Order{{ID: 1, DisplayID: "R4B-1A2B3C4D", UserID: 7, Amount: decimal.NewFromFloat(49.99), Status: model.OrderStatusCompleted, Method: "Binance Pay (Auto)"}}, nil
}

// SettingsFacadeStub serves payment configuration.
type SettingsFacadeStub struct {
	OptionsFn func(context.Context) (*model.PaymentSettings, error)
	UpdateFn  func(context.Context, *model.PaymentSettings) error
}

// PaymentOptions returns predefined settings.
func (s SettingsFacadeStub) PaymentOptions(ctx context.Context) (*model.PaymentSettings, error) {
	if s.OptionsFn != nil {
		return s.OptionsFn(ctx)
	}
	return &model.PaymentSettings{
		BankID:            "970436",
		BankAccountNumber: "0071000123456",
		BankAccountName:   "R4BBIT STORE",
		ExchangeRate:      decimal.NewFromInt(25000),
		CryptoNetworks:    []model.CryptoNetwork{{Name: "TRC20", Address: "TXyz123"}},
	}, nil
}

// UpdateSettings executes configured handler.
func (s SettingsFacadeStub) UpdateSettings(ctx context.Context, settings *model.PaymentSettings) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, settings)
	}
	return nil
}

// StoreFacadeStub aggregates facade dependencies for HTTP layer tests.
type StoreFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	CartFacadeStub
	CheckoutFacadeStub
	OrdersFacadeStub
	SettingsFacadeStub
}
