package handlers

import (
	"context"

	"github.com/adonisdeptrai/r4bbit-sub001/internal/domain/model"
	pkgAuth "github.com/adonisdeptrai/r4bbit-sub001/internal/pkg/auth"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (pkgAuth.Claims, error)
}

// CatalogFacade exposes the product catalog.
type CatalogFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) error
}

// CartFacade exposes per-user cart operations.
type CartFacade interface {
	CartItems(ctx context.Context, userID int64) ([]model.CartLine, error)
	AddToCart(ctx context.Context, userID, productID int64, quantity int) error
	RemoveFromCart(ctx context.Context, userID, productID int64) error
	ClearCart(ctx context.Context, userID int64) error
}

// CheckoutFacade drives checkout sessions and payment confirmation.
type CheckoutFacade interface {
	Checkout(ctx context.Context, userID int64) (model.CheckoutSession, error)
	CheckoutDirect(ctx context.Context, userID, productID int64, quantity int) (model.CheckoutSession, error)
	CheckoutSession(ctx context.Context, id string, userID int64) (*model.SessionView, error)
	ConfirmCheckout(ctx context.Context, id string, userID int64, method model.PaymentMethod, network string) (model.CheckoutSession, error)
	CancelCheckout(ctx context.Context, id string, userID int64) error
}

// OrdersFacade exposes completed order records.
type OrdersFacade interface {
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	AllOrders(ctx context.Context, limit int) ([]model.Order, error)
}

// SettingsFacade exposes the payment configuration.
type SettingsFacade interface {
	PaymentOptions(ctx context.Context) (*model.PaymentSettings, error)
	UpdateSettings(ctx context.Context, settings *model.PaymentSettings) error
}

// StoreFacade aggregates the full set of operations used across handlers.
type StoreFacade interface {
	AuthFacade
	CatalogFacade
	CartFacade
	CheckoutFacade
	OrdersFacade
	SettingsFacade
}
