package app

import (
	"context"
	"errors"

	domainErrors "github.com/adonisdeptrai/r4bbit-sub001/internal/domain/errors"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/domain/model"
	pkgAuth "github.com/adonisdeptrai/r4bbit-sub001/internal/pkg/auth"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/usecase"
)

// StoreFacade aggregates the use cases into the single surface consumed by
// the HTTP layer.
type StoreFacade struct {
	auth     *usecase.AuthUseCase
	catalog  *usecase.CatalogUseCase
	cart     *usecase.CartUseCase
	checkout *usecase.CheckoutUseCase
	orders   *usecase.OrdersUseCase
	settings *usecase.SettingsUseCase
}

// NewStoreFacade constructs the facade.
func NewStoreFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	cart *usecase.CartUseCase,
	checkout *usecase.CheckoutUseCase,
	orders *usecase.OrdersUseCase,
	settings *usecase.SettingsUseCase,
) *StoreFacade {
	return &StoreFacade{
		auth:     auth,
		catalog:  catalog,
		cart:     cart,
		checkout: checkout,
		orders:   orders,
		settings: settings,
	}
}

func (f *StoreFacade) Register(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password)
	return token, err
}

func (f *StoreFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *StoreFacade) ParseToken(token string) (pkgAuth.Claims, error) {
	return f.auth.ParseToken(token)
}

func (f *StoreFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.catalog.ListActive(ctx)
}

func (f *StoreFacade) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	return f.catalog.Create(ctx, product)
}

func (f *StoreFacade) UpdateProduct(ctx context.Context, product *model.Product) error {
	return f.catalog.Update(ctx, product)
}

func (f *StoreFacade) CartItems(ctx context.Context, userID int64) ([]model.CartLine, error) {
	return f.cart.List(ctx, userID)
}

func (f *StoreFacade) AddToCart(ctx context.Context, userID, productID int64, quantity int) error {
	return f.cart.Add(ctx, userID, productID, quantity)
}

func (f *StoreFacade) RemoveFromCart(ctx context.Context, userID, productID int64) error {
	return f.cart.Remove(ctx, userID, productID)
}

func (f *StoreFacade) ClearCart(ctx context.Context, userID int64) error {
	return f.cart.Clear(ctx, userID)
}

func (f *StoreFacade) Checkout(ctx context.Context, userID int64) (model.CheckoutSession, error) {
	return f.checkout.CreateFromCart(ctx, userID)
}

func (f *StoreFacade) CheckoutDirect(ctx context.Context, userID, productID int64, quantity int) (model.CheckoutSession, error) {
	return f.checkout.CreateDirect(ctx, userID, productID, quantity)
}

func (f *StoreFacade) CheckoutSession(ctx context.Context, id string, userID int64) (*model.SessionView, error) {
	return f.checkout.Session(ctx, id, userID)
}

func (f *StoreFacade) ConfirmCheckout(ctx context.Context, id string, userID int64, method model.PaymentMethod, network string) (model.CheckoutSession, error) {
	return f.checkout.Confirm(ctx, id, userID, method, network)
}

func (f *StoreFacade) CancelCheckout(ctx context.Context, id string, userID int64) error {
	return f.checkout.Cancel(ctx, id, userID)
}

func (f *StoreFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *StoreFacade) AllOrders(ctx context.Context, limit int) ([]model.Order, error) {
	return f.orders.List(ctx, limit)
}

// PaymentOptions returns current payment settings, falling back to an empty
// record when none was saved yet.
func (f *StoreFacade) PaymentOptions(ctx context.Context) (*model.PaymentSettings, error) {
	settings, err := f.settings.Get(ctx)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return &model.PaymentSettings{}, nil
		}
		return nil, err
	}
	return settings, nil
}

func (f *StoreFacade) UpdateSettings(ctx context.Context, settings *model.PaymentSettings) error {
	return f.settings.Update(ctx, settings)
}
