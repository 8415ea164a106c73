package app

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/adonisdeptrai/r4bbit-sub001/internal/config"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/domain/model"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/session"
	testhelpers "github.com/adonisdeptrai/r4bbit-sub001/internal/test"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/usecase"
)

func newTestFacade() (*StoreFacade, *testhelpers.CartRepositoryStub, *testhelpers.OrderRepositoryStub) {
	users := testhelpers.NewUserRepositoryStub()
	products := &testhelpers.ProductRepositoryStub{Products: []model.Product{
		{ID: 1, Title: "AutoFarm Script", Price: decimal.NewFromFloat(49.99), Active: true},
	}}
	carts := testhelpers.NewCartRepositoryStub()
	orders := &testhelpers.OrderRepositoryStub{}
	settings := &testhelpers.SettingsRepositoryStub{Settings: &model.PaymentSettings{
		BankID:            "970436",
		BankAccountNumber: "0071000123456",
		ExchangeRate:      decimal.NewFromInt(25000),
		CryptoNetworks:    []model.CryptoNetwork{{Name: "TRC20", Address: "TXyz123"}},
	}}

	cfg := &config.Config{
		BankPollInterval:    2 * time.Millisecond,
		BinancePollInterval: 2 * time.Millisecond,
		VerifyTimeout:       time.Second,
		SessionTTL:          time.Hour,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	store := session.New(cfg.SessionTTL)

	facade := NewStoreFacade(
		usecase.NewAuthUseCase(users, testhelpers.HasherStub{}, testhelpers.StrategyStub{}),
		usecase.NewCatalogUseCase(products),
		usecase.NewCartUseCase(carts, products),
		usecase.NewCheckoutUseCase(store, carts, products, orders, settings, &testhelpers.BankClientStub{}, &testhelpers.BinanceClientStub{}, cfg, logger),
		usecase.NewOrdersUseCase(orders),
		usecase.NewSettingsUseCase(settings),
	)
	return facade, carts, orders
}

func TestFacadeRegisterAndParseToken(t *testing.T) {
	facade, _, _ := newTestFacade()

	token, err := facade.Register(context.Background(), "alice", "password")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}

	claims, err := facade.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != 1 {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestFacadeCheckoutFlow(t *testing.T) {
	facade, carts, orders := newTestFacade()
	ctx := context.Background()

	if err := facade.AddToCart(ctx, 7, 1, 1); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}
	// cart stub tracks product id only; attach a price so totals are real
	carts.Lines[7][0].Product.Price = decimal.NewFromFloat(49.99)
	carts.Lines[7][0].Product.Title = "AutoFarm Script"

	sess, err := facade.Checkout(ctx, 7)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	view, err := facade.CheckoutSession(ctx, sess.ID, 7)
	if err != nil {
		t.Fatalf("session view failed: %v", err)
	}
	if view.Bank == nil {
		t.Fatal("expected bank instructions")
	}

	updated, err := facade.ConfirmCheckout(ctx, sess.ID, 7, model.PaymentMethodCrypto, "TRC20")
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if updated.State != model.SessionStateCompleted {
		t.Fatalf("expected COMPLETED, got %s", updated.State)
	}
	if orders.CreatedCount() != 1 {
		t.Fatalf("expected one order record, got %d", orders.CreatedCount())
	}
}

func TestFacadePaymentOptionsFallback(t *testing.T) {
	facade, _, _ := newTestFacade()

	settings, err := facade.PaymentOptions(context.Background())
	if err != nil {
		t.Fatalf("payment options failed: %v", err)
	}
	if !settings.BankConfigured() {
		t.Fatal("expected configured bank settings")
	}
}
