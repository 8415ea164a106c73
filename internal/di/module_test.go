package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/adonisdeptrai/r4bbit-sub001/internal/adapter/bank"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/adapter/binance"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/app"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/config"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/domain/repository"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/storage/postgres"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:          ":0",
		DatabaseURI:         "postgres://stub",
		BankGatewayAddress:  "http://localhost",
		BinanceAPIAddress:   "http://localhost",
		JWTSecret:           "secret",
		BankPollInterval:    time.Millisecond,
		BinancePollInterval: time.Millisecond,
		VerifyTimeout:       time.Second,
		SessionTTL:          time.Hour,
		ReapInterval:        time.Millisecond,
		ShutdownTimeout:     time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	productRepo := &test.ProductRepositoryStub{}
	cartRepo := test.NewCartRepositoryStub()
	orderRepo := &test.OrderRepositoryStub{}
	settingsRepo := &test.SettingsRepositoryStub{}
	bankStub := &test.BankClientStub{}
	binanceStub := &test.BinanceClientStub{}

	var facade *app.StoreFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.ProductRepository(productRepo)),
			fx.Replace(repository.CartRepository(cartRepo)),
			fx.Replace(repository.OrderRepository(orderRepo)),
			fx.Replace(repository.SettingsRepository(settingsRepo)),
			fx.Replace(bank.Client(bankStub)),
			fx.Replace(binance.Client(binanceStub)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected store facade instance")
	}
}
