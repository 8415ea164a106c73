package di

import (
	"go.uber.org/fx"

	"github.com/adonisdeptrai/r4bbit-sub001/internal/adapter/bank"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/adapter/binance"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/app"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/config"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/logger"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/pkg/auth"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/server/http/handlers"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/server/http/router"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/session"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/storage/postgres"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		bank.Module,
		binance.Module,
		session.Module,
		usecase.Module,
		fx.Provide(func(f *app.StoreFacade) handlers.StoreFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
