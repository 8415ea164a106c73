package bank

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/adonisdeptrai/r4bbit-sub001/internal/config"
)

// Module exposes bank gateway client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.BankGatewayAddress, p.Logger)
}
