package session

import (
	"go.uber.org/fx"

	"github.com/adonisdeptrai/r4bbit-sub001/internal/config"
)

// Module wires the in-memory session store for fx graphs.
var Module = fx.Provide(func(cfg *config.Config) *Store {
	return New(cfg.SessionTTL)
})
