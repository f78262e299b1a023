package session

import (
	"go.uber.org/fx"

	"github.com/polkiloo/bookbot/internal/config"
)

// Module wires the session store for dependency injection.
var Module = fx.Provide(newStore)

func newStore(cfg *config.Config) *Store {
	return NewStore(cfg.SessionTTL)
}
