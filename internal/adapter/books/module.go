package books

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/bookbot/internal/config"
)

// Module exposes books API client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.BooksAPIAddress, p.Logger)
}
