package llm

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/bookbot/internal/config"
)

// Module exposes reply generator implementation to fx graph.
var Module = fx.Provide(newGenerator)

type generatorParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newGenerator(p generatorParams) Generator {
	return NewHTTPClient(p.Config.LLMAddress, p.Config.LLMAPIKey, p.Config.LLMModel, p.Config.GenerateTimeout, p.Logger)
}
