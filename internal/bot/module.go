package bot

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/bookbot/internal/adapter/llm"
	"github.com/polkiloo/bookbot/internal/catalog"
	"github.com/polkiloo/bookbot/internal/config"
	"github.com/polkiloo/bookbot/internal/courier"
	"github.com/polkiloo/bookbot/internal/session"
	"github.com/polkiloo/bookbot/internal/usecase"
)

// Module wires the dialogue engine.
var Module = fx.Provide(newEngine)

type engineParams struct {
	fx.In

	Source   *catalog.Source
	Orders   *usecase.OrderUseCase
	Courier  courier.Booker
	Replies  llm.Generator
	Sessions *session.Store
	Config   *config.Config
	Logger   *slog.Logger
}

func newEngine(p engineParams) *Engine {
	return NewEngine(p.Source, p.Orders, p.Courier, p.Replies, p.Sessions, p.Config.SearchLimit, p.Logger)
}
