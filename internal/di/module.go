package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/bookbot/internal/adapter/books"
	"github.com/polkiloo/bookbot/internal/adapter/llm"
	"github.com/polkiloo/bookbot/internal/app"
	"github.com/polkiloo/bookbot/internal/bot"
	"github.com/polkiloo/bookbot/internal/catalog"
	"github.com/polkiloo/bookbot/internal/config"
	"github.com/polkiloo/bookbot/internal/courier"
	"github.com/polkiloo/bookbot/internal/logger"
	"github.com/polkiloo/bookbot/internal/server/http/handlers"
	"github.com/polkiloo/bookbot/internal/server/http/router"
	"github.com/polkiloo/bookbot/internal/session"
	"github.com/polkiloo/bookbot/internal/storage/postgres"
	"github.com/polkiloo/bookbot/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		books.Module,
		llm.Module,
		courier.Module,
		session.Module,
		catalog.Module,
		usecase.Module,
		bot.Module,
		app.Module,
		fx.Provide(func(f *app.StorefrontFacade) handlers.StorefrontFacade { return f }),
		router.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
