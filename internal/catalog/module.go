package catalog

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/bookbot/internal/adapter/books"
	"github.com/polkiloo/bookbot/internal/config"
)

// Module wires the catalog cache, scraper and tiered source.
var Module = fx.Options(
	fx.Provide(newFileCache),
	fx.Provide(newScraper),
	fx.Provide(newSource),
)

type cacheParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newFileCache(p cacheParams) *FileCache {
	return NewFileCache(p.Config.CacheFile, p.Logger)
}

type scraperParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newScraper(p scraperParams) (*Scraper, error) {
	return NewScraper(p.Config.CatalogBaseURL, p.Config.MaxCatalogPages, p.Config.ScrapeTimeout, p.Logger)
}

type sourceParams struct {
	fx.In

	Cache    *FileCache
	Scraper  *Scraper
	Fallback books.Client
	Logger   *slog.Logger
}

func newSource(p sourceParams) *Source {
	return NewSource(p.Cache, p.Scraper, p.Fallback, p.Logger)
}
