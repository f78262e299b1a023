package catalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/polkiloo/bookbot/internal/domain/model"
)

// Cache abstracts the snapshot cache used by the source.
type Cache interface {
	Load() []model.BookRecord
	Save(books []model.BookRecord)
}

// SiteScraper abstracts the listing/detail scraper.
type SiteScraper interface {
	ScrapeCatalog(ctx context.Context) []model.BookRecord
	FetchDetails(ctx context.Context, pageURL string) BookDetails
}

// FallbackAPI abstracts the external search API used when the catalog
// yields nothing.
type FallbackAPI interface {
	Search(ctx context.Context, query string, limit int) ([]model.BookRecord, error)
}

// Source answers catalog queries through a tiered lookup:
// cache, then a fresh scrape, then the fallback API. An empty result is the
// only failure signal callers ever see.
type Source struct {
	cache    Cache
	scraper  SiteScraper
	fallback FallbackAPI
	logger   *slog.Logger
}

// NewSource constructs the tiered catalog source.
func NewSource(cache Cache, scraper SiteScraper, fallback FallbackAPI, logger *slog.Logger) *Source {
	return &Source{cache: cache, scraper: scraper, fallback: fallback, logger: logger}
}

// Search returns up to limit records whose title contains query,
// case-insensitively. The fallback API path is exempt from the substring
// guarantee: it ranks by its own relevance.
func (s *Source) Search(ctx context.Context, query string, limit int) []model.BookRecord {
	if limit <= 0 {
		return nil
	}

	if matches := filterByTitle(s.cache.Load(), query, limit); len(matches) > 0 {
		return matches
	}

	s.logger.Info("cache miss, refreshing catalog", slog.String("query", query))
	if books := s.scraper.ScrapeCatalog(ctx); len(books) > 0 {
		s.cache.Save(books)
		if matches := filterByTitle(books, query, limit); len(matches) > 0 {
			s.enrich(ctx, matches)
			return matches
		}
	}

	s.logger.Info("falling back to books API", slog.String("query", query))
	results, err := s.fallback.Search(ctx, query, limit)
	if err != nil {
		s.logger.Error("books API search failed", slog.String("error", err.Error()))
		return nil
	}
	return results
}

// enrich merges detail page fields into bare listing records. Fetch failures
// leave the placeholders untouched and never abort remaining records.
func (s *Source) enrich(ctx context.Context, books []model.BookRecord) {
	for i := range books {
		if books[i].Authors != model.UnknownAuthor && books[i].ISBN != nil {
			continue
		}
		details := s.scraper.FetchDetails(ctx, books[i].URL)
		if details.Author != "" && books[i].Authors == model.UnknownAuthor {
			books[i].Authors = details.Author
		}
		if details.ISBN != nil && books[i].ISBN == nil {
			books[i].ISBN = details.ISBN
		}
		if details.Description != nil && books[i].Description == nil {
			books[i].Description = details.Description
		}
	}
}

func filterByTitle(books []model.BookRecord, query string, limit int) []model.BookRecord {
	needle := strings.ToLower(query)
	var matches []model.BookRecord
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), needle) {
			matches = append(matches, b)
			if len(matches) == limit {
				break
			}
		}
	}
	return matches
}
