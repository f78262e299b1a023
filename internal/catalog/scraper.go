package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/polkiloo/bookbot/internal/domain/model"
)

const scraperUserAgent = "Mozilla/5.0 (BookBot)"

// BookDetails is the partial record produced by a detail page fetch.
// Missing markup leaves fields at their zero value.
type BookDetails struct {
	Author      string
	ISBN        *string
	Description *string
}

// Scraper walks the paginated catalog listing and per-book detail pages.
type Scraper struct {
	baseURL    *url.URL
	httpClient *http.Client
	maxPages   int
	logger     *slog.Logger
}

// NewScraper creates scraper for the catalog site.
func NewScraper(baseURL string, maxPages int, timeout time.Duration, logger *slog.Logger) (*Scraper, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse catalog url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("catalog url must be absolute")
	}
	if maxPages <= 0 {
		maxPages = 1
	}
	return &Scraper{
		baseURL:    parsed,
		maxPages:   maxPages,
		logger:     logger,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// ScrapeCatalog fetches listing pages sequentially until the page cap,
// an empty page (end of catalog) or a fetch failure. It always returns
// whatever was collected so far.
func (s *Scraper) ScrapeCatalog(ctx context.Context) []model.BookRecord {
	var all []model.BookRecord

	for page := 1; page <= s.maxPages; page++ {
		pageURL := fmt.Sprintf("%s/catalogue/page-%d.html", strings.TrimRight(s.baseURL.String(), "/"), page)

		books, err := s.scrapePage(ctx, pageURL)
		if err != nil {
			s.logger.Error("catalog page scrape failed",
				slog.Int("page", page), slog.String("error", err.Error()))
			break
		}
		if len(books) == 0 {
			break
		}

		all = append(all, books...)
		s.logger.Info("catalog page scraped", slog.Int("page", page), slog.Int("books", len(books)))
	}

	s.logger.Info("catalog scrape finished", slog.Int("total", len(all)))
	return all
}

func (s *Scraper) scrapePage(ctx context.Context, pageURL string) ([]model.BookRecord, error) {
	doc, err := s.fetchDocument(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	var books []model.BookRecord
	doc.Find("article.product_pod").Each(func(_ int, pod *goquery.Selection) {
		link := pod.Find("h3 a")
		title := link.AttrOr("title", "")
		if title == "" {
			return
		}
		href := link.AttrOr("href", "")
		books = append(books, model.BookRecord{
			Title:   title,
			Price:   strings.TrimSpace(pod.Find("p.price_color").Text()),
			URL:     s.detailURL(href),
			Authors: model.UnknownAuthor,
			InStock: true,
		})
	})
	return books, nil
}

// FetchDetails loads a detail page and extracts author, ISBN (the site's UPC
// field) and description. Any failure yields an empty result, not an error,
// so callers can merge and continue.
func (s *Scraper) FetchDetails(ctx context.Context, pageURL string) BookDetails {
	var details BookDetails
	if pageURL == "" {
		return details
	}

	doc, err := s.fetchDocument(ctx, pageURL)
	if err != nil {
		s.logger.Error("detail fetch failed", slog.String("url", pageURL), slog.String("error", err.Error()))
		return details
	}

	doc.Find("th").Each(func(_ int, th *goquery.Selection) {
		value := strings.TrimSpace(th.Next().Text())
		if value == "" {
			return
		}
		switch strings.TrimSpace(th.Text()) {
		case "Author":
			details.Author = value
		case "UPC":
			isbn := value
			details.ISBN = &isbn
		}
	})

	if anchor := doc.Find("#product_description"); anchor.Length() > 0 {
		if text := strings.TrimSpace(anchor.NextFiltered("p").Text()); text != "" {
			details.Description = &text
		}
	}

	return details
}

func (s *Scraper) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", scraperUserAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}

func (s *Scraper) detailURL(href string) string {
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	return fmt.Sprintf("%s/catalogue/%s", strings.TrimRight(s.baseURL.String(), "/"), strings.TrimPrefix(href, "/"))
}
