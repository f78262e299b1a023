package books

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/polkiloo/bookbot/internal/domain/model"
)

// Client exposes the fallback book search API.
type Client interface {
	Search(ctx context.Context, query string, limit int) ([]model.BookRecord, error)
}

// HTTPClient implements Client against a Google-Books-shaped volumes API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// Wire schema of the volumes API, reduced to the fields we map.
type volumesResponse struct {
	Items []volumeItem `json:"items"`
}

type volumeItem struct {
	VolumeInfo volumeInfo `json:"volumeInfo"`
	SaleInfo   saleInfo   `json:"saleInfo"`
}

type volumeInfo struct {
	Title               string               `json:"title"`
	Authors             []string             `json:"authors"`
	Description         string               `json:"description"`
	IndustryIdentifiers []industryIdentifier `json:"industryIdentifiers"`
	InfoLink            string               `json:"infoLink"`
	ImageLinks          imageLinks           `json:"imageLinks"`
}

type industryIdentifier struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}

type imageLinks struct {
	Thumbnail string `json:"thumbnail"`
}

type saleInfo struct {
	Saleability string       `json:"saleability"`
	RetailPrice *retailPrice `json:"retailPrice"`
}

type retailPrice struct {
	Amount float64 `json:"amount"`
}

// NewHTTPClient creates API client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse books api url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("books api url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Search queries the API by free text and maps results into BookRecords.
func (c *HTTPClient) Search(ctx context.Context, query string, limit int) ([]model.BookRecord, error) {
	endpoint := *c.baseURL
	params := endpoint.Query()
	params.Set("q", query)
	params.Set("maxResults", strconv.Itoa(limit))
	params.Set("langRestrict", "en")
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("books api request failed",
			slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("books api error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var data volumesResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, err
	}

	results := make([]model.BookRecord, 0, len(data.Items))
	for _, item := range data.Items {
		results = append(results, mapVolume(item))
		if len(results) == limit {
			break
		}
	}
	return results, nil
}

func mapVolume(item volumeItem) model.BookRecord {
	info := item.VolumeInfo
	sale := item.SaleInfo

	record := model.BookRecord{
		Title:   info.Title,
		Authors: joinAuthors(info.Authors),
		Price:   formatPrice(sale.RetailPrice),
		InStock: sale.Saleability == "FOR_SALE",
		URL:     info.InfoLink,
		Image:   info.ImageLinks.Thumbnail,
	}
	if record.Title == "" {
		record.Title = "Unknown Title"
	}
	if info.Description != "" {
		desc := info.Description
		record.Description = &desc
	}
	if isbn := pickISBN(info.IndustryIdentifiers); isbn != "" {
		record.ISBN = &isbn
	}
	return record
}

func joinAuthors(authors []string) string {
	if len(authors) == 0 {
		return model.UnknownAuthor
	}
	joined := authors[0]
	for _, a := range authors[1:] {
		joined += ", " + a
	}
	return joined
}

// pickISBN prefers ISBN-13, then ISBN-10.
func pickISBN(ids []industryIdentifier) string {
	var isbn10 string
	for _, id := range ids {
		switch id.Type {
		case "ISBN_13":
			return id.Identifier
		case "ISBN_10":
			if isbn10 == "" {
				isbn10 = id.Identifier
			}
		}
	}
	return isbn10
}

func formatPrice(price *retailPrice) string {
	if price == nil {
		return "N/A"
	}
	return fmt.Sprintf("£%.2f", price.Amount)
}
