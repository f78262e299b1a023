package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	CatalogBaseURL  string
	BooksAPIAddress string
	LLMAddress      string
	LLMAPIKey       string
	LLMModel        string
	CacheFile       string

	MaxCatalogPages int
	SearchLimit     int
	ScrapeTimeout   time.Duration
	GenerateTimeout time.Duration
	SessionTTL      time.Duration

	ShipmentPollInterval time.Duration
	WorkerPoolSize       int
	MaxShipmentBatch     int
	ShutdownTimeout      time.Duration
}

const (
	defaultRunAddress           = ":8080"
	defaultCatalogBaseURL       = "https://books.toscrape.com"
	defaultBooksAPIAddress      = "https://www.googleapis.com/books/v1/volumes"
	defaultLLMAddress           = "https://openrouter.ai/api/v1/chat/completions"
	defaultLLMModel             = "openrouter/auto"
	defaultCacheFile            = "book_cache.json"
	defaultMaxCatalogPages      = 5
	defaultSearchLimit          = 3
	defaultScrapeTimeout        = 10 * time.Second
	defaultGenerateTimeout      = 15 * time.Second
	defaultSessionTTL           = 30 * time.Minute
	defaultShipmentPollInterval = 30 * time.Second
	defaultWorkerPoolSize       = 2
	defaultMaxShipmentBatch     = 16
	defaultShutdownTimeout      = 10 * time.Second
)

// Load parses configuration from a local .env file (if present), the
// environment and flags.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:           getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:          getString(lookup, "DATABASE_URI", ""),
		CatalogBaseURL:       getString(lookup, "CATALOG_BASE_URL", defaultCatalogBaseURL),
		BooksAPIAddress:      getString(lookup, "BOOKS_API_ADDRESS", defaultBooksAPIAddress),
		LLMAddress:           getString(lookup, "LLM_ADDRESS", defaultLLMAddress),
		LLMAPIKey:            getString(lookup, "LLM_API_KEY", ""),
		LLMModel:             getString(lookup, "LLM_MODEL", defaultLLMModel),
		CacheFile:            getString(lookup, "CACHE_FILE", defaultCacheFile),
		MaxCatalogPages:      getInt(lookup, "MAX_CATALOG_PAGES", defaultMaxCatalogPages),
		SearchLimit:          getInt(lookup, "SEARCH_LIMIT", defaultSearchLimit),
		ScrapeTimeout:        getDuration(lookup, "SCRAPE_TIMEOUT", defaultScrapeTimeout),
		GenerateTimeout:      getDuration(lookup, "GENERATE_TIMEOUT", defaultGenerateTimeout),
		SessionTTL:           getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		ShipmentPollInterval: getDuration(lookup, "SHIPMENT_POLL_INTERVAL", defaultShipmentPollInterval),
		WorkerPoolSize:       getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		MaxShipmentBatch:     getInt(lookup, "SHIPMENT_BATCH_SIZE", defaultMaxShipmentBatch),
		ShutdownTimeout:      getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("bookbot", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		scrapeTimeoutStr   = cfg.ScrapeTimeout.String()
		generateTimeoutStr = cfg.GenerateTimeout.String()
		sessionTTLStr      = cfg.SessionTTL.String()
		pollIntervalStr    = cfg.ShipmentPollInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.CatalogBaseURL, "catalog-url", cfg.CatalogBaseURL, "Catalog site base URL")
	fs.StringVar(&cfg.BooksAPIAddress, "books-api", cfg.BooksAPIAddress, "Fallback books API URL")
	fs.StringVar(&cfg.LLMAddress, "llm-url", cfg.LLMAddress, "Chat completions endpoint")
	fs.StringVar(&cfg.LLMModel, "llm-model", cfg.LLMModel, "Chat completions model name")
	fs.StringVar(&cfg.CacheFile, "cache-file", cfg.CacheFile, "Catalog snapshot cache file")
	fs.IntVar(&cfg.MaxCatalogPages, "max-pages", cfg.MaxCatalogPages, "Maximum catalog listing pages to scrape")
	fs.IntVar(&cfg.SearchLimit, "search-limit", cfg.SearchLimit, "Maximum search results per query")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent shipment workers")
	fs.IntVar(&cfg.MaxShipmentBatch, "shipment-batch", cfg.MaxShipmentBatch, "Maximum orders per shipment sweep")
	fs.StringVar(&scrapeTimeoutStr, "scrape-timeout", scrapeTimeoutStr, "Per-request scrape timeout")
	fs.StringVar(&generateTimeoutStr, "generate-timeout", generateTimeoutStr, "Reply generation timeout")
	fs.StringVar(&sessionTTLStr, "session-ttl", sessionTTLStr, "Idle conversation eviction window")
	fs.StringVar(&pollIntervalStr, "shipment-poll", pollIntervalStr, "Interval between shipment sweeps")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ScrapeTimeout, err = time.ParseDuration(scrapeTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid scrape timeout: %w", err)
	}
	if cfg.GenerateTimeout, err = time.ParseDuration(generateTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid generate timeout: %w", err)
	}
	if cfg.SessionTTL, err = time.ParseDuration(sessionTTLStr); err != nil {
		return nil, fmt.Errorf("invalid session ttl: %w", err)
	}
	if cfg.ShipmentPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid shipment poll interval: %w", err)
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if keyFile, ok := lookup("LLM_API_KEY_FILE"); ok && keyFile != "" {
		content, err := os.ReadFile(keyFile)
		if err != nil {
			return nil, fmt.Errorf("read llm api key file: %w", err)
		}
		cfg.LLMAPIKey = string(content)
	}

	if cfg.MaxCatalogPages <= 0 {
		cfg.MaxCatalogPages = defaultMaxCatalogPages
	}
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = defaultSearchLimit
	}
	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}
	if cfg.MaxShipmentBatch <= 0 {
		cfg.MaxShipmentBatch = defaultMaxShipmentBatch
	}
	if cfg.ScrapeTimeout <= 0 {
		cfg.ScrapeTimeout = defaultScrapeTimeout
	}
	if cfg.GenerateTimeout <= 0 {
		cfg.GenerateTimeout = defaultGenerateTimeout
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	if cfg.ShipmentPollInterval <= 0 {
		cfg.ShipmentPollInterval = defaultShipmentPollInterval
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
