package catalog

import (
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/polkiloo/bookbot/internal/domain/model"
)

// cacheExpiry is the freshness window: older snapshots load as empty.
const cacheExpiry = 24 * time.Hour

// snapshot mirrors the on-disk cache file layout.
type snapshot struct {
	Books     []model.BookRecord `json:"books"`
	Timestamp *string            `json:"timestamp"`
	Count     int                `json:"count"`
}

// FileCache persists full catalog snapshots as a single JSON file.
// Every save replaces the previous snapshot; there are no merge semantics.
type FileCache struct {
	path   string
	logger *slog.Logger
	now    func() time.Time
}

// NewFileCache creates cache bound to the given file path.
func NewFileCache(path string, logger *slog.Logger) *FileCache {
	return &FileCache{path: path, logger: logger, now: time.Now}
}

// Load returns the cached records. A missing, corrupt or stale file is
// equivalent to an empty cache and never surfaces as an error.
func (c *FileCache) Load() []model.BookRecord {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if !os.IsNotExist(err) {
			c.logger.Error("cache load failed", slog.String("error", err.Error()))
		}
		return nil
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		c.logger.Error("cache parse failed", slog.String("error", err.Error()))
		return nil
	}

	if snap.Timestamp != nil {
		created, err := time.Parse(time.RFC3339, *snap.Timestamp)
		if err != nil {
			c.logger.Error("cache timestamp invalid", slog.String("error", err.Error()))
			return nil
		}
		if c.now().Sub(created) > cacheExpiry {
			return nil
		}
	}

	return snap.Books
}

// Save writes the full replacement snapshot with the current timestamp.
// Write failures are logged and swallowed so they never fail the caller.
func (c *FileCache) Save(books []model.BookRecord) {
	ts := c.now().Format(time.RFC3339)
	snap := snapshot{Books: books, Timestamp: &ts, Count: len(books)}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		c.logger.Error("cache encode failed", slog.String("error", err.Error()))
		return
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		c.logger.Error("cache save failed", slog.String("error", err.Error()))
	}
}
