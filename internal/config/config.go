package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Disabled turns off an optional feature when used as its value (REFRESH_CRON, SNAPSHOT_DB).
const Disabled = "off"

// Config contains runtime configuration values.
type Config struct {
	Port              string
	ContentAPIURL     string
	AllowedCategories []int
	PageSize          int
	SearchDebounce    time.Duration
	RequestTimeout    time.Duration
	RefreshCron       string
	SnapshotDB        string
	ImageCacheSize    int
	ImageCacheTTL     time.Duration
	MediaRPS          float64
	AdminToken        string
}

const (
	defaultPort              = "8080"
	defaultContentAPIURL     = "https://api.haakon.dev/wp-json/wp/v2"
	defaultAllowedCategories = "2,3"
	defaultPageSize          = 9
	defaultSearchDebounce    = 300 * time.Millisecond
	defaultTimeout           = 15 * time.Second
	defaultRefreshCron       = "@every 30m"
	defaultSnapshotDB        = "data/articles.db"
	defaultImageCacheSize    = 128
	defaultImageCacheTTL     = time.Hour
	defaultMediaRPS          = 5.0
)

// Load builds a Config from environment variables with sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getenvDefault("PORT", defaultPort),
		ContentAPIURL:  strings.TrimRight(getenvDefault("CONTENT_API_URL", defaultContentAPIURL), "/"),
		PageSize:       parseIntDefault("PAGE_SIZE", defaultPageSize),
		SearchDebounce: parseDurationDefault("SEARCH_DEBOUNCE", defaultSearchDebounce),
		RequestTimeout: parseDurationDefault("REQUEST_TIMEOUT", defaultTimeout),
		RefreshCron:    getenvDefault("REFRESH_CRON", defaultRefreshCron),
		SnapshotDB:     getenvDefault("SNAPSHOT_DB", defaultSnapshotDB),
		ImageCacheSize: parseIntDefault("IMAGE_CACHE_SIZE", defaultImageCacheSize),
		ImageCacheTTL:  parseDurationDefault("IMAGE_CACHE_TTL", defaultImageCacheTTL),
		MediaRPS:       parseFloatDefault("MEDIA_RPS", defaultMediaRPS),
		AdminToken:     os.Getenv("ADMIN_TOKEN"),
	}

	categories, err := parseCategories(getenvDefault("ALLOWED_CATEGORIES", defaultAllowedCategories))
	if err != nil {
		return nil, fmt.Errorf("ALLOWED_CATEGORIES: %w", err)
	}
	cfg.AllowedCategories = categories

	u, err := url.Parse(cfg.ContentAPIURL)
	if err != nil {
		return nil, fmt.Errorf("CONTENT_API_URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("CONTENT_API_URL: scheme must be http or https, got %q", u.Scheme)
	}

	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	if cfg.SearchDebounce < 0 {
		cfg.SearchDebounce = defaultSearchDebounce
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}
	if cfg.ImageCacheSize <= 0 {
		cfg.ImageCacheSize = defaultImageCacheSize
	}
	if cfg.MediaRPS <= 0 {
		cfg.MediaRPS = defaultMediaRPS
	}

	return cfg, nil
}

// RefreshEnabled reports whether the scheduled catalog refresh should run.
func (c *Config) RefreshEnabled() bool {
	return c.RefreshCron != "" && c.RefreshCron != Disabled
}

// SnapshotEnabled reports whether fetched collections are persisted to sqlite.
func (c *Config) SnapshotEnabled() bool {
	return c.SnapshotDB != "" && c.SnapshotDB != Disabled
}

func parseCategories(raw string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid category id %q", part)
		}
		out = append(out, id)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("at least one category is required")
	}
	return out, nil
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseIntDefault(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func parseFloatDefault(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
