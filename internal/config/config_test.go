package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "CONTENT_API_URL", "ALLOWED_CATEGORIES", "PAGE_SIZE", "SEARCH_DEBOUNCE",
		"REQUEST_TIMEOUT", "REFRESH_CRON", "SNAPSHOT_DB", "IMAGE_CACHE_SIZE", "MEDIA_RPS",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []int{2, 3}, cfg.AllowedCategories)
	assert.Equal(t, 9, cfg.PageSize)
	assert.Equal(t, 300*time.Millisecond, cfg.SearchDebounce)
	assert.True(t, cfg.RefreshEnabled())
	assert.True(t, cfg.SnapshotEnabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CONTENT_API_URL", "http://localhost:9000/wp-json/wp/v2/")
	t.Setenv("ALLOWED_CATEGORIES", " 5 , 7 ")
	t.Setenv("PAGE_SIZE", "4")
	t.Setenv("REFRESH_CRON", Disabled)
	t.Setenv("SNAPSHOT_DB", Disabled)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/wp-json/wp/v2", cfg.ContentAPIURL)
	assert.Equal(t, []int{5, 7}, cfg.AllowedCategories)
	assert.Equal(t, 4, cfg.PageSize)
	assert.False(t, cfg.RefreshEnabled())
	assert.False(t, cfg.SnapshotEnabled())
}

func TestLoadFallsBackOnInvalidNumbers(t *testing.T) {
	t.Setenv("PAGE_SIZE", "-3")
	t.Setenv("REQUEST_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, defaultPageSize, cfg.PageSize)
	assert.Equal(t, defaultTimeout, cfg.RequestTimeout)
}

func TestLoadRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"category not a number", "ALLOWED_CATEGORIES", "2,news"},
		{"no categories", "ALLOWED_CATEGORIES", " , "},
		{"ftp content url", "CONTENT_API_URL", "ftp://example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
