package articles

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/haakonunderbakke/haakon-dev/internal/domain/model"
	"github.com/haakonunderbakke/haakon-dev/internal/domain/ports"
)

// ErrNotFound is returned when no displayable article matches a lookup.
var ErrNotFound = errors.New("article not found")

// Status summarises the catalog for the admin endpoints.
type Status struct {
	Loaded       bool      `json:"loaded"`
	Articles     int       `json:"articles"`
	FeaturedSlug string    `json:"featured_slug,omitempty"`
	FetchedAt    time.Time `json:"fetched_at,omitempty"`
	LastAttempt  time.Time `json:"last_attempt,omitempty"`
	LastError    string    `json:"last_error,omitempty"`
}

// Catalog holds the article collection fetched from the content service.
// It stays in the loading state until a fetch (or a stored snapshot) succeeds;
// failed fetches are logged and leave the current collection untouched.
type Catalog struct {
	source  ports.ArticleSource
	store   ports.SnapshotStore
	logger  ports.Logger
	allowed []int
	now     func() time.Time

	group singleflight.Group

	mu          sync.RWMutex
	collection  Collection
	loaded      bool
	lastErr     error
	lastAttempt time.Time
}

// NewCatalog creates an empty catalog. store may be nil.
func NewCatalog(source ports.ArticleSource, store ports.SnapshotStore, logger ports.Logger, allowed []int) *Catalog {
	return &Catalog{
		source:  source,
		store:   store,
		logger:  logger,
		allowed: allowed,
		now:     time.Now,
	}
}

// Restore seeds the catalog from the snapshot store. A missing snapshot is not an error.
func (c *Catalog) Restore(ctx context.Context) error {
	if c.store == nil {
		return nil
	}
	all, fetchedAt, err := c.store.LoadSnapshot(ctx)
	if errors.Is(err, ports.ErrNoSnapshot) {
		return nil
	}
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return nil
	}
	c.collection = NewCollection(all, c.allowed, fetchedAt)
	c.loaded = true
	c.logger.Info(ctx, "restored article snapshot", "articles", c.collection.Len(), "fetched_at", fetchedAt)
	return nil
}

// Refresh fetches the full collection. Concurrent calls share one fetch.
func (c *Catalog) Refresh(ctx context.Context) error {
	_, err, _ := c.group.Do("refresh", func() (any, error) {
		return nil, c.refresh(ctx)
	})
	return err
}

func (c *Catalog) refresh(ctx context.Context) error {
	started := c.now()
	all, err := c.source.GetAllPosts(ctx)

	c.mu.Lock()
	c.lastAttempt = started
	c.lastErr = err
	if err == nil {
		c.collection = NewCollection(all, c.allowed, started)
		c.loaded = true
	}
	c.mu.Unlock()

	if err != nil {
		c.logger.Error(ctx, "fetching articles failed", "error", err)
		return err
	}
	c.logger.Info(ctx, "articles loaded", "fetched", len(all), "displayed", c.Len())

	if c.store != nil {
		if err := c.store.SaveSnapshot(ctx, all, started); err != nil {
			c.logger.Error(ctx, "saving article snapshot failed", "error", err)
		}
	}
	return nil
}

// Snapshot returns the current collection and whether anything has been loaded yet.
func (c *Catalog) Snapshot() (Collection, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.collection, c.loaded
}

// Len is the number of displayable articles.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.collection.Len()
}

// Find looks up a displayable article by slug.
func (c *Catalog) Find(slug string) (model.Article, error) {
	collection, _ := c.Snapshot()
	if a, ok := collection.Find(slug); ok {
		return a, nil
	}
	return model.Article{}, ErrNotFound
}

// FindID looks up a displayable article by id.
func (c *Catalog) FindID(id int) (model.Article, error) {
	collection, _ := c.Snapshot()
	if a, ok := collection.FindID(id); ok {
		return a, nil
	}
	return model.Article{}, ErrNotFound
}

// Status reports the catalog state.
func (c *Catalog) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s := Status{
		Loaded:      c.loaded,
		Articles:    c.collection.Len(),
		FetchedAt:   c.collection.FetchedAt,
		LastAttempt: c.lastAttempt,
	}
	if c.collection.Featured != nil {
		s.FeaturedSlug = c.collection.Featured.Slug
	}
	if c.lastErr != nil {
		s.LastError = c.lastErr.Error()
	}
	return s
}
