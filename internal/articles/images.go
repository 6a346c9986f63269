package articles

import (
	"context"
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/haakonunderbakke/haakon-dev/internal/domain/model"
	"github.com/haakonunderbakke/haakon-dev/internal/domain/ports"
)

// FeaturedImages resolves and caches featured image URLs in memory.
// "No image" is cached too; lookup failures are not.
type FeaturedImages struct {
	resolver ports.MediaResolver
	logger   ports.Logger
	cache    *expirable.LRU[int, string]
	group    singleflight.Group
}

// NewFeaturedImages keeps up to size resolved URLs for ttl each.
func NewFeaturedImages(resolver ports.MediaResolver, logger ports.Logger, size int, ttl time.Duration) *FeaturedImages {
	return &FeaturedImages{
		resolver: resolver,
		logger:   logger,
		cache:    expirable.NewLRU[int, string](size, nil, ttl),
	}
}

// URL returns the featured image of a, or "" when it has none or the lookup failed.
func (f *FeaturedImages) URL(ctx context.Context, a model.Article) string {
	href := a.FeaturedMediaHref()
	if href == "" {
		return ""
	}
	if url, ok := f.cache.Get(a.ID); ok {
		return url
	}

	v, err, _ := f.group.Do(strconv.Itoa(a.ID), func() (any, error) {
		url, err := f.resolver.ResolveImage(context.WithoutCancel(ctx), href)
		if err != nil {
			return "", err
		}
		f.cache.Add(a.ID, url)
		return url, nil
	})
	if err != nil {
		f.logger.Error(ctx, "resolving featured image failed", "article", a.ID, "error", err)
		return ""
	}
	return v.(string)
}

// Len is the number of cached lookups.
func (f *FeaturedImages) Len() int {
	return f.cache.Len()
}
