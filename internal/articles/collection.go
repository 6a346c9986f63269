// Package articles holds the article list: the fetched catalog, category filtering,
// the featured split, search and pagination.
package articles

import (
	"time"

	"github.com/haakonunderbakke/haakon-dev/internal/domain/model"
)

// Collection is the displayable part of a fetched article set.
type Collection struct {
	Featured  *model.Article
	Items     []model.Article
	FetchedAt time.Time
}

// NewCollection filters all down to the allowed categories and splits off the featured item.
func NewCollection(all []model.Article, allowed []int, fetchedAt time.Time) Collection {
	featured, rest := SplitFeatured(FilterPublished(all, allowed))
	return Collection{
		Featured:  featured,
		Items:     rest,
		FetchedAt: fetchedAt,
	}
}

// Len counts every displayable article, featured included.
func (c Collection) Len() int {
	if c.Featured == nil {
		return len(c.Items)
	}
	return len(c.Items) + 1
}

// Find returns the displayable article with the given slug.
func (c Collection) Find(slug string) (model.Article, bool) {
	if c.Featured != nil && c.Featured.Slug == slug {
		return *c.Featured, true
	}
	for _, a := range c.Items {
		if a.Slug == slug {
			return a, true
		}
	}
	return model.Article{}, false
}

// FindID returns the displayable article with the given id.
func (c Collection) FindID(id int) (model.Article, bool) {
	if c.Featured != nil && c.Featured.ID == id {
		return *c.Featured, true
	}
	for _, a := range c.Items {
		if a.ID == id {
			return a, true
		}
	}
	return model.Article{}, false
}

// FilterPublished keeps the articles filed under at least one allowed category, in order.
func FilterPublished(all []model.Article, allowed []int) []model.Article {
	out := make([]model.Article, 0, len(all))
	for _, a := range all {
		if a.InCategory(allowed...) {
			out = append(out, a)
		}
	}
	return out
}

// SplitFeatured returns the first article as featured and the remainder.
func SplitFeatured(items []model.Article) (*model.Article, []model.Article) {
	if len(items) == 0 {
		return nil, nil
	}
	featured := items[0]
	return &featured, items[1:]
}
