package articles

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haakonunderbakke/haakon-dev/internal/domain/model"
)

func TestBuildPageExcludesFeatured(t *testing.T) {
	c := NewCollection(published(1, 12), allowed, time.Now())

	page := BuildPage(c, TextMatcher{}, ListQuery{Page: 1}, 9)

	require.NotNil(t, page.Featured)
	assert.Equal(t, 1, page.Featured.ID)
	assert.Len(t, page.Items, 9)
	assert.Equal(t, 11, page.Total)
	for _, a := range page.Items {
		assert.NotEqual(t, 1, a.ID)
	}
	assert.Equal(t, 2, page.Pager.TotalPages)
	assert.False(t, page.NoResults())
	assert.Equal(t, "Showing 9 articles.", page.Showing())
}

func TestBuildPageSearchesRestOnly(t *testing.T) {
	all := published(1, 4)
	all[0].Title.Rendered = "Golang tips"
	all[2].Title.Rendered = "More golang"
	c := NewCollection(all, allowed, time.Now())

	page := BuildPage(c, TextMatcher{}, ListQuery{Query: "golang", Page: 1}, 9)

	require.NotNil(t, page.Featured, "featured stays visible while searching")
	assert.Equal(t, 1, page.Featured.ID)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 3, page.Items[0].ID)
	assert.Equal(t, "Showing 1 article.", page.Showing())
}

func TestBuildPageNoResults(t *testing.T) {
	c := NewCollection(published(1, 4), allowed, time.Now())

	page := BuildPage(c, TextMatcher{}, ListQuery{Query: `rust "async"`, Page: 1}, 9)

	assert.True(t, page.NoResults())
	assert.Empty(t, page.Items)
	assert.Empty(t, page.Pager.Pages)
	assert.Equal(t, `Can't find any articles containing "rust "async""...`, page.NoResultsMessage())
}

func TestBuildPageOutOfRange(t *testing.T) {
	c := NewCollection(published(1, 5), allowed, time.Now())

	page := BuildPage(c, TextMatcher{}, ListQuery{Page: 7}, 9)

	assert.Empty(t, page.Items)
	assert.False(t, page.NoResults(), "results exist, just not on this page")
}

func TestBuildPageNeverShowsUncategorised(t *testing.T) {
	all := []model.Article{article(1, 2), article(2, 1), article(3, 3), article(4), article(5, 2)}
	for i := range all {
		all[i].Title.Rendered = "shared " + all[i].Title.Rendered
	}
	c := NewCollection(all, allowed, time.Now())

	page := BuildPage(c, TextMatcher{}, ListQuery{Query: "shared", Page: 1}, 9)

	for _, a := range append(page.Items, *page.Featured) {
		assert.True(t, a.InCategory(allowed...), "article %d", a.ID)
		assert.NotContains(t, []int{2, 4}, a.ID)
	}
	assert.Equal(t, 2, page.Total)
}
