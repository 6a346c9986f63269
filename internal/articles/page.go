package articles

import (
	"fmt"

	"github.com/haakonunderbakke/haakon-dev/internal/domain/model"
)

// Page is everything the article list renders for one request.
type Page struct {
	Featured *model.Article
	Query    ListQuery
	Items    []model.Article
	Total    int
	Pager    Pager
}

// BuildPage searches the collection and slices out the requested page.
// The featured article is never searched nor paginated.
func BuildPage(c Collection, m Matcher, q ListQuery, size int) Page {
	filtered := Filter(c.Items, m, q.Query)
	return Page{
		Featured: c.Featured,
		Query:    q,
		Items:    Paginate(filtered, q.Page, size),
		Total:    len(filtered),
		Pager:    NewPager(q.Page, len(filtered), size, PagerWindow),
	}
}

// NoResults reports whether the search left nothing to show.
func (p Page) NoResults() bool {
	return p.Total == 0
}

// NoResultsMessage is shown instead of the list when nothing matched.
func (p Page) NoResultsMessage() string {
	return fmt.Sprintf("Can't find any articles containing \"%s\"...", p.Query.Query)
}

// Showing is the article count caption shown on small screens.
func (p Page) Showing() string {
	noun := "articles"
	if len(p.Items) == 1 {
		noun = "article"
	}
	return fmt.Sprintf("Showing %d %s.", len(p.Items), noun)
}
