package articles

import (
	"strconv"
	"strings"

	"github.com/haakonunderbakke/haakon-dev/internal/domain/model"
)

// PagerWindow is how many numbered page links the pager shows.
const PagerWindow = 5

// ListQuery is the visitor's position in the article list.
type ListQuery struct {
	Query string
	Page  int
}

// WithQuery applies a new search query. A different query starts again from page 1.
func (q ListQuery) WithQuery(query string) ListQuery {
	query = strings.TrimSpace(query)
	if query != q.Query {
		return ListQuery{Query: query, Page: 1}
	}
	return q
}

// ParsePage reads a 1-based page number; anything unusable becomes 1.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Paginate returns the items of the 1-based page. Pages outside the range are empty.
func Paginate(items []model.Article, page, size int) []model.Article {
	if page < 1 || size < 1 {
		return []model.Article{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []model.Article{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages is the number of pages needed for total items.
func TotalPages(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// PageLink is one numbered pager entry.
type PageLink struct {
	Number int
	Active bool
}

// Pager describes the pagination control under the list.
type Pager struct {
	Active     int
	TotalPages int
	Pages      []PageLink
	Prev       int
	Next       int
	HasPrev    bool
	HasNext    bool
}

// NewPager builds a pager with at most window numbered links centred on active.
func NewPager(active, total, size, window int) Pager {
	p := Pager{Active: active, TotalPages: TotalPages(total, size)}
	if p.TotalPages == 0 {
		return p
	}
	if window < 1 {
		window = 1
	}

	center := active
	if center < 1 {
		center = 1
	}
	if center > p.TotalPages {
		center = p.TotalPages
	}

	first := center - window/2
	if first < 1 {
		first = 1
	}
	last := first + window - 1
	if last > p.TotalPages {
		last = p.TotalPages
		first = last - window + 1
		if first < 1 {
			first = 1
		}
	}
	for n := first; n <= last; n++ {
		p.Pages = append(p.Pages, PageLink{Number: n, Active: n == active})
	}

	p.HasPrev = active > 1
	p.HasNext = active < p.TotalPages
	p.Prev = max(active-1, 1)
	p.Next = min(active+1, p.TotalPages)
	return p
}
