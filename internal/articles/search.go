package articles

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/haakonunderbakke/haakon-dev/internal/domain/model"
)

// Matcher decides whether an article matches a search query.
type Matcher interface {
	Match(a model.Article, query string) bool
}

// MatcherFunc adapts a function to Matcher.
type MatcherFunc func(a model.Article, query string) bool

// Match calls f.
func (f MatcherFunc) Match(a model.Article, query string) bool { return f(a, query) }

// TextMatcher matches when every query term occurs in the article's title or excerpt text,
// ignoring case and markup. A blank query matches everything.
type TextMatcher struct{}

// Match implements Matcher.
func (TextMatcher) Match(a model.Article, query string) bool {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return true
	}
	text := strings.ToLower(PlainText(a.Title.Rendered) + " " + PlainText(a.Excerpt.Rendered))
	for _, term := range terms {
		if !strings.Contains(text, term) {
			return false
		}
	}
	return true
}

// PlainText strips markup from rendered HTML and collapses whitespace.
func PlainText(rendered string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rendered))
	if err != nil {
		return strings.Join(strings.Fields(rendered), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// Filter returns the items accepted by m for query, preserving order.
func Filter(items []model.Article, m Matcher, query string) []model.Article {
	if strings.TrimSpace(query) == "" {
		return items
	}
	out := make([]model.Article, 0, len(items))
	for _, a := range items {
		if m.Match(a, query) {
			out = append(out, a)
		}
	}
	return out
}
