package model

// FeaturedMediaRel is the link relation pointing at an article's featured image.
const FeaturedMediaRel = "wp:featuredmedia"

// Rendered holds HTML produced by the content service.
type Rendered struct {
	Rendered string `json:"rendered"`
}

// Link is a hypermedia reference attached to an article.
type Link struct {
	Href       string `json:"href"`
	Embeddable bool   `json:"embeddable,omitempty"`
}

// Article is a post owned by the remote content service.
type Article struct {
	ID         int               `json:"id"`
	Slug       string            `json:"slug"`
	Date       string            `json:"date"`
	Title      Rendered          `json:"title"`
	Excerpt    Rendered          `json:"excerpt"`
	Content    Rendered          `json:"content"`
	Categories []int             `json:"categories"`
	Links      map[string][]Link `json:"_links,omitempty"`
}

// FeaturedMediaHref returns the first featured media link, or "" when the article has none.
func (a Article) FeaturedMediaHref() string {
	links := a.Links[FeaturedMediaRel]
	if len(links) == 0 {
		return ""
	}
	return links[0].Href
}

// InCategory reports whether the article carries any of the given categories.
func (a Article) InCategory(categories ...int) bool {
	for _, c := range a.Categories {
		for _, want := range categories {
			if c == want {
				return true
			}
		}
	}
	return false
}
