package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/haakonunderbakke/haakon-dev/internal/articles"
	"github.com/haakonunderbakke/haakon-dev/internal/content"
	"github.com/haakonunderbakke/haakon-dev/internal/preferences"
)

func (s *Server) setupRoutes(r *gin.Engine) {
	// Home page route
	r.GET("/", func(c *gin.Context) {
		show := showParticles(c)
		c.HTML(http.StatusOK, "index.html", gin.H{
			"title":          s.landing.SiteName,
			"landing":        s.landing,
			"titleWords":     content.TitleWords(s.landing),
			"showParticles":  show,
			"particlesLabel": preferences.ParticlesLabel(show),
		})
	})

	// HTMX particle toggle - flips the stored preference and returns the toggle
	r.POST("/preferences/particles", func(c *gin.Context) {
		show := !showParticles(c)
		c.SetCookie(preferences.ParticlesKey, preferences.EncodeParticles(show), preferences.MaxAge, "/", "", false, false)
		c.HTML(http.StatusOK, "particles-toggle.html", gin.H{
			"showParticles":  show,
			"particlesLabel": preferences.ParticlesLabel(show),
		})
	})

	// Article list page; q and page make it usable without JavaScript
	r.GET("/articles", func(c *gin.Context) {
		data := s.listData(c, articles.ListQuery{
			Query: strings.TrimSpace(c.Query("q")),
			Page:  articles.ParsePage(c.Query("page")),
		})
		data["title"] = "Articles - haakon.dev"
		c.HTML(http.StatusOK, "articles.html", data)
	})

	// Whole list block, polled while the catalog is still loading
	r.GET("/articles/list", func(c *gin.Context) {
		c.HTML(http.StatusOK, "article-list.html", s.listData(c, articles.ListQuery{Page: 1}))
	})

	// Search results and pager target. "applied" is the query the current page belongs to.
	r.GET("/articles/results", func(c *gin.Context) {
		current := articles.ListQuery{
			Query: strings.TrimSpace(c.Query("applied")),
			Page:  articles.ParsePage(c.Query("page")),
		}
		c.HTML(http.StatusOK, "article-results.html", s.listData(c, current.WithQuery(c.Query("q"))))
	})

	// Search input, swapped in place of the Filter button
	r.GET("/articles/filter", func(c *gin.Context) {
		c.HTML(http.StatusOK, "search-input.html", gin.H{
			"query":          "",
			"searchDebounce": s.opts.SearchDebounce,
			"autofocus":      true,
		})
	})

	// Lazily loaded featured image
	r.GET("/articles/:id/featured-image", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		a, err := s.catalog.FindID(id)
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.HTML(http.StatusOK, "featured-image.html", gin.H{
			"imageURL": s.images.URL(c.Request.Context(), a),
		})
	})

	r.GET("/article/:slug", func(c *gin.Context) {
		a, err := s.catalog.Find(c.Param("slug"))
		if errors.Is(err, articles.ErrNotFound) {
			_, loaded := s.catalog.Snapshot()
			c.HTML(http.StatusNotFound, "not-found.html", gin.H{
				"title":   "Not found - haakon.dev",
				"loading": !loaded,
			})
			return
		}
		c.HTML(http.StatusOK, "article.html", gin.H{
			"title":   articles.PlainText(a.Title.Rendered) + " - haakon.dev",
			"article": a,
		})
	})

	r.GET("/healthz", func(c *gin.Context) {
		_, loaded := s.catalog.Snapshot()
		c.JSON(http.StatusOK, gin.H{"status": "ok", "loaded": loaded})
	})

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "not-found.html", gin.H{"title": "Not found - haakon.dev"})
	})
}

// listData is the template data shared by the article list page and its fragments.
func (s *Server) listData(c *gin.Context, q articles.ListQuery) gin.H {
	collection, loaded := s.catalog.Snapshot()
	data := gin.H{
		"loaded":         loaded,
		"searchDebounce": s.opts.SearchDebounce,
		"query":          q.Query,
	}
	if loaded {
		data["page"] = articles.BuildPage(collection, s.matcher, q, s.opts.PageSize)
	}
	return data
}

func showParticles(c *gin.Context) bool {
	raw, err := c.Cookie(preferences.ParticlesKey)
	if err != nil {
		return true
	}
	return preferences.DecodeParticles(raw)
}
