// Package web serves the site: landing page, article list fragments and admin endpoints.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"

	"github.com/haakonunderbakke/haakon-dev/internal/articles"
	"github.com/haakonunderbakke/haakon-dev/internal/domain/model"
	"github.com/haakonunderbakke/haakon-dev/internal/domain/ports"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Options are the tunables the handlers need from configuration.
type Options struct {
	PageSize       int
	SearchDebounce time.Duration
	AdminToken     string
}

// Server owns the gin engine and everything the handlers read from.
type Server struct {
	engine  *gin.Engine
	opts    Options
	catalog *articles.Catalog
	images  *articles.FeaturedImages
	matcher articles.Matcher
	landing *model.Landing
	logger  ports.Logger

	adminToken  string
	hashingSalt string
}

// New builds the engine and registers every route.
func New(opts Options, catalog *articles.Catalog, images *articles.FeaturedImages, matcher articles.Matcher,
	landing *model.Landing, logger ports.Logger) (*Server, error) {
	s := &Server{
		opts:    opts,
		catalog: catalog,
		images:  images,
		matcher: matcher,
		landing: landing,
		logger:  logger,
	}
	if err := s.initAdmin(); err != nil {
		return nil, err
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(static))

	s.setupRoutes(r)
	s.setupAdminRoutes(r)
	s.engine = r
	return s, nil
}

// Handler exposes the engine to an http.Server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(templateFuncs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return tmpl, nil
}

var sanitizer = bluemonday.UGCPolicy()

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		// Rendered title/excerpt/content HTML comes from the CMS; it is sanitised before use.
		"sanitize": func(rendered string) template.HTML {
			return template.HTML(sanitizer.Sanitize(rendered))
		},
		"plain":      articles.PlainText,
		"resultsURL": resultsURL,
		"pageURL":    pageURL,
		"millis": func(d time.Duration) int64 {
			return d.Milliseconds()
		},
	}
}

// resultsURL is the htmx endpoint for one page of search results.
func resultsURL(query string, page int) string {
	v := url.Values{}
	v.Set("q", query)
	v.Set("applied", query)
	v.Set("page", strconv.Itoa(page))
	return "/articles/results?" + v.Encode()
}

// pageURL is the plain link to the same page, used without JavaScript.
func pageURL(query string, page int) string {
	v := url.Values{}
	if query != "" {
		v.Set("q", query)
	}
	v.Set("page", strconv.Itoa(page))
	return "/articles?" + v.Encode()
}
