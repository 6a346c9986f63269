package wordpress

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/haakonunderbakke/haakon-dev/internal/domain/model"
	"github.com/haakonunderbakke/haakon-dev/internal/domain/ports"
)

const (
	perPage          = 100
	maxParallelPages = 4
	totalPagesHeader = "X-WP-TotalPages"
)

// Client reads posts and media from a WordPress REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     ports.Logger
}

var (
	_ ports.ArticleSource = (*Client)(nil)
	_ ports.MediaResolver = (*Client)(nil)
)

// New builds a Client for the API rooted at baseURL (e.g. https://example.com/wp-json/wp/v2).
// Media lookups are limited to mediaRPS requests per second.
func New(baseURL string, timeout time.Duration, mediaRPS float64, logger ports.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(mediaRPS), 1),
		logger:     logger,
	}
}

// GetAllPosts fetches every published post, newest first.
func (c *Client) GetAllPosts(ctx context.Context) ([]model.Article, error) {
	first, totalPages, err := c.fetchPostsPage(ctx, 1)
	if err != nil {
		return nil, err
	}
	if totalPages <= 1 {
		return first, nil
	}

	pages := make([][]model.Article, totalPages)
	pages[0] = first

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelPages)
	for page := 2; page <= totalPages; page++ {
		g.Go(func() error {
			items, _, err := c.fetchPostsPage(gctx, page)
			if err != nil {
				return err
			}
			pages[page-1] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	all := make([]model.Article, 0, len(first)*totalPages)
	for _, items := range pages {
		all = append(all, items...)
	}
	c.logger.Info(ctx, "fetched posts", "count", len(all), "pages", totalPages)
	return all, nil
}

func (c *Client) fetchPostsPage(ctx context.Context, page int) ([]model.Article, int, error) {
	q := url.Values{}
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("page", strconv.Itoa(page))
	endpoint := c.baseURL + "/posts?" + q.Encode()

	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, 0, fmt.Errorf("posts page %d: %w", page, err)
	}
	defer resp.Body.Close()

	var items []model.Article
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, 0, fmt.Errorf("decode posts page %d: %w", page, err)
	}

	totalPages := 1
	if raw := resp.Header.Get(totalPagesHeader); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			totalPages = n
		}
	}
	return items, totalPages, nil
}

// ResolveImage follows a featured media link and returns the full-size image URL.
// It returns "" without error when the media item carries no size details.
func (c *Client) ResolveImage(ctx context.Context, href string) (string, error) {
	if href == "" {
		return "", nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("wait for media slot: %w", err)
	}

	resp, err := c.get(ctx, href)
	if err != nil {
		return "", fmt.Errorf("media %s: %w", href, err)
	}
	defer resp.Body.Close()

	var media model.Media
	if err := json.NewDecoder(resp.Body).Decode(&media); err != nil {
		return "", fmt.Errorf("decode media %s: %w", href, err)
	}
	return media.FullSizeURL(), nil
}

func (c *Client) get(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return resp, nil
}
