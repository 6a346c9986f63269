package articles

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/haakonunderbakke/haakon-dev/internal/domain/model"
	"github.com/haakonunderbakke/haakon-dev/internal/domain/ports"
)

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}

func article(id int, categories ...int) model.Article {
	return model.Article{
		ID:         id,
		Slug:       fmt.Sprintf("article-%d", id),
		Title:      model.Rendered{Rendered: fmt.Sprintf("Article %d", id)},
		Excerpt:    model.Rendered{Rendered: fmt.Sprintf("<p>Excerpt for article %d</p>", id)},
		Categories: categories,
	}
}

// published builds n articles in category 2 with ids start..start+n-1.
func published(start, n int) []model.Article {
	out := make([]model.Article, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, article(start+i, 2))
	}
	return out
}

type fakeSource struct {
	mu       sync.Mutex
	articles []model.Article
	err      error
	calls    atomic.Int32
	block    chan struct{}
}

func (f *fakeSource) GetAllPosts(ctx context.Context) ([]model.Article, error) {
	f.calls.Add(1)
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.articles, f.err
}

func (f *fakeSource) set(articles []model.Article, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.articles, f.err = articles, err
}

type memoryStore struct {
	articles  []model.Article
	fetchedAt time.Time
	saved     bool
	saveErr   error
}

func (m *memoryStore) SaveSnapshot(_ context.Context, articles []model.Article, fetchedAt time.Time) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.articles, m.fetchedAt, m.saved = articles, fetchedAt, true
	return nil
}

func (m *memoryStore) LoadSnapshot(context.Context) ([]model.Article, time.Time, error) {
	if !m.saved {
		return nil, time.Time{}, ports.ErrNoSnapshot
	}
	return m.articles, m.fetchedAt, nil
}

type fakeResolver struct {
	urls  map[string]string
	err   error
	calls atomic.Int32
}

func (f *fakeResolver) ResolveImage(_ context.Context, href string) (string, error) {
	f.calls.Add(1)
	if f.err != nil {
		return "", f.err
	}
	return f.urls[href], nil
}
