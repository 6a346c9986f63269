package wordpress

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haakonunderbakke/haakon-dev/internal/adapter/logging"
)

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	logger := logging.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return New(srv.URL+"/wp-json/wp/v2", 5*time.Second, 100, logger), srv
}

func postJSON(id int) string {
	return fmt.Sprintf(`{"id":%d,"slug":"post-%d","date":"2021-03-04T10:00:00","title":{"rendered":"Post %d"},`+
		`"excerpt":{"rendered":"<p>Excerpt %d</p>"},"content":{"rendered":"<p>Body</p>"},"categories":[2],`+
		`"_links":{"wp:featuredmedia":[{"embeddable":true,"href":"https://cms.example/media/%d"}]}}`, id, id, id, id, id)
}

func TestGetAllPostsFollowsPages(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/wp-json/wp/v2/posts", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		w.Header().Set(totalPagesHeader, "3")
		fmt.Fprintf(w, "[%s,%s]", postJSON(page*10), postJSON(page*10+1))
	})
	client, _ := testClient(t, mux)

	posts, err := client.GetAllPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 6)

	ids := make([]int, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int{10, 11, 20, 21, 30, 31}, ids)
	assert.Equal(t, "post-10", posts[0].Slug)
	assert.Equal(t, "Post 10", posts[0].Title.Rendered)
	assert.Equal(t, []int{2}, posts[0].Categories)
	assert.Equal(t, "https://cms.example/media/10", posts[0].FeaturedMediaHref())
}

func TestGetAllPostsSinglePageWithoutHeader(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "[%s]", postJSON(1))
	}))

	posts, err := client.GetAllPosts(context.Background())
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestGetAllPostsPropagatesFailures(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/wp-json/wp/v2/posts", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			http.Error(w, "nope", http.StatusInternalServerError)
			return
		}
		w.Header().Set(totalPagesHeader, "2")
		fmt.Fprintf(w, "[%s]", postJSON(1))
	})
	client, _ := testClient(t, mux)

	_, err := client.GetAllPosts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
}

func TestGetAllPostsRejectsMalformedJSON(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":"rest_no_route"}`)
	}))

	_, err := client.GetAllPosts(context.Background())
	assert.Error(t, err)
}

func TestResolveImage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/media/1", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":1,"source_url":"https://cms.example/up/a.jpg","media_details":{"sizes":{`+
			`"thumbnail":{"source_url":"https://cms.example/up/a-150.jpg"},"full":{"source_url":"https://cms.example/up/a.jpg","width":1200}}}}`)
	})
	mux.HandleFunc("/media/2", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":2,"source_url":"https://cms.example/up/b.pdf"}`)
	})
	client, srv := testClient(t, mux)
	ctx := context.Background()

	got, err := client.ResolveImage(ctx, srv.URL+"/media/1")
	require.NoError(t, err)
	assert.Equal(t, "https://cms.example/up/a.jpg", got)

	got, err = client.ResolveImage(ctx, srv.URL+"/media/2")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = client.ResolveImage(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = client.ResolveImage(ctx, srv.URL+"/media/404")
	assert.Error(t, err)
}
