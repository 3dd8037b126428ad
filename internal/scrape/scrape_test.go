package scrape_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"polaris/internal/scrape"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_ConvertsHTMLToMarkdown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><h1>Docs</h1><p>Hello <strong>world</strong></p></body></html>"))
	}))
	defer srv.Close()

	f := scrape.NewFetcher(5 * time.Second)
	results := f.Fetch(context.Background(), []string{srv.URL})

	require.Len(t, results, 1)
	assert.Empty(t, results[0].Err)
	assert.Contains(t, results[0].Content, "# Docs")
	assert.Contains(t, results[0].Content, "**world**")
}

func TestFetch_PartialFailureKeepsBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("<p>ok</p>"))
	}))
	defer srv.Close()

	f := scrape.NewFetcher(5 * time.Second)
	results := f.Fetch(context.Background(), []string{srv.URL + "/missing", srv.URL + "/ok"})

	require.Len(t, results, 2)
	assert.Contains(t, results[0].Err, "status 404")
	assert.Empty(t, results[1].Err)
	assert.Contains(t, results[1].Content, "ok")
}

func TestFetch_RejectsNonHTTPURLs(t *testing.T) {
	f := scrape.NewFetcher(time.Second)
	results := f.Fetch(context.Background(), []string{"ftp://example.com", "not a url"})

	require.Len(t, results, 2)
	for _, r := range results {
		assert.NotEmpty(t, r.Err)
	}
}
