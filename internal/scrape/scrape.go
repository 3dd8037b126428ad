// Package scrape fetches external web pages and converts them to markdown so
// agent tool output stays compact enough for model context.
package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

const (
	defaultTimeout  = 15 * time.Second
	maxBodyBytes    = 2 << 20
	maxContentChars = 20000
)

var multipleNewlines = regexp.MustCompile(`\n{3,}`)

// Result is the outcome of fetching a single URL. Err is a human-readable
// fetch failure; a failed URL never aborts the rest of the batch.
type Result struct {
	URL     string `json:"url"`
	Content string `json:"content,omitempty"`
	Err     string `json:"error,omitempty"`
}

type Fetcher struct {
	client *http.Client
}

func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Fetcher{client: &http.Client{Timeout: timeout}}
}

// Fetch retrieves every URL and returns one Result per input, in order.
func (f *Fetcher) Fetch(ctx context.Context, urls []string) []Result {
	results := make([]Result, 0, len(urls))
	for _, raw := range urls {
		results = append(results, f.fetchOne(ctx, raw))
	}
	return results
}

func (f *Fetcher) fetchOne(ctx context.Context, raw string) Result {
	res := Result{URL: raw}

	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		res.Err = "invalid URL; only absolute http(s) URLs are supported"
		return res
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		res.Err = fmt.Sprintf("building request failed: %v", err)
		return res
	}
	req.Header.Set("User-Agent", "polaris-scraper/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		res.Err = fmt.Sprintf("fetch failed: %v", err)
		return res
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		res.Err = fmt.Sprintf("fetch failed with status %d", resp.StatusCode)
		return res
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		res.Err = fmt.Sprintf("reading response failed: %v", err)
		return res
	}

	res.Content = toMarkdown(string(body))
	return res
}

func toMarkdown(body string) string {
	md, err := htmltomarkdown.ConvertString(body)
	if err != nil {
		// Serve the raw body rather than dropping the page.
		md = body
	}
	md = strings.TrimSpace(multipleNewlines.ReplaceAllString(md, "\n\n"))
	if len(md) > maxContentChars {
		md = md[:maxContentChars] + "\n\n[content truncated]"
	}
	return md
}
