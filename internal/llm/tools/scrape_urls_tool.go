package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"polaris/internal/events"
)

type ScrapeUrlsInput struct {
	URLs []string `json:"urls" jsonschema:"description=Array of absolute http(s) URLs to fetch"`
}

// ScrapeUrls fetches external pages and returns markdown per URL. Individual
// fetch failures are reported in that URL's entry without aborting the batch.
func (d *Deps) ScrapeUrls(ctx context.Context, in *ScrapeUrlsInput) (string, error) {
	if in == nil || len(in.URLs) == 0 {
		return "Error: Provide at least one URL", nil
	}
	for _, u := range in.URLs {
		if strings.TrimSpace(u) == "" {
			return "Error: URL cannot be empty", nil
		}
	}
	if d.Scraper == nil {
		return "Error: web scraping is not available", nil
	}

	events.Emit(ctx, events.LLMEventTool, events.NewToolEvent(events.EventInfo, fmt.Sprintf("scraping %d URL(s)", len(in.URLs)), "scrapeUrls", d.ProjectID))

	return runStep(ctx, d, "scrape-urls", func(ctx context.Context) (string, error) {
		results := d.Scraper.Fetch(ctx, in.URLs)
		for _, r := range results {
			if r.Err != "" {
				events.Emit(ctx, events.LLMEventTool, events.NewWarn(fmt.Sprintf("scrapeUrls: %s: %s", r.URL, r.Err)))
			}
		}
		payload, err := json.Marshal(results)
		if err != nil {
			return fmt.Sprintf("Error scraping URLs: %v", err), nil
		}
		return string(payload), nil
	})
}
