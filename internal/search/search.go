// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search fetches candidate paper records from academic APIs and
// hands them to the processing pipeline as raw batches.
//
// Fetches are best-effort: individual query failures are logged and
// skipped, so a partial result is returned rather than an error. All
// requests share one rate limiter regardless of how many queries run
// concurrently.
package search

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/pdiddy/paper-discovery/pkg/types"
)

const (
	defaultMaxPerQuery = 50
	defaultRatePeriod  = 3 * time.Second
	defaultTimeout     = 30 * time.Second
	defaultUserAgent   = "paper-discovery/0.1"
)

// Backend searches a single academic API.
type Backend interface {
	Name() string
	Search(ctx context.Context, query string, maxResults int) ([]types.RawPaper, error)
}

// Client fetches paper batches from a backend under a shared rate limit.
type Client struct {
	backend Backend
	limiter *rate.Limiter
	w       io.Writer
}

// NewClient returns a Client backed by the arXiv API, configured from cfg.
// Zero-valued settings fall back to defaults; the rate period defaults to
// the 3-second arXiv politeness window.
func NewClient(cfg types.SearchConfig, w io.Writer) *Client {
	if w == nil {
		w = io.Discard
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.RatePeriod <= 0 {
		cfg.RatePeriod = defaultRatePeriod
	}

	backend := &ArxivBackend{
		Client:     &http.Client{Timeout: cfg.Timeout},
		UserAgent:  cfg.UserAgent,
		MaxRetries: cfg.MaxRetries,
	}

	return &Client{
		backend: backend,
		limiter: rate.NewLimiter(rate.Every(cfg.RatePeriod), 1),
		w:       w,
	}
}

// Fetch runs every query against the backend concurrently, each request
// waiting on the shared rate limiter, and returns the combined results in
// query order. Identifiers appearing under multiple queries are collapsed
// to their first occurrence; content-level deduplication is the pipeline's
// job. Failed queries are logged and skipped.
func (c *Client) Fetch(ctx context.Context, queries []string, maxPerQuery int) ([]types.RawPaper, error) {
	if len(queries) == 0 {
		return nil, fmt.Errorf("no queries provided")
	}
	if maxPerQuery <= 0 {
		maxPerQuery = defaultMaxPerQuery
	}

	type queryResult struct {
		idx    int
		papers []types.RawPaper
		err    error
	}

	ch := make(chan queryResult, len(queries))
	var wg sync.WaitGroup

	for i, q := range queries {
		wg.Add(1)
		go func(i int, q string) {
			defer wg.Done()
			if err := c.limiter.Wait(ctx); err != nil {
				ch <- queryResult{idx: i, err: err}
				return
			}
			papers, err := c.backend.Search(ctx, q, maxPerQuery)
			ch <- queryResult{idx: i, papers: papers, err: err}
		}(i, q)
	}

	go func() {
		wg.Wait()
		close(ch)
	}()

	// Reassemble in query order so downstream order-sensitive dedup sees a
	// stable batch.
	perQuery := make([][]types.RawPaper, len(queries))
	for r := range ch {
		if r.err != nil {
			fmt.Fprintf(c.w, "warning: query %q failed: %v\n", queries[r.idx], r.err)
			continue
		}
		perQuery[r.idx] = r.papers
	}

	seen := make(map[string]struct{})
	var all []types.RawPaper
	duplicates := 0
	for _, papers := range perQuery {
		for _, p := range papers {
			if _, ok := seen[p.PaperID]; ok {
				duplicates++
				continue
			}
			seen[p.PaperID] = struct{}{}
			all = append(all, p)
		}
	}

	fmt.Fprintf(c.w, "fetched %d papers across %d queries (%d cross-query duplicates collapsed)\n",
		len(all), len(queries), duplicates)
	return all, nil
}
