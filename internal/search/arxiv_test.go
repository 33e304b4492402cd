// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/paper-discovery/internal/httputil"
)

// --- Mock arXiv server ---

const sampleArxivAtom = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>ArXiv Query Results</title>
  <entry>
    <id>http://arxiv.org/abs/2301.07041v2</id>
    <title>Neural Collaborative Filtering for
  Recommendation</title>
    <summary>We propose a neural method for collaborative filtering.
  Experiments show strong results on benchmark datasets.</summary>
    <published>2023-01-17T18:59:59Z</published>
    <author><name>Jane Doe</name></author>
    <author><name> John Smith </name></author>
    <category term="cs.IR"/>
    <category term="cs.LG"/>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/2302.00001v1</id>
    <title>A Second Paper</title>
    <summary>Another abstract.</summary>
    <published>2023-02-01T00:00:00Z</published>
    <author><name>Alice Example</name></author>
    <category term="stat.ML"/>
  </entry>
</feed>`

func arxivTestServer(statusCode int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/atom+xml")
		w.WriteHeader(statusCode)
		fmt.Fprint(w, body)
	}))
}

// withArxivBase points arxivAPIBase at ts for the duration of a test.
func withArxivBase(t *testing.T, ts *httptest.Server) {
	t.Helper()
	old := arxivAPIBase
	arxivAPIBase = ts.URL
	t.Cleanup(func() { arxivAPIBase = old })
}

// --- ArxivBackend.Search ---

func TestArxivBackendSearch(t *testing.T) {
	ts := arxivTestServer(http.StatusOK, sampleArxivAtom)
	defer ts.Close()
	withArxivBase(t, ts)

	b := &ArxivBackend{Client: ts.Client(), UserAgent: "test-agent"}
	papers, err := b.Search(context.Background(), "collaborative filtering", 20)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(papers) != 2 {
		t.Fatalf("len(papers) = %d, want 2", len(papers))
	}

	p0 := papers[0]
	if p0.PaperID != "http://arxiv.org/abs/2301.07041v2" {
		t.Errorf("PaperID = %q, want entry URL", p0.PaperID)
	}
	if p0.ArxivID != "2301.07041" {
		t.Errorf("ArxivID = %q, want %q", p0.ArxivID, "2301.07041")
	}
	// Title is only trimmed here; inner whitespace is the pipeline's job.
	if !strings.HasPrefix(p0.Title, "Neural Collaborative Filtering") {
		t.Errorf("Title = %q", p0.Title)
	}
	if p0.Published != "2023-01-17T18:59:59Z" {
		t.Errorf("Published = %q, want raw timestamp string", p0.Published)
	}
	if len(p0.Authors) != 2 || p0.Authors[0] != "Jane Doe" || p0.Authors[1] != "John Smith" {
		t.Errorf("Authors = %v, want [Jane Doe, John Smith]", p0.Authors)
	}
	if len(p0.Categories) != 2 || p0.Categories[0] != "cs.IR" || p0.Categories[1] != "cs.LG" {
		t.Errorf("Categories = %v, want [cs.IR cs.LG]", p0.Categories)
	}

	p1 := papers[1]
	if p1.ArxivID != "2302.00001" {
		t.Errorf("ArxivID = %q, want %q", p1.ArxivID, "2302.00001")
	}
	if len(p1.Categories) != 1 || p1.Categories[0] != "stat.ML" {
		t.Errorf("Categories = %v, want [stat.ML]", p1.Categories)
	}
}

func TestArxivBackendRequestParameters(t *testing.T) {
	var gotQuery, gotMax, gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("search_query")
		gotMax = r.URL.Query().Get("max_results")
		gotUA = r.Header.Get("User-Agent")
		fmt.Fprint(w, `<feed xmlns="http://www.w3.org/2005/Atom"></feed>`)
	}))
	defer ts.Close()
	withArxivBase(t, ts)

	b := &ArxivBackend{Client: ts.Client(), UserAgent: "paper-discovery/0.1"}
	if _, err := b.Search(context.Background(), "neural networks", 7); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if gotQuery != "all:neural networks" {
		t.Errorf("search_query = %q, want %q", gotQuery, "all:neural networks")
	}
	if gotMax != "7" {
		t.Errorf("max_results = %q, want %q", gotMax, "7")
	}
	if gotUA != "paper-discovery/0.1" {
		t.Errorf("User-Agent = %q", gotUA)
	}
}

func TestArxivBackendEmptyQuery(t *testing.T) {
	b := &ArxivBackend{Client: &http.Client{}}
	_, err := b.Search(context.Background(), "   ", 10)
	if err == nil || !strings.Contains(err.Error(), "empty") {
		t.Errorf("expected empty query error, got: %v", err)
	}
}

func TestArxivBackendHTTPNon200(t *testing.T) {
	ts := arxivTestServer(http.StatusInternalServerError, "")
	defer ts.Close()
	withArxivBase(t, ts)

	b := &ArxivBackend{Client: ts.Client()}
	_, err := b.Search(context.Background(), "test", 10)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "HTTP 500") {
		t.Errorf("error = %q, should contain HTTP 500", err.Error())
	}
}

func TestArxivBackendRetriesThrottling(t *testing.T) {
	// First request is throttled with 429, second succeeds.
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, sampleArxivAtom)
	}))
	defer ts.Close()
	withArxivBase(t, ts)

	oldDelay := httputil.RetryBaseDelay
	httputil.RetryBaseDelay = time.Millisecond
	defer func() { httputil.RetryBaseDelay = oldDelay }()

	b := &ArxivBackend{Client: ts.Client(), MaxRetries: 2}
	papers, err := b.Search(context.Background(), "test", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2 (one retry)", calls)
	}
	if len(papers) != 2 {
		t.Errorf("len(papers) = %d, want 2", len(papers))
	}
}

func TestArxivBackendMalformedXML(t *testing.T) {
	ts := arxivTestServer(http.StatusOK, `<feed><entry></wrong>`)
	defer ts.Close()
	withArxivBase(t, ts)

	b := &ArxivBackend{Client: ts.Client()}
	_, err := b.Search(context.Background(), "test", 10)
	if err == nil {
		t.Fatal("expected XML parse error")
	}
	if !strings.Contains(err.Error(), "parsing") {
		t.Errorf("error = %q, should mention parsing", err.Error())
	}
}

func TestArxivBackendName(t *testing.T) {
	b := &ArxivBackend{}
	if b.Name() != "arxiv" {
		t.Errorf("Name() = %q, want %q", b.Name(), "arxiv")
	}
}

// --- extractArxivID ---

func TestExtractArxivID(t *testing.T) {
	tests := []struct {
		name  string
		idURL string
		want  string
	}{
		{"with version", "http://arxiv.org/abs/2301.07041v1", "2301.07041"},
		{"higher version", "http://arxiv.org/abs/2301.07041v12", "2301.07041"},
		{"no version", "http://arxiv.org/abs/2301.07041", "2301.07041"},
		{"old-style id", "http://arxiv.org/abs/cs/0112017v1", "cs/0112017"},
		{"no abs segment", "http://example.com/other/123", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractArxivID(tt.idURL); got != tt.want {
				t.Errorf("extractArxivID(%q) = %q, want %q", tt.idURL, got, tt.want)
			}
		})
	}
}
