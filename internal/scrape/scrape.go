// Package scrape extracts restaurant candidates from public web pages. Each
// Source wraps one site family; all of them share the name heuristics in
// names.go and the document fetcher below.
package scrape

import (
	"context"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"

	"github.com/cardinal-labs/dinescout/internal/model"
)

// Source discovers candidates for a city from one scraped site family.
// A failing source returns an error and contributes zero records; the
// caller isolates the failure.
type Source interface {
	Name() string
	Fetch(ctx context.Context, city, state string) ([]model.Candidate, error)
}

const userAgent = "Mozilla/5.0 (compatible; DinescoutBot/1.0)"

// DefaultSources returns the standard source set in its fixed fetch order.
func DefaultSources(fetcher *Fetcher) []Source {
	return []Source{
		NewVisitPittsburghSource(fetcher),
		NewFoodBlogSource(fetcher),
		NewLocalMediaSource(fetcher),
		NewSeedSource(),
	}
}

// Fetcher retrieves and parses HTML documents.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher with sensible timeouts.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 10 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
	}
}

// Get fetches a URL and parses it into a goquery document.
func (f *Fetcher) Get(ctx context.Context, targetURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "scrape: create request")
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "scrape: fetch")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, eris.Errorf("scrape: status %d for %s", resp.StatusCode, targetURL)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return nil, eris.Wrap(err, "scrape: parse html")
	}
	return doc, nil
}
