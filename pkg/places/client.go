// Package places is a thin client for the Google Places API (New), covering
// the text-search and place-details operations the pipeline needs.
package places

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"

	"github.com/cardinal-labs/dinescout/internal/resilience"
)

const defaultBaseURL = "https://places.googleapis.com/v1"

// searchFieldMask limits text-search responses to the fields we read.
const searchFieldMask = "places.id,places.displayName,places.rating,places.userRatingCount,places.formattedAddress"

// detailsFieldMask limits place-details responses to the fields we read.
const detailsFieldMask = "id,displayName,businessStatus,rating,userRatingCount,formattedAddress,priceLevel,websiteUri,regularOpeningHours"

// Client performs directory lookups.
type Client interface {
	TextSearch(ctx context.Context, query string) (*TextSearchResponse, error)
	Details(ctx context.Context, placeID string) (*Place, error)
}

// TextSearchResponse is the response from Places Text Search.
type TextSearchResponse struct {
	Places []Place `json:"places"`
}

// Place represents a place returned by the API. Optional fields are zero
// when the provider omits them; OpeningHours is nil when the place has no
// published hours.
type Place struct {
	ID               string        `json:"id"`
	DisplayName      DisplayName   `json:"displayName"`
	BusinessStatus   string        `json:"businessStatus"`
	Rating           float64       `json:"rating"`
	UserRatingCount  int           `json:"userRatingCount"`
	FormattedAddress string        `json:"formattedAddress"`
	PriceLevel       string        `json:"priceLevel"`
	WebsiteURI       string        `json:"websiteUri"`
	OpeningHours     *OpeningHours `json:"regularOpeningHours,omitempty"`
	// PermanentlyClosed is a legacy-compat flag redundant with
	// BusinessStatus; some responses carry one signal, some the other.
	PermanentlyClosed bool `json:"permanentlyClosed,omitempty"`
}

// DisplayName holds the place's display name.
type DisplayName struct {
	Text string `json:"text"`
}

// OpeningHours holds the weekly hours strings and the open-now flag.
type OpeningHours struct {
	OpenNow             *bool    `json:"openNow,omitempty"`
	WeekdayDescriptions []string `json:"weekdayDescriptions"`
}

// PriceLevelValue converts the API's enum string to the legacy 0-4 scale.
func (p *Place) PriceLevelValue() int {
	switch p.PriceLevel {
	case "PRICE_LEVEL_FREE":
		return 0
	case "PRICE_LEVEL_INEXPENSIVE":
		return 1
	case "PRICE_LEVEL_MODERATE":
		return 2
	case "PRICE_LEVEL_EXPENSIVE":
		return 3
	case "PRICE_LEVEL_VERY_EXPENSIVE":
		return 4
	}
	return 0
}

// MapsURL returns a maps link for the place.
func (p *Place) MapsURL() string {
	return "https://maps.google.com/maps?place_id=" + url.QueryEscape(p.ID)
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithRetry overrides the retry policy for transient provider errors.
func WithRetry(cfg resilience.RetryConfig) Option {
	return func(c *httpClient) {
		c.retry = cfg
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
	retry   resilience.RetryConfig
}

// NewClient creates a Places API client. Transient provider errors (429,
// 5xx, network timeouts) are retried with exponential backoff.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
		retry: resilience.DefaultRetryConfig(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type textSearchRequest struct {
	TextQuery string `json:"textQuery"`
}

func (c *httpClient) TextSearch(ctx context.Context, query string) (*TextSearchResponse, error) {
	body, err := json.Marshal(textSearchRequest{TextQuery: query})
	if err != nil {
		return nil, eris.Wrap(err, "places: marshal request")
	}

	var result TextSearchResponse
	err = resilience.Do(ctx, c.retry, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/places:searchText", bytes.NewReader(body))
		if err != nil {
			return eris.Wrap(err, "places: create request")
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Goog-Api-Key", c.apiKey)
		req.Header.Set("X-Goog-FieldMask", searchFieldMask)
		return c.do(req, &result)
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *httpClient) Details(ctx context.Context, placeID string) (*Place, error) {
	var result Place
	err := resilience.Do(ctx, c.retry, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/places/"+url.PathEscape(placeID), nil)
		if err != nil {
			return eris.Wrap(err, "places: create request")
		}
		req.Header.Set("X-Goog-Api-Key", c.apiKey)
		req.Header.Set("X-Goog-FieldMask", detailsFieldMask)
		return c.do(req, &result)
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *httpClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return eris.Wrap(err, "places: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return eris.Wrap(err, "places: read response")
	}

	if resp.StatusCode != http.StatusOK {
		err := eris.Errorf("places: unexpected status %d: %s", resp.StatusCode, string(respBody))
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return resilience.NewTransientError(err, resp.StatusCode)
		}
		return err
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return eris.Wrap(err, "places: unmarshal response")
	}
	return nil
}
