package scrape

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/cardinal-labs/dinescout/internal/model"
)

// maxPerMediaSite caps candidates contributed by one media site.
const maxPerMediaSite = 8

// titlePatterns extract a venue name from a food-article headline.
var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`([A-Z][a-zA-Z\s&'\-]+?)(?:\s+Opens|\s+Brings|\s+Serves|\s+Features)`),
	regexp.MustCompile(`(?:at|from)\s+([A-Z][a-zA-Z\s&'\-]+?)(?:\s|,|$)`),
	regexp.MustCompile(`^([A-Z][a-zA-Z\s&\-]+?)(?:'s|\s+(?:Is|Has|Will|Brings))`),
	regexp.MustCompile(`^([A-Z][a-zA-Z\s&'\-]+?)(?:,|:)`),
}

// MediaSource scrapes local food-media homepages, pulling venue names out of
// article headlines that link to restaurant coverage.
type MediaSource struct {
	fetcher *Fetcher
	sites   []string
}

// NewLocalMediaSource scrapes the default Pittsburgh food-media sites.
func NewLocalMediaSource(fetcher *Fetcher) *MediaSource {
	return &MediaSource{
		fetcher: fetcher,
		sites: []string{
			"https://nextpittsburgh.com/",
			"https://goodfoodpittsburgh.com/",
		},
	}
}

func (s *MediaSource) Name() string { return "Local Media" }

func (s *MediaSource) Fetch(ctx context.Context, city, state string) ([]model.Candidate, error) {
	var out []model.Candidate
	for _, site := range s.sites {
		candidates, err := s.scrapeSite(ctx, site)
		if err != nil {
			zap.L().Warn("scrape: media site failed",
				zap.String("site", site),
				zap.Error(err),
			)
			continue
		}
		out = append(out, candidates...)
	}
	return out, nil
}

func (s *MediaSource) scrapeSite(ctx context.Context, site string) ([]model.Candidate, error) {
	doc, err := s.fetcher.Get(ctx, site)
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(site)
	if err != nil {
		return nil, err
	}

	var out []model.Candidate
	seen := make(map[string]bool)

	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(out) >= maxPerMediaSite {
			return false
		}
		href, _ := sel.Attr("href")
		text := strings.TrimSpace(sel.Text())
		hrefLower := strings.ToLower(href)

		if len(text) <= 5 {
			return true
		}
		if !strings.Contains(hrefLower, "restaurant") &&
			!strings.Contains(hrefLower, "food") &&
			!strings.Contains(hrefLower, "dining") {
			return true
		}

		name := extractNameFromTitle(text)
		if name == "" || seen[strings.ToLower(name)] {
			return true
		}
		seen[strings.ToLower(name)] = true

		articleURL := href
		if ref, err := url.Parse(href); err == nil {
			articleURL = base.ResolveReference(ref).String()
		}
		out = append(out, model.Candidate{
			Name:        name,
			Description: text,
			Source:      s.Name(),
			SourceURL:   articleURL,
		})
		return true
	})

	return out, nil
}

// extractNameFromTitle tries each headline pattern in order.
func extractNameFromTitle(title string) string {
	for _, re := range titlePatterns {
		m := re.FindStringSubmatch(title)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if IsValidVenueName(name) {
			return name
		}
	}
	return ""
}
