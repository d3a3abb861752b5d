package scrape

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/cardinal-labs/dinescout/internal/model"
)

// maxPerGuidePage caps how many candidates one guide page contributes.
const maxPerGuidePage = 15

var cardClassRe = regexp.MustCompile(`(?i)card|listing|restaurant|business`)

// GuideSource scrapes city tourism and dining-guide pages, where venues
// appear as headings or listing cards with a description paragraph nearby.
type GuideSource struct {
	fetcher *Fetcher
	name    string
	// urls yields the pages to scan for a city; city-specific sources
	// return nil for other cities.
	urls func(city, state string) []string
}

// NewVisitPittsburghSource scrapes the VisitPittsburgh dining pages.
// It only applies when the requested city is Pittsburgh.
func NewVisitPittsburghSource(fetcher *Fetcher) *GuideSource {
	return &GuideSource{
		fetcher: fetcher,
		name:    "VisitPittsburgh",
		urls: func(city, _ string) []string {
			if !strings.EqualFold(city, "pittsburgh") {
				return nil
			}
			return []string{
				"https://www.visitpittsburgh.com/restaurants/",
				"https://www.visitpittsburgh.com/food-drink/",
				"https://www.visitpittsburgh.com/things-to-do/dining/",
			}
		},
	}
}

// NewFoodBlogSource scrapes dining-guide listicles for the city.
func NewFoodBlogSource(fetcher *Fetcher) *GuideSource {
	return &GuideSource{
		fetcher: fetcher,
		name:    "Food Blogs",
		urls: func(city, _ string) []string {
			slug := strings.ToLower(strings.ReplaceAll(city, " ", "-"))
			return []string{
				fmt.Sprintf("https://www.eater.com/maps/best-%s-restaurants", slug),
				fmt.Sprintf("https://www.thrillist.com/eat/%s/best-restaurants-%s", slug, slug),
			}
		},
	}
}

func (s *GuideSource) Name() string { return s.name }

// Fetch scans each guide page for headings, listing cards, and — when the
// structural scan comes up short — text-pattern matches.
func (s *GuideSource) Fetch(ctx context.Context, city, state string) ([]model.Candidate, error) {
	var out []model.Candidate
	for _, pageURL := range s.urls(city, state) {
		doc, err := s.fetcher.Get(ctx, pageURL)
		if err != nil {
			zap.L().Warn("scrape: guide page failed",
				zap.String("source", s.name),
				zap.String("url", pageURL),
				zap.Error(err),
			)
			continue
		}
		out = append(out, s.scanPage(doc, pageURL)...)
	}
	if len(out) > maxPerGuidePage {
		out = out[:maxPerGuidePage]
	}
	return out, nil
}

func (s *GuideSource) scanPage(doc *goquery.Document, pageURL string) []model.Candidate {
	var out []model.Candidate
	seen := make(map[string]bool)

	add := func(name, description string) {
		key := strings.ToLower(name)
		if seen[key] || !IsValidVenueName(name) {
			return
		}
		seen[key] = true
		out = append(out, model.Candidate{
			Name:        name,
			Description: description,
			Source:      s.name,
			SourceURL:   pageURL,
		})
	}

	// Headings frequently carry the venue name, with the description in the
	// following sibling paragraph.
	doc.Find("h2, h3, h4, h5").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if len(text) >= 60 {
			return
		}
		if name := CleanHeadingName(text); name != "" {
			add(name, siblingDescription(sel))
		}
	})

	// Listing cards.
	doc.Find("div, article").Each(func(_ int, sel *goquery.Selection) {
		class, _ := sel.Attr("class")
		if !cardClassRe.MatchString(class) {
			return
		}
		nameSel := sel.Find("h2, h3, h4, a, strong").First()
		name := strings.TrimSpace(nameSel.Text())
		if name == "" || len(name) >= 60 || !LooksLikeVenueName(name) {
			return
		}
		add(name, truncate(strings.TrimSpace(sel.Find("p").First().Text()), 300))
	})

	// Bold/strong emphasis, the other common way listicles highlight names.
	doc.Find("strong, b").Each(func(_ int, sel *goquery.Selection) {
		if name := CleanEmphasisName(strings.TrimSpace(sel.Text())); name != "" {
			add(name, siblingDescription(sel))
		}
	})

	// Text-pattern fallback over the whole article body.
	if len(out) < maxPerGuidePage {
		body := doc.Find("body").Text()
		for _, name := range ExtractNamesFromText(body) {
			add(name, FindDescription(body, name))
		}
	}

	return out
}

// siblingDescription pulls the description paragraph that follows an
// element, checking the parent's next sibling when the element has none.
func siblingDescription(sel *goquery.Selection) string {
	next := sel.NextFiltered("p, div")
	if next.Length() > 0 {
		return truncate(strings.TrimSpace(next.Text()), 300)
	}
	parentNext := sel.Parent().NextFiltered("p, div")
	if parentNext.Length() > 0 {
		return truncate(strings.TrimSpace(parentNext.Text()), 300)
	}
	return ""
}
