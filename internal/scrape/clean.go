package scrape

import (
	"regexp"
	"strings"
)

var (
	leadingNumberRe = regexp.MustCompile(`^\d+[.)]?\s*`)
	parenSuffixRe   = regexp.MustCompile(`\s*\([^)]+\)$`)
	// gluedLocationRe matches headings where a neighborhood prefix runs into
	// the venue name without a space, e.g. "LawrencevillePiccolo Forno".
	gluedLocationRe = regexp.MustCompile(`^([A-Z][a-z]+)([A-Z][a-zA-Z\s&'\-]+)$`)
	skipHeadingRes  = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(best|top|where|what|how|why|the\s+best)`),
		regexp.MustCompile(`(?i)(guide|list|map|article)`),
		regexp.MustCompile(`(?i)^(pittsburgh|pennsylvania|pa)\s*$`),
	}
)

// CleanHeadingName extracts a venue name from a page heading, or "" when
// the heading is clearly not naming a venue.
func CleanHeadingName(text string) string {
	text = strings.TrimSpace(leadingNumberRe.ReplaceAllString(text, ""))

	for _, re := range skipHeadingRes {
		if re.MatchString(text) {
			return ""
		}
	}

	// "Italian restaurant -- it's Sienna Mercato": keep the part that
	// reads like a venue name.
	if strings.Contains(text, " -- ") {
		for _, part := range strings.Split(text, " -- ") {
			part = strings.TrimSpace(part)
			if LooksLikeVenueName(part) {
				return part
			}
		}
	}

	if m := gluedLocationRe.FindStringSubmatch(text); m != nil && len(m[2]) > 3 {
		return strings.TrimSpace(m[2])
	}

	if LooksLikeVenueName(text) {
		return text
	}
	return ""
}

var navigationWords = []string{"skip to", "main content", "navigation", "subscribe"}

// CleanEmphasisName extracts a venue name from bold/strong text.
func CleanEmphasisName(text string) string {
	text = strings.TrimSpace(leadingNumberRe.ReplaceAllString(text, ""))
	text = parenSuffixRe.ReplaceAllString(text, "")

	if len(text) < 3 {
		return ""
	}
	lower := strings.ToLower(text)
	for _, w := range navigationWords {
		if strings.Contains(lower, w) {
			return ""
		}
	}
	if LooksLikeVenueName(text) {
		return text
	}
	return ""
}
