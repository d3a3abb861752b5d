package scrape

import (
	"regexp"
	"strings"
)

// Text-pattern extraction used as a fallback when structural scans of a page
// find nothing. Per-pattern caps keep one noisy article from flooding the
// candidate set.
var textPatterns = []*regexp.Regexp{
	// Venue-type suffix: "Sienna Mercato Restaurant", "Bitter Ends Bakery".
	regexp.MustCompile(`\b([A-Z][a-zA-Z\s&'\-]{2,35}(?:Restaurant|Cafe|Bar|Bistro|Grill|Kitchen|House|Eatery|Diner|Steakhouse|Pizzeria|Bakery|Brewery|Tavern|Inn))\b`),
	// Possessive: "Pamela's", "DiAnoia's".
	regexp.MustCompile(`\b([A-Z][a-zA-Z\s&\-]{2,25})'s\b`),
	// Action phrase: "head to Morcilla".
	regexp.MustCompile(`(?:at|visit|try|head to)\s+([A-Z][a-zA-Z\s&'\-]{3,25})\b`),
	// Quoted name.
	regexp.MustCompile(`"([A-Z][a-zA-Z\s&'\-]{3,25})"`),
}

const maxMatchesPerPattern = 5

// ExtractNamesFromText scans prose for venue-name shapes. Results are
// deduplicated case-insensitively, preserving first-seen order.
func ExtractNamesFromText(text string) []string {
	seen := make(map[string]bool)
	var names []string

	for _, re := range textPatterns {
		matches := re.FindAllStringSubmatch(text, -1)
		count := 0
		for _, m := range matches {
			if count >= maxMatchesPerPattern {
				break
			}
			name := strings.TrimSpace(m[1])
			key := strings.ToLower(name)
			if len(name) <= 3 || seen[key] || !LooksLikeVenueName(name) {
				continue
			}
			seen[key] = true
			names = append(names, name)
			count++
		}
	}
	return names
}

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// FindDescription returns the first sentence of the text that mentions the
// venue and is long enough to be useful, truncated to 300 characters.
func FindDescription(text, name string) string {
	lowerName := strings.ToLower(name)
	for _, sentence := range sentenceSplitRe.Split(text, -1) {
		if !strings.Contains(strings.ToLower(sentence), lowerName) {
			continue
		}
		sentence = strings.TrimSpace(sentence)
		if len(sentence) > 20 {
			return truncate(sentence, 300)
		}
	}
	return ""
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
