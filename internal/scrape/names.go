package scrape

import (
	"regexp"
	"strings"
)

var venueSuffixes = []string{
	"restaurant", "cafe", "bar", "bistro", "grill", "kitchen", "house",
	"eatery", "diner",
}

var foodWords = []string{
	"pizza", "burger", "taco", "sushi", "bbq", "steakhouse", "bakery", "brewery",
}

var listWords = []string{"the", "best", "top", "guide", "list"}

var (
	startsWithLetterRe = regexp.MustCompile(`^[A-Za-z]`)
	startsUpperRe      = regexp.MustCompile(`^[A-Z]`)
	nameCharsRe        = regexp.MustCompile(`^[A-Za-z0-9\s&'\-.]+$`)
)

// LooksLikeVenueName reports whether text plausibly names a restaurant:
// it must start with a letter, be 3-50 characters, and carry a naming cue
// (venue-type suffix, possessive, food word, or a short proper-name shape).
func LooksLikeVenueName(text string) bool {
	if text == "" || len(text) < 3 || len(text) > 50 {
		return false
	}
	if !startsWithLetterRe.MatchString(text) {
		return false
	}

	lower := strings.ToLower(text)

	for _, suffix := range venueSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	if strings.Contains(lower, "'s") {
		return true
	}
	for _, w := range foodWords {
		if strings.Contains(lower, w) {
			return true
		}
	}

	// Short title-case phrases that avoid listicle vocabulary.
	if startsUpperRe.MatchString(text) && len(strings.Fields(text)) <= 4 {
		for _, w := range listWords {
			if containsWord(lower, w) {
				return false
			}
		}
		return true
	}
	return false
}

// invalidNamePatterns reject navigation chrome, site furniture, and bare
// generic terms that heading scans tend to pick up.
var invalidNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(navigation|menu|search|subscribe|sign up|login|contact|about|skip to|main content)$`),
	regexp.MustCompile(`(newsletter|follow|share)$`),
	regexp.MustCompile(`^(restaurant|food|dining|eat|drink|bar|cafe)$`),
}

// IsValidVenueName applies the stricter filter used on scraped text, where
// the surrounding page contributes far more noise than an LLM list does.
func IsValidVenueName(name string) bool {
	if name == "" || len(name) < 3 || len(name) > 60 {
		return false
	}
	lower := strings.TrimSpace(strings.ToLower(name))
	for _, re := range invalidNamePatterns {
		if re.MatchString(lower) {
			return false
		}
	}
	if !startsWithLetterRe.MatchString(name) {
		return false
	}
	return nameCharsRe.MatchString(name)
}

func containsWord(text, word string) bool {
	for _, f := range strings.Fields(text) {
		if f == word {
			return true
		}
	}
	return false
}
