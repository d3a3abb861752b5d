package parser

import (
	"regexp"
	"strings"

	"github.com/cardinal-labs/dinescout/internal/extract"
	"github.com/cardinal-labs/dinescout/internal/model"
)

// markerRe matches a new-entry marker: a leading numeral with optional
// period, or a bullet glyph.
var markerRe = regexp.MustCompile(`^(\d+\.?\s*|[-*\x{2022}]\s*)(.+)$`)

var dashRe = regexp.MustCompile(`\s*[-\x{2013}\x{2014}]\s*`)

// boilerplatePhrases mark lines that introduce a list rather than name a
// restaurant.
var boilerplatePhrases = []string{
	"here are", "the following", "restaurants include", "top picks",
}

// ParseFreeform parses ad hoc bulleted or numbered research notes. A marker
// line starts a new entry; subsequent non-marker lines accumulate into the
// current entry's description. Entries with names shorter than 3 characters
// or containing boilerplate phrases are dropped.
func ParseFreeform(text, source string) []model.Candidate {
	ex := extract.New("American")

	var out []model.Candidate
	var current *model.Candidate

	flush := func() {
		if current == nil {
			return
		}
		current.Description = strings.Join(strings.Fields(current.Description), " ")
		fields := ex.Extract(current.Description)
		current.CuisineType = fields.CuisineType
		current.Neighborhood = fields.Neighborhood
		current.PriceTier = fields.PriceTier
		out = append(out, *current)
		current = nil
	}

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		m := markerRe.FindStringSubmatch(line)
		if m == nil {
			if current != nil {
				current.Description += " " + line
			}
			continue
		}

		content := strings.TrimSpace(m[2])
		name, description := content, ""
		if parts := dashRe.Split(content, 2); len(parts) == 2 {
			name = strings.TrimSpace(parts[0])
			description = strings.TrimSpace(parts[1])
		}

		if !acceptableName(name) {
			// A rejected marker still closes the previous entry, so its
			// own continuation lines cannot leak into it.
			flush()
			continue
		}

		flush()
		current = &model.Candidate{
			Name:        name,
			Description: description,
			Confidence:  model.ConfidenceMedium,
			Source:      source,
		}
	}
	flush()

	return out
}

func acceptableName(name string) bool {
	if len(name) < 3 {
		return false
	}
	lower := strings.ToLower(name)
	for _, phrase := range boilerplatePhrases {
		if strings.Contains(lower, phrase) {
			return false
		}
	}
	return true
}
