// Package parser splits prose restaurant lists into candidate records. Two
// input shapes are supported: the numbered-list format the LLM is prompted
// to produce, and freeform bulleted notes pasted from other tools.
package parser

import (
	"regexp"
	"strings"

	"github.com/cardinal-labs/dinescout/internal/extract"
	"github.com/cardinal-labs/dinescout/internal/model"
)

var numberedLineRe = regexp.MustCompile(`^(\d+)\.\s*(.+)`)

// nameSeparators split "Name - description" entries. The plain hyphen form
// requires surrounding spaces; en and em dashes are separators on their own.
var nameSeparators = []string{" - ", " – ", " — ", "–", "—"}

// ParseNumberedList parses an LLM completion in the prompted format:
//
//  1. Restaurant Name - Description here. Cuisine, Neighborhood, Price.
//
// Lines that do not match the numbered pattern are dropped rather than
// merged into the previous entry. Multi-line entries therefore lose their
// continuation text; the numbered prompt format makes this rare in practice.
func ParseNumberedList(text, source string) []model.Candidate {
	ex := extract.New(model.Unknown)

	var out []model.Candidate
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := numberedLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		content := m[2]

		var c model.Candidate
		if name, rest, ok := splitNameSeparator(content); ok {
			c = parseNamedEntry(ex, name, rest)
		} else {
			// Fallback when the entry lacks a separator: name is the text
			// before the first period, the whole content is the description.
			name := content
			if i := strings.Index(content, "."); i >= 0 {
				name = content[:i]
			}
			fields := ex.Extract(content)
			c = model.Candidate{
				Name:         strings.TrimSpace(name),
				Description:  content,
				CuisineType:  fields.CuisineType,
				Neighborhood: fields.Neighborhood,
				PriceTier:    fields.PriceTier,
			}
		}

		c.Confidence = model.ConfidenceHigh
		c.Source = source
		out = append(out, c)
	}
	return out
}

// splitNameSeparator splits content on the first name/description separator.
func splitNameSeparator(content string) (name, rest string, ok bool) {
	for _, sep := range nameSeparators {
		if i := strings.Index(content, sep); i >= 0 {
			return strings.TrimSpace(content[:i]), strings.TrimSpace(content[i+len(sep):]), true
		}
	}
	return "", "", false
}

// parseNamedEntry handles "Name - description-plus-details". When the
// trailing sentence holds comma-separated values, up to three of them are
// taken positionally as cuisine, neighborhood, and price, overriding the
// extractor's guess for any slot present.
func parseNamedEntry(ex *extract.Extractor, name, rest string) model.Candidate {
	c := model.Candidate{Name: name}

	sentences := strings.Split(rest, ". ")
	if len(sentences) >= 2 {
		c.Description = strings.TrimSpace(strings.Join(sentences[:len(sentences)-1], ". "))
		details := strings.TrimSuffix(strings.TrimSpace(sentences[len(sentences)-1]), ".")

		fields := ex.Extract(c.Description)
		c.CuisineType = fields.CuisineType
		c.Neighborhood = fields.Neighborhood
		c.PriceTier = extract.PriceMidRange

		parts := strings.Split(details, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if len(parts) > 0 && parts[0] != "" {
			c.CuisineType = ex.CanonicalCuisine(parts[0])
		}
		if len(parts) > 1 && parts[1] != "" {
			c.Neighborhood = parts[1]
		}
		if len(parts) > 2 && parts[2] != "" {
			c.PriceTier = parts[2]
		}
		return c
	}

	c.Description = strings.TrimSpace(rest)
	fields := ex.Extract(c.Description)
	c.CuisineType = fields.CuisineType
	c.Neighborhood = fields.Neighborhood
	c.PriceTier = fields.PriceTier
	return c
}
