// Package extract derives structured fields from free text about a restaurant
// using ordered keyword tables. Table order is significant: the first rule
// whose any keyword occurs in the lowercased text wins.
package extract

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cardinal-labs/dinescout/internal/model"
)

// CuisineRule maps a canonical cuisine label to its keyword substrings.
// Keywords must be lowercase.
type CuisineRule struct {
	Label    string
	Keywords []string
}

// DefaultCuisines is the ordered cuisine table. More specific rules come
// before broader ones so that, e.g., "sushi" resolves to Asian before the
// Seafood rule gets a chance at "fish".
var DefaultCuisines = []CuisineRule{
	{"Italian", []string{"italian", "pasta", "pizza", "tuscan", "sicilian", "neapolitan"}},
	{"American", []string{"american", "steakhouse", "burger", "bbq", "barbecue"}},
	{"Asian", []string{"asian", "chinese", "japanese", "sushi", "thai", "korean", "vietnamese"}},
	{"French", []string{"french", "bistro", "brasserie"}},
	{"Mexican", []string{"mexican", "taco", "burrito", "tex-mex"}},
	{"Mediterranean", []string{"mediterranean", "greek", "middle eastern"}},
	{"Seafood", []string{"seafood", "fish", "oyster", "shellfish"}},
	{"Farm-to-table", []string{"farm", "local", "seasonal", "farm-to-table"}},
	{"Caribbean", []string{"caribbean", "jamaican", "cuban"}},
	{"Indian", []string{"indian", "curry", "tandoor"}},
	{"German", []string{"german", "bavarian"}},
}

// DefaultNeighborhoods lists known Pittsburgh neighborhoods, checked in order
// by case-insensitive substring match.
var DefaultNeighborhoods = []string{
	"Downtown", "Strip District", "Lawrenceville", "Shadyside", "Squirrel Hill",
	"East Liberty", "Bloomfield", "Oakland", "Polish Hill", "Garfield",
	"Friendship", "Highland Park", "Morningside", "Allegheny", "North Shore",
	"South Side", "Mount Washington", "Point Breeze", "Greenfield", "Hazelwood",
}

// Price tiers. Fine-dining cues are checked before budget cues; anything
// else, including explicit mid-range or casual wording, falls through to
// the Mid-range default.
const (
	PriceFineDining = "Fine dining"
	PriceMidRange   = "Mid-range"
	PriceBudget     = "Budget"
)

var fineDiningCues = []string{
	"fine dining", "upscale", "expensive", "high-end", "luxury", "michelin",
	"tasting menu", "prix fixe", "white tablecloth",
}

var budgetCues = []string{
	"budget", "cheap", "affordable", "inexpensive", "dive",
}

// Extractor scans keyword tables against description text. The zero-value
// tables are replaced with the defaults by New.
type Extractor struct {
	Cuisines       []CuisineRule
	Neighborhoods  []string
	CuisineDefault string
}

// New creates an Extractor with the default tables and the given cuisine
// default. The structured numbered-list path uses model.Unknown; the
// freeform path uses "American".
func New(cuisineDefault string) *Extractor {
	if cuisineDefault == "" {
		cuisineDefault = model.Unknown
	}
	return &Extractor{
		Cuisines:       DefaultCuisines,
		Neighborhoods:  DefaultNeighborhoods,
		CuisineDefault: cuisineDefault,
	}
}

// Fields is the result of an extraction pass.
type Fields struct {
	CuisineType  string
	Neighborhood string
	PriceTier    string
}

// Extract derives cuisine, neighborhood, and price tier from text.
// Deterministic given fixed tables; no side effects.
func (e *Extractor) Extract(text string) Fields {
	return Fields{
		CuisineType:  e.Cuisine(text),
		Neighborhood: e.Neighborhood(text),
		PriceTier:    e.PriceTier(text),
	}
}

// Cuisine returns the first cuisine label whose any keyword occurs in the
// lowercased text, or the configured default.
func (e *Extractor) Cuisine(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range e.Cuisines {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Label
			}
		}
	}
	return e.CuisineDefault
}

// Neighborhood returns the first known neighborhood mentioned in the text,
// or model.Unknown.
func (e *Extractor) Neighborhood(text string) string {
	lower := strings.ToLower(text)
	for _, n := range e.Neighborhoods {
		if strings.Contains(lower, strings.ToLower(n)) {
			return n
		}
	}
	return model.Unknown
}

// PriceTier classifies the text into one of the three tiers.
func (e *Extractor) PriceTier(text string) string {
	lower := strings.ToLower(text)
	for _, cue := range fineDiningCues {
		if strings.Contains(lower, cue) {
			return PriceFineDining
		}
	}
	for _, cue := range budgetCues {
		if strings.Contains(lower, cue) {
			return PriceBudget
		}
	}
	return PriceMidRange
}

var titleCaser = cases.Title(language.AmericanEnglish)

// CanonicalCuisine maps a caller-provided cuisine string onto a known table
// label when one matches case-insensitively, otherwise title-cases it.
func (e *Extractor) CanonicalCuisine(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return e.CuisineDefault
	}
	for _, rule := range e.Cuisines {
		if strings.EqualFold(rule.Label, s) {
			return rule.Label
		}
	}
	return titleCaser.String(strings.ToLower(s))
}
