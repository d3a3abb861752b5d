package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardinal-labs/dinescout/internal/model"
)

func TestParseNumberedList_FullEntry(t *testing.T) {
	got := ParseNumberedList("1. Tusca - Upscale Italian spot. Italian, Downtown, Fine dining.", "AI Recommendations")
	require.Len(t, got, 1)

	c := got[0]
	assert.Equal(t, "Tusca", c.Name)
	assert.Equal(t, "Upscale Italian spot", c.Description)
	assert.Equal(t, "Italian", c.CuisineType)
	assert.Equal(t, "Downtown", c.Neighborhood)
	assert.Equal(t, "Fine dining", c.PriceTier)
	assert.Equal(t, model.ConfidenceHigh, c.Confidence)
	assert.Equal(t, "AI Recommendations", c.Source)
}

func TestParseNumberedList_MultipleEntries(t *testing.T) {
	text := `Here are some great restaurants:

1. Tusca - Upscale Italian spot. Italian, Downtown, Fine dining.
2. The Commoner - Gastropub fare in a lively room. American, Downtown, Mid-range.
3. Kaya - Island flavors and rum drinks. Caribbean, Strip District, Mid-range.
`
	got := ParseNumberedList(text, "AI Recommendations")
	require.Len(t, got, 3)
	assert.Equal(t, "Tusca", got[0].Name)
	assert.Equal(t, "The Commoner", got[1].Name)
	assert.Equal(t, "Kaya", got[2].Name)
	assert.Equal(t, "Caribbean", got[2].CuisineType)
	assert.Equal(t, "Strip District", got[2].Neighborhood)
}

func TestParseNumberedList_DropsNonMatchingLines(t *testing.T) {
	text := `Intro line without a number
1. Spoon - Contemporary American dining. American, East Liberty, Fine dining.
not an entry
`
	got := ParseNumberedList(text, "test")
	require.Len(t, got, 1)
	assert.Equal(t, "Spoon", got[0].Name)
}

func TestParseNumberedList_EnDashSeparator(t *testing.T) {
	got := ParseNumberedList("1. Apteka – Vegan Eastern European cuisine. Mediterranean, Bloomfield, Mid-range.", "test")
	require.Len(t, got, 1)
	assert.Equal(t, "Apteka", got[0].Name)
	assert.Equal(t, "Bloomfield", got[0].Neighborhood)
}

func TestParseNumberedList_NoSeparatorFallback(t *testing.T) {
	got := ParseNumberedList("1. Gaucho Parrilla Argentina. Wood-fired meats downtown.", "test")
	require.Len(t, got, 1)

	c := got[0]
	assert.Equal(t, "Gaucho Parrilla Argentina", c.Name)
	assert.Equal(t, "Gaucho Parrilla Argentina. Wood-fired meats downtown.", c.Description)
	assert.Equal(t, "Downtown", c.Neighborhood)
}

func TestParseNumberedList_MissingDetailSlots(t *testing.T) {
	// Single-sentence rest: no detail triple, extractor fills the fields.
	got := ParseNumberedList("1. Morcilla - Spanish small plates in Lawrenceville", "test")
	require.Len(t, got, 1)

	c := got[0]
	assert.Equal(t, "Morcilla", c.Name)
	assert.Equal(t, "Spanish small plates in Lawrenceville", c.Description)
	assert.Equal(t, model.Unknown, c.CuisineType)
	assert.Equal(t, "Lawrenceville", c.Neighborhood)
}

func TestParseNumberedList_PartialDetailTriple(t *testing.T) {
	// Only cuisine and neighborhood present; price defaults to Mid-range.
	got := ParseNumberedList("1. Soju - Modern Korean with creative cocktails. Asian, Garfield.", "test")
	require.Len(t, got, 1)

	c := got[0]
	assert.Equal(t, "Asian", c.CuisineType)
	assert.Equal(t, "Garfield", c.Neighborhood)
	assert.Equal(t, "Mid-range", c.PriceTier)
}

func TestParseNumberedList_CanonicalizesCuisineSlot(t *testing.T) {
	got := ParseNumberedList("1. Fet-Fisk - Inventive seasonal cooking. nordic fusion, Bloomfield, Fine dining.", "test")
	require.Len(t, got, 1)
	assert.Equal(t, "Nordic Fusion", got[0].CuisineType)
}

func TestParseNumberedList_Empty(t *testing.T) {
	assert.Empty(t, ParseNumberedList("", "test"))
	assert.Empty(t, ParseNumberedList("no entries here at all", "test"))
}
