package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardinal-labs/dinescout/internal/model"
)

func TestParseFreeform_Bullets(t *testing.T) {
	text := `- Butcher and the Rye - Whiskey bar with upscale American food
- Spoon - Contemporary dining in East Liberty
* Kaya - Caribbean spot in the Strip District`

	got := ParseFreeform(text, "notes")
	require.Len(t, got, 3)

	assert.Equal(t, "Butcher and the Rye", got[0].Name)
	assert.Equal(t, "Whiskey bar with upscale American food", got[0].Description)
	assert.Equal(t, "American", got[0].CuisineType)
	assert.Equal(t, "Fine dining", got[0].PriceTier)
	assert.Equal(t, model.ConfidenceMedium, got[0].Confidence)
	assert.Equal(t, "notes", got[0].Source)

	assert.Equal(t, "Spoon", got[1].Name)
	assert.Equal(t, "East Liberty", got[1].Neighborhood)

	assert.Equal(t, "Kaya", got[2].Name)
	assert.Equal(t, "Caribbean", got[2].CuisineType)
	assert.Equal(t, "Strip District", got[2].Neighborhood)
}

func TestParseFreeform_ContinuationLines(t *testing.T) {
	text := `1. Apteka - Vegan Eastern European cooking
with an excellent bar program
2. Morcilla - Spanish small plates`

	got := ParseFreeform(text, "notes")
	require.Len(t, got, 2)
	assert.Equal(t, "Vegan Eastern European cooking with an excellent bar program", got[0].Description)
	assert.Equal(t, "Morcilla", got[1].Name)
}

func TestParseFreeform_DropsBoilerplateAndShortNames(t *testing.T) {
	text := `- Here are my top picks for dinner
- ok
- The Commoner - Downtown gastropub`

	got := ParseFreeform(text, "notes")
	require.Len(t, got, 1)
	assert.Equal(t, "The Commoner", got[0].Name)
}

func TestParseFreeform_RejectedMarkerClosesPreviousEntry(t *testing.T) {
	text := `- Morcilla - Spanish small plates
- Here are some more top picks
everything on this line belongs to the dropped intro
- Pamela's Diner - Classic breakfast counter`

	got := ParseFreeform(text, "notes")
	require.Len(t, got, 2)

	assert.Equal(t, "Morcilla", got[0].Name)
	assert.Equal(t, "Spanish small plates", got[0].Description)
	assert.NotContains(t, got[0].Description, "dropped intro")

	assert.Equal(t, "Pamela's Diner", got[1].Name)
}

func TestParseFreeform_DefaultsCuisineToAmerican(t *testing.T) {
	got := ParseFreeform("- Stuntpig - Everything made in-house", "notes")
	require.Len(t, got, 1)
	assert.Equal(t, "American", got[0].CuisineType)
	assert.Equal(t, model.Unknown, got[0].Neighborhood)
}

func TestParseFreeform_NameOnlyEntry(t *testing.T) {
	got := ParseFreeform("• Gaucho Parrilla Argentina", "notes")
	require.Len(t, got, 1)
	assert.Equal(t, "Gaucho Parrilla Argentina", got[0].Name)
	assert.Empty(t, got[0].Description)
}

func TestParseFreeform_Empty(t *testing.T) {
	assert.Empty(t, ParseFreeform("", "notes"))
}
