package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cardinal-labs/dinescout/internal/model"
)

func TestCuisine_FirstMatchWins(t *testing.T) {
	e := New("")

	tests := []struct {
		name string
		text string
		want string
	}{
		{"italian keyword", "Upscale Italian spot with housemade pasta", "Italian"},
		{"sushi resolves before seafood", "Omakase sushi and fresh fish daily", "Asian"},
		{"table order on overlap", "Wood-fired pizza and thai curries", "Italian"},
		{"french bistro", "A cozy bistro on the corner", "French"},
		{"bbq", "Texas-style BBQ brisket", "American"},
		{"farm to table", "Seasonal menu from local farms", "Farm-to-table"},
		{"no match falls to default", "A lovely spot downtown", model.Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Cuisine(tt.text))
		})
	}
}

func TestCuisine_ConfiguredDefault(t *testing.T) {
	e := New("American")
	assert.Equal(t, "American", e.Cuisine("a nice place to eat"))
}

func TestNeighborhood(t *testing.T) {
	e := New("")

	assert.Equal(t, "Lawrenceville", e.Neighborhood("Tucked away in Lawrenceville"))
	assert.Equal(t, "Squirrel Hill", e.Neighborhood("a squirrel hill institution"))
	assert.Equal(t, model.Unknown, e.Neighborhood("somewhere in the city"))
}

func TestNeighborhood_OrderBreaksTies(t *testing.T) {
	e := New("")
	// Both Downtown and South Side appear; Downtown is earlier in the table.
	assert.Equal(t, "Downtown", e.Neighborhood("between Downtown and the South Side"))
}

func TestPriceTier(t *testing.T) {
	e := New("")

	tests := []struct {
		text string
		want string
	}{
		{"An upscale tasting menu experience", PriceFineDining},
		{"cheap eats and big portions", PriceBudget},
		{"neighborhood favorite with great wings", PriceMidRange},
		// Fine-dining cues win over budget cues when both appear.
		{"upscale food at affordable prices", PriceFineDining},
		{"", PriceMidRange},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, e.PriceTier(tt.text), "text: %q", tt.text)
	}
}

func TestExtract_Deterministic(t *testing.T) {
	e := New("")
	text := "Upscale Italian spot in the Strip District"

	first := e.Extract(text)
	assert.Equal(t, Fields{
		CuisineType:  "Italian",
		Neighborhood: "Strip District",
		PriceTier:    PriceFineDining,
	}, first)

	// Same input, same output; tables are never mutated.
	assert.Equal(t, first, e.Extract(text))
}

func TestCanonicalCuisine(t *testing.T) {
	e := New("American")

	assert.Equal(t, "Italian", e.CanonicalCuisine("italian"))
	assert.Equal(t, "Italian", e.CanonicalCuisine("ITALIAN"))
	assert.Equal(t, "Farm-to-table", e.CanonicalCuisine("farm-TO-table"))
	assert.Equal(t, "Nordic Fusion", e.CanonicalCuisine("nordic fusion"))
	assert.Equal(t, "American", e.CanonicalCuisine("  "))
}
