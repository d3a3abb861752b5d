package discovery

import (
	"context"
	"fmt"

	"github.com/rotisserie/eris"

	"github.com/cardinal-labs/dinescout/internal/extract"
	"github.com/cardinal-labs/dinescout/internal/model"
	"github.com/cardinal-labs/dinescout/pkg/places"
)

const placesSourceName = "Places Directory"

// Quality floor for directory results. Directory search returns plenty
// of mediocre hits; we only surface well-reviewed spots.
const (
	minDirectoryRating      = 4.0
	minDirectoryRatingCount = 50
)

// Category queries issued per city, in fixed order.
var placeCategories = []string{
	"best restaurants",
	"fine dining restaurants",
	"popular local restaurants",
}

// PlacesStrategy discovers restaurants straight from the places
// directory using category text searches.
type PlacesStrategy struct {
	client places.Client
}

// NewPlacesStrategy creates a directory-backed strategy.
func NewPlacesStrategy(client places.Client) *PlacesStrategy {
	return &PlacesStrategy{client: client}
}

func (s *PlacesStrategy) Name() string { return "places" }

// Discover runs the category searches, filters to well-reviewed places,
// and dedupes by place ID keeping the higher-rated entry.
func (s *PlacesStrategy) Discover(ctx context.Context, city, state string) ([]model.Candidate, error) {
	seen := make(map[string]int) // place ID -> index into candidates
	var candidates []model.Candidate

	for _, category := range placeCategories {
		query := fmt.Sprintf("%s in %s, %s", category, city, state)
		resp, err := s.client.TextSearch(ctx, query)
		if err != nil {
			return nil, eris.Wrapf(err, "discovery: places search %q", category)
		}

		for _, p := range resp.Places {
			if p.Rating < minDirectoryRating || p.UserRatingCount < minDirectoryRatingCount {
				continue
			}
			c := model.Candidate{
				Name:        p.DisplayName.Text,
				CuisineType: model.Unknown,
				PriceTier:   priceTierFromLevel(p.PriceLevelValue()),
				Confidence:  model.ConfidenceHigh,
				Source:      placesSourceName,
				Rating:      p.Rating,
				RatingCount: p.UserRatingCount,
				PlaceID:     p.ID,
			}
			if p.FormattedAddress != "" {
				c.Description = fmt.Sprintf("Highly rated restaurant at %s.", p.FormattedAddress)
			}

			if i, ok := seen[p.ID]; ok {
				if c.Rating > candidates[i].Rating {
					candidates[i] = c
				}
				continue
			}
			seen[p.ID] = len(candidates)
			candidates = append(candidates, c)
		}
	}
	return candidates, nil
}

func priceTierFromLevel(level int) string {
	switch {
	case level >= 3:
		return extract.PriceFineDining
	case level == 2:
		return extract.PriceMidRange
	case level == 1:
		return extract.PriceBudget
	default:
		return extract.PriceMidRange
	}
}
