package discovery

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/cardinal-labs/dinescout/internal/model"
	"github.com/cardinal-labs/dinescout/internal/scrape"
	"go.uber.org/zap"
)

// maxConcurrentSources bounds parallel fetches so we stay polite to the
// sites we scrape.
const maxConcurrentSources = 3

// ScrapeStrategy fans out over web sources and collects their candidates.
// Results are returned in source order regardless of fetch completion
// order, so downstream reconciliation is deterministic.
type ScrapeStrategy struct {
	sources []scrape.Source
}

// NewScrapeStrategy creates a strategy over the given sources.
func NewScrapeStrategy(sources []scrape.Source) *ScrapeStrategy {
	return &ScrapeStrategy{sources: sources}
}

func (s *ScrapeStrategy) Name() string { return "scrape" }

// Discover fetches every source concurrently. A source failure is logged
// and treated as an empty result so one slow or broken site does not
// sink the run.
func (s *ScrapeStrategy) Discover(ctx context.Context, city, state string) ([]model.Candidate, error) {
	results := make([][]model.Candidate, len(s.sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSources)
	for i, src := range s.sources {
		g.Go(func() error {
			found, err := src.Fetch(ctx, city, state)
			if err != nil {
				zap.L().Warn("scrape source failed",
					zap.String("source", src.Name()),
					zap.Error(err),
				)
				return nil
			}
			results[i] = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var candidates []model.Candidate
	for _, found := range results {
		candidates = append(candidates, found...)
	}
	return candidates, nil
}
