// Package enrich augments reconciled records with live business-status data
// from the directory API.
package enrich

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/cardinal-labs/dinescout/internal/model"
	"github.com/cardinal-labs/dinescout/internal/resilience"
	"github.com/cardinal-labs/dinescout/pkg/places"
)

// Enricher looks up each record in the directory and merges status, rating,
// and hours fields. Lookups are paced with a rate limiter to respect the
// provider's informal limits, and run through a circuit breaker so a dying
// provider fails the remaining lookups fast instead of timing out each one.
type Enricher struct {
	client  places.Client
	limiter *rate.Limiter
	breaker *resilience.CircuitBreaker
	now     func() time.Time
}

// New creates an Enricher. lookupsPerSecond <= 0 falls back to 2/s, which
// matches the fixed half-second pacing the provider tolerates.
func New(client places.Client, lookupsPerSecond float64) *Enricher {
	if lookupsPerSecond <= 0 {
		lookupsPerSecond = 2
	}
	return &Enricher{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(lookupsPerSecond), 1),
		breaker: resilience.NewCircuitBreaker(resilience.DefaultCircuitBreakerConfig()),
		now:     time.Now,
	}
}

// EnrichAll enriches records in place, one lookup at a time. A failed lookup
// tags that record ERROR and moves on; it is not retried within the run.
func (e *Enricher) EnrichAll(ctx context.Context, city, state string, records []model.Reconciled) error {
	for i := range records {
		if err := e.limiter.Wait(ctx); err != nil {
			return err
		}
		records[i].Enrichment = e.Enrich(ctx, city, state, &records[i])
	}
	return nil
}

// Enrich performs one directory lookup for a record. Every outcome stamps
// LastVerifiedAt with the attempt time.
func (e *Enricher) Enrich(ctx context.Context, city, state string, rec *model.Reconciled) *model.Enrichment {
	enr := &model.Enrichment{LastVerifiedAt: e.now().UTC()}

	place, err := resilience.ExecuteVal(ctx, e.breaker, func(ctx context.Context) (*places.Place, error) {
		return e.lookup(ctx, rec.Name, city, state)
	})
	if err != nil {
		zap.L().Error("enrich: lookup failed",
			zap.String("name", rec.Name),
			zap.Error(err),
		)
		enr.VerificationStatus = model.VerificationError
		enr.Error = err.Error()
		return enr
	}
	if place == nil {
		zap.L().Warn("enrich: not found in directory", zap.String("name", rec.Name))
		enr.VerificationStatus = model.VerificationNotFound
		enr.BusinessStatus = model.StatusNotFound
		return enr
	}

	details, err := resilience.ExecuteVal(ctx, e.breaker, func(ctx context.Context) (*places.Place, error) {
		return e.client.Details(ctx, place.ID)
	})
	if err != nil {
		zap.L().Error("enrich: details failed",
			zap.String("name", rec.Name),
			zap.String("place_id", place.ID),
			zap.Error(err),
		)
		enr.VerificationStatus = model.VerificationError
		enr.Error = err.Error()
		return enr
	}

	enr.VerificationStatus = model.VerificationVerified
	enr.BusinessStatus = details.BusinessStatus
	if enr.BusinessStatus == "" {
		enr.BusinessStatus = model.StatusUnknown
	}
	enr.DirectoryName = details.DisplayName.Text
	enr.Address = details.FormattedAddress
	enr.Website = details.WebsiteURI
	enr.Rating = details.Rating
	enr.RatingCount = details.UserRatingCount
	enr.PriceLevel = details.PriceLevelValue()
	enr.PlaceID = details.ID
	enr.MapsURL = details.MapsURL()
	if details.OpeningHours != nil {
		enr.OpeningHours = details.OpeningHours.WeekdayDescriptions
		enr.OpenNow = details.OpeningHours.OpenNow
	}

	// Either closure signal is authoritative; force both fields when one fires.
	MergeClosure(enr, details.PermanentlyClosed)
	if enr.PermanentlyClosed {
		zap.L().Warn("enrich: permanently closed", zap.String("name", rec.Name))
	}

	return enr
}

// MergeClosure applies the redundant permanent-closure flag a provider may
// return alongside the status enum. Either signal forces both fields.
func MergeClosure(enr *model.Enrichment, permanentlyClosed bool) {
	if permanentlyClosed || enr.BusinessStatus == model.StatusClosedPermanently {
		enr.BusinessStatus = model.StatusClosedPermanently
		enr.PermanentlyClosed = true
	}
}

// lookup searches "{name} restaurant {city} {state}", falling back to
// "{name} {city}" when the first query yields nothing.
func (e *Enricher) lookup(ctx context.Context, name, city, state string) (*places.Place, error) {
	query := fmt.Sprintf("%s restaurant %s %s", name, city, state)
	resp, err := e.client.TextSearch(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(resp.Places) == 0 {
		resp, err = e.client.TextSearch(ctx, fmt.Sprintf("%s %s", name, city))
		if err != nil {
			return nil, err
		}
	}
	if len(resp.Places) == 0 {
		return nil, nil
	}
	return &resp.Places[0], nil
}
