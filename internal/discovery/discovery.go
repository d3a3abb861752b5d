// Package discovery runs restaurant discovery strategies for a city and
// reconciles their candidates into a ranked result set.
package discovery

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/cardinal-labs/dinescout/internal/enrich"
	"github.com/cardinal-labs/dinescout/internal/model"
	"github.com/cardinal-labs/dinescout/internal/reconcile"
	"github.com/cardinal-labs/dinescout/internal/store"
)

// Strategy produces restaurant candidates for a city from one kind of
// source (LLM, web guides, places directory).
type Strategy interface {
	Name() string
	Discover(ctx context.Context, city, state string) ([]model.Candidate, error)
}

// Pipeline chains discovery strategies, reconciles their output, and
// optionally enriches and persists the result.
type Pipeline struct {
	strategies []Strategy
	enricher   *enrich.Enricher
	store      store.Store
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithEnricher attaches a directory enricher to the pipeline.
func WithEnricher(e *enrich.Enricher) Option {
	return func(p *Pipeline) {
		p.enricher = e
	}
}

// WithStore attaches a persistence layer. Runs and records are saved
// when present; discovery still works without one.
func WithStore(s store.Store) Option {
	return func(p *Pipeline) {
		p.store = s
	}
}

// NewPipeline creates a pipeline over the given strategies, executed in
// order.
func NewPipeline(strategies []Strategy, opts ...Option) *Pipeline {
	p := &Pipeline{strategies: strategies}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes every strategy for the city, reconciles the combined
// candidates, enriches them when an enricher is configured, and persists
// the run when a store is configured. A strategy error is logged and
// skipped; the run fails only if every strategy fails.
func (p *Pipeline) Run(ctx context.Context, city, state string) ([]model.Reconciled, error) {
	log := zap.L().With(zap.String("city", city), zap.String("state", state))

	var run *model.Run
	if p.store != nil {
		var err error
		run, err = p.store.CreateRun(ctx, city, state)
		if err != nil {
			return nil, eris.Wrap(err, "discovery: create run")
		}
		log = log.With(zap.String("run_id", run.ID))
	}

	records, err := p.discover(ctx, city, state, log)
	if err != nil {
		p.failRun(ctx, run, log)
		return nil, err
	}

	if p.enricher != nil {
		if err := p.enricher.EnrichAll(ctx, city, state, records); err != nil {
			p.failRun(ctx, run, log)
			return nil, eris.Wrap(err, "discovery: enrich")
		}
	}

	if p.store != nil {
		if err := p.store.SaveRecords(ctx, run.ID, records); err != nil {
			p.failRun(ctx, run, log)
			return nil, eris.Wrap(err, "discovery: save records")
		}
		if err := p.store.CompleteRun(ctx, run.ID, model.Summarize(records)); err != nil {
			return nil, eris.Wrap(err, "discovery: complete run")
		}
	}

	log.Info("discovery complete",
		zap.Int("records", len(records)),
	)
	return records, nil
}

func (p *Pipeline) discover(ctx context.Context, city, state string, log *zap.Logger) ([]model.Reconciled, error) {
	var (
		candidates []model.Candidate
		failures   int
	)
	for _, s := range p.strategies {
		found, err := s.Discover(ctx, city, state)
		if err != nil {
			failures++
			log.Warn("strategy failed",
				zap.String("strategy", s.Name()),
				zap.Error(err),
			)
			continue
		}
		log.Info("strategy finished",
			zap.String("strategy", s.Name()),
			zap.Int("candidates", len(found)),
		)
		candidates = append(candidates, found...)
	}

	if len(p.strategies) > 0 && failures == len(p.strategies) {
		return nil, eris.New("discovery: all strategies failed")
	}

	records := reconcile.Reconcile(candidates)

	log.Info("reconciled candidates",
		zap.Int("candidates", len(candidates)),
		zap.Int("reconciled", len(records)),
	)
	return records, nil
}

func (p *Pipeline) failRun(ctx context.Context, run *model.Run, log *zap.Logger) {
	if p.store == nil || run == nil {
		return
	}
	if err := p.store.FailRun(ctx, run.ID); err != nil {
		log.Warn("could not mark run failed", zap.Error(err))
	}
}
