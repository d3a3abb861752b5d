package main

import (
	"context"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/cardinal-labs/dinescout/internal/discovery"
	"github.com/cardinal-labs/dinescout/internal/enrich"
	"github.com/cardinal-labs/dinescout/internal/scrape"
	"github.com/cardinal-labs/dinescout/internal/store"
	anthropicpkg "github.com/cardinal-labs/dinescout/pkg/anthropic"
	"github.com/cardinal-labs/dinescout/pkg/places"
)

func initStore(ctx context.Context) (store.Store, error) {
	switch cfg.Store.Driver {
	case "sqlite":
		dsn := cfg.Store.DatabaseURL
		if dsn == "" {
			dsn = "dinescout.db"
		}
		return store.NewSQLite(dsn)
	case "postgres":
		var poolCfg *store.PoolConfig
		if cfg.Store.Pool != nil {
			poolCfg = &store.PoolConfig{
				MaxConns: cfg.Store.Pool.MaxConns,
				MinConns: cfg.Store.Pool.MinConns,
			}
		}
		return store.NewPostgres(ctx, cfg.Store.DatabaseURL, poolCfg)
	case "none", "":
		return nil, nil
	default:
		return nil, eris.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
}

// initStrategies assembles discovery strategies in the configured order.
// Strategies whose credentials are missing degrade rather than fail: the
// LLM strategy is skipped without a key, places likewise.
func initStrategies(names []string, resultsFile string) ([]discovery.Strategy, error) {
	var strategies []discovery.Strategy
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "llm":
			var opts []discovery.LLMOption
			if cfg.Anthropic.Model != "" {
				opts = append(opts, discovery.WithModel(cfg.Anthropic.Model))
			}
			var client anthropicpkg.Client
			switch {
			case resultsFile != "":
				opts = append(opts, discovery.WithResultsFile(resultsFile))
			case cfg.Anthropic.Key != "":
				client = anthropicpkg.NewClient(cfg.Anthropic.Key)
			default:
				zap.L().Warn("no anthropic key configured, llm strategy will be skipped")
				continue
			}
			strategies = append(strategies, discovery.NewLLMStrategy(client, opts...))
		case "scrape":
			fetcher := scrape.NewFetcher(time.Duration(cfg.Scrape.TimeoutSecs) * time.Second)
			strategies = append(strategies, discovery.NewScrapeStrategy(scrape.DefaultSources(fetcher)))
		case "places":
			if cfg.Places.Key == "" {
				zap.L().Warn("no places key configured, places strategy will be skipped")
				continue
			}
			client := places.NewClient(cfg.Places.Key, places.WithBaseURL(cfg.Places.BaseURL))
			strategies = append(strategies, discovery.NewPlacesStrategy(client))
		default:
			return nil, eris.Errorf("unknown strategy: %s", name)
		}
	}
	if len(strategies) == 0 {
		return nil, eris.New("no usable discovery strategies configured")
	}
	return strategies, nil
}

func initEnricher() *enrich.Enricher {
	if cfg.Places.Key == "" {
		zap.L().Warn("no places key configured, skipping enrichment")
		return nil
	}
	client := places.NewClient(cfg.Places.Key, places.WithBaseURL(cfg.Places.BaseURL))
	return enrich.New(client, cfg.Places.LookupsPerSecond)
}

func initPipeline(ctx context.Context, strategyNames []string, resultsFile string, withEnrich bool) (*discovery.Pipeline, store.Store, error) {
	strategies, err := initStrategies(strategyNames, resultsFile)
	if err != nil {
		return nil, nil, err
	}

	var opts []discovery.Option
	if withEnrich {
		if e := initEnricher(); e != nil {
			opts = append(opts, discovery.WithEnricher(e))
		}
	}

	st, err := initStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	if st != nil {
		if err := st.Migrate(ctx); err != nil {
			st.Close()
			return nil, nil, eris.Wrap(err, "migrate store")
		}
		opts = append(opts, discovery.WithStore(st))
	}

	return discovery.NewPipeline(strategies, opts...), st, nil
}
