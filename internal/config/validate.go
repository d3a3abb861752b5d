package config

import (
	"strings"

	"github.com/rotisserie/eris"
)

// Validate checks that the configuration carries everything the named
// command mode needs. All problems are reported together rather than
// one at a time.
func (c *Config) Validate(mode string) error {
	var problems []string

	switch c.Store.Driver {
	case "sqlite", "postgres", "none", "":
	default:
		problems = append(problems, "store.driver must be sqlite, postgres, or none")
	}
	if c.Store.Driver == "postgres" && c.Store.DatabaseURL == "" {
		problems = append(problems, "store.database_url is required for the postgres driver")
	}

	switch mode {
	case "discover":
		if c.Scrape.TimeoutSecs <= 0 {
			problems = append(problems, "scrape.timeout_secs must be > 0")
		}
		if c.Places.Key != "" && c.Places.LookupsPerSecond <= 0 {
			problems = append(problems, "places.lookups_per_second must be > 0")
		}
	case "serve":
		if c.Server.Port <= 0 {
			problems = append(problems, "server.port must be > 0")
		}
	case "runs":
		if c.Store.Driver == "none" || c.Store.Driver == "" {
			problems = append(problems, "store.driver is required to inspect runs")
		}
	case "parse":
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if len(problems) > 0 {
		return eris.New("config: " + strings.Join(problems, "; "))
	}
	return nil
}
