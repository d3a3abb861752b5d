package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cardinal-labs/dinescout/internal/output"
)

var (
	discoverCity        string
	discoverState       string
	discoverOutput      string
	discoverFormat      string
	discoverStrategies  []string
	discoverNoEnrich    bool
	discoverResultsFile string
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Discover and verify restaurants for a city",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("discover"); err != nil {
			return err
		}

		city := discoverCity
		state := discoverState
		if city == "" {
			city = cfg.Discover.City
		}
		if state == "" {
			state = cfg.Discover.State
		}
		if city == "" || state == "" {
			return eris.New("city and state are required")
		}

		format, err := output.ParseFormat(discoverFormat)
		if err != nil {
			return err
		}

		strategies := discoverStrategies
		if len(strategies) == 0 {
			strategies = cfg.Discover.Strategies
		}

		enrichEnabled := cfg.Discover.Enrich && !discoverNoEnrich

		pipeline, st, err := initPipeline(ctx, strategies, discoverResultsFile, enrichEnabled)
		if err != nil {
			return err
		}
		if st != nil {
			defer st.Close()
		}

		records, err := pipeline.Run(ctx, city, state)
		if err != nil {
			return eris.Wrap(err, "discover")
		}

		path := discoverOutput
		if path == "" {
			path = output.DefaultFilename(city, format)
		}
		if err := output.Write(path, format, records); err != nil {
			return err
		}

		zap.L().Info("wrote results",
			zap.String("path", path),
			zap.Int("records", len(records)),
		)
		fmt.Fprintf(os.Stdout, "Saved %d restaurants to %s\n", len(records), path)
		return nil
	},
}

func init() {
	discoverCmd.Flags().StringVar(&discoverCity, "city", "", "city to discover (default from config)")
	discoverCmd.Flags().StringVar(&discoverState, "state", "", "state abbreviation (default from config)")
	discoverCmd.Flags().StringVarP(&discoverOutput, "output", "o", "", "output file path")
	discoverCmd.Flags().StringVarP(&discoverFormat, "format", "f", "csv", "output format: csv, xlsx, or json")
	discoverCmd.Flags().StringSliceVar(&discoverStrategies, "strategies", nil, "discovery strategies to run, in order (llm,scrape,places)")
	discoverCmd.Flags().BoolVar(&discoverNoEnrich, "no-enrich", false, "skip directory verification")
	discoverCmd.Flags().StringVar(&discoverResultsFile, "results-file", "", "replay saved AI results from a JSON file instead of calling the API")
	rootCmd.AddCommand(discoverCmd)
}
