package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cardinal-labs/dinescout/internal/config"
)

var initConfigForce bool

var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write a starter config.yaml with current defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		const path = "config.yaml"

		if _, err := os.Stat(path); err == nil && !initConfigForce {
			return eris.Errorf("%s already exists (use --force to overwrite)", path)
		}

		starter := config.Config{
			Store: config.StoreConfig{
				Driver:      cfg.Store.Driver,
				DatabaseURL: cfg.Store.DatabaseURL,
			},
			Anthropic: config.AnthropicConfig{
				Model:     cfg.Anthropic.Model,
				MaxTokens: cfg.Anthropic.MaxTokens,
			},
			Places: config.PlacesConfig{
				BaseURL:          cfg.Places.BaseURL,
				LookupsPerSecond: cfg.Places.LookupsPerSecond,
			},
			Discover: cfg.Discover,
			Scrape:   cfg.Scrape,
			Server:   cfg.Server,
			Log:      cfg.Log,
		}

		data, err := yaml.Marshal(&starter)
		if err != nil {
			return eris.Wrap(err, "marshal config")
		}

		header := []byte("# dinescout configuration. API keys come from the environment:\n#   ANTHROPIC_API_KEY, GOOGLE_PLACES_API_KEY\n")
		if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
			return eris.Wrapf(err, "write %s", path)
		}

		fmt.Fprintf(os.Stdout, "Wrote %s\n", path)
		return nil
	},
}

func init() {
	initConfigCmd.Flags().BoolVar(&initConfigForce, "force", false, "overwrite an existing config.yaml")
	rootCmd.AddCommand(initConfigCmd)
}
