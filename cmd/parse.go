package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/cardinal-labs/dinescout/internal/output"
	"github.com/cardinal-labs/dinescout/internal/parser"
	"github.com/cardinal-labs/dinescout/internal/reconcile"
)

var (
	parseOutput   string
	parseFormat   string
	parseSource   string
	parseFreeform bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse restaurant listings from a saved text file",
	Long:  "Parses a numbered-list or freeform text file of restaurant recommendations into structured records, without calling any external API.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("parse"); err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return eris.Wrapf(err, "read %s", args[0])
		}

		format, err := output.ParseFormat(parseFormat)
		if err != nil {
			return err
		}

		text := string(data)
		candidates := parser.ParseNumberedList(text, parseSource)
		if len(candidates) == 0 || parseFreeform {
			candidates = parser.ParseFreeform(text, parseSource)
		}

		records := reconcile.Reconcile(candidates)

		path := parseOutput
		if path == "" {
			path = "parsed_restaurants." + string(format)
		}
		if err := output.Write(path, format, records); err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "Parsed %d restaurants to %s\n", len(records), path)
		return nil
	},
}

func init() {
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "output file path")
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "json", "output format: csv, xlsx, or json")
	parseCmd.Flags().StringVar(&parseSource, "source", "AI Recommendations", "source label for parsed records")
	parseCmd.Flags().BoolVar(&parseFreeform, "freeform", false, "force the freeform parser")
	rootCmd.AddCommand(parseCmd)
}
