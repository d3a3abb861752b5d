package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/cardinal-labs/dinescout/internal/model"
	"github.com/cardinal-labs/dinescout/internal/output"
	"github.com/cardinal-labs/dinescout/internal/store"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect discovery run history",
	Long:  "Commands for listing, viewing, and exporting discovery runs.",
}

// -- runs list --

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovery runs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := requireStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		status, _ := cmd.Flags().GetString("status")
		city, _ := cmd.Flags().GetString("city")
		limit, _ := cmd.Flags().GetInt("limit")

		runs, err := st.ListRuns(ctx, store.RunFilter{
			Status: model.RunStatus(status),
			City:   city,
			Limit:  limit,
		})
		if err != nil {
			return eris.Wrap(err, "runs list")
		}

		if len(runs) == 0 {
			fmt.Fprintln(os.Stderr, "No runs found.")
			return nil
		}

		formatRunsList(os.Stdout, runs)
		return nil
	},
}

// -- runs show --

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show full details of a run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := requireStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		run, err := st.GetRun(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "runs show")
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(run)
	},
}

// -- runs export --

var runsExportCmd = &cobra.Command{
	Use:   "export <run-id>",
	Short: "Export a run's records to a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := requireStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		formatStr, _ := cmd.Flags().GetString("format")
		path, _ := cmd.Flags().GetString("output")

		format, err := output.ParseFormat(formatStr)
		if err != nil {
			return err
		}

		records, err := st.ListRecords(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "runs export")
		}
		if len(records) == 0 {
			return eris.Errorf("run %s has no records", args[0])
		}

		if path == "" {
			path = args[0] + "_records." + string(format)
		}
		if err := output.Write(path, format, records); err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "Exported %d records to %s\n", len(records), path)
		return nil
	},
}

func requireStore(cmd *cobra.Command) (store.Store, error) {
	ctx := cmd.Context()
	if err := cfg.Validate("runs"); err != nil {
		return nil, err
	}
	st, err := initStore(ctx)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, eris.New("no store configured (set store.driver to sqlite or postgres)")
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, err
	}
	return st, nil
}

func formatRunsList(w io.Writer, runs []model.Run) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCITY\tSTATUS\tRECORDS\tVALIDATED\tCREATED")
	for _, r := range runs {
		records, validated := "-", "-"
		if r.Summary != nil {
			records = fmt.Sprintf("%d", r.Summary.Reconciled)
			validated = fmt.Sprintf("%d", r.Summary.Validated)
		}
		fmt.Fprintf(tw, "%s\t%s, %s\t%s\t%s\t%s\t%s\n",
			r.ID, r.City, r.State, r.Status, records, validated,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	tw.Flush()
}

func init() {
	runsListCmd.Flags().String("status", "", "filter by run status (running, complete, failed)")
	runsListCmd.Flags().String("city", "", "filter by city")
	runsListCmd.Flags().Int("limit", 50, "max number of runs to display")

	runsExportCmd.Flags().StringP("format", "f", "csv", "output format: csv, xlsx, or json")
	runsExportCmd.Flags().StringP("output", "o", "", "output file path")

	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)
	runsCmd.AddCommand(runsExportCmd)
	rootCmd.AddCommand(runsCmd)
}
