// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubtrends/internal/collect"
	"github.com/pdiddy/pubtrends/internal/export"
	"github.com/pdiddy/pubtrends/internal/report"
	"github.com/pdiddy/pubtrends/internal/stats"
	"github.com/pdiddy/pubtrends/pkg/types"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write the text summary report and annual tables",
	Long: `Report collects papers and writes the annual summary CSV and the text
report. With --from-dataset it skips collection and rebuilds the report
from a dataset YAML written by a previous analyze run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)
		if err := ensureOutputDir(cfg.Output); err != nil {
			return err
		}

		var out collect.Output
		var rows []types.AnnualSummary

		if path, _ := cmd.Flags().GetString("from-dataset"); path != "" {
			ds, err := export.ReadDataset(path)
			if err != nil {
				return err
			}
			out = collect.Output{
				Papers:      ds.Papers,
				RawCount:    ds.Stats.RawCount,
				DupsRemoved: ds.Stats.DupsRemoved,
				Queries:     ds.Queries,
			}
			rows = ds.Summary
			cfg.Collect.TargetYearStart = ds.Window.TargetYearStart
			cfg.Collect.TargetYearEnd = ds.Window.TargetYearEnd
			fmt.Printf("Loaded %d papers from %s\n", len(out.Papers), path)
		} else {
			client := newClient(cfg.Collect)
			out = collect.Run(cmd.Context(), client, cfg.Catalog, cfg.Collect, os.Stderr)
			fmt.Printf("Collected %d unique papers (%d raw, %d duplicates removed)\n",
				len(out.Papers), out.RawCount, out.DupsRemoved)
			rows = stats.Summarize(out.Papers, cfg.Collect.TargetYearStart, cfg.Collect.TargetYearEnd)
		}

		if len(out.Papers) == 0 {
			fmt.Println("No papers collected; nothing to write.")
			return nil
		}

		summaryPath := filepath.Join(cfg.Output.Dir, export.SummaryCSV)
		if err := export.WriteSummaryCSV(summaryPath, rows); err != nil {
			return err
		}
		reportPath := filepath.Join(cfg.Output.Dir, report.ReportTXT)
		if err := report.WriteFile(reportPath, cfg.Output.Topic, cfg.Collect, out, rows); err != nil {
			return err
		}

		fmt.Println("Wrote:")
		fmt.Printf("  %s\n", summaryPath)
		fmt.Printf("  %s\n", reportPath)
		return nil
	},
}

func init() {
	reportCmd.Flags().String("from-dataset", "", "rebuild the report from a dataset YAML instead of collecting")

	rootCmd.AddCommand(reportCmd)
}
