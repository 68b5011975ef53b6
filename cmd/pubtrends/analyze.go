// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubtrends/internal/chart"
	"github.com/pdiddy/pubtrends/internal/collect"
	"github.com/pdiddy/pubtrends/internal/dataset"
	"github.com/pdiddy/pubtrends/internal/export"
	"github.com/pdiddy/pubtrends/internal/report"
	"github.com/pdiddy/pubtrends/internal/stats"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the complete collection and analysis pipeline",
	Long: `Analyze runs every stage: it queries OpenAlex for all catalog terms,
deduplicates the results, computes annual statistics, and writes the full
output set (CSV tables, charts, dataset YAML, SQLite database, and the
text report) to the output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)
		if err := ensureOutputDir(cfg.Output); err != nil {
			return err
		}

		fmt.Printf("Collecting papers for %q (%d-%d target window)\n",
			cfg.Output.Topic, cfg.Collect.TargetYearStart, cfg.Collect.TargetYearEnd)

		client := newClient(cfg.Collect)
		out := collect.Run(cmd.Context(), client, cfg.Catalog, cfg.Collect, os.Stderr)
		fmt.Printf("Collected %d unique papers (%d raw, %d duplicates removed)\n",
			len(out.Papers), out.RawCount, out.DupsRemoved)
		if len(out.Papers) == 0 {
			fmt.Println("No papers collected; nothing to write.")
			return nil
		}

		rows := stats.Summarize(out.Papers, cfg.Collect.TargetYearStart, cfg.Collect.TargetYearEnd)

		paths, err := export.WriteAllCSV(cfg.Output.Dir, out.Papers, rows)
		if err != nil {
			return err
		}
		chartPaths, err := chart.WriteAll(cfg.Output.Dir, cfg.Output.Topic, rows)
		if err != nil {
			return err
		}
		paths = append(paths, chartPaths...)

		dsPath := filepath.Join(cfg.Output.Dir, export.DatasetYAML)
		if err := export.WriteDataset(dsPath, cfg.Catalog, cfg.Collect, out, rows); err != nil {
			return err
		}
		paths = append(paths, dsPath)

		dbPath := filepath.Join(cfg.Output.Dir, dataset.DatabaseFile)
		if err := dataset.Write(dbPath, out.Papers, rows); err != nil {
			return err
		}
		paths = append(paths, dbPath)

		reportPath := filepath.Join(cfg.Output.Dir, report.ReportTXT)
		if err := report.WriteFile(reportPath, cfg.Output.Topic, cfg.Collect, out, rows); err != nil {
			return err
		}
		paths = append(paths, reportPath)

		fmt.Println("Wrote:")
		for _, p := range paths {
			fmt.Printf("  %s\n", p)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
