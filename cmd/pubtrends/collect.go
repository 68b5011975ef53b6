// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubtrends/internal/chart"
	"github.com/pdiddy/pubtrends/internal/collect"
	"github.com/pdiddy/pubtrends/internal/export"
	"github.com/pdiddy/pubtrends/internal/stats"
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Collect papers and write the basic outputs",
	Long: `Collect queries OpenAlex for all catalog terms and writes only the paper
list CSV and the overview chart. Use analyze for the full output set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)
		if err := ensureOutputDir(cfg.Output); err != nil {
			return err
		}

		client := newClient(cfg.Collect)
		out := collect.Run(cmd.Context(), client, cfg.Catalog, cfg.Collect, os.Stderr)
		fmt.Printf("Collected %d unique papers (%d raw, %d duplicates removed)\n",
			len(out.Papers), out.RawCount, out.DupsRemoved)
		if len(out.Papers) == 0 {
			fmt.Println("No papers collected; nothing to write.")
			return nil
		}

		papersPath := filepath.Join(cfg.Output.Dir, export.PapersCSV)
		if err := export.WritePapersCSV(papersPath, out.Papers); err != nil {
			return err
		}

		rows := stats.Summarize(out.Papers, cfg.Collect.TargetYearStart, cfg.Collect.TargetYearEnd)
		chartPath := filepath.Join(cfg.Output.Dir, chart.AnalysisPNG)
		if err := chart.WriteAnalysis(chartPath, cfg.Output.Topic, rows); err != nil {
			return err
		}

		fmt.Println("Wrote:")
		fmt.Printf("  %s\n", papersPath)
		fmt.Printf("  %s\n", chartPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(collectCmd)
}
