// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubtrends/pkg/types"
)

var quicktestCmd = &cobra.Command{
	Use:   "quicktest",
	Short: "Run a single query to verify API connectivity",
	Long: `Quicktest runs one title search for the first core catalog term over the
target window and prints the result counts and a few recent titles. It
writes no files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)
		if len(cfg.Catalog.Core) == 0 {
			return fmt.Errorf("catalog has no core terms")
		}
		term := cfg.Catalog.Core[0]

		// Query only the target window so the sample matches what a full
		// run would keep.
		cfg.Collect.TitleYearStart = cfg.Collect.TargetYearStart
		cfg.Collect.TitleYearEnd = cfg.Collect.TargetYearEnd

		fmt.Printf("Querying OpenAlex for %q (%d-%d)\n",
			term, cfg.Collect.TitleYearStart, cfg.Collect.TitleYearEnd)

		client := newClient(cfg.Collect)
		res, err := client.SearchTitle(cmd.Context(), term, types.CategoryCore, cfg.Collect)
		if err != nil {
			return fmt.Errorf("quicktest query: %w", err)
		}

		fmt.Printf("Found %d papers in the target window\n", len(res.Papers))
		if res.Truncated {
			fmt.Println("Result set hit the page safety cap; counts are a lower bound.")
		}
		for i, p := range res.Papers {
			if i == 5 {
				break
			}
			fmt.Printf("  %d  %s (%d citations)\n", p.Year, p.Title, p.CitationCount)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(quicktestCmd)
}
