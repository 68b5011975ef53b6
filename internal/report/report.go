// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report formats the collection results as a plain-text
// methodology and findings summary.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pdiddy/pubtrends/internal/collect"
	"github.com/pdiddy/pubtrends/internal/stats"
	"github.com/pdiddy/pubtrends/pkg/types"
)

// ReportTXT is the file name written under the output directory.
const ReportTXT = "research_summary_report.txt"

// now is stubbed in tests.
var now = time.Now

const lineWidth = 78

// Render writes the formatted report to w.
func Render(w io.Writer, topic string, cfg types.CollectConfig, out collect.Output, rows []types.AnnualSummary) error {
	f := stats.Summarized(rows)
	rule := strings.Repeat("=", lineWidth)

	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%s\n", center(strings.ToUpper(topic)+" BIBLIOMETRIC ANALYSIS"))
	fmt.Fprintf(w, "%s\n", center("(OpenAlex Database)"))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "ANALYSIS DATE: %s\n", now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "DATA SOURCE: OpenAlex (https://openalex.org/)\n")
	fmt.Fprintf(w, "SEARCH PERIOD: %d-%d\n", cfg.TargetYearStart, cfg.TargetYearEnd)
	fmt.Fprintf(w, "TOTAL PAPERS COLLECTED: %d\n\n", len(out.Papers))

	if len(rows) == 0 {
		fmt.Fprintln(w, "No papers matched the search window; no statistics to report.")
		fmt.Fprintln(w, rule)
		return nil
	}

	fmt.Fprintln(w, "ANNUAL PUBLICATION STATISTICS:")
	fmt.Fprintln(w, strings.Repeat("-", 54))
	fmt.Fprintf(w, "%-6s %-6s %-8s %-6s %-8s %-10s\n", "Year", "Core", "Related", "Total", "Growth", "Citations")
	fmt.Fprintln(w, strings.Repeat("-", 54))
	for i, r := range rows {
		growth := "  -   "
		if i > 0 {
			growth = fmt.Sprintf("%+5.1f%%", r.GrowthPercent)
		}
		fmt.Fprintf(w, "%-6d %-6d %-8d %-6d %-8s %-10d\n",
			r.Year, r.CorePapers, r.RelatedPapers, r.TotalPapers, growth, r.TotalCitations)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "KEY FINDINGS:")
	fmt.Fprintln(w, strings.Repeat("-", 20))
	fmt.Fprintf(w, "- Research focus distribution:\n")
	fmt.Fprintf(w, "    core: %d papers (%.1f%%)\n", f.CorePapers, share(f.CorePapers, f.TotalPapers))
	fmt.Fprintf(w, "    related: %d papers (%.1f%%)\n\n", f.RelatedPapers, share(f.RelatedPapers, f.TotalPapers))
	fmt.Fprintf(w, "- Publication growth:\n")
	fmt.Fprintf(w, "    overall: %+.1f%% from %d to %d\n", f.OverallGrowthPercent, f.FirstYear, f.LastYear)
	fmt.Fprintf(w, "    average annual publications: %.1f papers\n\n", f.AvgPapersPerYear)
	fmt.Fprintf(w, "- Citation impact:\n")
	fmt.Fprintf(w, "    total citations: %d\n", f.TotalCitations)
	fmt.Fprintf(w, "    average citations per paper: %.1f\n\n", f.AvgCitationsPerWork)
	fmt.Fprintf(w, "- Peak publication year: %d (%d papers)\n\n", f.PeakYear, f.PeakCount)

	fmt.Fprintln(w, "METHODOLOGY:")
	fmt.Fprintln(w, strings.Repeat("-", 15))
	fmt.Fprintln(w, "- Database: OpenAlex scholarly metadata")
	fmt.Fprintln(w, "- Search strategy: title-field search over the core and related term")
	fmt.Fprintln(w, "  groups, plus a citation-ranked abstract-field search")
	fmt.Fprintf(w, "- Time period: %d-%d\n", cfg.TargetYearStart, cfg.TargetYearEnd)
	fmt.Fprintln(w, "- Deduplication: OpenAlex identifiers with normalized-title fallback")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "LIMITATIONS:")
	fmt.Fprintln(w, strings.Repeat("-", 13))
	fmt.Fprintln(w, "- OpenAlex coverage may not include all publications in this area")
	fmt.Fprintln(w, "- Citation counts lag for recent publications")
	fmt.Fprintf(w, "- %d data represents a partial year only\n", cfg.TargetYearEnd)
	if qs := truncatedTerms(out.Queries); len(qs) > 0 {
		fmt.Fprintf(w, "- Result sets truncated at the page safety cap for: %s\n", strings.Join(qs, ", "))
	}
	if qs := failedTerms(out.Queries); len(qs) > 0 {
		fmt.Fprintf(w, "- Queries ended early by API errors (partial results kept): %s\n", strings.Join(qs, ", "))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "RECOMMENDED CITATION:")
	fmt.Fprintln(w, strings.Repeat("-", 20))
	fmt.Fprintf(w, "Data retrieved from OpenAlex (https://openalex.org/) on %s.\n", now().Format("2006-01-02"))
	fmt.Fprintln(w, "OpenAlex is developed by OurResearch and provides open scholarly metadata.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	return nil
}

// WriteFile renders the report to path. An empty paper set writes nothing.
func WriteFile(path, topic string, cfg types.CollectConfig, out collect.Output, rows []types.AnnualSummary) error {
	if len(out.Papers) == 0 {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := Render(f, topic, cfg, out, rows); err != nil {
		return err
	}
	return f.Close()
}

func center(s string) string {
	if len(s) >= lineWidth {
		return s
	}
	pad := (lineWidth - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

func share(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

func truncatedTerms(queries []collect.QueryStat) []string {
	var terms []string
	for _, q := range queries {
		if q.Truncated {
			terms = append(terms, fmt.Sprintf("%q", q.Term))
		}
	}
	return terms
}

func failedTerms(queries []collect.QueryStat) []string {
	var terms []string
	for _, q := range queries {
		if q.Err != "" {
			terms = append(terms, fmt.Sprintf("%q", q.Term))
		}
	}
	return terms
}
