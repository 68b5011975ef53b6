// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes the collected paper set and derived statistics to
// flat output files: CSV tables and a YAML dataset file.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/pubtrends/pkg/types"
)

// Output file names, all written under the configured output directory.
const (
	PapersCSV     = "papers.csv"
	SummaryCSV    = "annual_summary.csv"
	CoreCSV       = "core_papers_by_year.csv"
	CombinedCSV   = "core_plus_related_papers_by_year.csv"
	YearCountsCSV = "paper_counts_by_year.csv"
	DatasetYAML   = "dataset.yaml"
)

// detailAuthorLimit caps the author list in the per-year detail tables.
const detailAuthorLimit = 5

// WriteAllCSV writes the five CSV tables into dir and returns the paths
// written. An empty paper set writes nothing and returns no paths; callers
// surface that as "zero papers found" rather than an error.
func WriteAllCSV(dir string, papers []types.Paper, rows []types.AnnualSummary) ([]string, error) {
	if len(papers) == 0 {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	writers := []struct {
		name  string
		write func(path string) error
	}{
		{PapersCSV, func(p string) error { return WritePapersCSV(p, papers) }},
		{SummaryCSV, func(p string) error { return WriteSummaryCSV(p, rows) }},
		{CoreCSV, func(p string) error { return WriteCoreCSV(p, papers) }},
		{CombinedCSV, func(p string) error { return WriteCombinedCSV(p, papers) }},
		{YearCountsCSV, func(p string) error { return WriteYearCountsCSV(p, rows) }},
	}

	var paths []string
	for _, w := range writers {
		path := filepath.Join(dir, w.name)
		if err := w.write(path); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// WritePapersCSV writes the full deduplicated paper table.
func WritePapersCSV(path string, papers []types.Paper) error {
	header := []string{
		"openalex_id", "title", "year", "authors", "venue", "doi",
		"citation_count", "open_access", "search_term", "category", "source_strategy",
	}
	rows := make([][]string, 0, len(papers))
	for _, p := range papers {
		rows = append(rows, []string{
			p.ID,
			p.Title,
			strconv.Itoa(p.Year),
			joinAuthors(p.Authors, len(p.Authors)),
			p.Venue,
			p.DOI,
			strconv.Itoa(p.CitationCount),
			strconv.FormatBool(p.OpenAccess),
			p.SearchTerm,
			string(p.Category),
			string(p.Strategy),
		})
	}
	return writeCSV(path, header, rows)
}

// WriteSummaryCSV writes the annual statistics table.
func WriteSummaryCSV(path string, summary []types.AnnualSummary) error {
	header := []string{
		"year",
		"core_papers", "related_papers", "total_papers",
		"core_citations", "related_citations", "total_citations",
		"core_avg_citations", "related_avg_citations", "total_avg_citations",
		"core_open_access", "related_open_access", "total_open_access",
		"core_oa_percentage", "related_oa_percentage", "total_oa_percentage",
		"growth_percent",
	}
	rows := make([][]string, 0, len(summary))
	for _, r := range summary {
		rows = append(rows, []string{
			strconv.Itoa(r.Year),
			strconv.Itoa(r.CorePapers), strconv.Itoa(r.RelatedPapers), strconv.Itoa(r.TotalPapers),
			strconv.Itoa(r.CoreCitations), strconv.Itoa(r.RelatedCitations), strconv.Itoa(r.TotalCitations),
			formatFloat(r.CoreAvgCitations), formatFloat(r.RelatedAvgCitations), formatFloat(r.TotalAvgCitations),
			strconv.Itoa(r.CoreOpenAccess), strconv.Itoa(r.RelatedOpenAccess), strconv.Itoa(r.TotalOpenAccess),
			formatFloat(r.CoreOAPercent), formatFloat(r.RelatedOAPercent), formatFloat(r.TotalOAPercent),
			formatFloat(r.GrowthPercent),
		})
	}
	return writeCSV(path, header, rows)
}

// WriteCoreCSV writes the per-year detail table restricted to core papers.
func WriteCoreCSV(path string, papers []types.Paper) error {
	return writeDetailCSV(path, papers, func(p types.Paper) bool {
		return p.Category == types.CategoryCore
	})
}

// WriteCombinedCSV writes the per-year detail table for core and related papers.
func WriteCombinedCSV(path string, papers []types.Paper) error {
	return writeDetailCSV(path, papers, func(p types.Paper) bool {
		return p.Category == types.CategoryCore || p.Category == types.CategoryRelated
	})
}

func writeDetailCSV(path string, papers []types.Paper, keep func(types.Paper) bool) error {
	header := []string{
		"year", "title", "authors", "venue", "citation_count",
		"open_access", "doi", "openalex_id", "search_term", "category",
	}

	// Group by year so rows come out year-ascending, input order within a year.
	byYear := make(map[int][]types.Paper)
	for _, p := range papers {
		if keep(p) && p.Year != 0 {
			byYear[p.Year] = append(byYear[p.Year], p)
		}
	}
	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	var rows [][]string
	for _, y := range years {
		for _, p := range byYear[y] {
			rows = append(rows, []string{
				strconv.Itoa(y),
				p.Title,
				joinAuthors(p.Authors, detailAuthorLimit),
				p.Venue,
				strconv.Itoa(p.CitationCount),
				strconv.FormatBool(p.OpenAccess),
				p.DOI,
				p.ID,
				p.SearchTerm,
				string(p.Category),
			})
		}
	}
	return writeCSV(path, header, rows)
}

// WriteYearCountsCSV writes the simple year/count matrix.
func WriteYearCountsCSV(path string, summary []types.AnnualSummary) error {
	header := []string{"year", "core_count", "related_count", "total_count"}
	rows := make([][]string, 0, len(summary))
	for _, r := range summary {
		rows = append(rows, []string{
			strconv.Itoa(r.Year),
			strconv.Itoa(r.CorePapers),
			strconv.Itoa(r.RelatedPapers),
			strconv.Itoa(r.TotalPapers),
		})
	}
	return writeCSV(path, header, rows)
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func joinAuthors(authors []types.Author, limit int) string {
	if limit > len(authors) {
		limit = len(authors)
	}
	names := make([]string, 0, limit)
	for _, a := range authors[:limit] {
		names = append(names, a.Name)
	}
	return strings.Join(names, "; ")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
