// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdiddy/pubtrends/internal/collect"
	"github.com/pdiddy/pubtrends/pkg/types"
)

func samplePapers() []types.Paper {
	return []types.Paper{
		{
			ID: "https://openalex.org/W1", Title: "Hub Study, Part 1", Year: 2021,
			Venue: "Applied Energy", DOI: "https://doi.org/10.1/x",
			CitationCount: 12, OpenAccess: true,
			Authors:    []types.Author{{Name: "A. One"}, {Name: "B. Two"}},
			SearchTerm: "energy hub", Category: types.CategoryCore, Strategy: types.StrategyTitle,
		},
		{
			ID: "https://openalex.org/W2", Title: "Adjacent Work", Year: 2020,
			CitationCount: 3,
			SearchTerm:    "multi-energy system", Category: types.CategoryRelated, Strategy: types.StrategyAbstract,
		},
	}
}

func sampleSummary() []types.AnnualSummary {
	return []types.AnnualSummary{
		{Year: 2020, RelatedPapers: 1, TotalPapers: 1, RelatedCitations: 3, TotalCitations: 3,
			RelatedAvgCitations: 3, TotalAvgCitations: 3},
		{Year: 2021, CorePapers: 1, TotalPapers: 1, CoreCitations: 12, TotalCitations: 12,
			CoreAvgCitations: 12, TotalAvgCitations: 12, CoreOpenAccess: 1, TotalOpenAccess: 1,
			CoreOAPercent: 100, TotalOAPercent: 100},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return rows
}

func TestWriteAllCSV(t *testing.T) {
	dir := t.TempDir()
	paths, err := WriteAllCSV(dir, samplePapers(), sampleSummary())
	if err != nil {
		t.Fatalf("WriteAllCSV: %v", err)
	}
	if len(paths) != 5 {
		t.Fatalf("paths = %d, want 5", len(paths))
	}

	papers := readCSV(t, filepath.Join(dir, PapersCSV))
	if len(papers) != 3 {
		t.Fatalf("papers rows = %d, want header + 2", len(papers))
	}
	if papers[0][0] != "openalex_id" || papers[0][10] != "source_strategy" {
		t.Errorf("papers header = %v", papers[0])
	}
	if papers[1][1] != "Hub Study, Part 1" || papers[1][3] != "A. One; B. Two" {
		t.Errorf("papers row = %v", papers[1])
	}
	if papers[1][7] != "true" || papers[2][7] != "false" {
		t.Errorf("open_access column = %q/%q", papers[1][7], papers[2][7])
	}

	summary := readCSV(t, filepath.Join(dir, SummaryCSV))
	if len(summary) != 3 {
		t.Fatalf("summary rows = %d, want header + 2", len(summary))
	}
	if summary[0][0] != "year" || summary[0][16] != "growth_percent" {
		t.Errorf("summary header = %v", summary[0])
	}
	if summary[2][0] != "2021" || summary[2][1] != "1" || summary[2][13] != "100" {
		t.Errorf("summary 2021 row = %v", summary[2])
	}

	counts := readCSV(t, filepath.Join(dir, YearCountsCSV))
	if counts[1][0] != "2020" || counts[1][3] != "1" {
		t.Errorf("counts row = %v", counts[1])
	}
}

func TestWriteAllCSVEmptySkips(t *testing.T) {
	dir := t.TempDir()
	paths, err := WriteAllCSV(dir, nil, nil)
	if err != nil {
		t.Fatalf("WriteAllCSV: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("paths = %v, want none for an empty set", paths)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("output dir should stay empty, found %d entries", len(entries))
	}
}

func TestDetailCSVFiltersAndSorts(t *testing.T) {
	papers := []types.Paper{
		{ID: "W3", Title: "Later Core", Year: 2023, Category: types.CategoryCore},
		{ID: "W1", Title: "Early Related", Year: 2020, Category: types.CategoryRelated},
		{ID: "W2", Title: "Early Core", Year: 2020, Category: types.CategoryCore},
		{ID: "W4", Title: "Untagged", Year: 2021, Category: types.Category("exploratory")},
	}
	dir := t.TempDir()

	corePath := filepath.Join(dir, CoreCSV)
	if err := WriteCoreCSV(corePath, papers); err != nil {
		t.Fatalf("WriteCoreCSV: %v", err)
	}
	rows := readCSV(t, corePath)
	if len(rows) != 3 {
		t.Fatalf("core rows = %d, want header + 2", len(rows))
	}
	if rows[1][1] != "Early Core" || rows[2][1] != "Later Core" {
		t.Errorf("core rows not year-ascending: %v / %v", rows[1], rows[2])
	}

	combinedPath := filepath.Join(dir, CombinedCSV)
	if err := WriteCombinedCSV(combinedPath, papers); err != nil {
		t.Fatalf("WriteCombinedCSV: %v", err)
	}
	rows = readCSV(t, combinedPath)
	// Untagged category excluded, three rows remain.
	if len(rows) != 4 {
		t.Fatalf("combined rows = %d, want header + 3", len(rows))
	}
	for _, r := range rows[1:] {
		if r[9] != "core" && r[9] != "related" {
			t.Errorf("combined row category = %q", r[9])
		}
	}
}

func TestDatasetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DatasetYAML)
	catalog := types.TermCatalog{Core: []string{"energy hub"}, Abstract: []string{"energy hub"}}
	cfg := types.CollectConfig{TitleYearStart: 2004, TitleYearEnd: 2025, TargetYearStart: 2020, TargetYearEnd: 2025}
	out := collect.Output{
		Papers:      samplePapers(),
		RawCount:    3,
		DupsRemoved: 1,
		Queries: []collect.QueryStat{
			{Term: "energy hub", Category: types.CategoryCore, Strategy: types.StrategyTitle, Found: 2, Truncated: true},
		},
	}

	if err := WriteDataset(path, catalog, cfg, out, sampleSummary()); err != nil {
		t.Fatalf("WriteDataset: %v", err)
	}

	df, err := ReadDataset(path)
	if err != nil {
		t.Fatalf("ReadDataset: %v", err)
	}
	if len(df.Papers) != 2 || df.Stats.DupsRemoved != 1 || df.Stats.UniqueCount != 2 {
		t.Errorf("stats = %+v", df.Stats)
	}
	if !df.Stats.Truncated {
		t.Error("Truncated should propagate from query stats")
	}
	if df.Window.TargetYearStart != 2020 || df.Window.TitleYearStart != 2004 {
		t.Errorf("window = %+v", df.Window)
	}
	if len(df.Summary) != 2 || df.Summary[1].CoreOAPercent != 100 {
		t.Errorf("summary = %+v", df.Summary)
	}
	if df.Papers[0].Title != "Hub Study, Part 1" || df.Papers[0].Category != types.CategoryCore {
		t.Errorf("paper round trip = %+v", df.Papers[0])
	}
}

func TestWriteDatasetEmptySkips(t *testing.T) {
	path := filepath.Join(t.TempDir(), DatasetYAML)
	err := WriteDataset(path, types.TermCatalog{}, types.CollectConfig{}, collect.Output{}, nil)
	if err != nil {
		t.Fatalf("WriteDataset: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("empty collection should not create a dataset file")
	}
}
