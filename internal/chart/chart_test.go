// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdiddy/pubtrends/pkg/types"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func sampleRows() []types.AnnualSummary {
	return []types.AnnualSummary{
		{Year: 2020, CorePapers: 3, RelatedPapers: 5, TotalPapers: 8},
		{Year: 2021, CorePapers: 6, RelatedPapers: 4, TotalPapers: 10, GrowthPercent: 25},
		{Year: 2022, CorePapers: 2, RelatedPapers: 5, TotalPapers: 7, GrowthPercent: -30},
	}
}

func assertPNG(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if len(data) < 8 || !bytes.HasPrefix(data, pngMagic) {
		t.Errorf("%s is not a PNG (%d bytes)", path, len(data))
	}
}

func TestWriteAll(t *testing.T) {
	dir := t.TempDir()
	paths, err := WriteAll(dir, "Energy Hub Research", sampleRows())
	if err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("paths = %v, want 2 files", paths)
	}
	assertPNG(t, filepath.Join(dir, AnalysisPNG))
	assertPNG(t, filepath.Join(dir, TrendsPNG))
}

func TestWriteAllEmptySkips(t *testing.T) {
	dir := t.TempDir()
	paths, err := WriteAll(dir, "Topic", nil)
	if err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("paths = %v, want none", paths)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("no files should be written for an empty table")
	}
}

func TestWriteTrendsSingleRow(t *testing.T) {
	// A one-year table still renders: growth is flat and cumulative equals
	// the single total.
	dir := t.TempDir()
	rows := []types.AnnualSummary{{Year: 2024, CorePapers: 1, TotalPapers: 1}}
	if err := WriteTrends(filepath.Join(dir, TrendsPNG), "Topic", rows); err != nil {
		t.Fatalf("WriteTrends: %v", err)
	}
	assertPNG(t, filepath.Join(dir, TrendsPNG))
}
