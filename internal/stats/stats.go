// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stats derives the per-year aggregate table and report findings
// from the deduplicated paper set.
package stats

import (
	"math"
	"sort"

	"github.com/pdiddy/pubtrends/pkg/types"
)

// Summarize groups papers by year and computes one AnnualSummary row per
// year present, ascending. Only papers whose year lies in
// [startYear, endYear] and whose category is core or related contribute;
// everything else stays out of the table (but remains in the raw set the
// caller holds). Growth is computed against the previous row's total and
// reported as 0 when that total is 0.
func Summarize(papers []types.Paper, startYear, endYear int) []types.AnnualSummary {
	type bucket struct {
		core, related []types.Paper
	}
	buckets := make(map[int]*bucket)

	for _, p := range papers {
		if p.Year < startYear || p.Year > endYear {
			continue
		}
		b := buckets[p.Year]
		if b == nil {
			b = &bucket{}
			buckets[p.Year] = b
		}
		switch p.Category {
		case types.CategoryCore:
			b.core = append(b.core, p)
		case types.CategoryRelated:
			b.related = append(b.related, p)
		}
	}

	years := make([]int, 0, len(buckets))
	for y, b := range buckets {
		if len(b.core)+len(b.related) > 0 {
			years = append(years, y)
		}
	}
	sort.Ints(years)

	rows := make([]types.AnnualSummary, 0, len(years))
	for _, y := range years {
		b := buckets[y]

		row := types.AnnualSummary{
			Year:          y,
			CorePapers:    len(b.core),
			RelatedPapers: len(b.related),
			TotalPapers:   len(b.core) + len(b.related),
		}

		for _, p := range b.core {
			row.CoreCitations += p.CitationCount
			if p.OpenAccess {
				row.CoreOpenAccess++
			}
		}
		for _, p := range b.related {
			row.RelatedCitations += p.CitationCount
			if p.OpenAccess {
				row.RelatedOpenAccess++
			}
		}
		row.TotalCitations = row.CoreCitations + row.RelatedCitations
		row.TotalOpenAccess = row.CoreOpenAccess + row.RelatedOpenAccess

		row.CoreAvgCitations = avg(row.CoreCitations, row.CorePapers)
		row.RelatedAvgCitations = avg(row.RelatedCitations, row.RelatedPapers)
		row.TotalAvgCitations = avg(row.TotalCitations, row.TotalPapers)

		row.CoreOAPercent = percent(row.CoreOpenAccess, row.CorePapers)
		row.RelatedOAPercent = percent(row.RelatedOpenAccess, row.RelatedPapers)
		row.TotalOAPercent = percent(row.TotalOpenAccess, row.TotalPapers)

		if n := len(rows); n > 0 && rows[n-1].TotalPapers > 0 {
			prev := rows[n-1].TotalPapers
			row.GrowthPercent = round1(float64(row.TotalPapers-prev) / float64(prev) * 100)
		}

		rows = append(rows, row)
	}

	return rows
}

// avg returns sum/count rounded to two decimals, or 0 when count is 0.
func avg(sum, count int) float64 {
	if count == 0 {
		return 0
	}
	return math.Round(float64(sum)/float64(count)*100) / 100
}

// percent returns part/whole as a percentage rounded to one decimal, or 0
// when whole is 0.
func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return round1(float64(part) / float64(whole) * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Findings summarizes the whole table for the text report.
type Findings struct {
	TotalPapers   int
	CorePapers    int
	RelatedPapers int

	TotalCitations      int
	AvgCitationsPerWork float64

	FirstYear int
	LastYear  int

	// PeakYear is the year with the highest total; ties resolve to the
	// earliest such year.
	PeakYear  int
	PeakCount int

	// OverallGrowthPercent compares the last row's total against the
	// first row's; 0 when the first row's total is 0.
	OverallGrowthPercent float64

	AvgPapersPerYear float64
}

// Summarized derives report findings from a non-empty summary table. An
// empty table yields zero Findings.
func Summarized(rows []types.AnnualSummary) Findings {
	var f Findings
	if len(rows) == 0 {
		return f
	}

	f.FirstYear = rows[0].Year
	f.LastYear = rows[len(rows)-1].Year
	f.PeakYear = rows[0].Year

	for _, r := range rows {
		f.TotalPapers += r.TotalPapers
		f.CorePapers += r.CorePapers
		f.RelatedPapers += r.RelatedPapers
		f.TotalCitations += r.TotalCitations
		if r.TotalPapers > f.PeakCount {
			f.PeakCount = r.TotalPapers
			f.PeakYear = r.Year
		}
	}

	if first := rows[0].TotalPapers; first > 0 {
		last := rows[len(rows)-1].TotalPapers
		f.OverallGrowthPercent = round1(float64(last-first) / float64(first) * 100)
	}
	if f.TotalPapers > 0 {
		f.AvgCitationsPerWork = math.Round(float64(f.TotalCitations)/float64(f.TotalPapers)*10) / 10
	}
	f.AvgPapersPerYear = math.Round(float64(f.TotalPapers)/float64(len(rows))*10) / 10

	return f
}
