// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package chart renders the annual summary table into PNG figures.
package chart

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/pdiddy/pubtrends/pkg/types"
)

// Output file names, written under the configured output directory.
const (
	AnalysisPNG = "analysis.png"
	TrendsPNG   = "trends.png"
)

// Category palette, matched across all panels.
var (
	coreColor    = color.RGBA{R: 0x2e, G: 0x8b, B: 0x57, A: 0xff}
	relatedColor = color.RGBA{R: 0xff, G: 0x6b, B: 0x35, A: 0xff}
	totalColor   = color.RGBA{R: 0x41, G: 0x69, B: 0xe1, A: 0xff}
)

var barWidth = vg.Points(24)

// WriteAll renders both figures into dir and returns the paths written.
// An empty summary table writes nothing.
func WriteAll(dir, topic string, rows []types.AnnualSummary) ([]string, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	var paths []string
	for _, f := range []struct {
		name  string
		write func(path, topic string, rows []types.AnnualSummary) error
	}{
		{AnalysisPNG, WriteAnalysis},
		{TrendsPNG, WriteTrends},
	} {
		path := filepath.Join(dir, f.name)
		if err := f.write(path, topic, rows); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// WriteAnalysis renders the overview figure: publications per year and the
// category split, side by side.
func WriteAnalysis(path, topic string, rows []types.AnnualSummary) error {
	years := yearLabels(rows)

	perYear := plot.New()
	perYear.Title.Text = fmt.Sprintf("%s: Publications per Year", topic)
	perYear.X.Label.Text = "Year"
	perYear.Y.Label.Text = "Papers"

	totals := make(plotter.Values, len(rows))
	for i, r := range rows {
		totals[i] = float64(r.TotalPapers)
	}
	bars, err := plotter.NewBarChart(totals, barWidth)
	if err != nil {
		return fmt.Errorf("building per-year bars: %w", err)
	}
	bars.Color = totalColor
	perYear.Add(bars)
	perYear.NominalX(years...)

	byCategory := plot.New()
	byCategory.Title.Text = "Category Distribution"
	byCategory.Y.Label.Text = "Papers"

	var core, related int
	for _, r := range rows {
		core += r.CorePapers
		related += r.RelatedPapers
	}
	catBars, err := plotter.NewBarChart(plotter.Values{float64(core), float64(related)}, barWidth*2)
	if err != nil {
		return fmt.Errorf("building category bars: %w", err)
	}
	catBars.Color = coreColor
	byCategory.Add(catBars)
	byCategory.NominalX("core", "related")

	return writePNG(path, [][]*plot.Plot{{perYear, byCategory}}, 900, 400)
}

// WriteTrends renders the four-panel trend figure: stacked category bars,
// trend lines, year-over-year growth, and cumulative totals.
func WriteTrends(path, topic string, rows []types.AnnualSummary) error {
	years := yearLabels(rows)

	stacked, err := stackedPanel(topic, years, rows)
	if err != nil {
		return err
	}
	lines, err := linesPanel(years, rows)
	if err != nil {
		return err
	}
	growth, err := growthPanel(years, rows)
	if err != nil {
		return err
	}
	cumulative, err := cumulativePanel(years, rows)
	if err != nil {
		return err
	}

	return writePNG(path, [][]*plot.Plot{{stacked, lines}, {growth, cumulative}}, 1000, 800)
}

func stackedPanel(topic string, years []string, rows []types.AnnualSummary) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s: Annual Publications by Category", topic)
	p.Y.Label.Text = "Papers"

	coreVals := make(plotter.Values, len(rows))
	relatedVals := make(plotter.Values, len(rows))
	for i, r := range rows {
		coreVals[i] = float64(r.CorePapers)
		relatedVals[i] = float64(r.RelatedPapers)
	}

	coreBars, err := plotter.NewBarChart(coreVals, barWidth)
	if err != nil {
		return nil, fmt.Errorf("building core bars: %w", err)
	}
	coreBars.Color = coreColor

	relatedBars, err := plotter.NewBarChart(relatedVals, barWidth)
	if err != nil {
		return nil, fmt.Errorf("building related bars: %w", err)
	}
	relatedBars.Color = relatedColor
	relatedBars.StackOn(coreBars)

	p.Add(coreBars, relatedBars)
	p.Legend.Add("core", coreBars)
	p.Legend.Add("related", relatedBars)
	p.Legend.Top = true
	p.NominalX(years...)
	return p, nil
}

func linesPanel(years []string, rows []types.AnnualSummary) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Publication Trend Lines"
	p.Y.Label.Text = "Papers"

	series := []struct {
		name  string
		color color.Color
		value func(types.AnnualSummary) float64
	}{
		{"core", coreColor, func(r types.AnnualSummary) float64 { return float64(r.CorePapers) }},
		{"related", relatedColor, func(r types.AnnualSummary) float64 { return float64(r.RelatedPapers) }},
		{"total", totalColor, func(r types.AnnualSummary) float64 { return float64(r.TotalPapers) }},
	}
	for _, s := range series {
		pts := make(plotter.XYs, len(rows))
		for i, r := range rows {
			pts[i].X = float64(i)
			pts[i].Y = s.value(r)
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("building %s line: %w", s.name, err)
		}
		line.Color = s.color
		line.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add(s.name, line)
	}
	p.Legend.Top = true
	p.NominalX(years...)
	return p, nil
}

func growthPanel(years []string, rows []types.AnnualSummary) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Year-over-Year Growth"
	p.Y.Label.Text = "Growth (%)"

	vals := make(plotter.Values, len(rows))
	for i, r := range rows {
		vals[i] = r.GrowthPercent
	}
	bars, err := plotter.NewBarChart(vals, barWidth)
	if err != nil {
		return nil, fmt.Errorf("building growth bars: %w", err)
	}
	bars.Color = totalColor
	p.Add(bars)
	p.NominalX(years...)
	return p, nil
}

func cumulativePanel(years []string, rows []types.AnnualSummary) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Cumulative Publications"
	p.Y.Label.Text = "Papers"

	totalPts := make(plotter.XYs, len(rows))
	corePts := make(plotter.XYs, len(rows))
	var runTotal, runCore int
	for i, r := range rows {
		runTotal += r.TotalPapers
		runCore += r.CorePapers
		totalPts[i] = plotter.XY{X: float64(i), Y: float64(runTotal)}
		corePts[i] = plotter.XY{X: float64(i), Y: float64(runCore)}
	}

	totalLine, err := plotter.NewLine(totalPts)
	if err != nil {
		return nil, fmt.Errorf("building cumulative total line: %w", err)
	}
	totalLine.Color = totalColor
	totalLine.Width = vg.Points(3)

	coreLine, err := plotter.NewLine(corePts)
	if err != nil {
		return nil, fmt.Errorf("building cumulative core line: %w", err)
	}
	coreLine.Color = coreColor
	coreLine.Width = vg.Points(2)

	p.Add(totalLine, coreLine)
	p.Legend.Add("total", totalLine)
	p.Legend.Add("core", coreLine)
	p.Legend.Top = true
	p.NominalX(years...)
	return p, nil
}

func yearLabels(rows []types.AnnualSummary) []string {
	labels := make([]string, len(rows))
	for i, r := range rows {
		labels[i] = fmt.Sprintf("%d", r.Year)
	}
	return labels
}

// writePNG lays the panels out as tiles on one canvas and writes the PNG.
func writePNG(path string, panels [][]*plot.Plot, width, height vg.Length) error {
	img := vgimg.New(vg.Points(float64(width)), vg.Points(float64(height)))
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows: len(panels),
		Cols: len(panels[0]),
		PadX: vg.Millimeter * 4,
		PadY: vg.Millimeter * 4,
	}
	canvases := plot.Align(panels, tiles, dc)
	for i, row := range panels {
		for j, p := range row {
			if p != nil {
				p.Draw(canvases[i][j])
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
