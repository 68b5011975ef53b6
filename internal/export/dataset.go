// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubtrends/internal/collect"
	"github.com/pdiddy/pubtrends/pkg/types"
)

// DatasetFile is the on-disk YAML representation of one collection run:
// the catalog and window that produced it, per-query statistics, the
// deduplicated papers, and the derived annual table. It lets a researcher
// rework the presentation layers later without re-querying the API.
type DatasetFile struct {
	Catalog types.TermCatalog     `yaml:"catalog"`
	Window  DatasetWindow         `yaml:"window"`
	Queries []collect.QueryStat   `yaml:"queries"`
	Papers  []types.Paper         `yaml:"papers"`
	Summary []types.AnnualSummary `yaml:"annual_summary"`
	Stats   DatasetStats          `yaml:"stats"`
}

// DatasetWindow records the year bounds used for the run.
type DatasetWindow struct {
	TitleYearStart  int `yaml:"title_year_start"`
	TitleYearEnd    int `yaml:"title_year_end"`
	TargetYearStart int `yaml:"target_year_start"`
	TargetYearEnd   int `yaml:"target_year_end"`
}

// DatasetStats records collection-level counts and a timestamp.
type DatasetStats struct {
	RawCount    int       `yaml:"raw_count"`
	UniqueCount int       `yaml:"unique_count"`
	DupsRemoved int       `yaml:"duplicates_removed"`
	Truncated   bool      `yaml:"truncated"`
	Timestamp   time.Time `yaml:"timestamp"`
}

// WriteDataset saves the collection run to a YAML file at path. An empty
// paper set writes nothing.
func WriteDataset(path string, catalog types.TermCatalog, cfg types.CollectConfig, out collect.Output, summary []types.AnnualSummary) error {
	if len(out.Papers) == 0 {
		return nil
	}

	truncated := false
	for _, q := range out.Queries {
		if q.Truncated {
			truncated = true
			break
		}
	}

	df := DatasetFile{
		Catalog: catalog,
		Window: DatasetWindow{
			TitleYearStart:  cfg.TitleYearStart,
			TitleYearEnd:    cfg.TitleYearEnd,
			TargetYearStart: cfg.TargetYearStart,
			TargetYearEnd:   cfg.TargetYearEnd,
		},
		Queries: out.Queries,
		Papers:  out.Papers,
		Summary: summary,
		Stats: DatasetStats{
			RawCount:    out.RawCount,
			UniqueCount: len(out.Papers),
			DupsRemoved: out.DupsRemoved,
			Truncated:   truncated,
			Timestamp:   time.Now(),
		},
	}

	data, err := yaml.Marshal(df)
	if err != nil {
		return fmt.Errorf("marshaling dataset: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing dataset: %w", err)
	}
	return nil
}

// ReadDataset loads a previously written dataset file.
func ReadDataset(path string) (DatasetFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DatasetFile{}, fmt.Errorf("reading dataset: %w", err)
	}
	var df DatasetFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return DatasetFile{}, fmt.Errorf("parsing dataset: %w", err)
	}
	return df, nil
}
