// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pubtrends/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// TermCatalog is the fixed set of search terms driving collection. It is
// configuration, not logic: each title-search term group maps to a Category
// and the abstract terms are collected under the related category.
type TermCatalog struct {
	// Core are title-search terms matching the topic directly.
	Core []string `json:"core" yaml:"core"`

	// Related are title-search terms for adjacent topics.
	Related []string `json:"related" yaml:"related"`

	// Abstract are the terms reused for the abstract-field strategy.
	Abstract []string `json:"abstract" yaml:"abstract"`
}

// CollectConfig holds settings for the collection stage.
type CollectConfig struct {
	HTTPConfig `yaml:",inline"`

	// Email is sent as the mailto parameter for polite pool access.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// TitleYearStart/TitleYearEnd bound the page-level filter for the
	// title-search strategy (defaults 2004 and 2025).
	TitleYearStart int `json:"title_year_start" yaml:"title_year_start"`
	TitleYearEnd   int `json:"title_year_end" yaml:"title_year_end"`

	// TargetYearStart/TargetYearEnd bound the per-record window applied
	// to every strategy's output (defaults 2020 and 2025). The abstract
	// strategy also uses them as its page-level filter.
	TargetYearStart int `json:"target_year_start" yaml:"target_year_start"`
	TargetYearEnd   int `json:"target_year_end" yaml:"target_year_end"`

	// PageRequestsPerSecond caps the request rate during pagination
	// (default 10, i.e. about a 100 ms pause between pages).
	PageRequestsPerSecond float64 `json:"page_requests_per_second" yaml:"page_requests_per_second"`

	// InterQueryDelay is the pause between consecutive catalog queries
	// (default 1s).
	InterQueryDelay time.Duration `json:"inter_query_delay" yaml:"inter_query_delay"`
}

// OutputConfig holds settings for the presentation stages.
type OutputConfig struct {
	// Dir is the directory all CSV, chart, dataset, and report files are
	// written to.
	Dir string `json:"dir" yaml:"dir"`

	// Topic is the display name used in chart titles and the report
	// (e.g. "Energy Hub Research").
	Topic string `json:"topic" yaml:"topic"`
}

// AnalysisConfig groups all stage configurations for one run.
type AnalysisConfig struct {
	Collect CollectConfig `json:"collect" yaml:"collect"`
	Catalog TermCatalog   `json:"catalog" yaml:"catalog"`
	Output  OutputConfig  `json:"output" yaml:"output"`
}
