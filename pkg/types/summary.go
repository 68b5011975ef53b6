// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// AnnualSummary is one row of the derived per-year aggregate table. Rows
// are regenerated on every run from the deduplicated paper set; only
// papers with Category core or related contribute, so TotalPapers is
// always CorePapers + RelatedPapers.
type AnnualSummary struct {
	Year int `json:"year" yaml:"year"`

	CorePapers    int `json:"core_papers" yaml:"core_papers"`
	RelatedPapers int `json:"related_papers" yaml:"related_papers"`
	TotalPapers   int `json:"total_papers" yaml:"total_papers"`

	CoreCitations    int `json:"core_citations" yaml:"core_citations"`
	RelatedCitations int `json:"related_citations" yaml:"related_citations"`
	TotalCitations   int `json:"total_citations" yaml:"total_citations"`

	// Average citations per paper, rounded to two decimals; 0 when the
	// corresponding paper count is 0.
	CoreAvgCitations    float64 `json:"core_avg_citations" yaml:"core_avg_citations"`
	RelatedAvgCitations float64 `json:"related_avg_citations" yaml:"related_avg_citations"`
	TotalAvgCitations   float64 `json:"total_avg_citations" yaml:"total_avg_citations"`

	CoreOpenAccess    int `json:"core_open_access" yaml:"core_open_access"`
	RelatedOpenAccess int `json:"related_open_access" yaml:"related_open_access"`
	TotalOpenAccess   int `json:"total_open_access" yaml:"total_open_access"`

	// Open-access share in percent, rounded to one decimal; 0 when the
	// corresponding paper count is 0.
	CoreOAPercent    float64 `json:"core_oa_percentage" yaml:"core_oa_percentage"`
	RelatedOAPercent float64 `json:"related_oa_percentage" yaml:"related_oa_percentage"`
	TotalOAPercent   float64 `json:"total_oa_percentage" yaml:"total_oa_percentage"`

	// GrowthPercent is the change in TotalPapers relative to the previous
	// row's total, in percent. 0 for the first row and whenever the
	// previous total is 0.
	GrowthPercent float64 `json:"growth_percent" yaml:"growth_percent"`
}
