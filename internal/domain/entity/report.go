package entity

import "time"

// Source identifies which pipeline produced the recommendations of a report.
type Source string

const (
	SourceCostExplorer     Source = "cost-explorer"
	SourceComputeOptimizer Source = "compute-optimizer"
	SourceSynthetic        Source = "synthetic"
)

// Fixed parameters of the Cost Explorer query, echoed in the report envelope
// so consumers know how the recommendations were produced.
const (
	RecommendationTarget = "CROSS_INSTANCE_FAMILY"
	BenefitsConsidered   = true
)

// Report is the JSON envelope published to S3. RecommendationTarget and
// BenefitsConsidered are pointers without omitempty: they serialize as
// literal nulls unless the source is Cost Explorer. Summary and
// Recommendations hold whichever shape the winning source produced.
type Report struct {
	GeneratedAt          time.Time   `json:"generated_at"`
	Source               Source      `json:"source"`
	RecommendationTarget *string     `json:"recommendation_target"`
	BenefitsConsidered   *bool       `json:"benefits_considered"`
	Summary              interface{} `json:"summary"`
	Count                int         `json:"count"`
	Recommendations      interface{} `json:"recommendations"`
}

// RunResult summarizes one pipeline run for the caller.
type RunResult struct {
	Status    string `json:"status"`
	Source    Source `json:"source"`
	DatedKey  string `json:"dated_key"`
	LatestKey string `json:"latest_key"`
	Items     int    `json:"items"`
}
