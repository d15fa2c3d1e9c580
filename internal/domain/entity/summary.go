package entity

// RightsizingSummary is the account-wide summary block of a Cost Explorer
// rightsizing response. All fields are decimal strings as returned by the
// API; an empty summary serializes as an empty object.
type RightsizingSummary struct {
	TotalRecommendationCount           string `json:"TotalRecommendationCount,omitempty"`
	EstimatedTotalMonthlySavingsAmount string `json:"EstimatedTotalMonthlySavingsAmount,omitempty"`
	SavingsCurrencyCode                string `json:"SavingsCurrencyCode,omitempty"`
	SavingsPercentage                  string `json:"SavingsPercentage,omitempty"`
}

// ComputeOptimizerSummary reports the account's Compute Optimizer enrollment
// state alongside the recommendations.
type ComputeOptimizerSummary struct {
	EnrollmentStatus string `json:"compute_optimizer_enrollment_status"`
}

// SyntheticSummary is the summary block attached to generated sample
// recommendations.
type SyntheticSummary struct {
	TotalEstimatedMonthlySavingsAmount   string `json:"TotalEstimatedMonthlySavingsAmount"`
	TotalEstimatedMonthlySavingsCurrency string `json:"TotalEstimatedMonthlySavingsCurrency"`
	EstimatedSavingsPercentage           string `json:"EstimatedSavingsPercentage"`
}
