package entity

// EstimatedMonthlySavings is the savings block Compute Optimizer attaches to
// a savings opportunity.
type EstimatedMonthlySavings struct {
	Currency string  `json:"currency"`
	Value    float64 `json:"value"`
}

// SavingsOpportunity quantifies how much an instance could save.
type SavingsOpportunity struct {
	SavingsOpportunityPercentage float64                  `json:"savingsOpportunityPercentage"`
	EstimatedMonthlySavings      *EstimatedMonthlySavings `json:"estimatedMonthlySavings,omitempty"`
}

// RecommendationOption is one candidate instance type proposed by Compute
// Optimizer, ranked from best (1) to worst.
type RecommendationOption struct {
	InstanceType       string              `json:"instanceType"`
	Rank               int32               `json:"rank"`
	PerformanceRisk    float64             `json:"performanceRisk,omitempty"`
	SavingsOpportunity *SavingsOpportunity `json:"savingsOpportunity,omitempty"`
}

// InstanceRecommendation is a Compute Optimizer EC2 recommendation in the
// camelCase wire shape of that API. SavingsOpportunity mirrors the top
// ranked option so consumers can read savings without walking the options.
type InstanceRecommendation struct {
	AccountID             string                 `json:"accountId"`
	InstanceARN           string                 `json:"instanceArn"`
	InstanceName          string                 `json:"instanceName"`
	CurrentInstanceType   string                 `json:"currentInstanceType"`
	Finding               string                 `json:"finding"`
	RecommendationOptions []RecommendationOption `json:"recommendationOptions"`
	SavingsOpportunity    *SavingsOpportunity    `json:"savingsOpportunity,omitempty"`
}
