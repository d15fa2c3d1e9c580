package entity

import "strconv"

// SumRightsizingSavings totals the estimated monthly savings of Cost
// Explorer shaped recommendations. Missing detail blocks and amounts that
// do not parse as decimals contribute zero instead of failing the run.
func SumRightsizingSavings(recs []RightsizingRecommendation) float64 {
	total := 0.0
	for _, rec := range recs {
		var amount string
		switch {
		case rec.ModifyRecommendationDetail != nil:
			amount = rec.ModifyRecommendationDetail.EstimatedMonthlySavings.Amount
		case rec.TerminateRecommendationDetail != nil:
			amount = rec.TerminateRecommendationDetail.EstimatedMonthlySavings.Amount
		}
		if amount == "" {
			continue
		}
		if value, err := strconv.ParseFloat(amount, 64); err == nil {
			total += value
		}
	}
	return total
}

// SumInstanceRecommendationSavings totals the estimated monthly savings of
// Compute Optimizer recommendations. Recommendations without a savings
// opportunity contribute zero.
func SumInstanceRecommendationSavings(recs []InstanceRecommendation) float64 {
	total := 0.0
	for _, rec := range recs {
		if rec.SavingsOpportunity == nil || rec.SavingsOpportunity.EstimatedMonthlySavings == nil {
			continue
		}
		total += rec.SavingsOpportunity.EstimatedMonthlySavings.Value
	}
	return total
}
