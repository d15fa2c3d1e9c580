package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/computeoptimizer"
	coTypes "github.com/aws/aws-sdk-go-v2/service/computeoptimizer/types"
	"github.com/diillson/ec2-rightsizing-go/internal/domain/entity"
)

const instanceRecommendationsPageSize = 100

// GetInstanceRecommendations busca as recomendações de EC2 do Compute
// Optimizer na região indicada. O status de enrollment é informativo:
// falha na consulta vira "Unknown" em vez de derrubar a coleta.
func (r *AWSRepositoryImpl) GetInstanceRecommendations(ctx context.Context, profile, region string) (entity.ComputeOptimizerSummary, []entity.InstanceRecommendation, error) {
	client, err := r.getServiceClient(ctx, profile, region, "computeoptimizer")
	if err != nil {
		return entity.ComputeOptimizerSummary{}, nil, err
	}
	coClient := client.(computeOptimizerAPI)

	input := &computeoptimizer.GetEC2InstanceRecommendationsInput{
		MaxResults: aws.Int32(instanceRecommendationsPageSize),
	}

	var recommendations []entity.InstanceRecommendation
	for {
		output, err := coClient.GetEC2InstanceRecommendations(ctx, input)
		if err != nil {
			return entity.ComputeOptimizerSummary{}, nil, fmt.Errorf("error getting instance recommendations for profile %s: %w", profile, err)
		}

		for _, rec := range output.InstanceRecommendations {
			recommendations = append(recommendations, convertInstanceRecommendation(rec))
		}

		if aws.ToString(output.NextToken) == "" {
			break
		}
		input.NextToken = output.NextToken
	}

	summary := entity.ComputeOptimizerSummary{EnrollmentStatus: "Unknown"}
	if status, err := coClient.GetEnrollmentStatus(ctx, &computeoptimizer.GetEnrollmentStatusInput{}); err == nil && status.Status != "" {
		summary.EnrollmentStatus = string(status.Status)
	}

	return summary, recommendations, nil
}

// convertInstanceRecommendation reduz a recomendação do SDK aos campos do
// relatório e promove o savingsOpportunity da melhor opção (menor rank)
// para o nível da recomendação.
func convertInstanceRecommendation(rec coTypes.InstanceRecommendation) entity.InstanceRecommendation {
	converted := entity.InstanceRecommendation{
		AccountID:           aws.ToString(rec.AccountId),
		InstanceARN:         aws.ToString(rec.InstanceArn),
		InstanceName:        aws.ToString(rec.InstanceName),
		CurrentInstanceType: aws.ToString(rec.CurrentInstanceType),
		Finding:             string(rec.Finding),
	}

	var best *entity.RecommendationOption
	for _, option := range rec.RecommendationOptions {
		convertedOption := entity.RecommendationOption{
			InstanceType:       aws.ToString(option.InstanceType),
			Rank:               option.Rank,
			PerformanceRisk:    option.PerformanceRisk,
			SavingsOpportunity: convertSavingsOpportunity(option.SavingsOpportunity),
		}
		converted.RecommendationOptions = append(converted.RecommendationOptions, convertedOption)
		if best == nil || convertedOption.Rank < best.Rank {
			best = &convertedOption
		}
	}
	if best != nil {
		converted.SavingsOpportunity = best.SavingsOpportunity
	}

	return converted
}

func convertSavingsOpportunity(opportunity *coTypes.SavingsOpportunity) *entity.SavingsOpportunity {
	if opportunity == nil {
		return nil
	}
	converted := &entity.SavingsOpportunity{
		SavingsOpportunityPercentage: opportunity.SavingsOpportunityPercentage,
	}
	if opportunity.EstimatedMonthlySavings != nil {
		converted.EstimatedMonthlySavings = &entity.EstimatedMonthlySavings{
			Currency: string(opportunity.EstimatedMonthlySavings.Currency),
			Value:    opportunity.EstimatedMonthlySavings.Value,
		}
	}
	return converted
}
