package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	ceTypes "github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/diillson/ec2-rightsizing-go/internal/domain/entity"
)

const rightsizingPageSize = 20

// GetRightsizingRecommendations busca as recomendações de rightsizing do
// Cost Explorer, paginando até esgotar. O summary da resposta é global à
// conta, então a última página vence.
func (r *AWSRepositoryImpl) GetRightsizingRecommendations(ctx context.Context, profile string) (entity.RightsizingSummary, []entity.RightsizingRecommendation, error) {
	client, err := r.getServiceClient(ctx, profile, "", "costexplorer")
	if err != nil {
		return entity.RightsizingSummary{}, nil, err
	}
	ceClient := client.(costExplorerAPI)

	input := &costexplorer.GetRightsizingRecommendationInput{
		Service: aws.String("AmazonEC2"),
		Configuration: &ceTypes.RightsizingRecommendationConfiguration{
			RecommendationTarget: ceTypes.RecommendationTarget(entity.RecommendationTarget),
			BenefitsConsidered:   entity.BenefitsConsidered,
		},
		PageSize: rightsizingPageSize,
	}

	var summary entity.RightsizingSummary
	var recommendations []entity.RightsizingRecommendation

	for {
		output, err := ceClient.GetRightsizingRecommendation(ctx, input)
		if err != nil {
			return entity.RightsizingSummary{}, nil, fmt.Errorf("error getting rightsizing recommendations for profile %s: %w", profile, err)
		}

		for _, rec := range output.RightsizingRecommendations {
			recommendations = append(recommendations, convertRightsizingRecommendation(rec))
		}
		if output.Summary != nil {
			summary = convertRightsizingSummary(output.Summary)
		}

		if aws.ToString(output.NextPageToken) == "" {
			break
		}
		input.NextPageToken = output.NextPageToken
	}

	return summary, recommendations, nil
}

// convertRightsizingRecommendation normaliza uma recomendação do SDK para o
// formato do relatório. O detalhe Terminate do SDK traz a economia como
// string simples e aqui ela vira o bloco {Amount, Unit} do relatório; para
// Modify, a economia no nível do detalhe é a do target padrão.
func convertRightsizingRecommendation(rec ceTypes.RightsizingRecommendation) entity.RightsizingRecommendation {
	accountID := aws.ToString(rec.AccountId)

	var resourceID, instanceName, currentType string
	if rec.CurrentInstance != nil {
		resourceID = aws.ToString(rec.CurrentInstance.ResourceId)
		instanceName = aws.ToString(rec.CurrentInstance.InstanceName)
		currentType = instanceTypeFromDetails(rec.CurrentInstance.ResourceDetails)
	}

	if rec.RightsizingType == ceTypes.RightsizingTypeTerminate {
		savings := entity.Money{Unit: "USD"}
		if rec.TerminateRecommendationDetail != nil {
			savings = entity.Money{
				Amount: aws.ToString(rec.TerminateRecommendationDetail.EstimatedMonthlySavings),
				Unit:   aws.ToString(rec.TerminateRecommendationDetail.CurrencyCode),
			}
		}
		return entity.NewTerminateRecommendation(accountID, resourceID, instanceName, currentType, savings)
	}

	var targets []entity.TargetInstance
	var detailSavings entity.Money
	if rec.ModifyRecommendationDetail != nil {
		for _, target := range rec.ModifyRecommendationDetail.TargetInstances {
			converted := entity.NewTargetInstance(
				instanceTypeFromDetails(target.ResourceDetails),
				entity.Money{Amount: aws.ToString(target.EstimatedMonthlySavings), Unit: aws.ToString(target.CurrencyCode)},
				entity.Money{Amount: aws.ToString(target.EstimatedMonthlyCost), Unit: aws.ToString(target.CurrencyCode)},
			)
			converted.DefaultTargetInstance = target.DefaultTargetInstance
			if target.DefaultTargetInstance || detailSavings.Amount == "" {
				detailSavings = converted.EstimatedMonthlySavings
			}
			targets = append(targets, converted)
		}
	}
	return entity.NewModifyRecommendation(accountID, resourceID, instanceName, currentType, targets, detailSavings)
}

func convertRightsizingSummary(summary *ceTypes.RightsizingRecommendationSummary) entity.RightsizingSummary {
	return entity.RightsizingSummary{
		TotalRecommendationCount:           aws.ToString(summary.TotalRecommendationCount),
		EstimatedTotalMonthlySavingsAmount: aws.ToString(summary.EstimatedTotalMonthlySavingsAmount),
		SavingsCurrencyCode:                aws.ToString(summary.SavingsCurrencyCode),
		SavingsPercentage:                  aws.ToString(summary.SavingsPercentage),
	}
}

func instanceTypeFromDetails(details *ceTypes.ResourceDetails) string {
	if details == nil || details.EC2ResourceDetails == nil {
		return ""
	}
	return aws.ToString(details.EC2ResourceDetails.InstanceType)
}
