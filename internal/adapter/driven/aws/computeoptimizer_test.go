package aws

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/computeoptimizer"
	coTypes "github.com/aws/aws-sdk-go-v2/service/computeoptimizer/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeComputeOptimizerClient struct {
	pages      []*computeoptimizer.GetEC2InstanceRecommendationsOutput
	inputs     []computeoptimizer.GetEC2InstanceRecommendationsInput
	enrollment *computeoptimizer.GetEnrollmentStatusOutput
	enrollErr  error
	err        error
}

func (f *fakeComputeOptimizerClient) GetEC2InstanceRecommendations(ctx context.Context, params *computeoptimizer.GetEC2InstanceRecommendationsInput, optFns ...func(*computeoptimizer.Options)) (*computeoptimizer.GetEC2InstanceRecommendationsOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.inputs = append(f.inputs, *params)
	return f.pages[len(f.inputs)-1], nil
}

func (f *fakeComputeOptimizerClient) GetEnrollmentStatus(ctx context.Context, params *computeoptimizer.GetEnrollmentStatusInput, optFns ...func(*computeoptimizer.Options)) (*computeoptimizer.GetEnrollmentStatusOutput, error) {
	if f.enrollErr != nil {
		return nil, f.enrollErr
	}
	return f.enrollment, nil
}

func coRecommendation(arn string) coTypes.InstanceRecommendation {
	return coTypes.InstanceRecommendation{
		AccountId:           aws.String("913979368763"),
		InstanceArn:         aws.String(arn),
		InstanceName:        aws.String("web-01"),
		CurrentInstanceType: aws.String("m5.xlarge"),
		Finding:             coTypes.FindingOverProvisioned,
		RecommendationOptions: []coTypes.InstanceRecommendationOption{
			{
				InstanceType: aws.String("m5.large"),
				Rank:         1,
				SavingsOpportunity: &coTypes.SavingsOpportunity{
					SavingsOpportunityPercentage: 40,
					EstimatedMonthlySavings: &coTypes.EstimatedMonthlySavings{
						Currency: coTypes.CurrencyUsd,
						Value:    31.70,
					},
				},
			},
		},
	}
}

func TestGetInstanceRecommendationsPagination(t *testing.T) {
	fake := &fakeComputeOptimizerClient{
		pages: []*computeoptimizer.GetEC2InstanceRecommendationsOutput{
			{
				InstanceRecommendations: []coTypes.InstanceRecommendation{coRecommendation("arn:1")},
				NextToken:               aws.String("next"),
			},
			{
				InstanceRecommendations: []coTypes.InstanceRecommendation{coRecommendation("arn:2")},
			},
		},
		enrollment: &computeoptimizer.GetEnrollmentStatusOutput{Status: coTypes.StatusActive},
	}
	repo := newTestRepository("test", "us-east-1", "computeoptimizer", fake)

	summary, recs, err := repo.GetInstanceRecommendations(context.Background(), "test", "us-east-1")
	require.NoError(t, err)

	require.Len(t, recs, 2)
	assert.Equal(t, "arn:1", recs[0].InstanceARN)
	assert.Equal(t, "arn:2", recs[1].InstanceARN)
	assert.Equal(t, "Active", summary.EnrollmentStatus)

	require.Len(t, fake.inputs, 2)
	assert.EqualValues(t, 100, aws.ToInt32(fake.inputs[0].MaxResults))
	assert.Nil(t, fake.inputs[0].NextToken)
	assert.Equal(t, "next", aws.ToString(fake.inputs[1].NextToken))
}

func TestGetInstanceRecommendationsEnrollmentFailureIsInformative(t *testing.T) {
	fake := &fakeComputeOptimizerClient{
		pages: []*computeoptimizer.GetEC2InstanceRecommendationsOutput{
			{InstanceRecommendations: []coTypes.InstanceRecommendation{coRecommendation("arn:1")}},
		},
		enrollErr: errors.New("OptInRequiredException"),
	}
	repo := newTestRepository("test", "us-east-1", "computeoptimizer", fake)

	summary, recs, err := repo.GetInstanceRecommendations(context.Background(), "test", "us-east-1")
	require.NoError(t, err)
	assert.Len(t, recs, 1)
	assert.Equal(t, "Unknown", summary.EnrollmentStatus)
}

func TestGetInstanceRecommendationsError(t *testing.T) {
	fake := &fakeComputeOptimizerClient{err: errors.New("ThrottlingException")}
	repo := newTestRepository("test", "us-east-1", "computeoptimizer", fake)

	_, _, err := repo.GetInstanceRecommendations(context.Background(), "test", "us-east-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ThrottlingException")
}

func TestConvertInstanceRecommendationPromotesBestOption(t *testing.T) {
	rec := convertInstanceRecommendation(coTypes.InstanceRecommendation{
		AccountId:           aws.String("913979368763"),
		InstanceArn:         aws.String("arn:aws:ec2:us-east-1:913979368763:instance/i-1"),
		InstanceName:        aws.String("api-02"),
		CurrentInstanceType: aws.String("r6i.2xlarge"),
		Finding:             coTypes.FindingOverProvisioned,
		RecommendationOptions: []coTypes.InstanceRecommendationOption{
			{
				InstanceType: aws.String("r6i.xlarge"),
				Rank:         2,
				SavingsOpportunity: &coTypes.SavingsOpportunity{
					SavingsOpportunityPercentage: 25,
					EstimatedMonthlySavings:      &coTypes.EstimatedMonthlySavings{Currency: coTypes.CurrencyUsd, Value: 55.00},
				},
			},
			{
				InstanceType: aws.String("r6g.xlarge"),
				Rank:         1,
				SavingsOpportunity: &coTypes.SavingsOpportunity{
					SavingsOpportunityPercentage: 38,
					EstimatedMonthlySavings:      &coTypes.EstimatedMonthlySavings{Currency: coTypes.CurrencyUsd, Value: 83.20},
				},
			},
		},
	})

	assert.Equal(t, string(coTypes.FindingOverProvisioned), rec.Finding)
	require.Len(t, rec.RecommendationOptions, 2)

	// O savings promovido é o da opção de rank 1, não o da primeira da lista.
	require.NotNil(t, rec.SavingsOpportunity)
	require.NotNil(t, rec.SavingsOpportunity.EstimatedMonthlySavings)
	assert.InDelta(t, 83.20, rec.SavingsOpportunity.EstimatedMonthlySavings.Value, 0.0001)
	assert.Equal(t, "USD", rec.SavingsOpportunity.EstimatedMonthlySavings.Currency)
}

func TestConvertInstanceRecommendationWithoutOptions(t *testing.T) {
	rec := convertInstanceRecommendation(coTypes.InstanceRecommendation{
		InstanceArn: aws.String("arn:aws:ec2:us-east-1:913979368763:instance/i-2"),
		Finding:     coTypes.FindingOptimized,
	})

	assert.Nil(t, rec.SavingsOpportunity)
	assert.Empty(t, rec.RecommendationOptions)
}
