package repository

import (
	"context"

	"github.com/diillson/ec2-rightsizing-go/internal/domain/entity"
)

// AWSRepository defines the interface for AWS API interactions.
type AWSRepository interface {
	// Identity Operations
	GetAccountID(ctx context.Context, profile string) (string, error)

	// Recommendation Sources
	GetRightsizingRecommendations(ctx context.Context, profile string) (entity.RightsizingSummary, []entity.RightsizingRecommendation, error)
	GetInstanceRecommendations(ctx context.Context, profile, region string) (entity.ComputeOptimizerSummary, []entity.InstanceRecommendation, error)

	// Liveness Probe
	HasRunningInstances(ctx context.Context, profile, region string) bool

	// Report Publishing
	PublishReport(ctx context.Context, profile, region, bucket string, report entity.Report, datedKey, latestKey string) error
	InvalidateDistributionPath(ctx context.Context, profile, distributionID, path string) error
}
