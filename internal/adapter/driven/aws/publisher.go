package aws

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	cfTypes "github.com/aws/aws-sdk-go-v2/service/cloudfront/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/diillson/ec2-rightsizing-go/internal/domain/entity"
	"github.com/google/uuid"
)

// Cache curto com revalidação obrigatória para o latest.json no CDN.
const reportCacheControl = "public, max-age=60, must-revalidate"

// PublishReport serializa o relatório uma única vez e grava o mesmo corpo
// nas duas chaves: a datada e a latest.
func (r *AWSRepositoryImpl) PublishReport(ctx context.Context, profile, region, bucket string, report entity.Report, datedKey, latestKey string) error {
	client, err := r.getServiceClient(ctx, profile, region, "s3")
	if err != nil {
		return err
	}
	s3Client := client.(s3API)

	body, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("error encoding report: %w", err)
	}

	for _, key := range []string{datedKey, latestKey} {
		_, err := s3Client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:       aws.String(bucket),
			Key:          aws.String(key),
			Body:         bytes.NewReader(body),
			ContentType:  aws.String("application/json"),
			CacheControl: aws.String(reportCacheControl),
		})
		if err != nil {
			return fmt.Errorf("error uploading report to s3://%s/%s: %w", bucket, key, err)
		}
	}

	return nil
}

// InvalidateDistributionPath dispara uma invalidação do CloudFront para o
// caminho indicado, com um caller reference único por chamada.
func (r *AWSRepositoryImpl) InvalidateDistributionPath(ctx context.Context, profile, distributionID, path string) error {
	client, err := r.getServiceClient(ctx, profile, "", "cloudfront")
	if err != nil {
		return err
	}
	cfClient := client.(cloudFrontAPI)

	_, err = cfClient.CreateInvalidation(ctx, &cloudfront.CreateInvalidationInput{
		DistributionId: aws.String(distributionID),
		InvalidationBatch: &cfTypes.InvalidationBatch{
			CallerReference: aws.String(fmt.Sprintf("rightsizing-%s", uuid.NewString())),
			Paths: &cfTypes.Paths{
				Quantity: aws.Int32(1),
				Items:    []string{path},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("error invalidating CloudFront path %s: %w", path, err)
	}

	return nil
}
