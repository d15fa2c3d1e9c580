package aws

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/diillson/ec2-rightsizing-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedPut struct {
	bucket       string
	key          string
	contentType  string
	cacheControl string
	body         []byte
}

type fakeS3Client struct {
	puts []capturedPut
	err  error
}

func (f *fakeS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.puts = append(f.puts, capturedPut{
		bucket:       aws.ToString(params.Bucket),
		key:          aws.ToString(params.Key),
		contentType:  aws.ToString(params.ContentType),
		cacheControl: aws.ToString(params.CacheControl),
		body:         body,
	})
	return &s3.PutObjectOutput{}, nil
}

type fakeCloudFrontClient struct {
	inputs []cloudfront.CreateInvalidationInput
	err    error
}

func (f *fakeCloudFrontClient) CreateInvalidation(ctx context.Context, params *cloudfront.CreateInvalidationInput, optFns ...func(*cloudfront.Options)) (*cloudfront.CreateInvalidationOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.inputs = append(f.inputs, *params)
	return &cloudfront.CreateInvalidationOutput{}, nil
}

func sampleReport() entity.Report {
	summary, recs := entity.SyntheticSummary{
		TotalEstimatedMonthlySavingsAmount:   "64.20",
		TotalEstimatedMonthlySavingsCurrency: "USD",
		EstimatedSavingsPercentage:           "24.80",
	}, []entity.RightsizingRecommendation{
		entity.NewTerminateRecommendation("913979368763", "i-0123456789abcdef0", "batch-31", "c7g.large",
			entity.Money{Amount: "64.20", Unit: "USD"}),
	}
	return entity.Report{
		GeneratedAt:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Source:          entity.SourceSynthetic,
		Summary:         summary,
		Count:           len(recs),
		Recommendations: recs,
	}
}

func TestPublishReportWritesBothKeys(t *testing.T) {
	fake := &fakeS3Client{}
	repo := newTestRepository("test", "us-east-1", "s3", fake)

	report := sampleReport()
	err := repo.PublishReport(context.Background(), "test", "us-east-1", "my-bucket", report,
		"projects/ec2-rightsizing/2025-06-01.json", "projects/ec2-rightsizing/latest.json")
	require.NoError(t, err)

	require.Len(t, fake.puts, 2)
	assert.Equal(t, "projects/ec2-rightsizing/2025-06-01.json", fake.puts[0].key)
	assert.Equal(t, "projects/ec2-rightsizing/latest.json", fake.puts[1].key)

	for _, put := range fake.puts {
		assert.Equal(t, "my-bucket", put.bucket)
		assert.Equal(t, "application/json", put.contentType)
		assert.Equal(t, "public, max-age=60, must-revalidate", put.cacheControl)
	}

	// As duas chaves recebem exatamente o mesmo corpo.
	assert.Equal(t, fake.puts[0].body, fake.puts[1].body)

	body := string(fake.puts[0].body)
	assert.Contains(t, body, `"recommendation_target":null`)
	assert.Contains(t, body, `"benefits_considered":null`)
	assert.Contains(t, body, `"source":"synthetic"`)
	assert.NotContains(t, body, "\n")

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(fake.puts[0].body, &decoded))
	assert.EqualValues(t, 1, decoded["count"])
	assert.Len(t, decoded["recommendations"], 1)
}

func TestPublishReportPutFailure(t *testing.T) {
	fake := &fakeS3Client{err: errors.New("NoSuchBucket")}
	repo := newTestRepository("test", "us-east-1", "s3", fake)

	err := repo.PublishReport(context.Background(), "test", "us-east-1", "missing-bucket", sampleReport(),
		"projects/ec2-rightsizing/2025-06-01.json", "projects/ec2-rightsizing/latest.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NoSuchBucket")
	assert.Empty(t, fake.puts)
}

func TestInvalidateDistributionPath(t *testing.T) {
	fake := &fakeCloudFrontClient{}
	repo := newTestRepository("test", "", "cloudfront", fake)

	err := repo.InvalidateDistributionPath(context.Background(), "test", "E123ABC", "/projects/ec2-rightsizing/latest.json")
	require.NoError(t, err)
	err = repo.InvalidateDistributionPath(context.Background(), "test", "E123ABC", "/projects/ec2-rightsizing/latest.json")
	require.NoError(t, err)

	require.Len(t, fake.inputs, 2)
	first := fake.inputs[0]
	assert.Equal(t, "E123ABC", aws.ToString(first.DistributionId))
	require.NotNil(t, first.InvalidationBatch)
	require.NotNil(t, first.InvalidationBatch.Paths)
	assert.EqualValues(t, 1, aws.ToInt32(first.InvalidationBatch.Paths.Quantity))
	assert.Equal(t, []string{"/projects/ec2-rightsizing/latest.json"}, first.InvalidationBatch.Paths.Items)

	// Caller reference único por invocação.
	firstRef := aws.ToString(first.InvalidationBatch.CallerReference)
	secondRef := aws.ToString(fake.inputs[1].InvalidationBatch.CallerReference)
	assert.True(t, strings.HasPrefix(firstRef, "rightsizing-"))
	assert.NotEqual(t, firstRef, secondRef)
}

func TestInvalidateDistributionPathError(t *testing.T) {
	fake := &fakeCloudFrontClient{err: errors.New("AccessDenied")}
	repo := newTestRepository("test", "", "cloudfront", fake)

	err := repo.InvalidateDistributionPath(context.Background(), "test", "E123ABC", "/latest.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AccessDenied")
}
