package aws

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2Types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEC2Client struct {
	output *ec2.DescribeInstancesOutput
	inputs []ec2.DescribeInstancesInput
	err    error
}

func (f *fakeEC2Client) DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error) {
	f.inputs = append(f.inputs, *params)
	if f.err != nil {
		return nil, f.err
	}
	return f.output, nil
}

type fakeSTSClient struct {
	account string
	err     error
}

func (f *fakeSTSClient) GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &sts.GetCallerIdentityOutput{Account: aws.String(f.account)}, nil
}

func TestHasRunningInstances(t *testing.T) {
	tests := []struct {
		name   string
		output *ec2.DescribeInstancesOutput
		err    error
		want   bool
	}{
		{
			name: "running instance present",
			output: &ec2.DescribeInstancesOutput{
				Reservations: []ec2Types.Reservation{
					{Instances: []ec2Types.Instance{{InstanceId: aws.String("i-1")}}},
				},
			},
			want: true,
		},
		{
			name:   "no reservations",
			output: &ec2.DescribeInstancesOutput{},
			want:   false,
		},
		{
			name: "reservations without instances",
			output: &ec2.DescribeInstancesOutput{
				Reservations: []ec2Types.Reservation{{}, {}},
			},
			want: false,
		},
		{
			name: "api error reads as no",
			err:  errors.New("UnauthorizedOperation"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEC2Client{output: tt.output, err: tt.err}
			repo := newTestRepository("test", "us-east-1", "ec2", fake)

			got := repo.HasRunningInstances(context.Background(), "test", "us-east-1")
			assert.Equal(t, tt.want, got)

			require.Len(t, fake.inputs, 1)
			require.Len(t, fake.inputs[0].Filters, 1)
			assert.Equal(t, "instance-state-name", aws.ToString(fake.inputs[0].Filters[0].Name))
			assert.Equal(t, []string{"running"}, fake.inputs[0].Filters[0].Values)
		})
	}
}

func TestGetAccountID(t *testing.T) {
	repo := newTestRepository("test", "us-east-1", "sts", &fakeSTSClient{account: "913979368763"})

	accountID, err := repo.GetAccountID(context.Background(), "test")
	require.NoError(t, err)
	assert.Equal(t, "913979368763", accountID)
}

func TestGetAccountIDError(t *testing.T) {
	repo := newTestRepository("test", "us-east-1", "sts", &fakeSTSClient{err: errors.New("ExpiredToken")})

	_, err := repo.GetAccountID(context.Background(), "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ExpiredToken")
}

func TestGetServiceClientUnsupportedService(t *testing.T) {
	repo := &AWSRepositoryImpl{
		cfgCache:    map[string]aws.Config{"test": {}},
		clientCache: make(map[string]interface{}),
	}

	_, err := repo.getServiceClient(context.Background(), "test", "", "dynamodb")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported service")
}
