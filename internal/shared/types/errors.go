package types

import "errors"

var (
	ErrMissingBucket         = errors.New("no S3 bucket configured. Use --bucket or set RIGHTSIZING_BUCKET")
	ErrMissingDistributionID = errors.New("no CloudFront distribution configured. Use --distribution-id or set RIGHTSIZING_DISTRIBUTION_ID")
)
