package repository

import (
	"time"

	"github.com/diillson/ec2-rightsizing-go/internal/domain/entity"
)

// SyntheticRepository defines the interface for generating sample
// recommendations when no real advisory source produced a usable signal.
// Generation is deterministic for a given date.
type SyntheticRepository interface {
	Generate(accountID string, date time.Time) (entity.SyntheticSummary, []entity.RightsizingRecommendation)
}
