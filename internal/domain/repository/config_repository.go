package repository

import (
	"github.com/diillson/ec2-rightsizing-go/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration from
// files and from the process environment.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	LoadEnvironment() *types.Config
}
