package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/diillson/ec2-rightsizing-go/internal/domain/repository"
	"github.com/diillson/ec2-rightsizing-go/internal/shared/types"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Variáveis de ambiente reconhecidas.
const (
	envBucket         = "RIGHTSIZING_BUCKET"
	envPrefix         = "RIGHTSIZING_PREFIX"
	envDistributionID = "RIGHTSIZING_DISTRIBUTION_ID"
	envMinSavings     = "RIGHTSIZING_MIN_SAVINGS"
	envAccountID      = "RIGHTSIZING_ACCOUNT_ID"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := filepath.Ext(filePath)
	fileExtension = strings.ToLower(fileExtension)

	// Verifica se o arquivo existe
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	// Lê o arquivo
	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	return &config, nil
}

// LoadEnvironment monta uma configuração a partir das variáveis de
// ambiente, carregando antes um arquivo .env se presente. Um .env ausente
// não é erro; RIGHTSIZING_MIN_SAVINGS ilegível é ignorado.
func (r *ConfigRepositoryImpl) LoadEnvironment() *types.Config {
	_ = godotenv.Load()

	config := &types.Config{
		Bucket:         os.Getenv(envBucket),
		Prefix:         os.Getenv(envPrefix),
		DistributionID: os.Getenv(envDistributionID),
		AccountID:      os.Getenv(envAccountID),
	}

	if raw := os.Getenv(envMinSavings); raw != "" {
		if value, err := strconv.ParseFloat(raw, 64); err == nil {
			config.MinSavings = &value
		}
	}

	return config
}
