package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFileTOML(t *testing.T) {
	path := writeTempConfig(t, "config.toml", `
bucket = "my-portfolio"
prefix = "projects/ec2-rightsizing"
distribution_id = "E123ABC"
min_savings = 0.5
report_type = ["json", "csv"]
`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "my-portfolio", cfg.Bucket)
	assert.Equal(t, "projects/ec2-rightsizing", cfg.Prefix)
	assert.Equal(t, "E123ABC", cfg.DistributionID)
	require.NotNil(t, cfg.MinSavings)
	assert.InDelta(t, 0.5, *cfg.MinSavings, 0.0001)
	assert.Equal(t, []string{"json", "csv"}, cfg.ReportType)
}

func TestLoadConfigFileYAML(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", `
bucket: my-portfolio
region: us-west-2
account_id: "913979368763"
`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "my-portfolio", cfg.Bucket)
	assert.Equal(t, "us-west-2", cfg.Region)
	assert.Equal(t, "913979368763", cfg.AccountID)
	assert.Nil(t, cfg.MinSavings)
}

func TestLoadConfigFileJSON(t *testing.T) {
	path := writeTempConfig(t, "config.json", `{"bucket": "my-portfolio", "min_savings": 1.25}`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "my-portfolio", cfg.Bucket)
	require.NotNil(t, cfg.MinSavings)
	assert.InDelta(t, 1.25, *cfg.MinSavings, 0.0001)
}

func TestLoadConfigFileUnsupportedFormat(t *testing.T) {
	path := writeTempConfig(t, "config.ini", "bucket=nope")

	repo := NewConfigRepository()
	_, err := repo.LoadConfigFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config file format")
}

func TestLoadConfigFileMissing(t *testing.T) {
	repo := NewConfigRepository()
	_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadConfigFileDirectory(t *testing.T) {
	repo := NewConfigRepository()
	_, err := repo.LoadConfigFile(t.TempDir())
	require.Error(t, err)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("RIGHTSIZING_BUCKET", "env-bucket")
	t.Setenv("RIGHTSIZING_PREFIX", "projects/other")
	t.Setenv("RIGHTSIZING_DISTRIBUTION_ID", "E999XYZ")
	t.Setenv("RIGHTSIZING_MIN_SAVINGS", "2.75")
	t.Setenv("RIGHTSIZING_ACCOUNT_ID", "111122223333")

	repo := NewConfigRepository()
	cfg := repo.LoadEnvironment()

	assert.Equal(t, "env-bucket", cfg.Bucket)
	assert.Equal(t, "projects/other", cfg.Prefix)
	assert.Equal(t, "E999XYZ", cfg.DistributionID)
	assert.Equal(t, "111122223333", cfg.AccountID)
	require.NotNil(t, cfg.MinSavings)
	assert.InDelta(t, 2.75, *cfg.MinSavings, 0.0001)
}

func TestLoadEnvironmentInvalidMinSavings(t *testing.T) {
	t.Setenv("RIGHTSIZING_MIN_SAVINGS", "not-a-number")

	repo := NewConfigRepository()
	cfg := repo.LoadEnvironment()

	assert.Nil(t, cfg.MinSavings)
}
