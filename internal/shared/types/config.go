package types

// Config represents the application configuration as loaded from a file or
// from environment variables. MinSavings is a pointer so that an absent
// value can be told apart from an explicit zero.
type Config struct {
	Profile        string   `json:"profile" yaml:"profile" toml:"profile"`
	Region         string   `json:"region" yaml:"region" toml:"region"`
	Bucket         string   `json:"bucket" yaml:"bucket" toml:"bucket"`
	Prefix         string   `json:"prefix" yaml:"prefix" toml:"prefix"`
	DistributionID string   `json:"distribution_id" yaml:"distribution_id" toml:"distribution_id"`
	MinSavings     *float64 `json:"min_savings" yaml:"min_savings" toml:"min_savings"`
	AccountID      string   `json:"account_id" yaml:"account_id" toml:"account_id"`
	ReportName     string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType     []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir            string   `json:"dir" yaml:"dir" toml:"dir"`
}

// Settings is the fully resolved runtime configuration after defaults,
// environment, config file and command-line flags have been merged.
type Settings struct {
	Profile        string
	Region         string
	Bucket         string
	Prefix         string
	DistributionID string
	MinSavings     float64
	AccountID      string
	DryRun         bool
	ReportName     string
	ReportType     []string
	Dir            string
}
