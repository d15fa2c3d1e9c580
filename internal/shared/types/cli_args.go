package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile     string
	Profile        string
	Region         string
	Bucket         string
	Prefix         string
	DistributionID string
	MinSavings     *float64
	AccountID      string
	DryRun         bool
	ReportName     string
	ReportType     []string
	Dir            string
}
