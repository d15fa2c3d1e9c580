package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/diillson/ec2-rightsizing-go/pkg/version"

	"github.com/diillson/ec2-rightsizing-go/internal/application/usecase"
	"github.com/diillson/ec2-rightsizing-go/internal/shared/types"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd       *cobra.Command
	reportUseCase *usecase.ReportUseCase
	version       string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "ec2-rightsizing",
		Short:   "EC2 Rightsizing Report Publisher",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "EC2 Rightsizing version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "AWS profile to use (default: environment credentials)")
	rootCmd.PersistentFlags().StringP("region", "r", "", "AWS region for Compute Optimizer and the liveness probe")
	rootCmd.PersistentFlags().StringP("bucket", "b", "", "S3 bucket that receives the report")
	rootCmd.PersistentFlags().String("prefix", "", "Key prefix for the dated and latest report objects (default: projects/ec2-rightsizing)")
	rootCmd.PersistentFlags().String("distribution-id", "", "CloudFront distribution to invalidate after publishing")
	rootCmd.PersistentFlags().Float64("min-savings", 0, "Minimum total monthly savings (USD) a source must report to be used (default: 0.01)")
	rootCmd.PersistentFlags().String("account-id", "", "Account ID stamped on synthetic recommendations when STS is unavailable")
	rootCmd.PersistentFlags().Bool("dry-run", false, "Print the report instead of publishing it")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for a local report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"csv"}, "Specify local report types: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the local report files (default: current directory)")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()

	configFile, _ := flags.GetString("config-file")
	profile, _ := flags.GetString("profile")
	region, _ := flags.GetString("region")
	bucket, _ := flags.GetString("bucket")
	prefix, _ := flags.GetString("prefix")
	distributionID, _ := flags.GetString("distribution-id")
	accountID, _ := flags.GetString("account-id")
	dryRun, _ := flags.GetBool("dry-run")
	reportName, _ := flags.GetString("report-name")
	dir, _ := flags.GetString("dir")

	// Um ponteiro nulo distingue "flag ausente" de "--min-savings 0".
	var minSavings *float64
	if flags.Changed("min-savings") {
		value, _ := flags.GetFloat64("min-savings")
		minSavings = &value
	}

	// O valor padrão csv só conta quando a flag foi realmente usada, para
	// não atropelar o report_type do arquivo de configuração.
	var reportType []string
	if flags.Changed("report-type") {
		reportType, _ = flags.GetStringSlice("report-type")
	}

	// Convert an explicit directory to an absolute path; an empty value is
	// resolved later so a config file can still provide its own.
	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		ConfigFile:     configFile,
		Profile:        profile,
		Region:         region,
		Bucket:         bucket,
		Prefix:         prefix,
		DistributionID: distributionID,
		MinSavings:     minSavings,
		AccountID:      accountID,
		DryRun:         dryRun,
		ReportName:     reportName,
		ReportType:     reportType,
		Dir:            dir,
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	// Exibe o banner de boas-vindas
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	// Analisa os argumentos da linha de comando
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	// Executa o pipeline de publicação
	ctx := context.Background()
	result, err := app.reportUseCase.Run(ctx, cliArgs)
	if err != nil {
		return err
	}

	// Emite o resultado em JSON para consumo por automação
	encoded, err := json.Marshal(result)
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))

	return nil
}

// SetReportUseCase sets the report use case for the CLI app.
func (app *CLIApp) SetReportUseCase(useCase *usecase.ReportUseCase) {
	app.reportUseCase = useCase
}
