package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pterm/pterm"

	"github.com/diillson/ec2-rightsizing-go/internal/domain/entity"
	"github.com/diillson/ec2-rightsizing-go/internal/domain/repository"
	"github.com/diillson/ec2-rightsizing-go/internal/shared/types"
)

// Valores usados quando nem flags, nem arquivo de configuração, nem
// variáveis de ambiente definem outro.
const (
	defaultPrefix     = "projects/ec2-rightsizing"
	defaultMinSavings = 0.01
	defaultAccountID  = "913979368763"
)

// ReportUseCase handles the report generation and publishing pipeline.
type ReportUseCase struct {
	awsRepo       repository.AWSRepository
	syntheticRepo repository.SyntheticRepository
	exportRepo    repository.ExportRepository
	configRepo    repository.ConfigRepository
	console       types.ConsoleInterface
}

// NewReportUseCase creates a new report use case.
func NewReportUseCase(
	awsRepo repository.AWSRepository,
	syntheticRepo repository.SyntheticRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *ReportUseCase {
	return &ReportUseCase{
		awsRepo:       awsRepo,
		syntheticRepo: syntheticRepo,
		exportRepo:    exportRepo,
		configRepo:    configRepo,
		console:       console,
	}
}

// sourceResult carries everything a recommendation source yields for the
// report envelope.
type sourceResult struct {
	source  entity.Source
	summary interface{}
	recs    interface{}
	count   int
	total   float64
}

// Run executes the full pipeline: resolves the configuration, picks a
// recommendation source, assembles the report envelope and publishes it to
// S3 (or dumps it to the console on a dry run).
func (uc *ReportUseCase) Run(ctx context.Context, args *types.CLIArgs) (entity.RunResult, error) {
	settings, err := uc.ResolveSettings(args)
	if err != nil {
		return entity.RunResult{}, err
	}

	// A data das chaves e a semente sintética derivam do mesmo instante.
	now := time.Now().UTC()
	datedKey := fmt.Sprintf("%s/%s.json", settings.Prefix, now.Format("2006-01-02"))
	latestKey := fmt.Sprintf("%s/latest.json", settings.Prefix)

	status := uc.console.Status("Collecting rightsizing recommendations...")
	report := uc.BuildReport(ctx, now, settings, status)
	status.Stop()

	if settings.DryRun {
		body, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return entity.RunResult{}, fmt.Errorf("failed to encode report: %w", err)
		}
		uc.console.LogInfo("Dry run: skipping publish of %s and %s", datedKey, latestKey)
		uc.console.Println(string(body))
	} else {
		status = uc.console.Status(fmt.Sprintf("Publishing report to s3://%s...", settings.Bucket))
		if err := uc.awsRepo.PublishReport(ctx, settings.Profile, settings.Region, settings.Bucket, report, datedKey, latestKey); err != nil {
			status.Stop()
			return entity.RunResult{}, fmt.Errorf("failed to publish report: %w", err)
		}

		status.Update("Invalidating CloudFront cache...")
		if err := uc.awsRepo.InvalidateDistributionPath(ctx, settings.Profile, settings.DistributionID, "/"+latestKey); err != nil {
			// O objeto novo já está no bucket; a invalidação é melhor esforço.
			uc.console.LogWarning("CloudFront invalidation failed: %s", err)
		}
		status.Stop()

		uc.console.LogSuccess("Report published to s3://%s/%s", settings.Bucket, datedKey)
	}

	// Exibe o resumo da execução
	uc.displayRunSummary(report, datedKey, latestKey)

	// Exporta cópias locais do relatório, se solicitadas
	uc.exportReport(report, settings)

	return entity.RunResult{
		Status:    "ok",
		Source:    report.Source,
		DatedKey:  datedKey,
		LatestKey: latestKey,
		Items:     report.Count,
	}, nil
}

// ResolveSettings merges defaults, environment variables, the optional
// config file and command-line flags, in that order of precedence, and
// validates the result.
func (uc *ReportUseCase) ResolveSettings(args *types.CLIArgs) (*types.Settings, error) {
	settings := &types.Settings{
		Prefix:     defaultPrefix,
		MinSavings: defaultMinSavings,
		AccountID:  defaultAccountID,
		DryRun:     args.DryRun,
		ReportType: []string{"csv"},
	}

	applyConfig(settings, uc.configRepo.LoadEnvironment())

	if args.ConfigFile != "" {
		fileConfig, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return nil, err
		}
		applyConfig(settings, fileConfig)
	}

	applyArgs(settings, args)

	if !settings.DryRun {
		if settings.Bucket == "" {
			return nil, types.ErrMissingBucket
		}
		if settings.DistributionID == "" {
			return nil, types.ErrMissingDistributionID
		}
	}

	return settings, nil
}

// BuildReport runs the fallback chain and wraps the winning source's data in
// the report envelope. The query parameters are echoed only when Cost
// Explorer produced the data; for every other source they stay null.
func (uc *ReportUseCase) BuildReport(ctx context.Context, now time.Time, settings *types.Settings, status types.StatusHandle) entity.Report {
	chosen := uc.selectSource(ctx, now, settings, status)

	report := entity.Report{
		GeneratedAt:     now,
		Source:          chosen.source,
		Summary:         chosen.summary,
		Count:           chosen.count,
		Recommendations: chosen.recs,
	}

	if chosen.source == entity.SourceCostExplorer {
		target := entity.RecommendationTarget
		benefits := entity.BenefitsConsidered
		report.RecommendationTarget = &target
		report.BenefitsConsidered = &benefits
	}

	return report
}

// selectSource tries each real advisory source in priority order and falls
// back to the synthetic generator when none yields savings at or above the
// configured minimum. Source failures and below-minimum results are treated
// the same way: warn and advance.
func (uc *ReportUseCase) selectSource(ctx context.Context, now time.Time, settings *types.Settings, status types.StatusHandle) sourceResult {
	producers := []struct {
		source entity.Source
		fetch  func(context.Context, *types.Settings) (sourceResult, error)
	}{
		{entity.SourceCostExplorer, uc.fetchCostExplorer},
		{entity.SourceComputeOptimizer, uc.fetchComputeOptimizer},
	}

	for _, producer := range producers {
		status.Update(fmt.Sprintf("Querying %s...", producer.source))

		result, err := producer.fetch(ctx, settings)
		if err != nil {
			uc.console.LogWarning("Could not get recommendations from %s: %s", producer.source, err)
			continue
		}
		if result.total < settings.MinSavings {
			uc.console.LogWarning("%s estimated savings %.2f below minimum %.2f, trying next source", producer.source, result.total, settings.MinSavings)
			continue
		}
		return result
	}

	// Nenhuma fonte real serviu; a sondagem de instâncias só muda a mensagem.
	status.Update("Generating synthetic recommendations...")
	if uc.awsRepo.HasRunningInstances(ctx, settings.Profile, settings.Region) {
		uc.console.LogInfo("Running instances found but no usable advisory data; generating synthetic recommendations")
	} else {
		uc.console.LogInfo("No running instances found; generating synthetic recommendations")
	}

	return uc.synthesize(ctx, now, settings)
}

func (uc *ReportUseCase) fetchCostExplorer(ctx context.Context, settings *types.Settings) (sourceResult, error) {
	summary, recommendations, err := uc.awsRepo.GetRightsizingRecommendations(ctx, settings.Profile)
	if err != nil {
		return sourceResult{}, err
	}

	return sourceResult{
		source:  entity.SourceCostExplorer,
		summary: summary,
		recs:    recommendations,
		count:   len(recommendations),
		total:   entity.SumRightsizingSavings(recommendations),
	}, nil
}

func (uc *ReportUseCase) fetchComputeOptimizer(ctx context.Context, settings *types.Settings) (sourceResult, error) {
	summary, recommendations, err := uc.awsRepo.GetInstanceRecommendations(ctx, settings.Profile, settings.Region)
	if err != nil {
		return sourceResult{}, err
	}

	return sourceResult{
		source:  entity.SourceComputeOptimizer,
		summary: summary,
		recs:    recommendations,
		count:   len(recommendations),
		total:   entity.SumInstanceRecommendationSavings(recommendations),
	}, nil
}

// synthesize generates the fallback data set. The account ID comes from STS
// when available so synthetic records still carry the caller's real account.
func (uc *ReportUseCase) synthesize(ctx context.Context, now time.Time, settings *types.Settings) sourceResult {
	accountID := settings.AccountID
	if resolved, err := uc.awsRepo.GetAccountID(ctx, settings.Profile); err == nil && resolved != "" {
		accountID = resolved
	}

	summary, recommendations := uc.syntheticRepo.Generate(accountID, now)

	return sourceResult{
		source:  entity.SourceSynthetic,
		summary: summary,
		recs:    recommendations,
		count:   len(recommendations),
		total:   entity.SumRightsizingSavings(recommendations),
	}
}

// displayRunSummary renders a one-row table describing what was produced.
func (uc *ReportUseCase) displayRunSummary(report entity.Report, datedKey, latestKey string) {
	table := uc.console.CreateTable()
	table.AddColumn("Source")
	table.AddColumn("Items")
	table.AddColumn("Dated Key")
	table.AddColumn("Latest Key")

	table.AddRow(
		pterm.FgYellow.Sprint(string(report.Source)),
		fmt.Sprintf("%d", report.Count),
		datedKey,
		latestKey,
	)

	uc.console.Print(table.Render())
}

// exportReport writes local copies of the report when requested.
func (uc *ReportUseCase) exportReport(report entity.Report, settings *types.Settings) {
	if settings.ReportName == "" || len(settings.ReportType) == 0 {
		return
	}

	for _, reportType := range settings.ReportType {
		switch reportType {
		case "csv":
			csvPath, err := uc.exportRepo.ExportReportToCSV(report, settings.ReportName, settings.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportReportToJSON(report, settings.ReportName, settings.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportReportToPDF(report, settings.ReportName, settings.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		}
	}
}

func applyConfig(settings *types.Settings, config *types.Config) {
	if config == nil {
		return
	}
	if config.Profile != "" {
		settings.Profile = config.Profile
	}
	if config.Region != "" {
		settings.Region = config.Region
	}
	if config.Bucket != "" {
		settings.Bucket = config.Bucket
	}
	if config.Prefix != "" {
		settings.Prefix = config.Prefix
	}
	if config.DistributionID != "" {
		settings.DistributionID = config.DistributionID
	}
	if config.MinSavings != nil {
		settings.MinSavings = *config.MinSavings
	}
	if config.AccountID != "" {
		settings.AccountID = config.AccountID
	}
	if config.ReportName != "" {
		settings.ReportName = config.ReportName
	}
	if len(config.ReportType) > 0 {
		settings.ReportType = config.ReportType
	}
	if config.Dir != "" {
		settings.Dir = config.Dir
	}
}

func applyArgs(settings *types.Settings, args *types.CLIArgs) {
	if args.Profile != "" {
		settings.Profile = args.Profile
	}
	if args.Region != "" {
		settings.Region = args.Region
	}
	if args.Bucket != "" {
		settings.Bucket = args.Bucket
	}
	if args.Prefix != "" {
		settings.Prefix = args.Prefix
	}
	if args.DistributionID != "" {
		settings.DistributionID = args.DistributionID
	}
	if args.MinSavings != nil {
		settings.MinSavings = *args.MinSavings
	}
	if args.AccountID != "" {
		settings.AccountID = args.AccountID
	}
	if args.ReportName != "" {
		settings.ReportName = args.ReportName
	}
	if len(args.ReportType) > 0 {
		settings.ReportType = args.ReportType
	}
	if args.Dir != "" {
		settings.Dir = args.Dir
	}
}
