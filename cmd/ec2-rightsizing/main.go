package main

import (
	"fmt"
	"os"

	"github.com/diillson/ec2-rightsizing-go/internal/adapter/driven/aws"
	"github.com/diillson/ec2-rightsizing-go/internal/adapter/driven/config"
	"github.com/diillson/ec2-rightsizing-go/internal/adapter/driven/export"
	"github.com/diillson/ec2-rightsizing-go/internal/adapter/driven/synthetic"
	"github.com/diillson/ec2-rightsizing-go/internal/adapter/driving/cli"
	"github.com/diillson/ec2-rightsizing-go/internal/application/usecase"
	"github.com/diillson/ec2-rightsizing-go/pkg/console"
	"github.com/diillson/ec2-rightsizing-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	awsRepo := aws.NewAWSRepository()
	syntheticRepo := synthetic.NewSyntheticRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	reportUseCase := usecase.NewReportUseCase(
		awsRepo,
		syntheticRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	// Define o caso de uso no aplicativo CLI
	app.SetReportUseCase(reportUseCase)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
