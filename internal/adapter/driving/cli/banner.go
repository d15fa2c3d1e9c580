package cli

import (
	"fmt"

	"github.com/diillson/ec2-rightsizing-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         /$$$$$$$$  /$$$$$$   /$$$$$$
        | $$_____/ /$$__  $$ /$$__  $$
        | $$      | $$  \__/|__/  \ $$
        | $$$$$   | $$        /$$$$$$/
        | $$__/   | $$       /$$____/
        | $$      | $$    $$| $$
        | $$$$$$$$|  $$$$$$/| $$$$$$$$
        |________/ \______/ |________/
        `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("EC2 Rightsizing Report CLI (v%s)", formattedVersion)))
}
