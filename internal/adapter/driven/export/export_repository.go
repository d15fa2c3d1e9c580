package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/diillson/ec2-rightsizing-go/internal/domain/entity"
	"github.com/diillson/ec2-rightsizing-go/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

var csvHeaders = []string{
	"Source", "Account ID", "Resource", "Instance Name",
	"Current Type", "Action", "Target Type", "Estimated Monthly Savings",
}

func (r *ExportRepositoryImpl) ExportReportToCSV(report entity.Report, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	writer.Write(csvHeaders)
	for _, row := range reportRows(report) {
		writer.Write(row)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportReportToJSON(report entity.Report, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportReportToPDF(report entity.Report, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSection := func(title string, content string) {
		if content == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, title)
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, "  EC2 Rightsizing Report", "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Source: %s", report.Source)), "", 1, "L", true, 0, "")
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Generated at: %s", report.GeneratedAt.Format(time.RFC3339))), "", 1, "L", true, 0, "")
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Recommendations: %d", report.Count)), "", 1, "L", true, 0, "")
	if report.RecommendationTarget != nil {
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Recommendation target: %s", *report.RecommendationTarget)), "", 1, "L", true, 0, "")
	}
	pdf.Ln(10)

	if summaryJSON, err := json.MarshalIndent(report.Summary, "", "  "); err == nil {
		drawSection("Summary", string(summaryJSON))
	}

	recommendationsText := ""
	for _, row := range reportRows(report) {
		line := fmt.Sprintf("%s (%s): %s", row[2], row[3], row[4])
		if row[6] != "" {
			line += fmt.Sprintf(" -> %s", row[6])
		}
		line += fmt.Sprintf(" | %s | %s\n", row[5], row[7])
		recommendationsText += line
	}
	drawSection("Recommendations", recommendationsText)

	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Generated by EC2 Rightsizing Publisher | %s", time.Now().Format("2006-01-02"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// reportRows achata as recomendações do relatório em linhas tabulares,
// qualquer que seja a fonte que as produziu.
func reportRows(report entity.Report) [][]string {
	var rows [][]string

	switch recs := report.Recommendations.(type) {
	case []entity.RightsizingRecommendation:
		for _, rec := range recs {
			targetType := ""
			var savings entity.Money
			switch {
			case rec.ModifyRecommendationDetail != nil:
				if len(rec.ModifyRecommendationDetail.TargetInstances) > 0 {
					targetType = rec.ModifyRecommendationDetail.TargetInstances[0].ResourceDetails.EC2ResourceDetails.InstanceType
				}
				savings = rec.ModifyRecommendationDetail.EstimatedMonthlySavings
			case rec.TerminateRecommendationDetail != nil:
				savings = rec.TerminateRecommendationDetail.EstimatedMonthlySavings
			}
			rows = append(rows, []string{
				string(report.Source),
				rec.AccountID,
				rec.CurrentInstance.ResourceID,
				rec.CurrentInstance.InstanceName,
				rec.CurrentInstance.ResourceDetails.EC2ResourceDetails.InstanceType,
				string(rec.RightsizingType),
				targetType,
				formatMoney(savings),
			})
		}
	case []entity.InstanceRecommendation:
		for _, rec := range recs {
			targetType := ""
			if len(rec.RecommendationOptions) > 0 {
				targetType = rec.RecommendationOptions[0].InstanceType
			}
			savings := ""
			if rec.SavingsOpportunity != nil && rec.SavingsOpportunity.EstimatedMonthlySavings != nil {
				savings = fmt.Sprintf("%.2f %s",
					rec.SavingsOpportunity.EstimatedMonthlySavings.Value,
					rec.SavingsOpportunity.EstimatedMonthlySavings.Currency)
			}
			rows = append(rows, []string{
				string(report.Source),
				rec.AccountID,
				rec.InstanceARN,
				rec.InstanceName,
				rec.CurrentInstanceType,
				rec.Finding,
				targetType,
				savings,
			})
		}
	}

	return rows
}

func formatMoney(money entity.Money) string {
	if money.Amount == "" {
		return ""
	}
	if money.Unit == "" {
		return money.Amount
	}
	return money.Amount + " " + money.Unit
}

func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
