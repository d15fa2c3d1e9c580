package repository

import (
	"github.com/diillson/ec2-rightsizing-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportReportToCSV(report entity.Report, filename string, outputDir string) (string, error)
	ExportReportToJSON(report entity.Report, filename string, outputDir string) (string, error)
	ExportReportToPDF(report entity.Report, filename string, outputDir string) (string, error)
}
