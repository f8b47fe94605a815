package controller

import (
	"fmt"
	"os"
	"path/filepath"

	"doc-quality/src/config"
	"doc-quality/src/model"
	"doc-quality/src/service/report"
	"doc-quality/src/util"
)

// ReportController handles report generation
type ReportController struct {
	cfg *config.Config
}

// NewReportController creates a new report controller
func NewReportController(cfg *config.Config) *ReportController {
	return &ReportController{cfg: cfg}
}

// GenerateReports writes the report in all configured formats and returns the paths
func (c *ReportController) GenerateReports(validationReport *model.ValidationReport) ([]string, error) {
	util.Debug("Generating reports for %d formats: %v", len(c.cfg.Output.Formats), c.cfg.Output.Formats)
	reportGenerator := report.NewGenerator(c.cfg.Output, c.cfg.Agent.Version)

	if err := os.MkdirAll(c.cfg.Output.OutputDir, 0755); err != nil {
		util.Error("Failed to create output directory: %v", err)
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	var outputPaths []string
	for _, format := range c.cfg.Output.Formats {
		output, err := reportGenerator.Generate(validationReport, format)
		if err != nil {
			util.Error("Failed to generate %s report: %v", format, err)
			return nil, err
		}

		outputPath := c.getOutputPath(format)
		if err := os.WriteFile(outputPath, []byte(output), 0644); err != nil {
			util.Error("Failed to write report to %s: %v", outputPath, err)
			return nil, fmt.Errorf("writing report: %w", err)
		}

		util.Info("Report written: %s", outputPath)
		outputPaths = append(outputPaths, outputPath)
	}

	return outputPaths, nil
}

// GenerateToString generates a report to a string
func (c *ReportController) GenerateToString(validationReport *model.ValidationReport, format string) (string, error) {
	reportGenerator := report.NewGenerator(c.cfg.Output, c.cfg.Agent.Version)
	return reportGenerator.Generate(validationReport, format)
}

func (c *ReportController) getOutputPath(format string) string {
	name := c.cfg.Output.ReportName
	if name == "" {
		name = "documentation-report"
	}
	return filepath.Join(c.cfg.Output.OutputDir, name+"."+report.Extension(format))
}
