package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"doc-quality/src/config"
	"doc-quality/src/model"
	"doc-quality/src/util"
)

// Formats lists the supported output formats
var Formats = []string{"json", "markdown", "sarif", "text"}

// Generator generates reports in various formats
type Generator struct {
	cfg     config.OutputConfig
	version string
}

// NewGenerator creates a new report generator
func NewGenerator(cfg config.OutputConfig, version string) *Generator {
	return &Generator{cfg: cfg, version: version}
}

// Generate generates a report in the specified format
func (g *Generator) Generate(report *model.ValidationReport, format string) (string, error) {
	util.Debug("Generating report in %s format (%d files)", format, report.Summary.TotalFiles)
	switch format {
	case "json":
		return g.generateJSON(report)
	case "markdown", "md":
		return g.generateMarkdown(report), nil
	case "sarif":
		return g.generateSARIF(report)
	case "text":
		return g.generateText(report), nil
	default:
		util.Warn("Unsupported report format requested: %s", format)
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// Extension returns the file extension used for a format
func Extension(format string) string {
	switch format {
	case "markdown":
		return "md"
	case "sarif":
		return "sarif.json"
	case "text":
		return "txt"
	default:
		return format
	}
}

func (g *Generator) generateJSON(report *model.ValidationReport) (string, error) {
	out := *report
	if !g.cfg.IncludeSuggestions {
		out.Suggestions = []model.SuggestionEntry{}
	}
	if !g.cfg.IncludeFileDetails {
		out.FileDetails = []model.FileDetail{}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (g *Generator) generateMarkdown(report *model.ValidationReport) string {
	var sb strings.Builder
	s := report.Summary

	sb.WriteString("# Documentation Quality Report\n\n")
	sb.WriteString(fmt.Sprintf("**Generated:** %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05 UTC")))

	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Files | %d |\n", s.TotalFiles))
	sb.WriteString(fmt.Sprintf("| Elements | %d |\n", s.TotalElements))
	sb.WriteString(fmt.Sprintf("| Documented | %d |\n", s.DocumentedElements))
	sb.WriteString(fmt.Sprintf("| Bilingual | %d |\n", s.BilingualElements))
	sb.WriteString(fmt.Sprintf("| Coverage | %.1f%% |\n", s.CoveragePercentage))
	sb.WriteString(fmt.Sprintf("| Bilingual coverage | %.1f%% |\n", s.BilingualPercentage))
	sb.WriteString(fmt.Sprintf("| Average quality score | %.2f |\n\n", s.AverageQualityScore))

	sb.WriteString("### Files by Quality Tier\n\n")
	sb.WriteString("| Tier | Files |\n")
	sb.WriteString("|------|-------|\n")
	for _, row := range tierRows(report.QualityMetrics) {
		sb.WriteString(fmt.Sprintf("| %s | %d |\n", row.tier, row.count))
	}
	sb.WriteString("\n")

	if g.cfg.IncludeFileDetails && len(report.FileDetails) > 0 {
		sb.WriteString("## Files\n\n")
		sb.WriteString("| File | Elements | Documented | Bilingual | Coverage | Score |\n")
		sb.WriteString("|------|----------|------------|-----------|----------|-------|\n")
		for _, f := range report.FileDetails {
			sb.WriteString(fmt.Sprintf("| `%s` | %d | %d | %d | %.1f%% | %.2f |\n",
				f.Path, f.TotalElements, f.DocumentedElements, f.BilingualElements,
				f.CoveragePercentage, f.QualityScore))
		}
		sb.WriteString("\n")
	}

	if len(report.Warnings) > 0 {
		sb.WriteString(fmt.Sprintf("## Undocumented Elements (%d)\n\n", len(report.Warnings)))
		for _, w := range report.Warnings {
			sb.WriteString(fmt.Sprintf("- `%s` (%s) %s\n", w.Element, w.Type, location(w.File, w.Line)))
		}
		sb.WriteString("\n")
	}

	if len(report.Issues) > 0 {
		sb.WriteString(fmt.Sprintf("## Issues (%d)\n\n", len(report.Issues)))
		for _, is := range report.Issues {
			sb.WriteString(fmt.Sprintf("- `%s` (%s) %s: %s\n", is.Element, is.Type,
				location(is.File, is.Line), strings.Join(is.Issues, "; ")))
		}
		sb.WriteString("\n")
	}

	if g.cfg.IncludeSuggestions && len(report.Suggestions) > 0 {
		sb.WriteString(fmt.Sprintf("## Suggestions (%d)\n\n", len(report.Suggestions)))
		for _, sg := range report.Suggestions {
			sb.WriteString(fmt.Sprintf("#### `%s` (%s)\n\n", sg.Element, sg.Type))
			for _, text := range sg.Suggestions {
				sb.WriteString(fmt.Sprintf("- %s\n", text))
			}
			sb.WriteString("\n")
		}
	}

	if len(report.Errors) > 0 {
		sb.WriteString("## Skipped Files\n\n")
		for _, e := range report.Errors {
			sb.WriteString(fmt.Sprintf("- `%s`: %s\n", e.Path, e.Error))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (g *Generator) generateSARIF(report *model.ValidationReport) (string, error) {
	sarif := map[string]any{
		"$schema": "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json",
		"version": "2.1.0",
		"runs": []map[string]any{
			{
				"tool": map[string]any{
					"driver": map[string]any{
						"name":    "doc-quality",
						"version": g.version,
						"rules":   sarifRules(),
					},
				},
				"results": g.buildSARIFResults(report),
			},
		},
	}

	data, err := json.MarshalIndent(sarif, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

const (
	ruleUndocumented = "doc/undocumented"
	ruleQuality      = "doc/quality"
	ruleSuggestion   = "doc/suggestion"
)

func sarifRules() []map[string]any {
	rule := func(id, text, level string) map[string]any {
		return map[string]any{
			"id":                   id,
			"shortDescription":     map[string]any{"text": text},
			"defaultConfiguration": map[string]any{"level": level},
		}
	}
	return []map[string]any{
		rule(ruleUndocumented, "Declaration has an empty documentation comment", "warning"),
		rule(ruleQuality, "Documentation comment has quality issues", "warning"),
		rule(ruleSuggestion, "Documentation comment could be improved", "note"),
	}
}

func (g *Generator) buildSARIFResults(report *model.ValidationReport) []map[string]any {
	results := []map[string]any{}

	for _, w := range report.Warnings {
		results = append(results, sarifResult(ruleUndocumented, "warning",
			fmt.Sprintf("%s %s: %s", w.Type, w.Element, w.Message), w.File, w.Line))
	}
	for _, is := range report.Issues {
		results = append(results, sarifResult(ruleQuality, "warning",
			fmt.Sprintf("%s %s: %s", is.Type, is.Element, strings.Join(is.Issues, "; ")), is.File, is.Line))
	}
	if g.cfg.IncludeSuggestions {
		for _, sg := range report.Suggestions {
			results = append(results, sarifResult(ruleSuggestion, "note",
				fmt.Sprintf("%s %s: %s", sg.Type, sg.Element, strings.Join(sg.Suggestions, "; ")), sg.File, sg.Line))
		}
	}

	return results
}

func sarifResult(ruleID, level, message, file string, line int) map[string]any {
	result := map[string]any{
		"ruleId":  ruleID,
		"level":   level,
		"message": map[string]any{"text": message},
	}
	if file != "" {
		physical := map[string]any{
			"artifactLocation": map[string]any{"uri": file},
		}
		if line > 0 {
			physical["region"] = map[string]any{"startLine": line}
		}
		result["locations"] = []map[string]any{{"physicalLocation": physical}}
	}
	return result
}

type tierRow struct {
	tier  model.Tier
	count int
}

func tierRows(q model.QualityMetrics) []tierRow {
	return []tierRow{
		{model.TierExcellent, q.Excellent},
		{model.TierGood, q.Good},
		{model.TierFair, q.Fair},
		{model.TierPoor, q.Poor},
		{model.TierVeryPoor, q.VeryPoor},
	}
}

func location(file string, line int) string {
	if file == "" {
		return ""
	}
	if line > 0 {
		return fmt.Sprintf("at `%s:%d`", file, line)
	}
	return fmt.Sprintf("in `%s`", file)
}
