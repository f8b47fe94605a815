package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"doc-quality/src/model"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	labelStyle = lipgloss.NewStyle().Width(22)

	tierStyles = map[model.Tier]lipgloss.Style{
		model.TierExcellent: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		model.TierGood:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		model.TierFair:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		model.TierPoor:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		model.TierVeryPoor:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
)

// generateText renders a terminal summary
func (g *Generator) generateText(report *model.ValidationReport) string {
	s := report.Summary

	summary := strings.Join([]string{
		titleStyle.Render("Documentation Quality"),
		labelStyle.Render("Files") + fmt.Sprint(s.TotalFiles),
		labelStyle.Render("Elements") + fmt.Sprint(s.TotalElements),
		labelStyle.Render("Documented") + fmt.Sprintf("%d (%.1f%%)", s.DocumentedElements, s.CoveragePercentage),
		labelStyle.Render("Bilingual") + fmt.Sprintf("%d (%.1f%%)", s.BilingualElements, s.BilingualPercentage),
		labelStyle.Render("Average quality score") + fmt.Sprintf("%.2f", s.AverageQualityScore),
	}, "\n")

	tiers := make([]string, 0, 5)
	for _, row := range tierRows(report.QualityMetrics) {
		tiers = append(tiers, labelStyle.Render(tierStyles[row.tier].Render(string(row.tier)))+fmt.Sprint(row.count))
	}

	var sb strings.Builder
	sb.WriteString(boxStyle.Render(summary))
	sb.WriteString("\n")
	sb.WriteString(boxStyle.Render(strings.Join(tiers, "\n")))
	sb.WriteString("\n")

	if g.cfg.IncludeFileDetails {
		for _, f := range report.FileDetails {
			style := tierStyles[f.Tier]
			sb.WriteString(fmt.Sprintf("%s  %s  %d/%d\n",
				style.Render(fmt.Sprintf("%6.1f%%", f.CoveragePercentage)), f.Path,
				f.DocumentedElements, f.TotalElements))
		}
	}

	for _, e := range report.Errors {
		sb.WriteString(fmt.Sprintf("skipped %s: %s\n", e.Path, e.Error))
	}

	return sb.String()
}
