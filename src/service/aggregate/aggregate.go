// Package aggregate reduces per-file results into a ValidationReport.
package aggregate

import (
	"time"

	"doc-quality/src/config"
	"doc-quality/src/model"
)

// Aggregator builds the global report
type Aggregator struct {
	tiers config.TiersConfig
	now   func() time.Time
}

// New creates an aggregator with the given tier thresholds
func New(tiers config.TiersConfig) *Aggregator {
	return &Aggregator{
		tiers: tiers,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// WithClock returns a copy of the aggregator stamping reports with now()
func (a *Aggregator) WithClock(now func() time.Time) *Aggregator {
	c := *a
	c.now = now
	return &c
}

// Aggregate combines file results in the order given. It never divides by zero.
func (a *Aggregator) Aggregate(files []model.FileValidationResult) *model.ValidationReport {
	report := &model.ValidationReport{
		GeneratedAt: a.now(),
		Issues:      []model.IssueEntry{},
		Warnings:    []model.WarningEntry{},
		Suggestions: []model.SuggestionEntry{},
		FileDetails: make([]model.FileDetail, 0, len(files)),
	}

	var qualitySum float64
	for _, f := range files {
		report.Summary.TotalElements += f.TotalElements
		report.Summary.DocumentedElements += f.DocumentedElements
		report.Summary.BilingualElements += f.BilingualElements
		qualitySum += f.QualityScore

		coverage := Percentage(f.DocumentedElements, f.TotalElements)
		tier := a.Tier(coverage)
		countTier(&report.QualityMetrics, tier)

		report.FileDetails = append(report.FileDetails, model.FileDetail{
			File:               f.File,
			Path:               f.Path,
			TotalElements:      f.TotalElements,
			DocumentedElements: f.DocumentedElements,
			BilingualElements:  f.BilingualElements,
			QualityScore:       f.QualityScore,
			CoveragePercentage: coverage,
			Tier:               tier,
		})

		report.Issues = append(report.Issues, f.Issues...)
		report.Warnings = append(report.Warnings, f.Warnings...)
		report.Suggestions = append(report.Suggestions, f.Suggestions...)
	}

	s := &report.Summary
	s.TotalFiles = len(files)
	s.CoveragePercentage = Percentage(s.DocumentedElements, s.TotalElements)
	s.BilingualPercentage = Percentage(s.BilingualElements, s.DocumentedElements)
	if len(files) > 0 {
		s.AverageQualityScore = qualitySum / float64(len(files))
	}

	return report
}

// Tier maps a coverage percentage to its bucket; bounds are inclusive and
// checked from the top down
func (a *Aggregator) Tier(coverage float64) model.Tier {
	switch {
	case coverage >= a.tiers.Excellent:
		return model.TierExcellent
	case coverage >= a.tiers.Good:
		return model.TierGood
	case coverage >= a.tiers.Fair:
		return model.TierFair
	case coverage >= a.tiers.Poor:
		return model.TierPoor
	default:
		return model.TierVeryPoor
	}
}

// Percentage returns part*100/whole, or 0 when whole is 0
func Percentage(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) * 100 / float64(whole)
}

func countTier(q *model.QualityMetrics, tier model.Tier) {
	switch tier {
	case model.TierExcellent:
		q.Excellent++
	case model.TierGood:
		q.Good++
	case model.TierFair:
		q.Fair++
	case model.TierPoor:
		q.Poor++
	default:
		q.VeryPoor++
	}
}
