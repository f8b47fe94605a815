package model

import "time"

// IssueEntry lists the quality issues found on one element
type IssueEntry struct {
	Element string          `json:"element"`
	Type    DeclarationKind `json:"type"`
	Issues  []string        `json:"issues"`
	File    string          `json:"file,omitempty"`
	Line    int             `json:"line,omitempty"`
}

// WarningEntry flags an element, typically one without documentation
type WarningEntry struct {
	Element string          `json:"element"`
	Type    DeclarationKind `json:"type"`
	Message string          `json:"message"`
	File    string          `json:"file,omitempty"`
	Line    int             `json:"line,omitempty"`
}

// SuggestionEntry lists improvement hints for one element
type SuggestionEntry struct {
	Element     string          `json:"element"`
	Type        DeclarationKind `json:"type"`
	Suggestions []string        `json:"suggestions"`
	File        string          `json:"file,omitempty"`
	Line        int             `json:"line,omitempty"`
}

// FileValidationResult is the per-file aggregate produced by the analyzer.
// QualityScore is the sum of weighted element scores and is not normalized.
type FileValidationResult struct {
	File               string            `json:"file"`
	Path               string            `json:"path"`
	TotalElements      int               `json:"totalElements"`
	DocumentedElements int               `json:"documentedElements"`
	BilingualElements  int               `json:"bilingualElements"`
	QualityScore       float64           `json:"qualityScore"`
	Issues             []IssueEntry      `json:"issues"`
	Warnings           []WarningEntry    `json:"warnings"`
	Suggestions        []SuggestionEntry `json:"suggestions"`
}

// FileError records a file that could not be analyzed
type FileError struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// Summary contains the global totals of a validation run
type Summary struct {
	TotalFiles          int     `json:"totalFiles"`
	TotalElements       int     `json:"totalElements"`
	DocumentedElements  int     `json:"documentedElements"`
	BilingualElements   int     `json:"bilingualElements"`
	AverageQualityScore float64 `json:"averageQualityScore"`
	CoveragePercentage  float64 `json:"coveragePercentage"`
	BilingualPercentage float64 `json:"bilingualPercentage"`
}

// QualityMetrics is the per-file coverage histogram
type QualityMetrics struct {
	Excellent int `json:"excellent"`
	Good      int `json:"good"`
	Fair      int `json:"fair"`
	Poor      int `json:"poor"`
	VeryPoor  int `json:"veryPoor"`
}

// Total returns the number of files counted across all tiers
func (q QualityMetrics) Total() int {
	return q.Excellent + q.Good + q.Fair + q.Poor + q.VeryPoor
}

// FileDetail is one row of the per-file table
type FileDetail struct {
	File               string  `json:"file"`
	Path               string  `json:"path"`
	TotalElements      int     `json:"totalElements"`
	DocumentedElements int     `json:"documentedElements"`
	BilingualElements  int     `json:"bilingualElements"`
	QualityScore       float64 `json:"qualityScore"`
	CoveragePercentage float64 `json:"coveragePercentage"`
	Tier               Tier    `json:"tier"`
}

// Tier names a quality bucket
type Tier string

const (
	TierExcellent Tier = "excellent"
	TierGood      Tier = "good"
	TierFair      Tier = "fair"
	TierPoor      Tier = "poor"
	TierVeryPoor  Tier = "veryPoor"
)

// ValidationReport is the complete output of an analysis run
type ValidationReport struct {
	GeneratedAt    time.Time         `json:"generatedAt"`
	Summary        Summary           `json:"summary"`
	QualityMetrics QualityMetrics    `json:"qualityMetrics"`
	Issues         []IssueEntry      `json:"issues"`
	Warnings       []WarningEntry    `json:"warnings"`
	Suggestions    []SuggestionEntry `json:"suggestions"`
	FileDetails    []FileDetail      `json:"fileDetails"`
	Errors         []FileError       `json:"errors,omitempty"`
}
