// Package analyzer turns one source file into a FileValidationResult.
package analyzer

import (
	"fmt"
	"os"

	"doc-quality/src/config"
	"doc-quality/src/model"
	"doc-quality/src/service/docparse"
	"doc-quality/src/service/scoring"
	"doc-quality/src/util"
)

// MessageNotDocumented is the warning recorded for an element with an empty comment
const MessageNotDocumented = "Element is not documented"

// Analyzer pairs comment blocks with declarations and scores them
type Analyzer struct {
	classifier *docparse.Classifier
	scorer     *scoring.Scorer
	elements   config.ElementsConfig
}

// New creates an analyzer from the scoring and element weight config
func New(cfg *config.Config) *Analyzer {
	return &Analyzer{
		classifier: docparse.NewClassifier(),
		scorer:     scoring.NewScorer(cfg.Scoring),
		elements:   cfg.Elements,
	}
}

// AnalyzeFile reads the file when no content was supplied, then analyzes it.
// Read failures are returned so the caller can skip the file.
func (a *Analyzer) AnalyzeFile(file model.SourceFile) (model.FileValidationResult, error) {
	content := file.Content
	if content == nil {
		data, err := os.ReadFile(file.Path)
		if err != nil {
			return model.FileValidationResult{}, fmt.Errorf("reading %s: %w", file.Path, err)
		}
		content = data
	}
	return a.AnalyzeContent(file, string(content)), nil
}

// AnalyzeContent analyzes already loaded file text
func (a *Analyzer) AnalyzeContent(file model.SourceFile, content string) model.FileValidationResult {
	result := model.FileValidationResult{
		File: file.Name,
		Path: file.Path,
	}

	for _, element := range a.Elements(docparse.SplitLines(content)) {
		a.record(&result, element)
	}

	util.Debug("Analyzed %s: %d elements, %d documented, %d bilingual",
		file.Path, result.TotalElements, result.DocumentedElements, result.BilingualElements)
	return result
}

// Elements pairs every comment block with the declaration that follows it.
// Blocks followed by no recognizable declaration are dropped.
func (a *Analyzer) Elements(lines []string) []model.ElementRecord {
	var records []model.ElementRecord
	for block := range docparse.Blocks(lines) {
		decl, ok := a.classifier.Lookup(lines, block.EndLine)
		if !ok {
			continue
		}
		records = append(records, model.ElementRecord{
			Declaration: decl,
			Comment:     block.Text,
		})
	}
	return records
}

func (a *Analyzer) record(result *model.FileValidationResult, element model.ElementRecord) {
	decl := element.Declaration
	result.TotalElements++

	if !element.Documented() {
		result.Warnings = append(result.Warnings, model.WarningEntry{
			Element: decl.Name,
			Type:    decl.Kind,
			Message: MessageNotDocumented,
			File:    result.Path,
			Line:    decl.Line,
		})
		return
	}

	result.DocumentedElements++
	analysis := a.scorer.Score(element.Comment)
	if analysis.IsBilingual {
		result.BilingualElements++
	}
	result.QualityScore += analysis.Score * a.elements.WeightFor(string(decl.Kind))

	if len(analysis.Issues) > 0 {
		result.Issues = append(result.Issues, model.IssueEntry{
			Element: decl.Name,
			Type:    decl.Kind,
			Issues:  analysis.Issues,
			File:    result.Path,
			Line:    decl.Line,
		})
	}
	if len(analysis.Suggestions) > 0 {
		result.Suggestions = append(result.Suggestions, model.SuggestionEntry{
			Element:     decl.Name,
			Type:        decl.Kind,
			Suggestions: analysis.Suggestions,
			File:        result.Path,
			Line:        decl.Line,
		})
	}
}
