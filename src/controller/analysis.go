package controller

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"doc-quality/src/config"
	"doc-quality/src/model"
	"doc-quality/src/service/aggregate"
	"doc-quality/src/service/analyzer"
	"doc-quality/src/service/discovery"
	"doc-quality/src/util"
)

// AnalysisController orchestrates the documentation analysis process
type AnalysisController struct {
	cfg *config.Config
	now func() time.Time
}

// NewAnalysisController creates a new analysis controller
func NewAnalysisController(cfg *config.Config) *AnalysisController {
	return &AnalysisController{cfg: cfg}
}

// WithClock overrides the report timestamp source
func (c *AnalysisController) WithClock(now func() time.Time) *AnalysisController {
	c.now = now
	return c
}

// AnalyzeRequest represents a request to analyze a source tree
type AnalyzeRequest struct {
	Root  string
	Files []model.SourceFile // Optional: analyze these instead of discovering
}

// Analyze runs the full analysis pipeline
func (c *AnalysisController) Analyze(ctx context.Context, req AnalyzeRequest) (*model.ValidationReport, error) {
	startTime := time.Now()

	files := req.Files
	if files == nil {
		root := req.Root
		if root == "" {
			root = c.cfg.Scan.Root
		}
		util.Info("Starting documentation analysis for: %s", root)

		found, err := discovery.NewFinder(c.cfg.Scan).Find(root)
		if err != nil {
			util.Error("File discovery failed: %v", err)
			return nil, err
		}
		files = found
	}
	util.Info("Analyzing %d files (workers: %d)", len(files), c.cfg.Concurrency.Workers)

	results, fileErrors, err := c.analyzeFiles(ctx, files)
	if err != nil {
		return nil, err
	}

	aggregator := aggregate.New(c.cfg.Tiers)
	if c.now != nil {
		aggregator = aggregator.WithClock(c.now)
	}
	report := aggregator.Aggregate(results)
	report.Errors = fileErrors

	util.Info("Analysis complete: %d elements, coverage %.1f%%, bilingual %.1f%% (took %v)",
		report.Summary.TotalElements, report.Summary.CoveragePercentage,
		report.Summary.BilingualPercentage, time.Since(startTime))
	if len(fileErrors) > 0 {
		util.Warn("%d files could not be analyzed", len(fileErrors))
	}

	return report, nil
}

// analyzeFiles analyzes each file independently. Results keep the input order no
// matter which worker finishes first; failed files are skipped and reported.
func (c *AnalysisController) analyzeFiles(ctx context.Context, files []model.SourceFile) ([]model.FileValidationResult, []model.FileError, error) {
	fileAnalyzer := analyzer.New(c.cfg)

	type outcome struct {
		result model.FileValidationResult
		err    error
	}
	outcomes := make([]outcome, len(files))

	workers := c.cfg.Concurrency.Workers
	if workers < 1 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, file := range files {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := fileAnalyzer.AnalyzeFile(file)
			outcomes[i] = outcome{result: result, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("analysis cancelled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("analysis cancelled: %w", err)
	}

	results := make([]model.FileValidationResult, 0, len(files))
	var fileErrors []model.FileError
	for i, o := range outcomes {
		if o.err != nil {
			util.Warn("Skipping %s: %v", files[i].Path, o.err)
			fileErrors = append(fileErrors, model.FileError{Path: files[i].Path, Error: o.err.Error()})
			continue
		}
		results = append(results, o.result)
	}

	return results, fileErrors, nil
}

// GateError reports that a run fell below a configured minimum
type GateError struct {
	Metric   string
	Actual   float64
	Required float64
}

func (e *GateError) Error() string {
	return fmt.Sprintf("%s %.1f%% is below the required %.1f%%", e.Metric, e.Actual, e.Required)
}

// CheckGate compares the report against the configured gate thresholds
func (c *AnalysisController) CheckGate(report *model.ValidationReport) error {
	gate := c.cfg.Gate
	if gate.MinCoverage > 0 && report.Summary.CoveragePercentage < gate.MinCoverage {
		return &GateError{Metric: "coverage", Actual: report.Summary.CoveragePercentage, Required: gate.MinCoverage}
	}
	if gate.MinBilingual > 0 && report.Summary.BilingualPercentage < gate.MinBilingual {
		return &GateError{Metric: "bilingual coverage", Actual: report.Summary.BilingualPercentage, Required: gate.MinBilingual}
	}
	return nil
}
