package cli

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"doc-quality/src/controller"
	"doc-quality/src/service/report"
	"doc-quality/src/util"
)

func (h *Handler) analyzeCmd() *cobra.Command {
	var (
		outputDir    string
		format       string
		workers      int
		include      []string
		exclude      []string
		minCoverage  float64
		minBilingual float64
		timeout      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "analyze [path]",
		Short: "Analyze documentation comments in a source tree",
		Long: "Extracts documentation comment blocks, classifies the declarations they document,\n" +
			"scores each comment and writes an aggregated coverage report",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if len(args) == 1 {
				h.cfg.Scan.Root = args[0]
			}
			if flags.Changed("workers") {
				h.cfg.Concurrency.Workers = workers
			}
			if flags.Changed("include") {
				h.cfg.Scan.Include = include
			}
			if flags.Changed("exclude") {
				h.cfg.Scan.Exclude = exclude
			}
			if flags.Changed("min-coverage") {
				h.cfg.Gate.MinCoverage = minCoverage
			}
			if flags.Changed("min-bilingual") {
				h.cfg.Gate.MinBilingual = minBilingual
			}
			if format != "" && !slices.Contains(report.Formats, format) {
				return fmt.Errorf("unsupported format %q, allowed values: %v", format, report.Formats)
			}
			if err := h.cfg.Validate(); err != nil {
				return fmt.Errorf("invalid options: %w", err)
			}

			util.Info("Analyzing documentation in: %s (timeout: %v)", h.cfg.Scan.Root, timeout)

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			analysisCtrl := controller.NewAnalysisController(h.cfg)
			validationReport, err := analysisCtrl.Analyze(ctx, controller.AnalyzeRequest{
				Root: h.cfg.Scan.Root,
			})
			if err != nil {
				util.Error("Analysis failed: %v", err)
				return fmt.Errorf("analysis failed: %w", err)
			}

			reportCtrl := controller.NewReportController(h.cfg)
			if outputDir != "" {
				h.cfg.Output.OutputDir = outputDir
				if format != "" {
					h.cfg.Output.Formats = []string{format}
				}

				paths, err := reportCtrl.GenerateReports(validationReport)
				if err != nil {
					return fmt.Errorf("generating reports: %w", err)
				}
				for _, path := range paths {
					fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
				}
			} else {
				outputFormat := format
				if outputFormat == "" {
					outputFormat = "text"
				}

				output, err := reportCtrl.GenerateToString(validationReport, outputFormat)
				if err != nil {
					return fmt.Errorf("generating report: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), output)
			}

			// Print summary to stderr
			s := validationReport.Summary
			fmt.Fprintf(cmd.ErrOrStderr(), "\nAnalysis complete:\n")
			fmt.Fprintf(cmd.ErrOrStderr(), "  Files: %d, elements: %d\n", s.TotalFiles, s.TotalElements)
			fmt.Fprintf(cmd.ErrOrStderr(), "  Coverage: %.1f%%, bilingual: %.1f%%\n", s.CoveragePercentage, s.BilingualPercentage)

			return analysisCtrl.CheckGate(validationReport)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (prints to stdout when empty)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (json, markdown, sarif, text)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 1, "Number of files analyzed in parallel")
	cmd.Flags().StringSliceVar(&include, "include", nil, "Include glob patterns (overrides config)")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Exclude glob patterns (overrides config)")
	cmd.Flags().Float64Var(&minCoverage, "min-coverage", 0, "Fail when coverage percentage is below this value")
	cmd.Flags().Float64Var(&minBilingual, "min-bilingual", 0, "Fail when bilingual percentage is below this value")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 5*time.Minute, "Analysis timeout")

	return cmd
}
