package controller

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"doc-quality/src/config"
	"doc-quality/src/model"
)

func writeFixtureFile(t *testing.T, path string, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir fixture dir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture file failed: %v", err)
	}
}

// documentedFile returns source text with n classes, the first documented of them
// carrying a bilingual comment when bilingual > 0
func documentedFile(n, documented, bilingual int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		switch {
		case i < bilingual:
			sb.WriteString("/** Élément documenté. Documented element. */\n")
		case i < documented:
			sb.WriteString("/** Documented element. */\n")
		default:
			sb.WriteString("/**\n */\n")
		}
		sb.WriteString(fmt.Sprintf("export class Item%d {\n}\n", i))
	}
	return sb.String()
}

func TestAnalyzeDirectory(t *testing.T) {
	root := t.TempDir()
	writeFixtureFile(t, filepath.Join(root, "src", "a.ts"), documentedFile(10, 9, 3))
	writeFixtureFile(t, filepath.Join(root, "src", "b.ts"), documentedFile(4, 1, 0))
	writeFixtureFile(t, filepath.Join(root, "src", "c.spec.ts"), documentedFile(3, 0, 0))

	cfg := config.DefaultConfig()
	cfg.Concurrency.Workers = 4
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	report, err := NewAnalysisController(cfg).WithClock(func() time.Time { return fixed }).
		Analyze(context.Background(), AnalyzeRequest{Root: root})
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	s := report.Summary
	if s.TotalFiles != 2 || s.TotalElements != 14 || s.DocumentedElements != 10 || s.BilingualElements != 3 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if report.FileDetails[0].File != "a.ts" || report.FileDetails[1].File != "b.ts" {
		t.Fatalf("file order not stable: %+v", report.FileDetails)
	}
	if report.FileDetails[0].Tier != model.TierExcellent || report.FileDetails[1].Tier != model.TierVeryPoor {
		t.Fatalf("unexpected tiers: %+v", report.FileDetails)
	}
	if len(report.Warnings) != 4 {
		t.Fatalf("expected 4 undocumented warnings, got %d", len(report.Warnings))
	}
	if !report.GeneratedAt.Equal(fixed) {
		t.Fatalf("unexpected timestamp: %v", report.GeneratedAt)
	}
}

func TestAnalyzeSkipsUnreadableFiles(t *testing.T) {
	root := t.TempDir()
	good := filepath.Join(root, "good.ts")
	writeFixtureFile(t, good, documentedFile(2, 2, 0))

	files := []model.SourceFile{
		{Path: filepath.Join(root, "missing.ts"), Name: "missing.ts"},
		{Path: good, Name: "good.ts"},
	}

	report, err := NewAnalysisController(config.DefaultConfig()).
		Analyze(context.Background(), AnalyzeRequest{Files: files})
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if report.Summary.TotalFiles != 1 || report.Summary.TotalElements != 2 {
		t.Fatalf("unexpected summary: %+v", report.Summary)
	}
	if len(report.Errors) != 1 || report.Errors[0].Path != files[0].Path {
		t.Fatalf("expected the missing file to be reported: %+v", report.Errors)
	}
}

func TestAnalyzeUsesSuppliedContent(t *testing.T) {
	files := []model.SourceFile{
		{Path: "mem/a.ts", Name: "a.ts", Content: []byte("/** A. */\ninterface A {\n}\n")},
	}

	report, err := NewAnalysisController(config.DefaultConfig()).
		Analyze(context.Background(), AnalyzeRequest{Files: files})
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if report.Summary.DocumentedElements != 1 {
		t.Fatalf("unexpected summary: %+v", report.Summary)
	}
}

func TestAnalyzeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	files := []model.SourceFile{{Path: "a.ts", Name: "a.ts", Content: []byte("")}}
	_, err := NewAnalysisController(config.DefaultConfig()).Analyze(ctx, AnalyzeRequest{Files: files})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestAnalyzeMissingRoot(t *testing.T) {
	_, err := NewAnalysisController(config.DefaultConfig()).
		Analyze(context.Background(), AnalyzeRequest{Root: filepath.Join(t.TempDir(), "nope")})
	if err == nil {
		t.Fatalf("expected discovery error")
	}
}

func TestCheckGate(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Gate.MinCoverage = 80
	cfg.Gate.MinBilingual = 20
	ctrl := NewAnalysisController(cfg)

	tests := []struct {
		name     string
		summary  model.Summary
		wantFail string
	}{
		{"passes", model.Summary{CoveragePercentage: 85, BilingualPercentage: 25}, ""},
		{"coverage too low", model.Summary{CoveragePercentage: 79.9, BilingualPercentage: 25}, "coverage"},
		{"bilingual too low", model.Summary{CoveragePercentage: 90, BilingualPercentage: 10}, "bilingual coverage"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ctrl.CheckGate(&model.ValidationReport{Summary: tt.summary})
			if tt.wantFail == "" {
				if err != nil {
					t.Fatalf("unexpected gate error: %v", err)
				}
				return
			}
			var gateErr *GateError
			if !errors.As(err, &gateErr) {
				t.Fatalf("expected GateError, got %v", err)
			}
			if gateErr.Metric != tt.wantFail {
				t.Fatalf("metric: got %s, want %s", gateErr.Metric, tt.wantFail)
			}
		})
	}
}

func TestGenerateReportsWritesEachFormat(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output.OutputDir = filepath.Join(t.TempDir(), "out", "nested")
	cfg.Output.Formats = []string{"json", "markdown"}

	report, err := NewAnalysisController(cfg).Analyze(context.Background(), AnalyzeRequest{
		Files: []model.SourceFile{{Path: "a.ts", Name: "a.ts", Content: []byte(documentedFile(1, 1, 0))}},
	})
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	paths, err := NewReportController(cfg).GenerateReports(report)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 reports, got %v", paths)
	}
	for _, want := range []string{"documentation-report.json", "documentation-report.md"} {
		path := filepath.Join(cfg.Output.OutputDir, want)
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("report %s not written: %v", want, err)
		}
	}
}

func TestGenerateReportsUnsupportedFormat(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output.OutputDir = t.TempDir()
	cfg.Output.Formats = []string{"pdf"}

	if _, err := NewReportController(cfg).GenerateReports(&model.ValidationReport{}); err == nil {
		t.Fatalf("expected unsupported format error")
	}
}
