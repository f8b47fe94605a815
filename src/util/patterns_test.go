package util

import (
	"testing"

	"doc-quality/src/config"
)

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"**/*.ts", "app.ts", true},
		{"**/*.ts", "src/app/app.ts", true},
		{"**/*.ts", "src/app/app.js", false},
		{"src/**/*.ts", "src/a.ts", true},
		{"src/**/*.ts", "lib/a.ts", false},
		{"**/node_modules/**", "node_modules/pkg/index.ts", true},
		{"**/node_modules/**", "web/node_modules/pkg/index.ts", true},
		{"**/*.spec.ts", "src/app.spec.ts", true},
		{"*.ts", "app.ts", true},
		{"*.ts", "src/app.ts", false},
		{"src/*/index.ts", "src/a/index.ts", true},
		{"**/**/x.ts", "a/b/x.ts", true},
		{"**", "anything/at/all", true},
		{"**/*.{ts,tsx}", "src/a.tsx", true},
		{"**/*.{ts,tsx}", "src/a.ts", true},
		{"**/*.{ts,tsx}", "src/a.js", false},
		{"src/[a-.ts", "src/a.ts", false},
	}
	for _, tt := range tests {
		if got := MatchGlob(tt.pattern, tt.path); got != tt.want {
			t.Fatalf("MatchGlob(%q, %q) = %v, want %v", tt.pattern, tt.path, got, tt.want)
		}
	}
}

func TestPathMatcher(t *testing.T) {
	m := NewPathMatcher(config.ScanConfig{
		Include: []string{"**/*.ts", " "},
		Exclude: []string{"**/*.spec.ts", `**\dist\**`},
	})

	tests := []struct {
		path string
		want bool
	}{
		{"src/app.ts", true},
		{"src/app.spec.ts", false},
		{"dist/app.ts", false},
		{"README.md", false},
	}
	for _, tt := range tests {
		if got := m.Matches(tt.path); got != tt.want {
			t.Fatalf("Matches(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
