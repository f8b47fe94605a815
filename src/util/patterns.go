package util

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"doc-quality/src/config"
)

// PathMatcher decides whether a discovered file takes part in the analysis
type PathMatcher struct {
	include []string
	exclude []string
}

// NewPathMatcher creates a new matcher from the scan config
func NewPathMatcher(cfg config.ScanConfig) *PathMatcher {
	return &PathMatcher{
		include: normalizePatterns(cfg.Include),
		exclude: normalizePatterns(cfg.Exclude),
	}
}

// Matches checks if a slash-separated relative path is included and not excluded
func (m *PathMatcher) Matches(relPath string) bool {
	return m.Included(relPath) && !m.Excluded(relPath)
}

// Included reports whether any include pattern matches
func (m *PathMatcher) Included(relPath string) bool {
	for _, pattern := range m.include {
		if MatchGlob(pattern, relPath) {
			return true
		}
	}
	return false
}

// Excluded reports whether any exclude pattern matches
func (m *PathMatcher) Excluded(relPath string) bool {
	for _, pattern := range m.exclude {
		if MatchGlob(pattern, relPath) {
			return true
		}
	}
	return false
}

// MatchGlob matches a slash-separated path against a doublestar glob. "**"
// spans zero or more directories and brace sets like "*.{ts,tsx}" are supported.
// Malformed patterns never match; Config.Validate rejects them up front.
func MatchGlob(pattern, name string) bool {
	matched, err := doublestar.Match(strings.Trim(pattern, "/"), strings.Trim(name, "/"))
	return err == nil && matched
}

func normalizePatterns(patterns []string) []string {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = strings.TrimSpace(strings.ReplaceAll(p, "\\", "/"))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
