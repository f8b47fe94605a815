// Package discovery walks a source tree and selects the files to analyze.
package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"doc-quality/src/config"
	"doc-quality/src/model"
	"doc-quality/src/util"
)

// Finder selects files by include/exclude glob patterns
type Finder struct {
	matcher *util.PathMatcher
}

// NewFinder creates a finder from the scan config
func NewFinder(cfg config.ScanConfig) *Finder {
	return &Finder{matcher: util.NewPathMatcher(cfg)}
}

// Find returns the matching files under root sorted by path. A single file root
// is returned as is when it matches.
func (f *Finder) Find(root string) ([]model.SourceFile, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, errors.New("scan root is empty")
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat scan root: %w", err)
	}

	if !info.IsDir() {
		name := filepath.Base(root)
		if !f.matcher.Matches(name) {
			util.Debug("Skipping %s: not matched by include patterns", root)
			return nil, nil
		}
		return []model.SourceFile{{Path: root, Name: name}}, nil
	}

	var files []model.SourceFile
	err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if entry.IsDir() {
			// Prune excluded directories early
			if rel != "." && f.matcher.Excluded(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if !f.matcher.Matches(rel) {
			return nil
		}
		files = append(files, model.SourceFile{Path: path, Name: entry.Name()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})

	util.Debug("Discovered %d files under %s", len(files), root)
	return files, nil
}
