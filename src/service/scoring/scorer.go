// Package scoring rates the quality of a documentation comment.
package scoring

import (
	"strings"
	"unicode/utf8"

	"doc-quality/src/config"
	"doc-quality/src/model"
)

// IssueMissingDescription is reported when a comment has only tags
const IssueMissingDescription = "Missing description"

// Suggestions, in evaluation order
const (
	SuggestBilingual = "Add a bilingual description (e.g. English and French)"
	SuggestParams    = "Add @param tags describing the parameters"
	SuggestReturns   = "Add a @returns tag describing the return value"
	SuggestAuthor    = "Add an @author tag"
	SuggestVersion   = "Add a @version tag"
	SuggestSince     = "Add a @since tag"
)

// Scorer computes a QualityAnalysis from cleaned comment text
type Scorer struct {
	cfg config.ScoringConfig
}

// NewScorer creates a scorer from the scoring rubric
func NewScorer(cfg config.ScoringConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score analyzes one comment. Empty text yields the zero analysis.
func (s *Scorer) Score(text string) model.QualityAnalysis {
	if strings.TrimSpace(text) == "" {
		return model.QualityAnalysis{}
	}

	a := model.QualityAnalysis{
		IsBilingual:    IsBilingual(text, s.cfg.AccentedCharacters),
		HasDescription: HasDescription(text),
		HasParams:      strings.Contains(text, "@param"),
		HasReturns:     strings.Contains(text, "@return"),
		HasAuthor:      strings.Contains(text, "@author"),
		HasVersion:     strings.Contains(text, "@version"),
		HasSince:       strings.Contains(text, "@since"),
	}

	w := s.cfg.Weights
	var total float64
	for _, criterion := range []struct {
		present bool
		weight  float64
	}{
		{a.HasDescription, w.Description},
		{a.IsBilingual, w.Bilingual},
		{a.HasParams, w.Params},
		{a.HasReturns, w.Returns},
		{a.HasAuthor, w.Author},
		{a.HasVersion, w.Version},
		{a.HasSince, w.Since},
		{utf8.RuneCountInString(text) > s.cfg.MinDescriptionLength, w.LengthBonus},
	} {
		if criterion.present {
			total += criterion.weight
		}
	}

	maxScore := s.cfg.MaxScore
	if maxScore <= 0 {
		maxScore = 100
	}
	a.Score = min(total, maxScore) / maxScore

	if !a.HasDescription {
		a.Issues = append(a.Issues, IssueMissingDescription)
	}

	if !a.IsBilingual {
		a.Suggestions = append(a.Suggestions, SuggestBilingual)
	}
	if !a.HasParams && strings.Contains(text, "(") {
		a.Suggestions = append(a.Suggestions, SuggestParams)
	}
	if !a.HasReturns && strings.Contains(text, "return") {
		a.Suggestions = append(a.Suggestions, SuggestReturns)
	}
	if !a.HasAuthor {
		a.Suggestions = append(a.Suggestions, SuggestAuthor)
	}
	if !a.HasVersion {
		a.Suggestions = append(a.Suggestions, SuggestVersion)
	}
	if !a.HasSince {
		a.Suggestions = append(a.Suggestions, SuggestSince)
	}

	return a
}

// IsBilingual reports whether text mixes ASCII Latin letters with at least one
// character from the accented set
func IsBilingual(text, accented string) bool {
	var hasASCII, hasAccent bool
	for _, r := range text {
		switch {
		case r < utf8.RuneSelf && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			hasASCII = true
		case r >= utf8.RuneSelf && strings.ContainsRune(accented, r):
			hasAccent = true
		}
		if hasASCII && hasAccent {
			return true
		}
	}
	return false
}

// HasDescription reports whether any line carries free text rather than a tag
func HasDescription(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		t := strings.TrimSpace(line)
		if t == "" || strings.HasPrefix(t, "@") || isMarkerLine(t) {
			continue
		}
		return true
	}
	return false
}

func isMarkerLine(t string) bool {
	return strings.Trim(t, "/*") == ""
}
