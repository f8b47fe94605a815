package scoring

import (
	"math"
	"slices"
	"strings"
	"testing"

	"doc-quality/src/config"
)

func newTestScorer() *Scorer {
	return NewScorer(config.DefaultConfig().Scoring)
}

func assertScore(t *testing.T, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("score: got %v, want %v", got, want)
	}
}

func TestScoreBilingualDescription(t *testing.T) {
	a := newTestScorer().Score("Computes total. Calcule le total réel.")

	if !a.IsBilingual || !a.HasDescription {
		t.Fatalf("expected bilingual description: %#v", a)
	}
	if a.HasParams || a.HasReturns || a.HasAuthor || a.HasVersion || a.HasSince {
		t.Fatalf("unexpected tag flags: %#v", a)
	}
	// description 20 + bilingual 30, text shorter than the length threshold
	assertScore(t, a.Score, 0.5)
	if len(a.Issues) != 0 {
		t.Fatalf("unexpected issues: %v", a.Issues)
	}
	want := []string{SuggestAuthor, SuggestVersion, SuggestSince}
	if !slices.Equal(a.Suggestions, want) {
		t.Fatalf("suggestions: got %v, want %v", a.Suggestions, want)
	}
}

func TestScoreTagsOnly(t *testing.T) {
	text := "@param x @returns y @author A @version 1 @since 2024"
	a := newTestScorer().Score(text)

	if a.HasDescription || a.IsBilingual {
		t.Fatalf("expected no description and not bilingual: %#v", a)
	}
	if !(a.HasParams && a.HasReturns && a.HasAuthor && a.HasVersion && a.HasSince) {
		t.Fatalf("expected all tag flags: %#v", a)
	}
	// 15+15+5+5+5 plus the length bonus: the text is 52 characters long
	assertScore(t, a.Score, 0.5)
	if !slices.Equal(a.Issues, []string{IssueMissingDescription}) {
		t.Fatalf("issues: got %v", a.Issues)
	}
	if !slices.Equal(a.Suggestions, []string{SuggestBilingual}) {
		t.Fatalf("suggestions: got %v", a.Suggestions)
	}
}

func TestScoreEmpty(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t\n"} {
		a := newTestScorer().Score(text)
		if a.Score != 0 || a.HasDescription || a.IsBilingual || a.Issues != nil || a.Suggestions != nil {
			t.Fatalf("expected zero analysis for %q, got %#v", text, a)
		}
	}
}

func TestScoreLengthBonus(t *testing.T) {
	short := strings.Repeat("a", 50)
	long := strings.Repeat("a", 51)

	assertScore(t, newTestScorer().Score(short).Score, 0.20)
	assertScore(t, newTestScorer().Score(long).Score, 0.25)
}

func TestScoreLengthCountsCharactersNotBytes(t *testing.T) {
	// 50 characters, more than 50 bytes
	text := "a" + strings.Repeat("é", 49)
	a := newTestScorer().Score(text)
	assertScore(t, a.Score, 0.5)
}

func TestScoreClampsAfterSumming(t *testing.T) {
	cfg := config.DefaultConfig().Scoring
	cfg.Weights = config.ScoreWeights{
		Description: 60, Bilingual: 60, Params: 60, Returns: 60,
		Author: 60, Version: 60, Since: 60, LengthBonus: 60,
	}
	a := NewScorer(cfg).Score("Décrit la méthode. Describes it.\n@param a\n@returns b\n@author c\n@version 1\n@since 2")
	assertScore(t, a.Score, 1)
}

func TestScoreAlwaysInRange(t *testing.T) {
	texts := []string{
		"x",
		"@param",
		"Une description complète en français. A full English description as well.",
		"Full.\n@param a\n@return b\n@author c\n@version d\n@since e\nÉté",
	}
	s := newTestScorer()
	for _, text := range texts {
		a := s.Score(text)
		if a.Score < 0 || a.Score > 1 {
			t.Fatalf("score out of range for %q: %v", text, a.Score)
		}
		if again := s.Score(text); !slices.Equal(again.Suggestions, a.Suggestions) || again.Score != a.Score {
			t.Fatalf("scoring is not deterministic for %q", text)
		}
	}
}

func TestScoreConditionalSuggestions(t *testing.T) {
	s := newTestScorer()

	a := s.Score("Calls fetch(url) and returns the body.")
	want := []string{SuggestBilingual, SuggestParams, SuggestReturns, SuggestAuthor, SuggestVersion, SuggestSince}
	if !slices.Equal(a.Suggestions, want) {
		t.Fatalf("suggestions: got %v, want %v", a.Suggestions, want)
	}

	a = s.Score("Plain description.")
	want = []string{SuggestBilingual, SuggestAuthor, SuggestVersion, SuggestSince}
	if !slices.Equal(a.Suggestions, want) {
		t.Fatalf("suggestions: got %v, want %v", a.Suggestions, want)
	}

	// The return mention is a case-sensitive substring, like the tag checks
	a = s.Score("Returns the body.")
	want = []string{SuggestBilingual, SuggestAuthor, SuggestVersion, SuggestSince}
	if !slices.Equal(a.Suggestions, want) {
		t.Fatalf("suggestions: got %v, want %v", a.Suggestions, want)
	}
}

func TestIsBilingual(t *testing.T) {
	accented := config.DefaultAccentedCharacters
	tests := []struct {
		text string
		want bool
	}{
		{"Café", true},
		{"plain english", false},
		{"éèà", false},
		{"über", true},
		{"Año", true},
		{"naïve → arrow", true},
		{"日本語 text", false},
	}
	for _, tt := range tests {
		if got := IsBilingual(tt.text, accented); got != tt.want {
			t.Fatalf("IsBilingual(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestHasDescription(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Does things.", true},
		{"@param a\n@returns b", false},
		{"*\n@since 1", false},
		{"@param a\nTrailing prose", true},
		{"", false},
	}
	for _, tt := range tests {
		if got := HasDescription(tt.text); got != tt.want {
			t.Fatalf("HasDescription(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
