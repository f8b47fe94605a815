// Package docparse finds documentation comment blocks in source text and
// classifies the declaration each block documents.
package docparse

import (
	"iter"
	"strings"

	"doc-quality/src/model"
)

const (
	openMarker         = "/**"
	closeMarker        = "*/"
	continuationMarker = "*"
)

// State is the position of the block scanner between two lines
type State int

const (
	// Outside means no block is open
	Outside State = iota
	// InBlock means an open marker was seen and content is being collected
	InBlock
	// AwaitingDeclaration means a block just closed and no code line followed yet.
	// It is informational: it accepts input exactly like Outside and falls back to
	// Outside on the first code line. Pairing a block with its declaration is done
	// by Classifier.Lookup, so each block looks ahead on its own.
	AwaitingDeclaration
)

func (s State) String() string {
	switch s {
	case InBlock:
		return "in-block"
	case AwaitingDeclaration:
		return "awaiting-declaration"
	default:
		return "outside"
	}
}

// Scan is the scanner state carried from one line to the next
type Scan struct {
	State State
	Start int
	lines []string
}

// Step advances the scanner over the line at index. It never mutates s; it returns
// the next state and, when the line closes a block, the completed block.
func Step(s Scan, index int, line string) (Scan, *model.CommentBlock) {
	trimmed := strings.TrimSpace(line)

	if s.State == InBlock {
		if body, ok := strings.CutSuffix(trimmed, closeMarker); ok {
			content := s.lines
			if rest := CleanLine(body); rest != "" {
				content = appendLine(content, rest)
			}
			block := &model.CommentBlock{
				Text:      strings.TrimSpace(strings.Join(content, "\n")),
				StartLine: s.Start,
				EndLine:   index,
			}
			return Scan{State: AwaitingDeclaration}, block
		}
		// A nested open marker is ordinary content
		s.lines = appendLine(s.lines, CleanLine(line))
		return s, nil
	}

	if isOpenLine(trimmed) {
		body := strings.TrimPrefix(trimmed, openMarker)
		if inner, ok := strings.CutSuffix(body, closeMarker); ok {
			return Scan{State: AwaitingDeclaration}, &model.CommentBlock{
				Text:      CleanLine(inner),
				StartLine: index,
				EndLine:   index,
			}
		}
		return Scan{State: InBlock, Start: index}, nil
	}

	if s.State == AwaitingDeclaration && trimmed != "" && !IsCommentLine(trimmed) {
		return Scan{State: Outside}, nil
	}
	return s, nil
}

// Blocks yields the comment blocks of lines in file order. An unterminated
// block at end of input is dropped.
func Blocks(lines []string) iter.Seq[model.CommentBlock] {
	return func(yield func(model.CommentBlock) bool) {
		var s Scan
		for i, line := range lines {
			var block *model.CommentBlock
			s, block = Step(s, i, line)
			if block != nil && !yield(*block) {
				return
			}
		}
	}
}

// CleanLine strips surrounding whitespace and a leading continuation marker
func CleanLine(line string) string {
	t := strings.TrimSpace(line)
	if strings.HasPrefix(t, continuationMarker) && !strings.HasPrefix(t, closeMarker) {
		t = strings.TrimSpace(strings.TrimPrefix(t, continuationMarker))
	}
	return t
}

// IsCommentLine reports whether a trimmed line still looks like part of a comment
func IsCommentLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, continuationMarker) ||
		strings.HasPrefix(trimmed, "/*")
}

// SplitLines splits file content into lines, accepting \n and \r\n endings
func SplitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func isOpenLine(trimmed string) bool {
	// "/**/" is an empty plain comment, not a doc block
	return strings.HasPrefix(trimmed, openMarker) && trimmed != "/**/"
}

// appendLine appends without writing into a backing array shared with a previous state
func appendLine(lines []string, line string) []string {
	return append(lines[:len(lines):len(lines)], line)
}
