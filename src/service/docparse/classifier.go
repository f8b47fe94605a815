package docparse

import (
	"regexp"
	"strings"

	"doc-quality/src/model"
)

const identifier = `[A-Za-z_$][\w$]*`

var (
	interfacePattern   = regexp.MustCompile(`\binterface\s+(` + identifier + `)`)
	classPattern       = regexp.MustCompile(`\bclass\s+(` + identifier + `)`)
	enumPattern        = regexp.MustCompile(`\benum\s+(` + identifier + `)`)
	constructorPattern = regexp.MustCompile(`\bconstructor\s*\(`)
	exportPattern      = regexp.MustCompile(`\bexport\b`)
	classKeyword       = regexp.MustCompile(`\bclass\b`)
	trailingIdentifier = regexp.MustCompile(`(` + identifier + `)\s*$`)
	leadingDecorators  = regexp.MustCompile(`^(?:@[\w$.]+(?:\([^()]*\))?\s*)+`)
)

// Rule is one entry of the ordered classification table. When Matches accepts a
// line the rule wins; if Name then fails the line yields no declaration.
type Rule struct {
	Kind    model.DeclarationKind
	Matches func(line string) bool
	Name    func(line string) (string, bool)
}

// DefaultRules returns the classification table in priority order
func DefaultRules() []Rule {
	return []Rule{
		{
			Kind:    model.KindInterface,
			Matches: interfacePattern.MatchString,
			Name:    submatch(interfacePattern),
		},
		{
			Kind:    model.KindService,
			Matches: decoratedOrExported("@Injectable", "Service"),
			Name:    submatch(classPattern),
		},
		{
			Kind:    model.KindComponent,
			Matches: decoratedOrExported("@Component", "Component"),
			Name:    submatch(classPattern),
		},
		{
			Kind:    model.KindClass,
			Matches: classPattern.MatchString,
			Name:    submatch(classPattern),
		},
		{
			Kind:    model.KindEnum,
			Matches: enumPattern.MatchString,
			Name:    submatch(enumPattern),
		},
		{
			Kind:    model.KindConstructor,
			Matches: constructorPattern.MatchString,
			Name:    func(string) (string, bool) { return "constructor", true },
		},
		{
			Kind: model.KindMethod,
			Matches: func(line string) bool {
				return strings.Contains(line, "(") && strings.Contains(line, ")") && strings.Contains(line, "{")
			},
			Name: identifierBefore("("),
		},
		{
			Kind: model.KindProperty,
			Matches: func(line string) bool {
				return strings.Contains(line, ":") && strings.Contains(line, ";") && !strings.Contains(line, "(")
			},
			Name: identifierBefore(":"),
		},
	}
}

// Classifier assigns a declaration kind and name to a code line
type Classifier struct {
	rules []Rule
}

// NewClassifier creates a classifier using the default rule table
func NewClassifier() *Classifier {
	return &Classifier{rules: DefaultRules()}
}

// Classify runs the rules over a single line; the first matching rule decides
func (c *Classifier) Classify(line string) (model.Declaration, bool) {
	for _, rule := range c.rules {
		if !rule.Matches(line) {
			continue
		}
		name, ok := rule.Name(line)
		if !ok {
			return model.Declaration{}, false
		}
		return model.Declaration{Name: name, Kind: rule.Kind}, true
	}
	return model.Declaration{}, false
}

// Lookup classifies the first substantive line after index after, skipping blank
// lines and lines that still look like comments. Declaration.Line is 1-based.
func (c *Classifier) Lookup(lines []string, after int) (model.Declaration, bool) {
	for i := after + 1; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || IsCommentLine(trimmed) {
			continue
		}
		decl, ok := c.Classify(trimmed)
		if !ok {
			return model.Declaration{}, false
		}
		decl.Line = i + 1
		return decl, true
	}
	return model.Declaration{}, false
}

func submatch(re *regexp.Regexp) func(string) (string, bool) {
	return func(line string) (string, bool) {
		m := re.FindStringSubmatch(line)
		if len(m) < 2 {
			return "", false
		}
		return m[1], true
	}
}

// decoratedOrExported matches a decorator marker, or an exported class line
// mentioning the given naming suffix anywhere on the line
func decoratedOrExported(decorator, word string) func(string) bool {
	return func(line string) bool {
		if strings.Contains(line, decorator) {
			return true
		}
		return exportPattern.MatchString(line) && classKeyword.MatchString(line) && strings.Contains(line, word)
	}
}

// identifierBefore extracts the identifier ending right before the first sep,
// ignoring leading decorators, a type parameter list, and optional (?) and
// definite (!) modifiers
func identifierBefore(sep string) func(string) (string, bool) {
	return func(line string) (string, bool) {
		line = leadingDecorators.ReplaceAllString(strings.TrimSpace(line), "")
		head, _, found := strings.Cut(line, sep)
		if !found {
			return "", false
		}
		head = strings.TrimRight(stripTypeParams(strings.TrimSpace(head)), "?!")
		m := trailingIdentifier.FindStringSubmatch(head)
		if len(m) < 2 {
			return "", false
		}
		return m[1], true
	}
}

// stripTypeParams removes a trailing, possibly nested, <...> list: "map<T>" -> "map"
func stripTypeParams(head string) string {
	if !strings.HasSuffix(head, ">") {
		return head
	}
	depth := 0
	for i := len(head) - 1; i >= 0; i-- {
		switch head[i] {
		case '>':
			depth++
		case '<':
			depth--
			if depth == 0 {
				return strings.TrimSpace(head[:i])
			}
		}
	}
	return head
}
