package model

// DeclarationKind represents the kind of a documented code construct
type DeclarationKind string

const (
	KindInterface   DeclarationKind = "interface"
	KindService     DeclarationKind = "service"
	KindComponent   DeclarationKind = "component"
	KindClass       DeclarationKind = "class"
	KindEnum        DeclarationKind = "enum"
	KindConstructor DeclarationKind = "constructor"
	KindMethod      DeclarationKind = "method"
	KindProperty    DeclarationKind = "property"
)

// AllKinds lists every declaration kind in classification priority order
var AllKinds = []DeclarationKind{
	KindInterface,
	KindService,
	KindComponent,
	KindClass,
	KindEnum,
	KindConstructor,
	KindMethod,
	KindProperty,
}

// SourceFile is a file handed to the analyzer by discovery
type SourceFile struct {
	Path string `json:"path"`
	Name string `json:"name"`
	// Content is the full text; when nil the analyzer reads Path from disk
	Content []byte `json:"-"`
}

// CommentBlock is the text found between a block-open and block-close marker.
// StartLine and EndLine are 0-based indexes of the marker lines.
type CommentBlock struct {
	Text      string
	StartLine int
	EndLine   int
}

// Declaration is a classified code construct following a comment block
type Declaration struct {
	Name string          `json:"name"`
	Kind DeclarationKind `json:"kind"`
	Line int             `json:"line"` // 1-based
}

// ElementRecord pairs a declaration with its (possibly empty) comment text
type ElementRecord struct {
	Declaration Declaration
	Comment     string
}

// Documented reports whether the element carries any comment text
func (e ElementRecord) Documented() bool {
	return e.Comment != ""
}

// QualityAnalysis is the scorer's verdict on one comment
type QualityAnalysis struct {
	Score          float64  `json:"score"`
	IsBilingual    bool     `json:"isBilingual"`
	HasDescription bool     `json:"hasDescription"`
	HasParams      bool     `json:"hasParams"`
	HasReturns     bool     `json:"hasReturns"`
	HasAuthor      bool     `json:"hasAuthor"`
	HasVersion     bool     `json:"hasVersion"`
	HasSince       bool     `json:"hasSince"`
	Issues         []string `json:"issues"`
	Suggestions    []string `json:"suggestions"`
}
