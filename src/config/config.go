package config

// Config is the root configuration structure
type Config struct {
	Agent       AgentConfig       `yaml:"agent"`
	Scan        ScanConfig        `yaml:"scan"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Elements    ElementsConfig    `yaml:"elements"`
	Tiers       TiersConfig       `yaml:"tiers"`
	Gate        GateConfig        `yaml:"gate"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// AgentConfig contains agent metadata
type AgentConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

// ScanConfig controls which files are analyzed
type ScanConfig struct {
	Root    string   `yaml:"root"`
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
}

// ConcurrencyConfig contains concurrency settings.
// Workers = 1 keeps the analysis strictly sequential.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// ScoringConfig contains the comment quality rubric
type ScoringConfig struct {
	Weights              ScoreWeights `yaml:"weights"`
	MaxScore             float64      `yaml:"max_score"`
	MinDescriptionLength int          `yaml:"min_description_length"`
	AccentedCharacters   string       `yaml:"accented_characters"`
}

// ScoreWeights are the points awarded for each rubric criterion
type ScoreWeights struct {
	Description float64 `yaml:"description"`
	Bilingual   float64 `yaml:"bilingual"`
	Params      float64 `yaml:"params"`
	Returns     float64 `yaml:"returns"`
	Author      float64 `yaml:"author"`
	Version     float64 `yaml:"version"`
	Since       float64 `yaml:"since"`
	LengthBonus float64 `yaml:"length_bonus"`
}

// ElementsConfig weights element scores by declaration kind
type ElementsConfig struct {
	Weights       map[string]float64 `yaml:"weights"`
	DefaultWeight float64            `yaml:"default_weight"`
}

// WeightFor returns the weight of a declaration kind
func (c ElementsConfig) WeightFor(kind string) float64 {
	if w, ok := c.Weights[kind]; ok {
		return w
	}
	return c.DefaultWeight
}

// TiersConfig holds the inclusive lower bounds (percent) of each quality tier
type TiersConfig struct {
	Excellent float64 `yaml:"excellent"`
	Good      float64 `yaml:"good"`
	Fair      float64 `yaml:"fair"`
	Poor      float64 `yaml:"poor"`
}

// GateConfig contains the minimum percentages a run must reach (0 disables)
type GateConfig struct {
	MinCoverage  float64 `yaml:"min_coverage"`
	MinBilingual float64 `yaml:"min_bilingual"`
}

// OutputConfig contains output settings
type OutputConfig struct {
	Formats            []string `yaml:"formats"`
	OutputDir          string   `yaml:"output_dir"`
	ReportName         string   `yaml:"report_name"`
	IncludeSuggestions bool     `yaml:"include_suggestions"`
	IncludeFileDetails bool     `yaml:"include_file_details"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level            string `yaml:"level"`
	Format           string `yaml:"format"` // text, json
	File             string `yaml:"file"`
	IncludeTimestamp bool   `yaml:"include_timestamp"`
	IncludeCaller    bool   `yaml:"include_caller"`
}
