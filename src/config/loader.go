package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

var envVarPattern = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)(?::-([^}]*))?\}`)

// Loader handles configuration loading from YAML files
type Loader struct{}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load loads configuration from a YAML file with environment variable substitution.
// Environment variables can be referenced in the YAML using:
//   - ${VAR_NAME} - substitutes the value of VAR_NAME, empty string if not set
//   - ${VAR_NAME:-default} - substitutes VAR_NAME or "default" if not set
func (l *Loader) Load(configPath string) (*Config, error) {
	filePath := l.resolveConfigPath(configPath)
	if filePath == "" {
		// No config file found, use defaults
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return cfg, nil
}

// Parse decodes YAML content over the defaults and validates the result
func (l *Loader) Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	expanded := l.expandEnvVars(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (l *Loader) resolveConfigPath(configPath string) string {
	if configPath != "" {
		return configPath
	}

	// Try default locations
	defaults := []string{
		"doc-quality.yaml",
		"config/doc-quality.yaml",
		filepath.Join(os.Getenv("HOME"), ".doc-quality", "config.yaml"),
	}

	for _, path := range defaults {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// expandEnvVars expands environment variable references in the input string.
// Supports two formats:
//   - ${VAR_NAME} - replaced with the value of VAR_NAME (empty if not set)
//   - ${VAR_NAME:-default} - replaced with VAR_NAME value, or "default" if not set
func (l *Loader) expandEnvVars(input string) string {
	return envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		submatches := envVarPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		defaultVal := ""
		if len(submatches) >= 3 {
			defaultVal = submatches[2]
		}

		if val, exists := os.LookupEnv(varName); exists {
			return val
		}

		return defaultVal
	})
}

// Validate checks the configuration for values the analyzer cannot work with
func (c *Config) Validate() error {
	var errs []error

	if len(c.Scan.Include) == 0 {
		errs = append(errs, errors.New("scan.include must list at least one pattern"))
	}
	errs = append(errs, validatePatterns("scan.include", c.Scan.Include)...)
	errs = append(errs, validatePatterns("scan.exclude", c.Scan.Exclude)...)
	if c.Concurrency.Workers < 1 {
		errs = append(errs, fmt.Errorf("concurrency.workers must be at least 1, got %d", c.Concurrency.Workers))
	}

	w := c.Scoring.Weights
	for _, field := range []struct {
		name  string
		value float64
	}{
		{"description", w.Description}, {"bilingual", w.Bilingual},
		{"params", w.Params}, {"returns", w.Returns},
		{"author", w.Author}, {"version", w.Version},
		{"since", w.Since}, {"length_bonus", w.LengthBonus},
	} {
		if field.value < 0 {
			errs = append(errs, fmt.Errorf("scoring.weights.%s must not be negative", field.name))
		}
	}
	if c.Scoring.MaxScore <= 0 {
		errs = append(errs, errors.New("scoring.max_score must be positive"))
	}
	if c.Scoring.MinDescriptionLength < 0 {
		errs = append(errs, errors.New("scoring.min_description_length must not be negative"))
	}

	for kind, v := range c.Elements.Weights {
		if v < 0 {
			errs = append(errs, fmt.Errorf("elements.weights.%s must not be negative", kind))
		}
	}

	t := c.Tiers
	if !(t.Excellent >= t.Good && t.Good >= t.Fair && t.Fair >= t.Poor) {
		errs = append(errs, errors.New("tiers must be in descending order: excellent >= good >= fair >= poor"))
	}

	if c.Gate.MinCoverage < 0 || c.Gate.MinCoverage > 100 {
		errs = append(errs, errors.New("gate.min_coverage must be between 0 and 100"))
	}
	if c.Gate.MinBilingual < 0 || c.Gate.MinBilingual > 100 {
		errs = append(errs, errors.New("gate.min_bilingual must be between 0 and 100"))
	}

	return errors.Join(errs...)
}

// validatePatterns checks that every pattern is a valid doublestar glob
func validatePatterns(label string, patterns []string) []error {
	var errs []error
	for _, pat := range patterns {
		pat = strings.TrimSpace(strings.ReplaceAll(pat, "\\", "/"))
		if pat != "" && !doublestar.ValidatePattern(pat) {
			errs = append(errs, fmt.Errorf("%s: invalid glob pattern %q", label, pat))
		}
	}
	return errs
}
