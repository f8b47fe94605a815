package config

// DefaultAccentedCharacters is the diacritic set used for bilingual detection
const DefaultAccentedCharacters = "àâäáãåçéèêëíìîïñóòôöõúùûüýÿœæÀÂÄÁÃÅÇÉÈÊËÍÌÎÏÑÓÒÔÖÕÚÙÛÜÝŸŒÆ"

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Agent: AgentConfig{
			Name:        "doc-quality",
			Version:     "1.0.0",
			Description: "Documentation comment quality analyzer",
		},
		Scan: ScanConfig{
			Root:    ".",
			Include: []string{"**/*.ts"},
			Exclude: []string{
				"**/node_modules/**", "**/dist/**", "**/vendor/**",
				"**/*.spec.ts", "**/*.d.ts",
			},
		},
		Concurrency: ConcurrencyConfig{
			Workers: 1,
		},
		Scoring: ScoringConfig{
			Weights: ScoreWeights{
				Description: 20,
				Bilingual:   30,
				Params:      15,
				Returns:     15,
				Author:      5,
				Version:     5,
				Since:       5,
				LengthBonus: 5,
			},
			MaxScore:             100,
			MinDescriptionLength: 50,
			AccentedCharacters:   DefaultAccentedCharacters,
		},
		Elements: ElementsConfig{
			Weights: map[string]float64{
				"interface":   10,
				"class":       15,
				"enum":        8,
				"method":      5,
				"property":    3,
				"constructor": 8,
				"service":     12,
				"component":   15,
			},
			DefaultWeight: 5,
		},
		Tiers: TiersConfig{
			Excellent: 90,
			Good:      70,
			Fair:      50,
			Poor:      30,
		},
		Output: OutputConfig{
			Formats:            []string{"json"},
			OutputDir:          "docs-report",
			ReportName:         "documentation-report",
			IncludeSuggestions: true,
			IncludeFileDetails: true,
		},
		Logging: LoggingConfig{
			Level:            "info",
			Format:           "text",
			IncludeTimestamp: true,
			IncludeCaller:    false,
		},
	}
}
