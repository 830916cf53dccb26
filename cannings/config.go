package cannings

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// Config stores the parameters of a fixation experiment.
type Config struct {
	Cannings   CanningsConfig
	Selection  SelectionConfig
	Experiment ExperimentConfig
}

// CanningsConfig holds the offspring-law parameters.
type CanningsConfig struct {
	Model     string  `ini:"model"` // "schweinsberg", "poisson" or "constant"
	Alpha     float64 `ini:"alpha"`
	P0        float64 `ini:"p0"`
	Lambda    float64 `ini:"lambda"`
	PerParent int     `ini:"per_parent"`
}

// SelectionConfig holds the selective advantage of the type-1 individuals.
type SelectionConfig struct {
	Type        string  `ini:"type"` // "fecundity" or "viability"
	Coefficient float64 `ini:"coefficient"`
}

// ExperimentConfig holds the Monte Carlo run parameters.
type ExperimentConfig struct {
	PopSize          int    `ini:"pop_size"`
	InitialCount     int    `ini:"initial_count"`
	Trials           int    `ini:"trials"`
	Seed             uint64 `ini:"seed"`
	CheckExpectation bool   `ini:"check_expectation"`
}

// LoadConfig loads experiment parameters from an INI file.
func LoadConfig(filePath string) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}

	config := &Config{}

	// Map sections to structs
	if err := cfg.Section("Cannings").MapTo(&config.Cannings); err != nil {
		return nil, fmt.Errorf("failed to map [Cannings] section: %w", err)
	}
	if err := cfg.Section("Selection").MapTo(&config.Selection); err != nil {
		return nil, fmt.Errorf("failed to map [Selection] section: %w", err)
	}
	if err := cfg.Section("Experiment").MapTo(&config.Experiment); err != nil {
		return nil, fmt.Errorf("failed to map [Experiment] section: %w", err)
	}

	// Clean string values and fill the defaults of the Python package.
	config.Cannings.Model = cleanIniString(config.Cannings.Model)
	config.Selection.Type = cleanIniString(config.Selection.Type)
	if config.Cannings.Model == "" {
		config.Cannings.Model = "schweinsberg"
	}
	if config.Selection.Type == "" {
		config.Selection.Type = "fecundity"
	}
	if config.Experiment.InitialCount == 0 {
		config.Experiment.InitialCount = 1
	}
	if config.Experiment.Trials == 0 {
		config.Experiment.Trials = 1
	}
	if config.Experiment.PopSize <= 0 {
		return nil, &ValidationError{Argument: "pop_size", Value: config.Experiment.PopSize,
			Requirement: "0 < pop_size"}
	}

	return config, nil
}

// cleanIniString lowercases and trims a config value.
func cleanIniString(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// Law builds the configured offspring law through the registry.
func (c *Config) Law() (OffspringLaw, error) {
	return GetLaw(c.Cannings.Model, &c.Cannings)
}

// ModelSelection translates the [Selection] section into per-generation
// selection coefficients. An unknown selection type is a *ValidationError.
func (c *Config) ModelSelection() (Selection, error) {
	switch c.Selection.Type {
	case "fecundity":
		return Selection{Fecundity: c.Selection.Coefficient}, nil
	case "viability":
		return Selection{Viability: c.Selection.Coefficient}, nil
	default:
		return Selection{}, &ValidationError{Argument: "selection type", Value: c.Selection.Type,
			Requirement: "one of 'fecundity' or 'viability'"}
	}
}
