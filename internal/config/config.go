// Package config loads the optional cubesim configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user-tunable defaults for the CLI and TUI.
type Config struct {
	// ScrambleMoves is the default scramble length.
	ScrambleMoves int `yaml:"scramble_moves"`

	// AttemptBudget caps the solver's attempts per cross edge.
	AttemptBudget int `yaml:"attempt_budget"`

	// DBPath overrides the default database location.
	DBPath string `yaml:"db_path"`

	// StepDelayMs is the TUI's pause between narrated solve steps.
	StepDelayMs int `yaml:"step_delay_ms"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ScrambleMoves: 25,
		AttemptBudget: 20,
		StepDelayMs:   400,
	}
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cubesim", "config.yaml"), nil
}

// Load reads the config file at path, applying defaults for any field the
// file omits. A missing file yields the defaults; a malformed file is an
// error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.ScrambleMoves < 1 {
		cfg.ScrambleMoves = Default().ScrambleMoves
	}
	if cfg.AttemptBudget < 1 {
		cfg.AttemptBudget = Default().AttemptBudget
	}
	if cfg.StepDelayMs < 0 {
		cfg.StepDelayMs = Default().StepDelayMs
	}

	return cfg, nil
}

// LoadDefault loads the config from the default path.
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), err
	}
	return Load(path)
}
