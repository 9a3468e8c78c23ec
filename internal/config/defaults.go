package config

import (
	_ "embed"
)

//go:embed defaults/realorai.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// Kept in sync with defaults/realorai.yaml.
func DefaultConfig() Config {
	return Config{
		Pack:       "classic",
		Difficulty: "",
		Session: SessionConfig{
			EndPolicy: "gameover",
			Protocol:  "two-phase",
			Shuffle:   true,
			Hints:     true,
		},
		Display: DisplayConfig{
			CardWidth:        0,
			ShowInstructions: true,
			Theme:            "default",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
