// Package config provides YAML-based quiz configuration loading and
// difficulty presets.
package config

// Config contains all user-tunable settings for a quiz run.
type Config struct {
	Pack       string           `yaml:"pack" validate:"required"`
	Difficulty DifficultyPreset `yaml:"difficulty" validate:"omitempty,oneof=easy normal hard"`
	Session    SessionConfig    `yaml:"session"`
	Display    DisplayConfig    `yaml:"display"`
}

// SessionConfig controls the quiz state machine.
type SessionConfig struct {
	EndPolicy string `yaml:"end_policy" validate:"omitempty,oneof=gameover wrap"`
	Protocol  string `yaml:"protocol" validate:"omitempty,oneof=two-phase single-phase"`
	Shuffle   bool   `yaml:"shuffle"`
	Hints     bool   `yaml:"hints"`
}

// DisplayConfig controls the terminal presentation.
type DisplayConfig struct {
	CardWidth        int    `yaml:"card_width" validate:"gte=0,lte=80"` // 0 = fit to terminal
	ShowInstructions bool   `yaml:"show_instructions"`
	Theme            string `yaml:"theme" validate:"omitempty,oneof=default mono monochrome"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty validates a preset name. Empty means no preset.
func ParseDifficulty(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, true
	default:
		return "", false
	}
}
