package config

// ApplyPreset modifies the config based on a difficulty preset.
// Easy shows hints and per-level feedback, normal hides hints,
// hard also skips the per-level check so answers are only revealed
// in the final summary. An empty preset leaves cfg unchanged.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Session.Hints = true
		cfg.Session.Protocol = "two-phase"
		cfg.Display.ShowInstructions = true
	case DifficultyNormal:
		cfg.Session.Hints = false
		cfg.Session.Protocol = "two-phase"
	case DifficultyHard:
		cfg.Session.Hints = false
		cfg.Session.Protocol = "single-phase"
		cfg.Display.ShowInstructions = false
	default:
		return
	}
	cfg.Difficulty = preset
}
