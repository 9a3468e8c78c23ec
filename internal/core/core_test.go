package core

import "testing"

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionNone, "None"},
		{ActionToggle, "Toggle"},
		{ActionPick, "Pick"},
		{ActionCheck, "Check"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, want %q", tt.action, got, tt.want)
		}
	}
}

func TestResolveSeed(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Seed != 0 {
		t.Fatalf("default seed = %d, want 0", cfg.Seed)
	}

	resolved := cfg.ResolveSeed()
	if resolved.Seed == 0 {
		t.Error("ResolveSeed left seed at 0")
	}

	fixed := RuntimeConfig{Seed: 42}.ResolveSeed()
	if fixed.Seed != 42 {
		t.Errorf("ResolveSeed changed explicit seed to %d", fixed.Seed)
	}
}

func TestNewRandDeterministic(t *testing.T) {
	a := RuntimeConfig{Seed: 7}.NewRand()
	b := RuntimeConfig{Seed: 7}.NewRand()

	for i := range 10 {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
}
