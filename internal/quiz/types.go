// Package quiz implements the play-through state machine: selecting images on
// a level, checking the answer, advancing, and the end-of-game behavior.
// Sessions are immutable values; each transition returns a new Session.
package quiz

import (
	"errors"
	"fmt"
)

// Errors returned by rejected transitions. The session is unchanged.
var (
	ErrInvalidIndex      = errors.New("invalid image index")
	ErrInvalidTransition = errors.New("invalid transition")
)

// Phase is the stage of the current level.
type Phase int

const (
	PhaseSelecting Phase = iota // Player is marking images
	PhaseChecking               // Answer revealed, selection locked
	PhaseGameOver               // Past the last level (terminal end policy)
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseSelecting:
		return "selecting"
	case PhaseChecking:
		return "checking"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EndPolicy decides what advancing past the last level does.
type EndPolicy string

const (
	EndGameOver EndPolicy = "gameover" // Stop in PhaseGameOver with a summary
	EndWrap     EndPolicy = "wrap"     // Start over at level 0
)

// ParseEndPolicy parses a policy name. Empty means EndGameOver.
func ParseEndPolicy(s string) (EndPolicy, error) {
	switch EndPolicy(s) {
	case "", EndGameOver:
		return EndGameOver, nil
	case EndWrap:
		return EndWrap, nil
	default:
		return "", fmt.Errorf("unknown end policy %q (want %q or %q)", s, EndGameOver, EndWrap)
	}
}

// Protocol selects how a level is finished.
type Protocol string

const (
	// ProtocolTwoPhase: select, Check to reveal results, then Advance.
	ProtocolTwoPhase Protocol = "two-phase"
	// ProtocolSinglePhase: Advance straight from a non-empty selection;
	// results are only shown in the final summary.
	ProtocolSinglePhase Protocol = "single-phase"
)

// ParseProtocol parses a protocol name. Empty means ProtocolTwoPhase.
func ParseProtocol(s string) (Protocol, error) {
	switch Protocol(s) {
	case "", ProtocolTwoPhase:
		return ProtocolTwoPhase, nil
	case ProtocolSinglePhase:
		return ProtocolSinglePhase, nil
	default:
		return "", fmt.Errorf("unknown protocol %q (want %q or %q)", s, ProtocolTwoPhase, ProtocolSinglePhase)
	}
}

// Options configures a session.
type Options struct {
	EndPolicy EndPolicy
	Protocol  Protocol
	ShowHints bool // Show authored hints while selecting
}

// DefaultOptions returns the recommended two-phase, game-over configuration.
func DefaultOptions() Options {
	return Options{
		EndPolicy: EndGameOver,
		Protocol:  ProtocolTwoPhase,
		ShowHints: true,
	}
}

// Option modifies session options.
type Option func(*Options)

// WithEndPolicy sets the end-of-catalog behavior.
func WithEndPolicy(p EndPolicy) Option {
	return func(o *Options) { o.EndPolicy = p }
}

// WithProtocol sets the per-level protocol.
func WithProtocol(p Protocol) Option {
	return func(o *Options) { o.Protocol = p }
}

// WithHints enables or disables hints.
func WithHints(show bool) Option {
	return func(o *Options) { o.ShowHints = show }
}
