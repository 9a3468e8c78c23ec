package quiz

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vovakirdan/real-or-ai/internal/catalog"
)

// Session is one play-through of a catalog.
// It is a value: transitions return a new Session and leave the receiver
// untouched, so older values can be kept for undo or comparison.
type Session struct {
	cat      *catalog.Catalog
	opts     Options
	index    int
	selected catalog.Selection
	phase    Phase
	results  []LevelResult // Never appended in place; see record
	round    int           // Completed passes over the catalog (EndWrap)
}

// New starts a session at level 0 with an empty selection.
func New(cat *catalog.Catalog, opts ...Option) (Session, error) {
	if cat == nil || cat.Len() == 0 {
		return Session{}, errors.New("quiz: catalog has no levels")
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	var err error
	if o.EndPolicy, err = ParseEndPolicy(string(o.EndPolicy)); err != nil {
		return Session{}, fmt.Errorf("quiz: %w", err)
	}
	if o.Protocol, err = ParseProtocol(string(o.Protocol)); err != nil {
		return Session{}, fmt.Errorf("quiz: %w", err)
	}

	return Session{
		cat:   cat,
		opts:  o,
		phase: PhaseSelecting,
	}, nil
}

// Toggle adds or removes image i from the selection.
// Only valid while selecting; i must index the current level.
func (s Session) Toggle(i int) (Session, error) {
	if s.phase != PhaseSelecting {
		return s, fmt.Errorf("toggle during %s: %w", s.phase, ErrInvalidTransition)
	}
	lvl := s.CurrentLevel()
	if i < 0 || i >= lvl.Len() {
		return s, fmt.Errorf("toggle %d on a level with %d images: %w", i, lvl.Len(), ErrInvalidIndex)
	}

	s.selected = s.selected.Toggle(i)
	return s, nil
}

// Check locks the selection and reveals results for the current level.
// Two-phase protocol only; needs a non-empty selection.
func (s Session) Check() (Session, error) {
	if s.opts.Protocol != ProtocolTwoPhase {
		return s, fmt.Errorf("check with %s protocol: %w", s.opts.Protocol, ErrInvalidTransition)
	}
	if s.phase != PhaseSelecting {
		return s, fmt.Errorf("check during %s: %w", s.phase, ErrInvalidTransition)
	}
	if s.selected.IsEmpty() {
		return s, fmt.Errorf("check with nothing selected: %w", ErrInvalidTransition)
	}

	s.results = s.record()
	s.phase = PhaseChecking
	return s, nil
}

// Advance moves to the next level with a fresh selection.
// Two-phase: valid from Checking. Single-phase: valid from Selecting with a
// non-empty selection. Past the last level the end policy applies.
func (s Session) Advance() (Session, error) {
	switch {
	case s.phase == PhaseChecking:
	case s.phase == PhaseSelecting && s.opts.Protocol == ProtocolSinglePhase:
		if s.selected.IsEmpty() {
			return s, fmt.Errorf("advance with nothing selected: %w", ErrInvalidTransition)
		}
		s.results = s.record()
	default:
		return s, fmt.Errorf("advance during %s: %w", s.phase, ErrInvalidTransition)
	}

	s.selected = catalog.Selection(0)
	next := s.index + 1
	if next >= s.cat.Len() {
		if s.opts.EndPolicy == EndWrap {
			s.round++
			next = 0
		} else {
			// Index stays on the last level so CurrentLevel remains valid.
			s.phase = PhaseGameOver
			return s, nil
		}
	}

	s.index = next
	s.phase = PhaseSelecting
	return s, nil
}

// Restart returns a fresh session over cat with the same options.
// A nil cat reuses the current catalog (same image order).
func (s Session) Restart(cat *catalog.Catalog) (Session, error) {
	if cat == nil {
		cat = s.cat
	}
	return New(cat, func(o *Options) { *o = s.opts })
}

// record returns the result history with the current level appended.
// A new slice is allocated so earlier Session values never share it.
func (s Session) record() []LevelResult {
	out := slices.Clone(s.results)
	return append(out, evaluate(s.index, s.CurrentLevel(), s.selected))
}

// Catalog returns the catalog this session plays.
func (s Session) Catalog() *catalog.Catalog {
	return s.cat
}

// Options returns the session configuration.
func (s Session) Options() Options {
	return s.opts
}

// CurrentLevel returns the level being played (the last one after game over).
func (s Session) CurrentLevel() catalog.Level {
	lvl, _ := s.cat.Level(s.index)
	return lvl
}

// Phase returns the current phase.
func (s Session) Phase() Phase {
	return s.phase
}

// Round returns how many times the catalog wrapped around.
func (s Session) Round() int {
	return s.round
}

// IsLastLevel reports whether the current level is the final one.
func (s Session) IsLastLevel() bool {
	return s.index == s.cat.Len()-1
}

// CanCheck reports whether Check would succeed.
func (s Session) CanCheck() bool {
	return s.opts.Protocol == ProtocolTwoPhase && s.phase == PhaseSelecting && !s.selected.IsEmpty()
}

// CanAdvance reports whether Advance would succeed.
func (s Session) CanAdvance() bool {
	switch s.phase {
	case PhaseChecking:
		return true
	case PhaseSelecting:
		return s.opts.Protocol == ProtocolSinglePhase && !s.selected.IsEmpty()
	default:
		return false
	}
}

// StateView is the read-only session state handed to the presentation.
type StateView struct {
	LevelIndex int
	LevelCount int
	Selected   catalog.Selection
	Phase      Phase
}

// State returns the current session state.
func (s Session) State() StateView {
	return StateView{
		LevelIndex: s.index,
		LevelCount: s.cat.Len(),
		Selected:   s.selected,
		Phase:      s.phase,
	}
}

// LevelCorrect reports whether the current selection matches the AI set.
func (s Session) LevelCorrect() bool {
	return s.selected.Equal(s.CurrentLevel().CorrectIndices())
}

// Results returns the finished levels in play order.
func (s Session) Results() []LevelResult {
	return slices.Clone(s.results)
}

// LastResult returns the most recent level result, if any.
func (s Session) LastResult() (LevelResult, bool) {
	if len(s.results) == 0 {
		return LevelResult{}, false
	}
	return s.results[len(s.results)-1], true
}

// Score sums all finished levels.
func (s Session) Score() Score {
	return scoreOf(s.results)
}
