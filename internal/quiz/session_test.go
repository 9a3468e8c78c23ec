package quiz

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/real-or-ai/internal/catalog"
)

// buildCatalog makes an unshuffled catalog; each entry lists a level's
// ground truth in display order.
func buildCatalog(t *testing.T, levels ...[]bool) *catalog.Catalog {
	t.Helper()

	src := catalog.Source{Title: "test"}
	for li, truth := range levels {
		spec := catalog.LevelSpec{Title: fmt.Sprintf("Level %d", li+1)}
		for i, ai := range truth {
			spec.Images = append(spec.Images, catalog.Image{
				Src:         fmt.Sprintf("/l%d/%d.png", li, i),
				IsAI:        ai,
				Explanation: "x",
			})
		}
		src.Levels = append(src.Levels, spec)
	}

	cat, err := src.Build(nil)
	require.NoError(t, err)
	return cat
}

func newSession(t *testing.T, cat *catalog.Catalog, opts ...Option) Session {
	t.Helper()
	s, err := New(cat, opts...)
	require.NoError(t, err)
	return s
}

func mustToggle(t *testing.T, s Session, indices ...int) Session {
	t.Helper()
	for _, i := range indices {
		var err error
		s, err = s.Toggle(i)
		require.NoError(t, err)
	}
	return s
}

func TestNewSessionInitialState(t *testing.T) {
	s := newSession(t, buildCatalog(t, []bool{false, true}, []bool{true, false, false}))

	st := s.State()
	assert.Equal(t, 0, st.LevelIndex)
	assert.Equal(t, 2, st.LevelCount)
	assert.True(t, st.Selected.IsEmpty())
	assert.Equal(t, PhaseSelecting, st.Phase)
	assert.Equal(t, DefaultOptions(), s.Options())
	assert.Equal(t, Score{}, s.Score())
}

func TestNewSessionRejectsEmptyCatalog(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New(buildCatalog(t, []bool{true, false}), WithEndPolicy("sometimes"))
	assert.Error(t, err)

	_, err = New(buildCatalog(t, []bool{true, false}), WithProtocol("three-phase"))
	assert.Error(t, err)
}

func TestScenarioSelectAIImage(t *testing.T) {
	s := newSession(t, buildCatalog(t, []bool{false, true}))

	s = mustToggle(t, s, 1)
	assert.Equal(t, catalog.NewSelection(1), s.State().Selected)

	s, err := s.Check()
	require.NoError(t, err)

	tiles := s.RenderModel()
	require.Len(t, tiles, 2)
	assert.False(t, tiles[0].IsSelected)
	assert.True(t, tiles[0].IsCorrect, "not selecting a real image is correct")
	assert.True(t, tiles[1].IsSelected)
	assert.True(t, tiles[1].IsCorrect)
	assert.True(t, s.LevelCorrect())

	score := s.Score()
	assert.Equal(t, Score{LevelsCorrect: 1, LevelsPlayed: 1, ImagesCorrect: 2, ImagesSeen: 2}, score)
	assert.InDelta(t, 1.0, score.Accuracy(), 1e-9)
}

func TestScenarioSelectRealImage(t *testing.T) {
	s := newSession(t, buildCatalog(t, []bool{false, true}))

	s = mustToggle(t, s, 0)
	s, err := s.Check()
	require.NoError(t, err)

	tiles := s.RenderModel()
	assert.True(t, tiles[0].IsSelected)
	assert.False(t, tiles[0].IsCorrect, "selected a real image")
	assert.False(t, tiles[1].IsSelected)
	assert.False(t, tiles[1].IsCorrect, "missed the AI image")
	assert.False(t, s.LevelCorrect())

	res, ok := s.LastResult()
	require.True(t, ok)
	assert.False(t, res.Perfect())
	assert.Equal(t, 0, res.ImagesCorrect)
	assert.Equal(t, Score{LevelsCorrect: 0, LevelsPlayed: 1, ImagesCorrect: 0, ImagesSeen: 2}, s.Score())
}

func TestScenarioDoubleToggleCancels(t *testing.T) {
	s := newSession(t, buildCatalog(t, []bool{false, true}))

	s = mustToggle(t, s, 1, 1)

	assert.True(t, s.State().Selected.IsEmpty())
}

func TestToggleTwiceRestoresAnySelection(t *testing.T) {
	cat := buildCatalog(t, []bool{true, false, true, false, false, true})
	base := newSession(t, cat)

	for mask := range 1 << 6 {
		s := base
		for i := range 6 {
			if mask&(1<<i) != 0 {
				s = mustToggle(t, s, i)
			}
		}
		for i := range 6 {
			again := mustToggle(t, s, i, i)
			assert.Equal(t, s.State().Selected, again.State().Selected, "mask=%06b i=%d", mask, i)
		}
	}
}

// TestRenderModelEverySelection walks every non-empty selection of a mixed
// level and checks the per-tile verdict before and after checking.
func TestRenderModelEverySelection(t *testing.T) {
	truth := []bool{true, false, true, false, false}
	src := catalog.Source{Title: "test", Levels: []catalog.LevelSpec{{Title: "Mixed"}}}
	for i, ai := range truth {
		src.Levels[0].Images = append(src.Levels[0].Images, catalog.Image{
			Src:         fmt.Sprintf("/mixed/%d.png", i),
			IsAI:        ai,
			Explanation: "x",
			Hint:        "look closer",
		})
	}
	cat, err := src.Build(nil)
	require.NoError(t, err)
	base := newSession(t, cat)

	for mask := 1; mask < 1<<len(truth); mask++ {
		s := base
		for i := range truth {
			if mask&(1<<i) != 0 {
				s = mustToggle(t, s, i)
			}
		}

		for _, tile := range s.RenderModel() {
			assert.False(t, tile.ShowFeedback, "mask=%05b tile=%d before check", mask, tile.Index)
			assert.True(t, tile.ShowHint, "mask=%05b tile=%d before check", mask, tile.Index)
		}

		checked, err := s.Check()
		require.NoError(t, err)

		perfect := true
		for _, tile := range checked.RenderModel() {
			selected := mask&(1<<tile.Index) != 0
			ai := truth[tile.Index]
			assert.Equal(t, selected, tile.IsSelected, "mask=%05b tile=%d", mask, tile.Index)
			assert.Equal(t, ai == selected, tile.IsCorrect, "mask=%05b tile=%d", mask, tile.Index)
			assert.Equal(t, selected || ai, tile.ShowFeedback, "mask=%05b tile=%d", mask, tile.Index)
			assert.False(t, tile.ShowHint, "mask=%05b tile=%d", mask, tile.Index)
			perfect = perfect && tile.IsCorrect
		}
		assert.Equal(t, perfect, checked.LevelCorrect(), "mask=%05b", mask)
		assert.Equal(t, mask == 0b00101, checked.LevelCorrect(), "mask=%05b", mask)
	}
}

func TestZeroSessionAccessors(t *testing.T) {
	var s Session

	assert.NotPanics(t, func() {
		assert.Empty(t, s.RenderModel())
		assert.Zero(t, s.CurrentLevel().Len())
		assert.Zero(t, s.State().LevelCount)
		assert.False(t, s.IsLastLevel())
		assert.Zero(t, s.Score().LevelsPlayed)
	})
}

func TestToggleOutOfRange(t *testing.T) {
	s := newSession(t, buildCatalog(t, []bool{false, true, false}))
	s = mustToggle(t, s, 2)

	for _, i := range []int{-1, 3, 64} {
		got, err := s.Toggle(i)
		assert.ErrorIs(t, err, ErrInvalidIndex, "index %d", i)
		assert.Equal(t, s, got, "state must be unchanged")
	}
}

func TestToggleRejectedWhileChecking(t *testing.T) {
	s := newSession(t, buildCatalog(t, []bool{false, true}, []bool{true, false}))
	s = mustToggle(t, s, 1)
	s, err := s.Check()
	require.NoError(t, err)

	got, err := s.Toggle(0)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, catalog.NewSelection(1), got.State().Selected, "selection is frozen")
}

func TestCheckRequiresSelection(t *testing.T) {
	s := newSession(t, buildCatalog(t, []bool{false, true}))
	assert.False(t, s.CanCheck())

	got, err := s.Check()
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, PhaseSelecting, got.Phase())
}

func TestCheckTwiceRejected(t *testing.T) {
	s := newSession(t, buildCatalog(t, []bool{false, true}))
	s = mustToggle(t, s, 0)
	s, err := s.Check()
	require.NoError(t, err)

	_, err = s.Check()
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Len(t, s.Results(), 1, "a level is recorded once")
}

func TestAdvanceRequiresCheckInTwoPhase(t *testing.T) {
	s := newSession(t, buildCatalog(t, []bool{false, true}, []bool{true, false}))
	s = mustToggle(t, s, 1)
	assert.False(t, s.CanAdvance())

	_, err := s.Advance()
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAdvanceResetsLevelState(t *testing.T) {
	s := newSession(t, buildCatalog(t, []bool{false, true}, []bool{true, false, true}))
	s = mustToggle(t, s, 0, 1)
	s, err := s.Check()
	require.NoError(t, err)
	require.True(t, s.CanAdvance())

	s, err = s.Advance()
	require.NoError(t, err)

	st := s.State()
	assert.Equal(t, 1, st.LevelIndex)
	assert.True(t, st.Selected.IsEmpty())
	assert.Equal(t, PhaseSelecting, st.Phase)
	assert.Equal(t, "Level 2", s.CurrentLevel().Title())
	assert.Equal(t, catalog.NewSelection(0, 2), s.CurrentLevel().CorrectIndices(),
		"ground truth follows the new level")
}

func TestAdvancePastLastLevelGameOver(t *testing.T) {
	s := newSession(t, buildCatalog(t, []bool{false, true}, []bool{true, false}))

	for range 2 {
		require.Equal(t, PhaseSelecting, s.Phase())
		s = mustToggle(t, s, 0)
		var err error
		s, err = s.Check()
		require.NoError(t, err)
		s, err = s.Advance()
		require.NoError(t, err)
	}

	assert.Equal(t, PhaseGameOver, s.Phase())
	assert.Equal(t, 1, s.State().LevelIndex, "index stays in range")
	assert.True(t, s.State().Selected.IsEmpty())
	assert.Equal(t, Score{LevelsCorrect: 1, LevelsPlayed: 2, ImagesCorrect: 2, ImagesSeen: 4}, s.Score())

	// Terminal: nothing but Restart applies.
	_, err := s.Toggle(0)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = s.Check()
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = s.Advance()
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.False(t, s.CanAdvance())

	for _, tile := range s.RenderModel() {
		assert.False(t, tile.ShowFeedback)
	}
}

func TestAdvancePastLastLevelWraps(t *testing.T) {
	s := newSession(t, buildCatalog(t, []bool{false, true}, []bool{true, false}), WithEndPolicy(EndWrap))

	for step := range 5 {
		s = mustToggle(t, s, 1)
		var err error
		s, err = s.Check()
		require.NoError(t, err)
		s, err = s.Advance()
		require.NoError(t, err)

		st := s.State()
		assert.Equal(t, (step+1)%2, st.LevelIndex)
		assert.Less(t, st.LevelIndex, st.LevelCount)
		assert.Equal(t, PhaseSelecting, st.Phase)
	}

	assert.Equal(t, 2, s.Round())
	assert.Equal(t, 5, s.Score().LevelsPlayed)
}

func TestSinglePhaseProtocol(t *testing.T) {
	s := newSession(t, buildCatalog(t, []bool{false, true}, []bool{true, false}), WithProtocol(ProtocolSinglePhase))

	_, err := s.Advance()
	assert.ErrorIs(t, err, ErrInvalidTransition, "needs a selection")

	s = mustToggle(t, s, 1)
	assert.False(t, s.CanCheck())
	_, err = s.Check()
	assert.ErrorIs(t, err, ErrInvalidTransition, "no check step")

	require.True(t, s.CanAdvance())
	s, err = s.Advance()
	require.NoError(t, err)
	assert.Equal(t, 1, s.State().LevelIndex)
	assert.Equal(t, PhaseSelecting, s.Phase())

	s = mustToggle(t, s, 1)
	s, err = s.Advance()
	require.NoError(t, err)

	assert.Equal(t, PhaseGameOver, s.Phase())
	results := s.Results()
	require.Len(t, results, 2)
	assert.True(t, results[0].Perfect())
	assert.False(t, results[1].Perfect())
}

func TestRestart(t *testing.T) {
	src := catalog.Source{Levels: []catalog.LevelSpec{
		{Title: "A", Images: []catalog.Image{
			{Src: "1", IsAI: true, Explanation: "x"},
			{Src: "2", Explanation: "x"},
			{Src: "3", Explanation: "x"},
			{Src: "4", IsAI: true, Explanation: "x"},
		}},
	}}
	first, err := src.Build(rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	s := newSession(t, first, WithEndPolicy(EndGameOver), WithHints(false))
	s = mustToggle(t, s, 0)
	s, err = s.Check()
	require.NoError(t, err)
	s, err = s.Advance()
	require.NoError(t, err)
	require.Equal(t, PhaseGameOver, s.Phase())

	second, err := src.Build(rand.New(rand.NewSource(2)))
	require.NoError(t, err)
	r, err := s.Restart(second)
	require.NoError(t, err)

	assert.Equal(t, StateView{LevelIndex: 0, LevelCount: 1, Phase: PhaseSelecting}, r.State())
	assert.Empty(t, r.Results())
	assert.Same(t, second, r.Catalog())
	assert.False(t, r.Options().ShowHints, "options survive restart")

	// Restart is allowed mid-level too.
	mid := mustToggle(t, r, 2)
	again, err := mid.Restart(nil)
	require.NoError(t, err)
	assert.True(t, again.State().Selected.IsEmpty())
	assert.Same(t, second, again.Catalog())
}

func TestTransitionsDoNotMutateReceiver(t *testing.T) {
	s0 := newSession(t, buildCatalog(t, []bool{false, true}, []bool{true, false}))
	s1 := mustToggle(t, s0, 1)
	s2, err := s1.Check()
	require.NoError(t, err)
	s3, err := s2.Advance()
	require.NoError(t, err)

	assert.True(t, s0.State().Selected.IsEmpty())
	assert.Equal(t, PhaseSelecting, s1.Phase())
	assert.Empty(t, s1.Results())
	assert.Equal(t, PhaseChecking, s2.Phase())
	assert.Equal(t, 0, s2.State().LevelIndex)
	assert.Equal(t, 1, s3.State().LevelIndex)

	// Branching from an older value must not leak into a newer one.
	b := mustToggle(t, s0, 0)
	b, err = b.Check()
	require.NoError(t, err)
	assert.Len(t, s2.Results(), 1)
	assert.True(t, s2.Results()[0].Perfect())
	assert.False(t, b.Results()[0].Perfect())
}

func TestParseOptions(t *testing.T) {
	p, err := ParseEndPolicy("")
	require.NoError(t, err)
	assert.Equal(t, EndGameOver, p)
	p, err = ParseEndPolicy("wrap")
	require.NoError(t, err)
	assert.Equal(t, EndWrap, p)
	_, err = ParseEndPolicy("loop")
	assert.Error(t, err)

	pr, err := ParseProtocol("single-phase")
	require.NoError(t, err)
	assert.Equal(t, ProtocolSinglePhase, pr)
	_, err = ParseProtocol("one-phase")
	assert.Error(t, err)

	assert.Equal(t, "checking", PhaseChecking.String())
	assert.Equal(t, "unknown", Phase(9).String())
}
