package quiz

import "github.com/vovakirdan/real-or-ai/internal/catalog"

// LevelResult records how one finished level went.
type LevelResult struct {
	LevelIndex    int
	Title         string
	Selected      catalog.Selection
	Correct       catalog.Selection
	ImagesCorrect int // Images where selection matched ground truth
	ImagesTotal   int
}

// Perfect reports whether the selection equals the AI set exactly.
func (r LevelResult) Perfect() bool {
	return r.Selected.Equal(r.Correct)
}

// Score aggregates finished levels. Both all-or-nothing level credit and
// per-image accuracy are exposed; the presentation picks what to show.
type Score struct {
	LevelsCorrect int
	LevelsPlayed  int
	ImagesCorrect int
	ImagesSeen    int
}

// Accuracy returns the per-image accuracy in [0, 1].
func (s Score) Accuracy() float64 {
	if s.ImagesSeen == 0 {
		return 0
	}
	return float64(s.ImagesCorrect) / float64(s.ImagesSeen)
}

// evaluate scores a selection against a level.
func evaluate(index int, lvl catalog.Level, sel catalog.Selection) LevelResult {
	correct := lvl.CorrectIndices()
	hits := 0
	for i := range lvl.Len() {
		if correct.Has(i) == sel.Has(i) {
			hits++
		}
	}
	return LevelResult{
		LevelIndex:    index,
		Title:         lvl.Title(),
		Selected:      sel,
		Correct:       correct,
		ImagesCorrect: hits,
		ImagesTotal:   lvl.Len(),
	}
}

// scoreOf sums a result history.
func scoreOf(results []LevelResult) Score {
	var s Score
	for _, r := range results {
		s.LevelsPlayed++
		if r.Perfect() {
			s.LevelsCorrect++
		}
		s.ImagesCorrect += r.ImagesCorrect
		s.ImagesSeen += r.ImagesTotal
	}
	return s
}
