package quiz

import "github.com/vovakirdan/real-or-ai/internal/catalog"

// Tile is the render model for one image of the current level.
type Tile struct {
	Index        int
	Image        catalog.Image
	IsSelected   bool
	IsCorrect    bool // Selection matches ground truth, including unselected real images
	ShowFeedback bool // Only while checking, for selected or AI images
	ShowHint     bool
}

// RenderModel derives the tiles for the current level.
// Pure: computed from the session on every call, never stored.
func (s Session) RenderModel() []Tile {
	lvl := s.CurrentLevel()
	images := lvl.Images()
	tiles := make([]Tile, len(images))

	for i, img := range images {
		selected := s.selected.Has(i)
		tiles[i] = Tile{
			Index:        i,
			Image:        img,
			IsSelected:   selected,
			IsCorrect:    img.IsAI == selected,
			ShowFeedback: s.phase == PhaseChecking && (selected || img.IsAI),
			ShowHint:     s.phase == PhaseSelecting && s.opts.ShowHints && img.HasHint(),
		}
	}
	return tiles
}
