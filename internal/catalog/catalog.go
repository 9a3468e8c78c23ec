// Package catalog holds the authored quiz data: images, levels and the
// ordered catalog of levels a session plays through.
// It contains no UI dependencies so that level construction and shuffling
// stay pure and testable.
package catalog

// Image is a single authored picture in a level.
// Src is an opaque identifier (path or URL); nothing here decodes it.
type Image struct {
	Src         string
	IsAI        bool // Ground truth, never changed at runtime
	Explanation string
	Hint        string // Optional, empty means no hint
}

// HasHint reports whether the image carries hint text.
func (img Image) HasHint() bool {
	return img.Hint != ""
}

// Level is an immutable set of images shown together.
// Construct it with CreateLevel so the layout always matches the image count.
type Level struct {
	title  string
	images []Image
	layout Layout
}

// Title returns the level title.
func (l Level) Title() string {
	return l.title
}

// Layout returns the grid layout tag for this level.
func (l Level) Layout() Layout {
	return l.layout
}

// Len returns the number of images in the level.
func (l Level) Len() int {
	return len(l.images)
}

// Image returns the image at index i.
// Returns false if i is out of range.
func (l Level) Image(i int) (Image, bool) {
	if i < 0 || i >= len(l.images) {
		return Image{}, false
	}
	return l.images[i], true
}

// Images returns a copy of the images in display order.
func (l Level) Images() []Image {
	out := make([]Image, len(l.images))
	copy(out, l.images)
	return out
}

// CorrectIndices returns the indices of the AI-generated images.
// Derived from the current image order on every call.
func (l Level) CorrectIndices() Selection {
	var sel Selection
	for i, img := range l.images {
		if img.IsAI {
			sel = sel.Toggle(i)
		}
	}
	return sel
}

// AICount returns how many images in the level are AI-generated.
func (l Level) AICount() int {
	return l.CorrectIndices().Len()
}

// Catalog is the ordered, read-only list of levels for one session.
type Catalog struct {
	title  string
	levels []Level
}

// Title returns the catalog title (pack name).
func (c *Catalog) Title() string {
	if c == nil {
		return ""
	}
	return c.title
}

// Len returns the number of levels. A nil catalog has none.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.levels)
}

// Level returns the level at the given index (0-based).
// Returns false if index is out of range.
func (c *Catalog) Level(index int) (Level, bool) {
	if index < 0 || index >= c.Len() {
		return Level{}, false
	}
	return c.levels[index], true
}

// Levels returns a copy of the level list.
func (c *Catalog) Levels() []Level {
	if c == nil {
		return nil
	}
	out := make([]Level, len(c.levels))
	copy(out, c.levels)
	return out
}

// TotalImages returns the number of images across all levels.
func (c *Catalog) TotalImages() int {
	total := 0
	for _, l := range c.Levels() {
		total += l.Len()
	}
	return total
}
