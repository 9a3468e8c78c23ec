package catalog

import (
	"fmt"
	"strings"
)

// CreateLevel wraps raw images into a Level, deriving the layout from the
// image count. If rng is non-nil the images are shuffled once here and the
// order is kept for the level's lifetime.
func CreateLevel(title string, images []Image, rng Intner) (Level, error) {
	if err := validateLevel(title, images); err != nil {
		return Level{}, err
	}

	layout, err := LayoutFor(len(images))
	if err != nil {
		return Level{}, fmt.Errorf("level %q: %w", title, err)
	}

	ordered := make([]Image, len(images))
	copy(ordered, images)
	if rng != nil {
		ordered = Shuffle(rng, ordered)
	}

	return Level{
		title:  title,
		images: ordered,
		layout: layout,
	}, nil
}

// validateLevel checks the authored fields CreateLevel depends on.
func validateLevel(title string, images []Image) error {
	if strings.TrimSpace(title) == "" {
		return ValidationError{
			Code:    CodeEmptyTitle,
			Message: "level title is empty",
		}
	}

	if _, err := LayoutFor(len(images)); err != nil {
		return fmt.Errorf("level %q: %w", title, err)
	}

	for i, img := range images {
		if strings.TrimSpace(img.Src) == "" {
			return ValidationError{
				Code:    CodeEmptySrc,
				Message: fmt.Sprintf("level %q: image %d has no src", title, i+1),
			}
		}
	}
	return nil
}

// LevelSpec is an authored level before construction.
type LevelSpec struct {
	Title  string
	Images []Image
}

// Source is the authored description of a catalog.
// Build turns it into a Catalog; it is called once per session start
// (and again on restart) so the shuffle is fixed within a session.
type Source struct {
	Title  string
	Levels []LevelSpec
}

// Validate checks every level without building anything.
func (s Source) Validate() error {
	if len(s.Levels) == 0 {
		return ValidationError{
			Code:    CodeNoLevels,
			Message: fmt.Sprintf("catalog %q has no levels", s.Title),
		}
	}
	for i, spec := range s.Levels {
		if err := validateLevel(spec.Title, spec.Images); err != nil {
			return fmt.Errorf("level %d: %w", i+1, err)
		}
	}
	return nil
}

// Build constructs the catalog. A nil rng keeps the authored image order.
func (s Source) Build(rng Intner) (*Catalog, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	levels := make([]Level, 0, len(s.Levels))
	for i, spec := range s.Levels {
		lvl, err := CreateLevel(spec.Title, spec.Images, rng)
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", i+1, err)
		}
		levels = append(levels, lvl)
	}

	return &Catalog{title: s.Title, levels: levels}, nil
}

// ImageCount returns the total number of authored images.
func (s Source) ImageCount() int {
	total := 0
	for _, l := range s.Levels {
		total += len(l.Images)
	}
	return total
}
