package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Supported image counts per level.
const (
	MinImages = 2
	MaxImages = 6
)

// Layout is the grid tag a level is rendered with, e.g. "grid-4".
type Layout string

const (
	LayoutGrid2 Layout = "grid-2"
	LayoutGrid3 Layout = "grid-3"
	LayoutGrid4 Layout = "grid-4"
	LayoutGrid5 Layout = "grid-5"
	LayoutGrid6 Layout = "grid-6"
)

// LayoutFor returns the layout for a level with n images.
// Counts outside MinImages..MaxImages are rejected.
func LayoutFor(n int) (Layout, error) {
	if n < MinImages || n > MaxImages {
		return "", ValidationError{
			Code:    CodeInvalidLayout,
			Message: fmt.Sprintf("%d images has no layout (supported: %d-%d)", n, MinImages, MaxImages),
		}
	}
	return Layout("grid-" + strconv.Itoa(n)), nil
}

// Size returns the number of images the layout holds, or 0 if the tag is unknown.
func (l Layout) Size() int {
	n, err := strconv.Atoi(strings.TrimPrefix(string(l), "grid-"))
	if err != nil || n < MinImages || n > MaxImages {
		return 0
	}
	return n
}

// Columns returns how many cards go on one row.
func (l Layout) Columns() int {
	switch l {
	case LayoutGrid2, LayoutGrid4:
		return 2
	case LayoutGrid3, LayoutGrid5, LayoutGrid6:
		return 3
	default:
		return 1
	}
}

// String returns the layout tag.
func (l Layout) String() string {
	return string(l)
}
