package catalog

import (
	"math/bits"
	"strconv"
	"strings"
)

// maxSelectionIndex bounds the indices a Selection can hold.
const maxSelectionIndex = 63

// Selection is an immutable set of image indices.
// Every operation returns a new value; the zero value is the empty set.
type Selection uint64

// NewSelection builds a selection from the given indices.
// Indices outside 0..63 are ignored.
func NewSelection(indices ...int) Selection {
	var s Selection
	for _, i := range indices {
		if i < 0 || i > maxSelectionIndex || s.Has(i) {
			continue
		}
		s = s.Toggle(i)
	}
	return s
}

// Has reports whether index i is in the set.
func (s Selection) Has(i int) bool {
	if i < 0 || i > maxSelectionIndex {
		return false
	}
	return s&(1<<uint(i)) != 0
}

// Toggle returns the set with i removed if present, added otherwise.
// Out-of-range indices leave the set unchanged; callers validate first.
func (s Selection) Toggle(i int) Selection {
	if i < 0 || i > maxSelectionIndex {
		return s
	}
	return s ^ (1 << uint(i))
}

// Len returns the number of indices in the set.
func (s Selection) Len() int {
	return bits.OnesCount64(uint64(s))
}

// IsEmpty reports whether the set has no indices.
func (s Selection) IsEmpty() bool {
	return s == 0
}

// Equal reports set equality.
func (s Selection) Equal(other Selection) bool {
	return s == other
}

// Indices returns the members in ascending order.
func (s Selection) Indices() []int {
	out := make([]int, 0, s.Len())
	for i := 0; i <= maxSelectionIndex; i++ {
		if s.Has(i) {
			out = append(out, i)
		}
	}
	return out
}

// String renders the set as "{0, 2}".
func (s Selection) String() string {
	idx := s.Indices()
	parts := make([]string, len(idx))
	for i, v := range idx {
		parts[i] = strconv.Itoa(v)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
