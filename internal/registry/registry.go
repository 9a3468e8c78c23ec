// Package registry provides a global registry for level packs.
// Packs register themselves in init() functions, allowing the CLI
// to discover and load them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/real-or-ai/internal/catalog"
)

// PackInfo contains metadata about a registered pack.
type PackInfo struct {
	ID     string
	Title  string
	Levels int
	Images int
}

// Factory returns the authored source of a pack.
// Called on every lookup; the registry never caches sources so a
// catalog built from one can't leak shuffled state into another.
type Factory func() (catalog.Source, error)

type entry struct {
	title   string
	factory Factory
}

var (
	packs = make(map[string]entry)
	mu    sync.RWMutex
)

// Register adds a pack factory to the registry.
// Typically called from a pack's init() function.
// Panics if a pack with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := packs[id]; exists {
		panic(fmt.Sprintf("registry: pack %q already registered", id))
	}
	packs[id] = entry{title: title, factory: f}
}

// List returns information about all registered packs, sorted by ID.
// Packs whose source fails to load are listed with zero counts.
func List() []PackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PackInfo, 0, len(packs))
	for id, e := range packs {
		info := PackInfo{ID: id, Title: e.title}
		if src, err := e.factory(); err == nil {
			info.Levels = len(src.Levels)
			info.Images = src.ImageCount()
		}
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Source returns the authored source of a pack by its ID.
// Returns an error if the pack is not registered or fails validation.
func Source(id string) (catalog.Source, error) {
	mu.RLock()
	e, ok := packs[id]
	mu.RUnlock()

	if !ok {
		return catalog.Source{}, fmt.Errorf("registry: unknown pack %q", id)
	}

	src, err := e.factory()
	if err != nil {
		return catalog.Source{}, fmt.Errorf("registry: pack %q: %w", id, err)
	}
	if err := src.Validate(); err != nil {
		return catalog.Source{}, fmt.Errorf("registry: pack %q: %w", id, err)
	}
	return src, nil
}

// Exists checks if a pack with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := packs[id]
	return ok
}

// unregister removes a pack. Test helper.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(packs, id)
}
