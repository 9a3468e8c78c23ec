// Package classic registers the built-in level pack.
package classic

import (
	_ "embed"

	"github.com/vovakirdan/real-or-ai/internal/catalog"
	"github.com/vovakirdan/real-or-ai/internal/registry"
)

// ID is the registry key of the built-in pack.
const ID = "classic"

//go:embed classic.yaml
var classicYAML []byte

func init() {
	registry.Register(ID, "Classic", Source)
}

// Source parses the embedded pack.
func Source() (catalog.Source, error) {
	return catalog.ParseYAML(classicYAML)
}
