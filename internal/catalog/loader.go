package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Loader reads level files from a file or a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// Load returns the source described by Root.
// A file is parsed on its own; a directory has all its level files
// concatenated in lexical path order. Any invalid file fails the load.
func (l *Loader) Load() (Source, error) {
	info, err := os.Stat(l.Root)
	if err != nil {
		return Source{}, fmt.Errorf("reading %s: %w", l.Root, err)
	}
	if !info.IsDir() {
		return l.LoadFile(l.Root)
	}

	files, err := l.files()
	if err != nil {
		return Source{}, err
	}
	if len(files) == 0 {
		return Source{}, ValidationError{
			Code:    CodeNoLevels,
			Message: fmt.Sprintf("no level files in %s", l.Root),
		}
	}

	merged := Source{Title: titleFromPath(l.Root)}
	for _, path := range files {
		src, err := l.LoadFile(path)
		if err != nil {
			return Source{}, err
		}
		merged.Levels = append(merged.Levels, src.Levels...)
	}
	return merged, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !isSupportedExtension(ext) {
		return Source{}, fmt.Errorf("parsing file %s: unsupported extension %q", path, ext)
	}

	src, err := ParseYAML(data)
	if err != nil {
		return Source{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if src.Title == "" {
		src.Title = titleFromPath(path)
	}
	return src, nil
}

// Files lists the level files Load would read: Root itself when it is a
// file, otherwise the level files under it in lexical order.
func (l *Loader) Files() ([]string, error) {
	info, err := os.Stat(l.Root)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", l.Root, err)
	}
	if !info.IsDir() {
		return []string{l.Root}, nil
	}
	return l.files()
}

// files lists level files under Root in lexical order.
func (l *Loader) files() ([]string, error) {
	var files []string
	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}
	slices.Sort(files)
	return files, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	return slices.Contains(FormatExtensions(), ext)
}

// titleFromPath derives a display title from a file or directory name.
func titleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
