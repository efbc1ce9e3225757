package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader handles loading level templates from a directory.
type Loader struct {
	Root   string
	WorldW float64
	WorldH float64
}

// NewLoader creates a loader that validates levels against the given world size.
func NewLoader(root string, worldW, worldH float64) *Loader {
	return &Loader{Root: root, WorldW: worldW, WorldH: worldH}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
// Any unreadable or invalid file fails the whole load.
func (l *Loader) LoadAll() ([]Template, error) {
	var templates []Template

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		t, err := l.LoadFile(path)
		if err != nil {
			return err
		}
		templates = append(templates, t)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: loading %s: %w", l.Root, err)
	}

	if len(templates) == 0 {
		return nil, fmt.Errorf("levels: no level files in %s", l.Root)
	}

	sort.Slice(templates, func(i, j int) bool {
		return templates[i].ID < templates[j].ID
	})

	for i := 1; i < len(templates); i++ {
		if templates[i].ID == templates[i-1].ID {
			return nil, fmt.Errorf("levels: duplicate level id %q", templates[i].ID)
		}
	}

	return templates, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(path string) (Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	t, err := ParseYAML(data)
	if err != nil {
		return Template{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if err := t.Validate(l.WorldW, l.WorldH); err != nil {
		return Template{}, fmt.Errorf("validating file %s: %w", path, err)
	}

	t.FilePath = path
	return t, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	return ext == ".yaml" || ext == ".yml"
}
