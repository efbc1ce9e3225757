package levels

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-slingshot/internal/config"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

var (
	builtinOnce      sync.Once
	builtinTemplates []Template
)

// Builtin returns the embedded campaign, sorted by ID.
// The table is static data; a malformed entry is a programming error and panics.
func Builtin() []Template {
	builtinOnce.Do(func() {
		world := config.DefaultSlingshotConfig().World
		templates, err := parseFS(builtinFS, "builtin", world.Width, world.Height)
		if err != nil {
			panic(fmt.Sprintf("levels: built-in table is malformed: %v", err))
		}
		builtinTemplates = templates
	})

	out := make([]Template, len(builtinTemplates))
	for i, t := range builtinTemplates {
		out[i] = t.Clone()
	}
	return out
}

// Clone returns a deep copy of the template.
func (t Template) Clone() Template {
	c := t
	c.Blocks = append([]BlockSpec(nil), t.Blocks...)
	c.Enemies = append([]EnemySpec(nil), t.Enemies...)
	return c
}

func parseFS(fsys embed.FS, dir string, worldW, worldH float64) ([]Template, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var templates []Template
	for _, e := range entries {
		if e.IsDir() || !isSupportedExtension(path.Ext(e.Name())) {
			continue
		}
		data, err := fsys.ReadFile(path.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		t, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		if err := t.Validate(worldW, worldH); err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		templates = append(templates, t)
	}

	sort.Slice(templates, func(i, j int) bool {
		return templates[i].ID < templates[j].ID
	})
	return templates, nil
}
