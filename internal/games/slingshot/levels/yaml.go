package levels

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID      string      `yaml:"id"`
	Name    string      `yaml:"name"`
	Blocks  []YAMLBlock `yaml:"blocks"`
	Enemies []YAMLEnemy `yaml:"enemies"`
}

// YAMLBlock is a block entry. Physical parameters are optional and fall back
// to the material defaults; mass falls back to the area rule.
type YAMLBlock struct {
	X          float64  `yaml:"x"`
	Y          float64  `yaml:"y"`
	W          float64  `yaml:"w"`
	H          float64  `yaml:"h"`
	Material   string   `yaml:"material,omitempty"`
	Mass       float64  `yaml:"mass,omitempty"`
	Friction   *float64 `yaml:"friction,omitempty"`
	Bounciness *float64 `yaml:"bounciness,omitempty"`
}

// YAMLEnemy is an enemy entry.
type YAMLEnemy struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius,omitempty"`
	Health int     `yaml:"health,omitempty"`
}

// ParseYAML parses a YAML level file into a template with resolved block
// parameters. It does not check world bounds; see Template.Validate.
func ParseYAML(data []byte) (Template, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Template{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Template{}, fmt.Errorf("level has no id")
	}

	t := Template{
		ID:      yl.ID,
		Name:    yl.Name,
		Blocks:  make([]BlockSpec, 0, len(yl.Blocks)),
		Enemies: make([]EnemySpec, 0, len(yl.Enemies)),
	}
	if t.Name == "" {
		t.Name = "Level " + yl.ID
	}

	for i, b := range yl.Blocks {
		mat := Material(b.Material)
		if mat == "" {
			mat = MaterialWood
		}
		props, ok := mat.Props()
		if !ok {
			return Template{}, fmt.Errorf("block %d: unknown material %q", i, b.Material)
		}

		spec := BlockSpec{
			X: b.X, Y: b.Y, W: b.W, H: b.H,
			Material:   mat,
			Mass:       b.Mass,
			Friction:   props.Friction,
			Bounciness: props.Bounciness,
		}
		if spec.Mass == 0 {
			spec.Mass = AreaMass(b.W, b.H, props.Density)
		}
		if b.Friction != nil {
			spec.Friction = *b.Friction
		}
		if b.Bounciness != nil {
			spec.Bounciness = *b.Bounciness
		}
		t.Blocks = append(t.Blocks, spec)
	}

	for _, e := range yl.Enemies {
		t.Enemies = append(t.Enemies, EnemySpec{X: e.X, Y: e.Y, Radius: e.Radius, Health: e.Health})
	}

	return t, nil
}
