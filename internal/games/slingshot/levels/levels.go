// Package levels provides the static level templates of the slingshot game:
// block layouts with per-block physical parameters and enemy spawn points.
// Templates are plain data; the game spawns fresh entities from them on every
// level load or reset.
package levels

import "fmt"

// Capacity limits of a single level.
const (
	MaxBlocks  = 10
	MaxEnemies = 5
)

// Material names a block material with default physical parameters.
type Material string

const (
	MaterialWood  Material = "wood"
	MaterialStone Material = "stone"
	MaterialIce   Material = "ice"
)

// MaterialProps holds the defaults a material gives to a block.
type MaterialProps struct {
	Density    float64 // Multiplies area when mass is derived
	Friction   float64 // Horizontal velocity kept on ground contact
	Bounciness float64 // Vertical velocity kept (inverted) on ground contact
}

var materials = map[Material]MaterialProps{
	MaterialWood:  {Density: 1.0, Friction: 0.6, Bounciness: 0.3},
	MaterialStone: {Density: 2.0, Friction: 0.4, Bounciness: 0.1},
	MaterialIce:   {Density: 0.8, Friction: 0.9, Bounciness: 0.2},
}

// Props returns the material defaults and whether the material is known.
func (m Material) Props() (MaterialProps, bool) {
	p, ok := materials[m]
	return p, ok
}

// AreaMass derives a block mass from its area: 1 + area*density/10000.
func AreaMass(w, h, density float64) float64 {
	return 1 + w*h*density/10000
}

// BlockSpec is a block spawn rectangle with resolved physical parameters.
type BlockSpec struct {
	X, Y, W, H float64
	Material   Material
	Mass       float64
	Friction   float64
	Bounciness float64
}

// EnemySpec is an enemy spawn point. Zero Radius or Health means "use the
// game default".
type EnemySpec struct {
	X, Y   float64
	Radius float64
	Health int
}

// Template is a complete level definition.
type Template struct {
	ID       string
	Name     string
	Blocks   []BlockSpec
	Enemies  []EnemySpec
	FilePath string // Empty for built-in levels
}

// ValidationError contains details about a rejected template.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks a template against capacity limits and world bounds.
func (t Template) Validate(worldW, worldH float64) error {
	if len(t.Enemies) == 0 {
		return ValidationError{Code: "NO_ENEMIES", Message: fmt.Sprintf("level %s has no enemies", t.ID)}
	}
	if len(t.Enemies) > MaxEnemies {
		return ValidationError{
			Code:    "TOO_MANY_ENEMIES",
			Message: fmt.Sprintf("level %s has %d enemies, max %d", t.ID, len(t.Enemies), MaxEnemies),
		}
	}
	if len(t.Blocks) > MaxBlocks {
		return ValidationError{
			Code:    "TOO_MANY_BLOCKS",
			Message: fmt.Sprintf("level %s has %d blocks, max %d", t.ID, len(t.Blocks), MaxBlocks),
		}
	}

	for i, b := range t.Blocks {
		if b.W <= 0 || b.H <= 0 {
			return ValidationError{
				Code:    "BAD_BLOCK_SIZE",
				Message: fmt.Sprintf("level %s block %d has size %gx%g", t.ID, i, b.W, b.H),
			}
		}
		if b.X < 0 || b.Y < 0 || b.X+b.W > worldW || b.Y+b.H > worldH {
			return ValidationError{
				Code:    "BLOCK_OUT_OF_WORLD",
				Message: fmt.Sprintf("level %s block %d lies outside the world", t.ID, i),
			}
		}
		if b.Mass <= 0 {
			return ValidationError{
				Code:    "BAD_BLOCK_MASS",
				Message: fmt.Sprintf("level %s block %d has mass %g", t.ID, i, b.Mass),
			}
		}
		if b.Friction < 0 || b.Friction > 1 || b.Bounciness < 0 || b.Bounciness > 1 {
			return ValidationError{
				Code:    "BAD_BLOCK_RESPONSE",
				Message: fmt.Sprintf("level %s block %d friction/bounciness outside [0,1]", t.ID, i),
			}
		}
	}

	for i, e := range t.Enemies {
		if e.X < 0 || e.Y < 0 || e.X > worldW || e.Y > worldH {
			return ValidationError{
				Code:    "ENEMY_OUT_OF_WORLD",
				Message: fmt.Sprintf("level %s enemy %d lies outside the world", t.ID, i),
			}
		}
		if e.Health < 0 || e.Radius < 0 {
			return ValidationError{
				Code:    "BAD_ENEMY",
				Message: fmt.Sprintf("level %s enemy %d has negative health or radius", t.ID, i),
			}
		}
	}

	return nil
}
