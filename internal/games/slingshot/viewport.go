package slingshot

import "math"

// Viewport maps world coordinates onto a terminal grid.
// Row 0 holds the HUD, rows 1..Rows-2 show the sky down to the ground line and
// the last row is ground.
type Viewport struct {
	Cols, Rows     int
	ScaleX, ScaleY float64 // World units per cell
}

// NewViewport fits a world of width worldW with its ground at groundY into
// cols x rows cells.
func NewViewport(cols, rows int, worldW, groundY float64) Viewport {
	v := Viewport{Cols: cols, Rows: rows}
	if cols > 0 {
		v.ScaleX = worldW / float64(cols)
	}
	if rows > 2 {
		v.ScaleY = groundY / float64(rows-2)
	}
	return v
}

// ToScreen returns the cell containing world point (x, y).
func (v Viewport) ToScreen(x, y float64) (int, int) {
	if v.ScaleX == 0 || v.ScaleY == 0 {
		return 0, 0
	}
	col := int(math.Floor(x / v.ScaleX))
	row := 1 + int(math.Floor(y/v.ScaleY))
	return col, row
}

// ToWorld returns the world point at the center of cell (col, row).
func (v Viewport) ToWorld(col, row int) (float64, float64) {
	x := (float64(col) + 0.5) * v.ScaleX
	y := (float64(row-1) + 0.5) * v.ScaleY
	return x, y
}

// CellSize is the larger side of one cell in world units.
func (v Viewport) CellSize() float64 {
	return math.Max(v.ScaleX, v.ScaleY)
}

// GroundRow is the first terminal row below the ground line.
func (v Viewport) GroundRow() int {
	return v.Rows - 1
}
