package core

import "github.com/go-gl/mathgl/mgl64"

// Vec is a 2D point or vector in world units.
type Vec = mgl64.Vec2

// V builds a Vec from components.
func V(x, y float64) Vec {
	return Vec{x, y}
}

// Box is a float axis-aligned rectangle in world units.
// Unlike Rect it is used by the physics simulation, not the screen.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewBox creates a box with the given position and size.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Translate returns the box moved by d.
func (b Box) Translate(d Vec) Box {
	b.X += d.X()
	b.Y += d.Y()
	return b
}

// Overlaps reports whether two boxes share a region of positive area.
// Boxes that only touch along an edge do not overlap.
func (b Box) Overlaps(other Box) bool {
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Bottom() || other.Y >= b.Bottom() {
		return false
	}
	return true
}

// CirclesOverlap reports whether two circles touch or intersect.
func CirclesOverlap(c1 Vec, r1 float64, c2 Vec, r2 float64) bool {
	d := c1.Sub(c2)
	rr := r1 + r2
	return d.Dot(d) <= rr*rr
}

// CircleBoxOverlap reports whether a circle touches or intersects a box.
// Uses the closest point on the box to the circle center.
func CircleBoxOverlap(c Vec, r float64, b Box) bool {
	closest := Vec{
		ClampF(c.X(), b.X, b.Right()),
		ClampF(c.Y(), b.Y, b.Bottom()),
	}
	d := c.Sub(closest)
	return d.Dot(d) <= r*r
}

// PointInCircle reports whether p lies within radius r of c.
func PointInCircle(p, c Vec, r float64) bool {
	d := p.Sub(c)
	return d.Dot(d) <= r*r
}

// Sign returns -1, 0 or 1 matching the sign of v.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
