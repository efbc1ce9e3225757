package slingshot

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const scoreTweenSeconds = 0.4

// scoreCounter eases the displayed score toward the real one.
// It never feeds back into the simulation.
type scoreCounter struct {
	tween  *gween.Tween
	target int
	shown  float64
}

// Snap shows score immediately.
func (c *scoreCounter) Snap(score int) {
	c.tween = nil
	c.target = score
	c.shown = float64(score)
}

// Update advances the easing by dt seconds, retargeting when score changed.
func (c *scoreCounter) Update(dt float64, score int) {
	if score < c.target {
		c.Snap(score)
		return
	}
	if score != c.target {
		c.tween = gween.New(float32(c.shown), float32(score), scoreTweenSeconds, ease.OutQuad)
		c.target = score
	}
	if c.tween == nil {
		return
	}
	v, done := c.tween.Update(float32(dt))
	c.shown = float64(v)
	if done {
		c.tween = nil
		c.shown = float64(c.target)
	}
}

// Value returns the score to display.
func (c *scoreCounter) Value() int {
	return int(math.Round(c.shown))
}
