package slingshot

import (
	"math"

	"github.com/vovakirdan/tui-slingshot/internal/core"
)

// knockBlock puts a block into motion with the given velocity and spin.
// Settled blocks are woken up as well. A block spawned sunk into the ground
// is lifted onto it.
func (w *World) knockBlock(i int, vel core.Vec, spin float64) {
	b := &w.Blocks[i]
	if b.Rect.Bottom() > w.GroundY {
		b.Rect.Y = w.GroundY - b.Rect.H
	}
	b.Vel = vel
	b.AngularVel = spin
	b.State = BlockFalling
}

// integrateBlocks moves every falling block and resolves walls and ground.
func (w *World) integrateBlocks(s float64) {
	p := w.cfg.Physics
	air := math.Pow(p.AirDamping, s)
	spin := math.Pow(p.AngularDamping, s)

	for i := range w.Blocks {
		b := &w.Blocks[i]
		if b.State != BlockFalling {
			continue
		}

		b.Vel[1] += p.Gravity * b.Mass * s
		b.Vel = b.Vel.Mul(air)
		b.Rect = b.Rect.Translate(b.Vel.Mul(s))
		b.Rotation += b.AngularVel * s
		b.AngularVel *= spin

		if b.Rect.X < 0 {
			b.Rect.X = 0
			b.Vel[0] *= -p.WallBounce
		} else if b.Rect.Right() > w.Width {
			b.Rect.X = w.Width - b.Rect.W
			b.Vel[0] *= -p.WallBounce
		}

		if b.Rect.Bottom() >= w.GroundY {
			b.Rect.Y = w.GroundY - b.Rect.H
			b.Vel[1] *= -b.Bounciness
			b.Vel[0] *= b.Friction
			b.AngularVel *= 0.5

			if math.Abs(b.Vel.Y()) < p.SettleVertical && math.Abs(b.Vel.X()) < p.SettleHorizontal {
				b.Vel = core.Vec{}
				b.AngularVel = 0
				b.Rotation = 0
				b.State = BlockSettled
			}
		}
	}
}
