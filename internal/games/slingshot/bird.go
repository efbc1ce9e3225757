package slingshot

import (
	"math"

	"github.com/vovakirdan/tui-slingshot/internal/core"
)

// KeyboardAimStep is how far one arrow press moves the bird while aiming.
const KeyboardAimStep = 12.0

// Aim is the aiming input for one step, in world coordinates.
type Aim struct {
	Pointer    core.Vec
	HasPointer bool
	Pressed    bool // Button went down this frame
	Down       bool // Button held
	Released   bool // Button went up this frame
	GrabRadius float64

	Nudge core.Vec // Keyboard aim offset for this frame
	Fire  bool     // Keyboard grab / release
}

// handleAim processes grab, drag and release for a resting or dragged bird.
func (w *World) handleAim(a Aim) {
	b := &w.Bird
	switch b.State {
	case BirdResting:
		if a.HasPointer && a.Pressed {
			radius := math.Max(b.Radius, a.GrabRadius)
			if core.PointInCircle(a.Pointer, b.Pos, radius) {
				b.State = BirdDragging
				b.Pos = w.clampPull(a.Pointer)
			}
		} else if a.Fire {
			b.State = BirdDragging
		} else if a.Nudge != (core.Vec{}) {
			b.State = BirdDragging
			b.Pos = w.clampPull(b.Pos.Add(a.Nudge))
		}

	case BirdDragging:
		if a.HasPointer && (a.Down || a.Released) {
			b.Pos = w.clampPull(a.Pointer)
		}
		if a.Nudge != (core.Vec{}) {
			b.Pos = w.clampPull(b.Pos.Add(a.Nudge))
		}
		if a.Released || a.Fire {
			w.launch()
		}
	}
}

// clampPull limits the drag distance from the anchor.
func (w *World) clampPull(p core.Vec) core.Vec {
	maxPull := w.cfg.Physics.MaxPull
	d := p.Sub(w.Anchor)
	if maxPull > 0 && d.Len() > maxPull {
		d = d.Normalize().Mul(maxPull)
	}
	return w.Anchor.Add(d)
}

// launchVelocity is the velocity the bird would leave the slingshot with.
func (w *World) launchVelocity() core.Vec {
	return w.Anchor.Sub(w.Bird.Pos).Mul(w.cfg.Physics.LaunchFactor)
}

// launch releases a dragged bird. A release without any pull puts the bird
// back on the anchor.
func (w *World) launch() {
	vel := w.launchVelocity()
	if vel == (core.Vec{}) {
		w.respawnBird()
		return
	}
	w.Bird.Vel = vel
	w.Bird.State = BirdInFlight
	w.emit(core.EventLaunch)
}

// integrateBird applies gravity and the ground bounce.
func (w *World) integrateBird(s float64) {
	p := w.cfg.Physics
	b := &w.Bird

	b.Vel[1] += p.Gravity * s
	b.Pos = b.Pos.Add(b.Vel.Mul(s))

	if b.Pos.Y()+b.Radius >= w.GroundY {
		b.Pos[1] = w.GroundY - b.Radius
		b.Vel[1] *= -p.BirdBounce
		if math.Abs(b.Vel.Y()) < p.BounceCutoff {
			b.Vel[1] = 0
		}
	}
}

// checkShotOver ends the shot when the bird has come to rest or left the
// world. A spare bird is put on the slingshot; otherwise the session is out
// of birds.
func (w *World) checkShotOver() {
	p := w.cfg.Physics
	b := w.Bird

	resting := math.Abs(b.Vel.X()) < p.RestThreshold && math.Abs(b.Vel.Y()) < p.RestThreshold
	outside := b.Pos.X() > w.Width || b.Pos.X() < 0 || b.Pos.Y() < 0
	if !resting && !outside {
		return
	}

	w.emit(core.EventLifeLost)
	if w.Lives > 1 {
		w.Lives--
		w.respawnBird()
		return
	}
	w.Lives = 0
	w.OutOfBirds = true
	w.respawnBird()
}
