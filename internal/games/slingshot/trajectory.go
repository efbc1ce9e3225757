package slingshot

import "github.com/vovakirdan/tui-slingshot/internal/core"

// MaxTrajectoryPoints caps the length of an aiming preview.
const MaxTrajectoryPoints = 100

// CalculateTrajectory returns n points of the analytic projectile path from
// start with initial velocity vel under constant downward acceleration
// gravity. Point i is sampled at t = i*dt. n is clamped to
// [0, MaxTrajectoryPoints]. The function has no side effects.
func CalculateTrajectory(start, vel core.Vec, n int, dt, gravity float64) []core.Vec {
	n = core.Clamp(n, 0, MaxTrajectoryPoints)
	points := make([]core.Vec, n)
	for i := range n {
		t := float64(i) * dt
		points[i] = core.V(
			start.X()+vel.X()*t,
			start.Y()+vel.Y()*t+0.5*gravity*t*t,
		)
	}
	return points
}

// Preview returns the aiming preview for the current drag, or nil when the
// bird is not being aimed.
func (w *World) Preview() []core.Vec {
	if w.Bird.State != BirdDragging {
		return nil
	}
	p := w.cfg.Physics
	return CalculateTrajectory(w.Bird.Pos, w.launchVelocity(), p.PreviewPoints, p.PreviewStep, p.PreviewGravity)
}
