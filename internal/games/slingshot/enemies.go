package slingshot

import "github.com/vovakirdan/tui-slingshot/internal/core"

// tickHitTimers counts down the block hit cooldown of every enemy.
func (w *World) tickHitTimers(dt float64) {
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if e.HitTimer > 0 {
			e.HitTimer -= dt
			if e.HitTimer < 0 {
				e.HitTimer = 0
			}
		}
	}
}

// DamageEnemy removes dmg health from enemy i and reports whether the hit
// killed it. Out-of-range indexes and dead enemies are ignored.
func (w *World) DamageEnemy(i, dmg int) bool {
	if i < 0 || i >= len(w.Enemies) || dmg <= 0 {
		return false
	}
	e := &w.Enemies[i]
	if !e.Active() {
		return false
	}
	e.Health -= dmg
	if e.Health <= 0 {
		e.Health = 0
		e.Vel = core.Vec{}
		e.State = EnemyDead
		return true
	}
	return false
}

// integrateEnemies applies gravity to knocked enemies until they land.
func (w *World) integrateEnemies(s float64) {
	g := w.cfg.Physics.Gravity
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if e.State != EnemyFalling {
			continue
		}
		e.Vel[1] += g * s
		e.Pos[1] += e.Vel.Y() * s
		if e.Pos.Y()+e.Radius >= w.GroundY {
			e.Pos[1] = w.GroundY - e.Radius
			e.Vel = core.Vec{}
			e.State = EnemyLanded
		}
	}
}
