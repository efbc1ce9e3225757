package slingshot

import (
	"github.com/vovakirdan/tui-slingshot/internal/core"
)

// collideBirdEnemies kills every live enemy the bird touches.
func (w *World) collideBirdEnemies() {
	b := w.Bird
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if !e.Active() || !core.CirclesOverlap(b.Pos, b.Radius, e.Pos, e.Radius) {
			continue
		}
		w.DamageEnemy(i, e.Health)
		w.Score += w.cfg.Gameplay.DirectKill
		w.emit(core.EventEnemyKilled)
	}
}

// collideBirdBlocks knocks every idle block the bird touches. The bird
// rebounds once per block hit, so two blocks in one frame flip it twice.
func (w *World) collideBirdBlocks() {
	p := w.cfg.Physics
	for i := range w.Blocks {
		blk := &w.Blocks[i]
		if !blk.Hittable() || !core.CircleBoxOverlap(w.Bird.Pos, w.Bird.Radius, blk.Rect) {
			continue
		}

		v := w.Bird.Vel
		push := core.Sign(v.X()) * v.Len() * p.ImpactTransfer / blk.Mass
		vel := core.V(push+float64(w.rng.Range(-3, 3)), -4)
		spin := float64(w.rng.Range(-20, 20)) / 10
		w.knockBlock(i, vel, spin)

		w.Score += w.cfg.Gameplay.BlockHit
		w.emit(core.EventBlockHit)
		w.Bird.Vel = v.Mul(-p.BirdRebound)
	}
}

// collideBlockChain lets falling blocks topple the untouched blocks they hit.
// A block knocked here falls from the next step on.
func (w *World) collideBlockChain() {
	for i := range w.Blocks {
		if w.Blocks[i].State != BlockFalling {
			continue
		}
		for j := range w.Blocks {
			if i == j || w.Blocks[j].State != BlockResting {
				continue
			}
			if !w.Blocks[i].Rect.Overlaps(w.Blocks[j].Rect) {
				continue
			}
			vel := core.V(float64(w.rng.Range(-1, 1)), -2)
			spin := float64(w.rng.Range(-10, 10)) / 10
			w.knockBlock(j, vel, spin)
		}
	}
}

// collideBlocksEnemies applies falling block damage to enemies standing in
// the way. Each enemy takes at most one hit per cooldown window.
func (w *World) collideBlocksEnemies() {
	p := w.cfg.Physics
	for i := range w.Blocks {
		blk := w.Blocks[i]
		if blk.State != BlockFalling {
			continue
		}
		for j := range w.Enemies {
			e := &w.Enemies[j]
			if e.State == EnemyFalling || e.State == EnemyDead || e.HitTimer > 0 {
				continue
			}
			if !core.CircleBoxOverlap(e.Pos, e.Radius, blk.Rect) {
				continue
			}

			e.HitTimer = p.EnemyHitCooldown
			if w.DamageEnemy(j, 1) {
				w.Score += w.cfg.Gameplay.BlockKill
				w.emit(core.EventEnemyKilled)
				continue
			}
			e.Vel = core.V(0, -p.EnemyKnockUpSpeed)
			e.State = EnemyFalling
			w.emit(core.EventEnemyHit)
		}
	}
}
