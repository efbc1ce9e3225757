package slingshot

import (
	"github.com/vovakirdan/tui-slingshot/internal/core"
	"github.com/vovakirdan/tui-slingshot/internal/games/slingshot/levels"
)

// BirdState is the lifecycle state of the projectile.
type BirdState int

const (
	BirdResting  BirdState = iota // At the anchor, waiting to be grabbed
	BirdDragging                  // Held by the pointer or keyboard aim
	BirdInFlight                  // Launched and integrating
)

func (s BirdState) String() string {
	switch s {
	case BirdResting:
		return "resting"
	case BirdDragging:
		return "dragging"
	case BirdInFlight:
		return "in_flight"
	default:
		return "unknown"
	}
}

// Bird is the projectile. Vel is zero unless the bird is in flight.
type Bird struct {
	Pos    core.Vec
	Vel    core.Vec
	Radius float64
	State  BirdState
}

// Launched reports whether the bird is in flight.
func (b Bird) Launched() bool {
	return b.State == BirdInFlight
}

// BlockState is the motion state of a block.
type BlockState int

const (
	BlockResting BlockState = iota // Never disturbed since spawn
	BlockFalling                   // Integrating motion
	BlockSettled                   // On the ground with all motion zeroed
)

func (s BlockState) String() string {
	switch s {
	case BlockResting:
		return "resting"
	case BlockFalling:
		return "falling"
	case BlockSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Block is a rectangular obstacle. Settled implies zero velocity and spin.
type Block struct {
	Rect       core.Box
	Start      core.Box // Spawn rectangle from the level template
	Vel        core.Vec
	AngularVel float64 // Degrees per 60 Hz frame
	Rotation   float64 // Degrees, visual only
	Mass       float64
	Friction   float64
	Bounciness float64
	Material   levels.Material
	State      BlockState
}

// Hittable reports whether the bird can knock the block.
func (b Block) Hittable() bool {
	return b.State != BlockFalling
}

// EnemyState is the lifecycle state of an enemy.
type EnemyState int

const (
	EnemyAlive   EnemyState = iota // Standing at its spawn point
	EnemyFalling                   // Knocked up by a block, integrating gravity
	EnemyLanded                    // Back on the ground after a knock
	EnemyDead                      // Health depleted or hit by the bird
)

func (s EnemyState) String() string {
	switch s {
	case EnemyAlive:
		return "alive"
	case EnemyFalling:
		return "falling"
	case EnemyLanded:
		return "landed"
	case EnemyDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Enemy is a circular target. Health <= 0 exactly when State is EnemyDead.
type Enemy struct {
	Pos       core.Vec
	Vel       core.Vec
	Radius    float64
	Health    int
	MaxHealth int
	HitTimer  float64 // Seconds until block hits count again
	State     EnemyState
}

// Active reports whether the enemy still counts toward the level.
func (e Enemy) Active() bool {
	return e.State != EnemyDead
}
