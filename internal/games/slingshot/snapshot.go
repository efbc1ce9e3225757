package slingshot

import "math"

// Snapshot contains the complete simulation state of a world.
// Floats are stored as their IEEE-754 bits so two snapshots compare exactly.
type Snapshot struct {
	Tick       uint64
	LevelID    string
	Score      int
	Lives      int
	OutOfBirds bool

	// Bird is 6 values: X, Y, VX, VY, Radius, State
	BirdData []uint64

	// Each block is 16 values: X, Y, W, H, StartX, StartY, StartW, StartH,
	// VX, VY, AngularVel, Rotation, Mass, Friction, Bounciness, State
	BlockData []uint64

	// Each enemy is 9 values: X, Y, VX, VY, Radius, Health, MaxHealth, HitTimer, State
	EnemyData []uint64

	RNGState uint64
}

// Snapshot returns the current world state.
func (w *World) Snapshot() Snapshot {
	b := w.Bird
	birdData := []uint64{
		math.Float64bits(b.Pos.X()),
		math.Float64bits(b.Pos.Y()),
		math.Float64bits(b.Vel.X()),
		math.Float64bits(b.Vel.Y()),
		math.Float64bits(b.Radius),
		uint64(b.State), //#nosec G115 -- enum value
	}

	blockData := make([]uint64, 0, len(w.Blocks)*16)
	for _, blk := range w.Blocks {
		blockData = append(blockData,
			math.Float64bits(blk.Rect.X),
			math.Float64bits(blk.Rect.Y),
			math.Float64bits(blk.Rect.W),
			math.Float64bits(blk.Rect.H),
			math.Float64bits(blk.Start.X),
			math.Float64bits(blk.Start.Y),
			math.Float64bits(blk.Start.W),
			math.Float64bits(blk.Start.H),
			math.Float64bits(blk.Vel.X()),
			math.Float64bits(blk.Vel.Y()),
			math.Float64bits(blk.AngularVel),
			math.Float64bits(blk.Rotation),
			math.Float64bits(blk.Mass),
			math.Float64bits(blk.Friction),
			math.Float64bits(blk.Bounciness),
			uint64(blk.State), //#nosec G115 -- enum value
		)
	}

	enemyData := make([]uint64, 0, len(w.Enemies)*9)
	for _, e := range w.Enemies {
		enemyData = append(enemyData,
			math.Float64bits(e.Pos.X()),
			math.Float64bits(e.Pos.Y()),
			math.Float64bits(e.Vel.X()),
			math.Float64bits(e.Vel.Y()),
			math.Float64bits(e.Radius),
			uint64(e.Health),    //#nosec G115 -- health is clamped at zero
			uint64(e.MaxHealth), //#nosec G115 -- at least one on spawn
			math.Float64bits(e.HitTimer),
			uint64(e.State), //#nosec G115 -- enum value
		)
	}

	return Snapshot{
		Tick:       w.Tick,
		LevelID:    w.template.ID,
		Score:      w.Score,
		Lives:      w.Lives,
		OutOfBirds: w.OutOfBirds,
		BirdData:   birdData,
		BlockData:  blockData,
		EnemyData:  enemyData,
		RNGState:   w.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, r := range snap.LevelID {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	if snap.OutOfBirds {
		h = h*31 + 1
	}

	for _, v := range snap.BirdData {
		h = h*31 + v
	}
	for _, v := range snap.BlockData {
		h = h*31 + v
	}
	for _, v := range snap.EnemyData {
		h = h*31 + v
	}

	h = h*31 + snap.RNGState

	return h
}
