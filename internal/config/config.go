// Package config provides YAML-based configuration loading for the slingshot
// game: world geometry, physics constants, scoring and difficulty presets.
package config

// SlingshotConfig contains all tunable parameters of the slingshot game.
type SlingshotConfig struct {
	World    SlingshotWorld    `yaml:"world"`
	Physics  SlingshotPhysics  `yaml:"physics"`
	Bird     SlingshotBird     `yaml:"bird"`
	Gameplay SlingshotGameplay `yaml:"gameplay"`
}

// SlingshotWorld defines the world geometry in world units.
type SlingshotWorld struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"` // Top of the ground line
	AnchorX float64 `yaml:"anchor_x"` // Slingshot anchor
	AnchorY float64 `yaml:"anchor_y"`
}

// SlingshotPhysics defines simulation constants.
// Velocities are expressed in world units per 60 Hz frame.
type SlingshotPhysics struct {
	Gravity float64 `yaml:"gravity"`

	// PreviewGravity drives the aiming preview only and is steeper than Gravity.
	PreviewGravity float64 `yaml:"preview_gravity"`
	PreviewPoints  int     `yaml:"preview_points"`
	PreviewStep    float64 `yaml:"preview_step"`

	LaunchFactor float64 `yaml:"launch_factor"`
	MaxPull      float64 `yaml:"max_pull"`

	// Bird response: vertical restitution on the ground, velocity factor after
	// striking a block, and the speeds below which a bounce or a shot ends.
	BirdBounce    float64 `yaml:"bird_bounce"`
	BirdRebound   float64 `yaml:"bird_rebound"`
	BounceCutoff  float64 `yaml:"bounce_cutoff"`
	RestThreshold float64 `yaml:"rest_threshold"`

	// Block response. Damping factors apply per 60 Hz frame.
	ImpactTransfer   float64 `yaml:"impact_transfer"`
	AirDamping       float64 `yaml:"air_damping"`
	AngularDamping   float64 `yaml:"angular_damping"`
	WallBounce       float64 `yaml:"wall_bounce"`
	SettleVertical   float64 `yaml:"settle_vertical"`
	SettleHorizontal float64 `yaml:"settle_horizontal"`

	// Enemy response to falling blocks.
	EnemyHitCooldown  float64 `yaml:"enemy_hit_cooldown"`
	EnemyKnockUpSpeed float64 `yaml:"enemy_knock_up_speed"`

	// MaxFrameTime caps the seconds integrated in a single step.
	MaxFrameTime float64 `yaml:"max_frame_time"`
}

// SlingshotBird defines the projectile.
type SlingshotBird struct {
	Radius float64 `yaml:"radius"`
}

// SlingshotGameplay defines lives, scoring and enemy defaults.
type SlingshotGameplay struct {
	Lives       int     `yaml:"lives"`
	BlockHit    int     `yaml:"block_hit"`
	BlockKill   int     `yaml:"block_kill"`
	DirectKill  int     `yaml:"direct_kill"`
	EnemyHealth int     `yaml:"enemy_health"` // Used when a level leaves health unset
	HealthBonus int     `yaml:"health_bonus"` // Added to every enemy's resolved health
	EnemyRadius float64 `yaml:"enemy_radius"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a CLI string into a preset.
// Unknown values return an empty preset, meaning "leave config as loaded".
func ParseDifficulty(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
