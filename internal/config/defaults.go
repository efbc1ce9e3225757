package config

import (
	_ "embed"
)

//go:embed defaults/slingshot.yaml
var defaultSlingshotYAML []byte

// DefaultSlingshotConfig returns the built-in slingshot configuration.
// It mirrors defaults/slingshot.yaml and is used when that fails to parse.
func DefaultSlingshotConfig() SlingshotConfig {
	return SlingshotConfig{
		World: SlingshotWorld{
			Width:   1536,
			Height:  800,
			GroundY: 550,
			AnchorX: 150,
			AnchorY: 400,
		},
		Physics: SlingshotPhysics{
			Gravity:           0.41,
			PreviewGravity:    0.5,
			PreviewPoints:     100,
			PreviewStep:       0.9,
			LaunchFactor:      0.2,
			MaxPull:           220,
			BirdBounce:        0.5,
			BirdRebound:       0.3,
			BounceCutoff:      1.0,
			RestThreshold:     0.5,
			ImpactTransfer:    0.15,
			AirDamping:        0.98,
			AngularDamping:    0.95,
			WallBounce:        0.5,
			SettleVertical:    1.0,
			SettleHorizontal:  0.5,
			EnemyHitCooldown:  0.5,
			EnemyKnockUpSpeed: 4,
			MaxFrameTime:      0.05,
		},
		Bird: SlingshotBird{
			Radius: 15,
		},
		Gameplay: SlingshotGameplay{
			Lives:       3,
			BlockHit:    10,
			BlockKill:   100,
			DirectKill:  150,
			EnemyHealth: 3,
			HealthBonus: 0,
			EnemyRadius: 15,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSlingshotYAML
}
