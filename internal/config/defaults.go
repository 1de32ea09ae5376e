package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Field: FieldConfig{
			Width:   480,
			Height:  640,
			GroundY: 528,
		},
		Physics: PhysicsConfig{
			Gravity:       0.5,
			FlapImpulse:   -8.5,
			ObstacleSpeed: 2.2,
			TopLimit:      -20,
			StepHz:        60,
			FrameMs:       100,
		},
		Obstacles: ObstacleConfig{
			Width:           52,
			SolidHeight:     320,
			GapHeight:       150,
			SpawnIntervalMs: 1500,
			MinOffset:       80,
			MaxMarginOffset: 80,
			DespawnMargin:   50,
		},
		Avatar: AvatarConfig{
			X:          80,
			StartY:     320,
			HalfHeight: 12,
			Hitbox: Hitbox{
				OffsetX: -6,
				OffsetY: -12,
				Width:   34,
				Height:  24,
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.8,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
