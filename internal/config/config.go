// Package config provides YAML-based game configuration loading and
// difficulty management for the game.
package config

import (
	"errors"
	"fmt"
)

// ErrEmptyGapRange is returned when the obstacle gap cannot be placed anywhere
// above the ground with the configured margins.
var ErrEmptyGapRange = errors.New("gap placement range is empty")

// FlappyConfig contains all configuration for the game. All distances are
// world units (pixels of the reference field); speeds are per simulation tick.
type FlappyConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Avatar     AvatarConfig     `yaml:"avatar"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the visible playfield.
type FieldConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"`
}

// PhysicsConfig defines physics parameters.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`
	FlapImpulse   float64 `yaml:"flap_impulse"`
	ObstacleSpeed float64 `yaml:"obstacle_speed"`
	TopLimit      float64 `yaml:"top_limit"`
	StepHz        int     `yaml:"step_hz"`
	FrameMs       int     `yaml:"frame_ms"` // Cosmetic animation frame length
}

// ObstacleConfig defines obstacle geometry and spawning.
type ObstacleConfig struct {
	Width           float64 `yaml:"width"`
	SolidHeight     float64 `yaml:"solid_height"`
	GapHeight       float64 `yaml:"gap_height"`
	SpawnIntervalMs int     `yaml:"spawn_interval_ms"`
	MinOffset       float64 `yaml:"min_offset"`
	MaxMarginOffset float64 `yaml:"max_margin_offset"`
	DespawnMargin   float64 `yaml:"despawn_margin"`
}

// AvatarConfig defines the player avatar.
type AvatarConfig struct {
	X          float64 `yaml:"x"`
	StartY     float64 `yaml:"start_y"`
	HalfHeight float64 `yaml:"half_height"`
	Hitbox     Hitbox  `yaml:"hitbox"`
}

// Hitbox is the avatar collision box relative to the avatar position.
type Hitbox struct {
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// MaxGapOffset returns the upper bound of the gap placement range.
func (c FlappyConfig) MaxGapOffset() float64 {
	return c.Field.GroundY - c.Obstacles.GapHeight - c.Obstacles.MaxMarginOffset
}

// Validate checks the start-up invariants of a configuration.
func (c FlappyConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("config: field must have positive size, got %gx%g", c.Field.Width, c.Field.Height)
	case c.Field.GroundY <= 0 || c.Field.GroundY > c.Field.Height:
		return fmt.Errorf("config: ground_y %g outside field height %g", c.Field.GroundY, c.Field.Height)
	case c.Physics.StepHz <= 0:
		return fmt.Errorf("config: step_hz must be positive, got %d", c.Physics.StepHz)
	case c.Obstacles.Width <= 0 || c.Obstacles.SolidHeight <= 0 || c.Obstacles.GapHeight <= 0:
		return fmt.Errorf("config: obstacle width, solid_height and gap_height must be positive")
	case c.Obstacles.SpawnIntervalMs <= 0:
		return fmt.Errorf("config: spawn_interval_ms must be positive, got %d", c.Obstacles.SpawnIntervalMs)
	case c.Avatar.Hitbox.Width <= 0 || c.Avatar.Hitbox.Height <= 0:
		return fmt.Errorf("config: avatar hitbox must have positive size")
	}

	if c.Obstacles.MinOffset >= c.MaxGapOffset() {
		return fmt.Errorf("config: min_offset %g must be below %g: %w",
			c.Obstacles.MinOffset, c.MaxGapOffset(), ErrEmptyGapRange)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. An empty string keeps the
// configuration's own difficulty block.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
		if cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == "none" {
			cfg.Difficulty.Progression.Type = "score"
		}
	}
}
