package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifficultyDisabledKeepsBaseSpeed(t *testing.T) {
	d := NewDifficultyManager(DefaultFlappyConfig().Difficulty)

	assert.False(t, d.IsEnabled())
	assert.Equal(t, 2.2, d.Speed(2.2, 0, 0))
	assert.Equal(t, 2.2, d.Speed(2.2, 500, 100000))
}

func TestDifficultyScoreProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})

	assert.InDelta(t, 0.0, d.Level(0, 0), 1e-9)
	assert.InDelta(t, 0.5, d.Level(5, 0), 1e-9)
	assert.InDelta(t, 1.0, d.Level(50, 0), 1e-9, "level is clamped")

	assert.InDelta(t, 2.0, d.Speed(1.0, 10, 0), 1e-9)
}

func TestDifficultyTimeProgressionFromInitialLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
	})

	assert.InDelta(t, 0.5, d.Level(0, 0), 1e-9)
	assert.InDelta(t, 0.75, d.Level(0, 50), 1e-9)
}
