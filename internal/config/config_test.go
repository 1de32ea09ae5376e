package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultFlappyConfig(), cfg)
}

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultFlappyConfig().Validate())
	assert.Equal(t, 298.0, DefaultFlappyConfig().MaxGapOffset())
}

func TestValidateRejectsEmptyGapRange(t *testing.T) {
	cfg := DefaultFlappyConfig()
	cfg.Obstacles.MinOffset = cfg.MaxGapOffset()

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyGapRange)
}

func TestValidateRejectsBadGeometry(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
	}{
		{"zero field", func(c *FlappyConfig) { c.Field.Width = 0 }},
		{"ground below field", func(c *FlappyConfig) { c.Field.GroundY = c.Field.Height + 1 }},
		{"zero step rate", func(c *FlappyConfig) { c.Physics.StepHz = 0 }},
		{"zero gap", func(c *FlappyConfig) { c.Obstacles.GapHeight = 0 }},
		{"zero interval", func(c *FlappyConfig) { c.Obstacles.SpawnIntervalMs = 0 }},
		{"empty hitbox", func(c *FlappyConfig) { c.Avatar.Hitbox.Width = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadFlappyCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("physics:\n  gravity: 0.7\nobstacles:\n  gap_height: 170\n"), 0o600))

	cfg, err := LoadFlappy(path)
	require.NoError(t, err)

	assert.Equal(t, 0.7, cfg.Physics.Gravity)
	assert.Equal(t, 170.0, cfg.Obstacles.GapHeight)
	assert.Equal(t, -8.5, cfg.Physics.FlapImpulse, "unspecified keys keep their defaults")
}

func TestLoadFlappyErrors(t *testing.T) {
	_, err := LoadFlappy(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("physics: [unclosed"), 0o600))
	_, err = LoadFlappy(bad)
	assert.Error(t, err)
}

func TestLoadValidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("obstacles:\n  min_offset: 400\n"), 0o600))

	_, err := Load(path, "")
	assert.ErrorIs(t, err, ErrEmptyGapRange)
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	data, err := Marshal(DefaultFlappyConfig())
	require.NoError(t, err)

	cfg, err := parse(data)
	require.NoError(t, err)
	assert.Equal(t, DefaultFlappyConfig(), cfg)
}

func TestPresets(t *testing.T) {
	_, err := ParsePreset("brutal")
	assert.Error(t, err)

	p, err := ParsePreset("hard")
	require.NoError(t, err)

	cfg := DefaultFlappyConfig()
	ApplyPreset(&cfg, p)
	assert.True(t, cfg.Difficulty.Enabled)
	assert.Equal(t, 0.7, cfg.Difficulty.InitialLevel)

	ApplyPreset(&cfg, DifficultyFixed)
	assert.False(t, cfg.Difficulty.Enabled)

	before := cfg
	ApplyPreset(&cfg, "")
	assert.Equal(t, before, cfg)
}
