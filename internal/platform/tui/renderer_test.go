package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// On an 80x24 screen the 480x640 field maps 6 units per column and
// 26.67 units per row: the avatar center lands on (13, 12), the ground on row 19.

func runningSnapshot(obstacles ...flappy.Obstacle) flappy.Snapshot {
	return flappy.Snapshot{
		Phase:     flappy.PhaseRunning,
		Avatar:    flappy.Avatar{X: 80, Y: 320},
		Obstacles: obstacles,
		Score:     3,
		Best:      5,
	}
}

func loadSheet(t *testing.T) *assets.Sheet {
	t.Helper()
	sheet, err := assets.Load("")
	require.NoError(t, err)
	return sheet
}

func TestRendererFallbackWithoutSheet(t *testing.T) {
	r := NewRenderer(config.DefaultFlappyConfig(), nil)
	s := core.NewScreen(80, 24)
	assert.False(t, r.Sprites())

	r.Draw(s, runningSnapshot(flappy.Obstacle{X: 240, GapY: 200}), false)

	avatar := s.GetCell(13, 11)
	assert.Equal(t, flatAvatar, avatar.Rune)
	assert.Equal(t, core.ColorBrightYellow, avatar.Color)

	pipe := s.GetCell(42, 3)
	assert.Equal(t, flatPipe, pipe.Rune)
	assert.Equal(t, core.ColorGreen, pipe.Color)
	assert.Equal(t, ' ', s.Get(42, 10), "the gap is empty")

	assert.Equal(t, flatGround, s.Get(0, 19))
	assert.Equal(t, flatGround, s.Get(79, 23))
	assert.Equal(t, ' ', s.Get(0, 18))
}

func TestRendererSprites(t *testing.T) {
	r := NewRenderer(config.DefaultFlappyConfig(), loadSheet(t))
	s := core.NewScreen(80, 24)
	require.True(t, r.Sprites())

	snap := runningSnapshot(flappy.Obstacle{X: 240, GapY: 200})
	snap.Avatar.Frame = 1
	r.Draw(s, snap, false)

	assert.Equal(t, "━█▶", string([]rune(s.Row(12))[12:15]))

	assert.Equal(t, '█', s.Get(42, 3))
	assert.Equal(t, '▀', s.Get(42, 6), "top pipe cap sits above the gap")
	assert.Equal(t, '▄', s.Get(42, 13), "bottom pipe cap sits below the gap")
	assert.Equal(t, core.ColorGreen, s.GetCell(42, 3).Color)

	ground := s.GetCell(5, 20)
	assert.Contains(t, []rune{'▓', '▒'}, ground.Rune)
	assert.Equal(t, core.ColorOrange, ground.Color)
}

func TestRendererHUDAndOverlays(t *testing.T) {
	r := NewRenderer(config.DefaultFlappyConfig(), nil)
	s := core.NewScreen(80, 24)

	r.Draw(s, runningSnapshot(), false)
	assert.Contains(t, s.Row(0), "Score: 3")
	assert.Contains(t, s.Row(0), "Best: 5")
	assert.NotContains(t, s.String(), "Press Space")

	r.Draw(s, runningSnapshot(), true)
	assert.Contains(t, s.Row(8), "PAUSED")

	idle := runningSnapshot()
	idle.Phase = flappy.PhaseIdle
	r.Draw(s, idle, false)
	assert.Contains(t, s.Row(10), "Press Space or click to start")

	ended := runningSnapshot()
	ended.Phase = flappy.PhaseEnded
	r.Draw(s, ended, false)
	assert.Contains(t, s.Row(8), "GAME OVER")
	assert.Contains(t, s.Row(10), "Score: 3  Best: 5")
}

func TestRendererClipsOffscreenObstacles(t *testing.T) {
	r := NewRenderer(config.DefaultFlappyConfig(), loadSheet(t))
	s := core.NewScreen(80, 24)

	assert.NotPanics(t, func() {
		r.Draw(s, runningSnapshot(
			flappy.Obstacle{X: -90, GapY: 80},
			flappy.Obstacle{X: 470, GapY: 297},
		), false)
	})
}

func TestRendererEmptyScreen(t *testing.T) {
	r := NewRenderer(config.DefaultFlappyConfig(), nil)
	s := core.NewScreen(0, 0)

	assert.NotPanics(t, func() { r.Draw(s, runningSnapshot(), false) })
}
