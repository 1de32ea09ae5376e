package tui

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Fallback glyphs used while no sprite sheet is ready.
const (
	flatAvatar = '█'
	flatPipe   = '█'
	flatGround = '▀'
)

// Renderer projects a snapshot of the world onto a character screen.
// World coordinates are scaled to the screen size on every frame.
type Renderer struct {
	cfg    config.FlappyConfig
	sheet  *assets.Sheet
	scroll int
}

// NewRenderer creates a renderer. A nil or incomplete sheet selects the
// flat-color fallback.
func NewRenderer(cfg config.FlappyConfig, sheet *assets.Sheet) *Renderer {
	return &Renderer{cfg: cfg, sheet: sheet}
}

// Sprites reports whether the renderer draws with the sprite sheet.
func (r *Renderer) Sprites() bool {
	return r.sheet.Ready()
}

// Draw renders one frame.
func (r *Renderer) Draw(s *core.Screen, snap flappy.Snapshot, paused bool) {
	s.Clear()
	if s.Width() == 0 || s.Height() == 0 {
		return
	}

	if snap.Phase == flappy.PhaseRunning && !paused {
		r.scroll = r.scrollAt(s, snap.Now)
	}

	for _, o := range snap.Obstacles {
		r.drawObstacle(s, o)
	}
	r.drawGround(s)
	r.drawAvatar(s, snap.Avatar)
	r.drawHUD(s, snap)

	switch {
	case paused:
		r.drawOverlay(s, "PAUSED", "Press P to resume")
	case snap.Phase == flappy.PhaseIdle:
		r.drawOverlay(s, "FLAPPY BIRD", "Press Space or click to start")
	case snap.Phase == flappy.PhaseEnded:
		r.drawOverlay(s,
			"GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.Best),
			"Press Space or click to restart",
		)
	}
}

func (r *Renderer) col(s *core.Screen, x float64) int {
	return int(math.Floor(x * float64(s.Width()) / r.cfg.Field.Width))
}

func (r *Renderer) row(s *core.Screen, y float64) int {
	return int(math.Floor(y * float64(s.Height()) / r.cfg.Field.Height))
}

// scrollAt converts the distance the ground has travelled into columns.
func (r *Renderer) scrollAt(s *core.Screen, now time.Duration) int {
	dist := r.cfg.Physics.ObstacleSpeed * float64(r.cfg.Physics.StepHz) * now.Seconds()
	return r.col(s, dist)
}

// fillWorldRect fills the cells covered by a world-space rectangle,
// clipped to [0, maxRow).
func (r *Renderer) fillWorldRect(s *core.Screen, rect core.Rect, maxRow int, ch rune, c core.Color) {
	x0, x1 := r.col(s, rect.X), r.col(s, rect.Right())
	y0, y1 := r.row(s, rect.Y), r.row(s, rect.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	y0 = core.Max(y0, 0)
	y1 = core.Min(y1, maxRow)
	s.FillRect(x0, y0, x1-x0, y1-y0, ch, c)
}

func (r *Renderer) drawObstacle(s *core.Screen, o flappy.Obstacle) {
	oc := r.cfg.Obstacles
	groundRow := r.row(s, r.cfg.Field.GroundY)
	top, bottom := o.TopRect(oc), o.BottomRect(oc)

	if !r.sheet.Ready() {
		r.fillWorldRect(s, top, groundRow, flatPipe, core.ColorGreen)
		r.fillWorldRect(s, bottom, groundRow, flatPipe, core.ColorGreen)
		return
	}

	_, color, _ := r.sheet.Colors()
	body := r.sheet.PipeBody()
	capTop, capBottom := r.sheet.PipeCaps()
	r.fillWorldRect(s, top, groundRow, body, color)
	r.fillWorldRect(s, bottom, groundRow, body, color)

	x0, x1 := r.col(s, top.X), r.col(s, top.Right())
	if capRow := r.row(s, top.Bottom()) - 1; capRow >= 0 {
		s.DrawHLine(x0, capRow, x1-x0, capTop, color)
	}
	if capRow := r.row(s, bottom.Y); capRow < groundRow {
		s.DrawHLine(x0, capRow, x1-x0, capBottom, color)
	}
}

func (r *Renderer) drawGround(s *core.Screen) {
	groundRow := r.row(s, r.cfg.Field.GroundY)

	if !r.sheet.Ready() {
		s.FillRect(0, groundRow, s.Width(), s.Height()-groundRow, flatGround, core.ColorOrange)
		return
	}

	_, _, color := r.sheet.Colors()
	for y := groundRow; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			s.SetColored(x, y, r.sheet.GroundRune(x+r.scroll+y), color)
		}
	}
}

func (r *Renderer) drawAvatar(s *core.Screen, a flappy.Avatar) {
	hb := r.cfg.Avatar.Hitbox

	if !r.sheet.Ready() {
		rect := core.NewRect(a.X+hb.OffsetX, a.Y+hb.OffsetY, hb.Width, hb.Height)
		r.fillWorldRect(s, rect, s.Height(), flatAvatar, core.ColorBrightYellow)
		return
	}

	frame := r.sheet.AvatarFrame(a.Frame)
	color, _, _ := r.sheet.Colors()
	x := r.col(s, a.X) - len([]rune(frame))/2
	s.DrawTextColored(x, r.row(s, a.Y), frame, color)
}

func (r *Renderer) drawHUD(s *core.Screen, snap flappy.Snapshot) {
	s.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorWhite)

	best := fmt.Sprintf("Best: %d", snap.Best)
	s.DrawTextColored(s.Width()-len(best)-1, 0, best, core.ColorYellow)
}

func (r *Renderer) drawOverlay(s *core.Screen, title string, lines ...string) {
	y := s.Height() / 3
	s.DrawTextCentered(y, title, core.ColorBrightYellow)
	for i, line := range lines {
		s.DrawTextCentered(y+2+i, line, core.ColorWhite)
	}
}
