package flappy

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// AvatarFrames is the number of cosmetic animation frames.
const AvatarFrames = 3

// Avatar is the player-controlled bird. X never changes; Y is the center.
type Avatar struct {
	X     float64
	Y     float64
	VY    float64
	Frame int

	frameTimer time.Duration
}

// stepAvatar integrates one tick. Gravity always applies; a flap then
// overrides the velocity outright, so repeated flaps never stack.
func (g *Game) stepAvatar(flap bool, dt time.Duration) {
	a := &g.avatar

	a.VY += g.cfg.Physics.Gravity
	if flap {
		a.VY = g.cfg.Physics.FlapImpulse
	}
	a.Y += a.VY

	a.frameTimer += dt
	if a.frameTimer > time.Duration(g.cfg.Physics.FrameMs)*time.Millisecond {
		a.Frame = (a.Frame + 1) % AvatarFrames
		a.frameTimer = 0
	}
}

// checkBounds applies the ground (terminal) and ceiling (soft) limits.
func (g *Game) checkBounds() {
	a := &g.avatar
	half := g.cfg.Avatar.HalfHeight
	groundY := g.cfg.Field.GroundY

	if a.Y+half >= groundY {
		a.Y = groundY - half
		g.end()
	}

	if top := g.cfg.Physics.TopLimit; a.Y < top {
		a.Y = top
		a.VY = 0
	}
}

// avatarRect returns the avatar's collision box.
func (g *Game) avatarRect() core.Rect {
	hb := g.cfg.Avatar.Hitbox
	return core.NewRect(g.avatar.X+hb.OffsetX, g.avatar.Y+hb.OffsetY, hb.Width, hb.Height)
}
