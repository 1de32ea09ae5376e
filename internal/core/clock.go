package core

import "time"

// maxCatchUp bounds how many fixed steps a single Advance may run,
// so a stalled frame cannot trigger an unbounded burst of updates.
const maxCatchUp = 8

// FixedStep converts variable frame time into fixed simulation steps.
// Simulation time only moves while the clock is running.
type FixedStep struct {
	step   time.Duration
	now    time.Duration
	acc    time.Duration
	paused bool
}

// NewFixedStep creates a clock that ticks hz times per simulated second.
func NewFixedStep(hz int) *FixedStep {
	if hz <= 0 {
		hz = 60
	}
	return &FixedStep{step: time.Second / time.Duration(hz)}
}

// Step returns the duration of one simulation tick.
func (c *FixedStep) Step() time.Duration {
	return c.step
}

// Now returns the current simulation time.
func (c *FixedStep) Now() time.Duration {
	return c.now
}

// Paused reports whether the clock is paused.
func (c *FixedStep) Paused() bool {
	return c.paused
}

// SetPaused pauses or resumes the clock. Time accumulated before
// pausing is discarded.
func (c *FixedStep) SetPaused(paused bool) {
	c.paused = paused
	c.acc = 0
}

// TogglePause flips the pause flag and returns the new value.
func (c *FixedStep) TogglePause() bool {
	c.SetPaused(!c.paused)
	return c.paused
}

// Advance adds elapsed wall time and invokes fn once per whole step,
// passing the simulation time of that step. It returns the number of steps run.
func (c *FixedStep) Advance(elapsed time.Duration, fn func(now time.Duration)) int {
	if c.paused || elapsed <= 0 {
		return 0
	}

	c.acc += elapsed
	steps := 0
	for c.acc >= c.step && steps < maxCatchUp {
		c.acc -= c.step
		c.now += c.step
		fn(c.now)
		steps++
	}
	if steps == maxCatchUp {
		c.acc = 0
	}
	return steps
}

// Tick runs exactly one step regardless of accumulated time.
// Used by headless drivers that do not track wall time.
func (c *FixedStep) Tick(fn func(now time.Duration)) {
	c.now += c.step
	fn(c.now)
}
