package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedStepAdvance(t *testing.T) {
	c := NewFixedStep(100) // 10ms per step

	var seen []time.Duration
	record := func(now time.Duration) { seen = append(seen, now) }

	assert.Equal(t, 0, c.Advance(5*time.Millisecond, record))
	assert.Equal(t, 1, c.Advance(5*time.Millisecond, record))
	assert.Equal(t, 2, c.Advance(25*time.Millisecond, record))

	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond, 30 * time.Millisecond}, seen)
	assert.Equal(t, 30*time.Millisecond, c.Now())
}

func TestFixedStepPauseFreezesTime(t *testing.T) {
	c := NewFixedStep(100)
	calls := 0
	count := func(time.Duration) { calls++ }

	c.Advance(7*time.Millisecond, count)
	assert.True(t, c.TogglePause())

	assert.Equal(t, 0, c.Advance(time.Second, count))
	assert.Equal(t, time.Duration(0), c.Now())

	assert.False(t, c.TogglePause())
	// Leftover time from before the pause is discarded.
	assert.Equal(t, 0, c.Advance(5*time.Millisecond, count))
	assert.Equal(t, 0, calls)
}

func TestFixedStepCatchUpIsBounded(t *testing.T) {
	c := NewFixedStep(100)
	steps := c.Advance(time.Minute, func(time.Duration) {})

	assert.Equal(t, maxCatchUp, steps)
	assert.Equal(t, 0, c.Advance(time.Millisecond, func(time.Duration) {}), "backlog is dropped after a capped advance")
}

func TestFixedStepTick(t *testing.T) {
	c := NewFixedStep(50)
	var got time.Duration
	c.Tick(func(now time.Duration) { got = now })

	assert.Equal(t, 20*time.Millisecond, got)
	assert.Equal(t, 20*time.Millisecond, c.Step())
}
