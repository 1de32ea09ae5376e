package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignalCollapsesRaises(t *testing.T) {
	var s Signal

	assert.False(t, s.Take(), "fresh signal should be empty")

	s.Raise()
	s.Raise()
	s.Raise()
	assert.True(t, s.Pending())

	assert.True(t, s.Take())
	assert.False(t, s.Take(), "multiple raises must collapse to one take")
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "Activate", ActionActivate.String())
	assert.Equal(t, "Pause", ActionPause.String())
	assert.Equal(t, "Unknown", Action(99).String())
}

func TestParseColor(t *testing.T) {
	assert.Equal(t, ColorGreen, ParseColor("green"))
	assert.Equal(t, ColorOrange, ParseColor("orange"))
	assert.Equal(t, ColorDefault, ParseColor("chartreuse"))
}
