package core

import "sync/atomic"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionActivate          // Space or pointer press - start a run, or flap while running
	ActionPause             // P, Escape - pause/unpause the clock
	ActionScreenshot        // Ctrl+S - dump the current frame
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionActivate:
		return "Activate"
	case ActionPause:
		return "Pause"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Signal is a single-slot latch for the activate action.
// Any number of Raise calls between two Take calls collapse into one.
type Signal struct {
	pending atomic.Bool
}

// Raise latches the signal.
func (s *Signal) Raise() {
	s.pending.Store(true)
}

// Take consumes the latched signal, reporting whether one was pending.
func (s *Signal) Take() bool {
	return s.pending.Swap(false)
}

// Pending reports whether a signal is latched without consuming it.
func (s *Signal) Pending() bool {
	return s.pending.Load()
}
