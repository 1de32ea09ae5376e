// Package scoring tracks the score of the current run and the best score
// across runs, writing the best score through to a durable store.
package scoring

import (
	"io"

	"github.com/charmbracelet/log"
)

// StorageKey is the fixed key the best-score record is stored under.
const StorageKey = "flappy_bird_scores_v1"

// BestStore is a durable home for the best score.
type BestStore interface {
	// Load returns the stored best score. An absent record is 0 with no error.
	Load() (int, error)
	// Save replaces the stored best score.
	Save(best int) error
}

// RunRecorder is implemented by stores that also keep a history of runs.
type RunRecorder interface {
	RecordRun(score int) error
}

// Tracker owns the score counters. Store failures are logged and swallowed:
// the game keeps running with whatever it has in memory.
type Tracker struct {
	store  BestStore
	logger *log.Logger
	score  int
	best   int
}

// NewTracker creates a tracker and loads the best score once.
// A nil store keeps the best score in memory only.
func NewTracker(store BestStore, logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	t := &Tracker{store: store, logger: logger}

	if store != nil {
		best, err := store.Load()
		switch {
		case err != nil:
			logger.Warn("could not load best score, starting from 0", "error", err)
		case best < 0:
			logger.Warn("ignoring negative stored best score", "best", best)
		default:
			t.best = best
		}
	}
	return t
}

// Score returns the score of the current run.
func (t *Tracker) Score() int {
	return t.score
}

// Best returns the best score seen since load.
func (t *Tracker) Best() int {
	return t.best
}

// Reset zeroes the current score. The best score is untouched.
func (t *Tracker) Reset() {
	t.score = 0
}

// Increment adds one point and writes the best score through when it grows.
func (t *Tracker) Increment() {
	t.score++
	if t.score <= t.best {
		return
	}
	t.best = t.score
	if t.store == nil {
		return
	}
	if err := t.store.Save(t.best); err != nil {
		t.logger.Warn("could not save best score", "best", t.best, "error", err)
	}
}

// Finish records the final score of a run when the store keeps history.
func (t *Tracker) Finish() {
	rec, ok := t.store.(RunRecorder)
	if !ok || t.score == 0 {
		return
	}
	if err := rec.RecordRun(t.score); err != nil {
		t.logger.Warn("could not record run", "score", t.score, "error", err)
	}
}
