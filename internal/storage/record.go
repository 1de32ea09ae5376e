package storage

import "github.com/vovakirdan/tui-flappy/internal/scoring"

// Record binds one key of a Store to the scoring interfaces.
type Record struct {
	store *Store
	key   string
}

// Record returns the best-score record stored under key.
func (s *Store) Record(key string) *Record {
	return &Record{store: s, key: key}
}

// Key returns the record key.
func (r *Record) Key() string {
	return r.key
}

// Load implements scoring.BestStore.
func (r *Record) Load() (int, error) {
	return r.store.Best(r.key)
}

// Save implements scoring.BestStore.
func (r *Record) Save(best int) error {
	return r.store.SetBest(r.key, best)
}

// RecordRun implements scoring.RunRecorder.
func (r *Record) RecordRun(score int) error {
	_, err := r.store.SaveRun(r.key, score)
	return err
}

var (
	_ scoring.BestStore   = (*Record)(nil)
	_ scoring.RunRecorder = (*Record)(nil)
)
