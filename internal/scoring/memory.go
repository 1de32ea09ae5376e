package scoring

// MemoryStore keeps the best score in memory. Optional errors let callers
// exercise the failure paths of a real store.
type MemoryStore struct {
	Best    int
	Runs    []int
	Saves   int
	LoadErr error
	SaveErr error
}

// Load returns the stored best score or LoadErr.
func (m *MemoryStore) Load() (int, error) {
	if m.LoadErr != nil {
		return 0, m.LoadErr
	}
	return m.Best, nil
}

// Save stores the best score unless SaveErr is set.
func (m *MemoryStore) Save(best int) error {
	m.Saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Best = best
	return nil
}

// RecordRun appends a finished run.
func (m *MemoryStore) RecordRun(score int) error {
	m.Runs = append(m.Runs, score)
	return nil
}
