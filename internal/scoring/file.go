package scoring

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// record is the JSON value stored under a key.
type record struct {
	Best int `json:"best"`
}

// FileStore keeps best scores in a JSON document that maps keys to records,
// e.g. {"flappy_bird_scores_v1": {"best": 12}}.
type FileStore struct {
	path string
	key  string
}

// NewFileStore creates a store for key in the JSON file at path.
// A leading ~ expands to the home directory.
func NewFileStore(path, key string) (*FileStore, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("scoring: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return &FileStore{path: path, key: key}, nil
}

// Path returns the resolved file path.
func (f *FileStore) Path() string {
	return f.path
}

// Load returns the best score for the store's key. A missing file or key is 0.
func (f *FileStore) Load() (int, error) {
	doc, err := f.read()
	if err != nil {
		return 0, err
	}
	return doc[f.key].Best, nil
}

// Save writes the best score for the store's key, keeping other keys intact.
// A corrupt document is replaced.
func (f *FileStore) Save(best int) error {
	doc, err := f.read()
	if err != nil {
		doc = make(map[string]record)
	}
	doc[f.key] = record{Best: best}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("scoring: cannot encode scores: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("scoring: cannot create directory: %w", err)
	}

	// Write to a sibling file, then rename over the original.
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("scoring: cannot write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("scoring: cannot replace %s: %w", f.path, err)
	}
	return nil
}

func (f *FileStore) read() (map[string]record, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]record), nil
	}
	if err != nil {
		return nil, fmt.Errorf("scoring: cannot read %s: %w", f.path, err)
	}

	doc := make(map[string]record)
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("scoring: corrupt score file %s: %w", f.path, err)
	}
	return doc, nil
}
