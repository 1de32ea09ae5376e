package scoring

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreMissingFileIsZero(t *testing.T) {
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "scores.json"), StorageKey)
	require.NoError(t, err)

	best, err := fs.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, best)
}

func TestFileStoreSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.json")
	fs, err := NewFileStore(path, StorageKey)
	require.NoError(t, err)

	require.NoError(t, fs.Save(12))

	best, err := fs.Load()
	require.NoError(t, err)
	assert.Equal(t, 12, best)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"flappy_bird_scores_v1":{"best":12}}`, string(data))
}

func TestFileStoreKeepsOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	alice, _ := NewFileStore(path, StorageKey+":alice")
	bob, _ := NewFileStore(path, StorageKey+":bob")

	require.NoError(t, alice.Save(3))
	require.NoError(t, bob.Save(8))

	a, err := alice.Load()
	require.NoError(t, err)
	b, err := bob.Load()
	require.NoError(t, err)

	assert.Equal(t, 3, a)
	assert.Equal(t, 8, b)
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	fs, err := NewFileStore(path, StorageKey)
	require.NoError(t, err)

	_, err = fs.Load()
	assert.Error(t, err)

	// The tracker swallows the corruption and starts from zero.
	tr := NewTracker(fs, nil)
	assert.Equal(t, 0, tr.Best())

	// Saving replaces the corrupt document.
	tr.Increment()
	best, err := fs.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, best)
}
