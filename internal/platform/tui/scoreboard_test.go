package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/scoring"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func TestScoreboardListsKeys(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.SetBest(UserKey("ada"), 7))
	require.NoError(t, store.SetBest(UserKey("bob"), 3))
	_, err = store.SaveRun(UserKey("ada"), 7)
	require.NoError(t, err)

	m := NewScoreboardModel(store, 80, 24)
	view := m.View()
	assert.Contains(t, view, "TOP RUNS - flappy_bird_scores_v1:ada")
	assert.Contains(t, view, "Best: 7")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	view = m.View()
	assert.Contains(t, view, "flappy_bird_scores_v1:bob")
	assert.Contains(t, view, "No runs recorded yet.")

	next, _ = m.Update(runeKey('r'))
	m = next.(ScoreboardModel)
	assert.Contains(t, m.View(), "RECENT RUNS")
}

func TestScoreboardEmptyStore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	m := NewScoreboardModel(store, 80, 24)

	assert.Contains(t, m.View(), scoring.StorageKey)
}

func TestUserKey(t *testing.T) {
	assert.Equal(t, "flappy_bird_scores_v1:ada", UserKey("ada"))
	assert.Equal(t, scoring.StorageKey, UserKey(""))
}
