package drafts

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "drafts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndGet(t *testing.T) {
	store := openTemp(t)

	saved, err := store.Save("The quick brown fox jumps.", "Nature")
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, 5, saved.Words)

	got, err := store.Get(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "Nature", got.Topic)
	assert.Equal(t, "The quick brown fox jumps.", got.Body)
	assert.Equal(t, 5, got.Words)
	assert.WithinDuration(t, saved.CreatedAt, got.CreatedAt, time.Second)
}

func TestSaveRejectsEmptyBody(t *testing.T) {
	store := openTemp(t)

	_, err := store.Save("  \n ", "Nature")
	assert.ErrorIs(t, err, ErrEmpty)

	drafts, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, drafts)
}

func TestListNewestFirst(t *testing.T) {
	store := openTemp(t)

	first, err := store.Save("first draft", "")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	second, err := store.Save("second draft", "")
	require.NoError(t, err)

	drafts, err := store.List()
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	assert.Equal(t, second.ID, drafts[0].ID)
	assert.Equal(t, first.ID, drafts[1].ID)
}

func TestDelete(t *testing.T) {
	store := openTemp(t)

	d, err := store.Save("to be removed", "")
	require.NoError(t, err)

	require.NoError(t, store.Delete(d.ID))
	_, err = store.Get(d.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Delete(d.ID), ErrNotFound)
}

func TestReopenKeepsDrafts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drafts.db")

	store, err := Open(path)
	require.NoError(t, err)
	_, err = store.Save("persisted", "Travel")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()

	drafts, err := store.List()
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "persisted", drafts[0].Body)
}
