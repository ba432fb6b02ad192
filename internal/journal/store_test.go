package journal

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledger/internal/accounts"
	"github.com/cleared-dev/ledger/internal/ledger"
)

func TestStoreSetCrossed(t *testing.T) {
	store := NewStore(DemoEntries())
	before := store.Snapshot()

	updated, err := store.SetCrossed("B-2024-003", true)
	require.NoError(t, err)
	assert.True(t, updated.IsCrossed)

	got, ok := store.Get("B-2024-003")
	require.True(t, ok)
	assert.True(t, got.IsCrossed)

	// The old snapshot is untouched.
	assert.False(t, before[2].IsCrossed)
}

func TestStoreSetCrossed_Unknown(t *testing.T) {
	store := NewStore(DemoEntries())
	_, err := store.SetCrossed("B-2099-001", true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ledger.ErrEntryNotFound)
	assert.Equal(t, DemoEntries(), store.Snapshot())
}

func TestStoreConcurrentToggles(t *testing.T) {
	store := NewStore(DemoEntries())

	var wg sync.WaitGroup
	for _, e := range DemoEntries() {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := store.SetCrossed(id, true)
			assert.NoError(t, err)
		}(e.EntryID)
	}
	wg.Wait()

	for _, e := range store.Snapshot() {
		assert.True(t, e.IsCrossed, "%s should be crossed", e.EntryID)
	}
}

func TestStoreSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), EntriesPath)
	store := NewStore(DemoEntries())
	_, err := store.SetCrossed("B-2024-001", true)
	require.NoError(t, err)
	require.NoError(t, store.Save(path))

	loaded, err := Load(path, accounts.NewService(accounts.DefaultChart()))
	require.NoError(t, err)
	require.Len(t, loaded.Snapshot(), 5)

	e, ok := loaded.Get("B-2024-001")
	require.True(t, ok)
	assert.True(t, e.IsCrossed)

	_, err = os.Stat(path + ".tmp")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_RejectsUnbalanced(t *testing.T) {
	entries := DemoEntries()
	entries[0].Lines = entries[0].Lines[:2]

	path := filepath.Join(t.TempDir(), "entries.csv")
	require.NoError(t, NewStore(entries).Save(path))

	_, err := Load(path, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidJournal)
	assert.Contains(t, err.Error(), "invariant 1 [B-2024-001]")
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStoreSave_FailureRemovesTempFile(t *testing.T) {
	dir := t.TempDir()
	// A non-empty directory at the target path makes the final rename fail.
	path := filepath.Join(dir, "entries.csv")
	require.NoError(t, os.MkdirAll(filepath.Join(path, "keep"), 0o755))

	err := NewStore(DemoEntries()).Save(path)
	assert.ErrorContains(t, err, "replacing journal")

	_, err = os.Stat(path + ".tmp")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
