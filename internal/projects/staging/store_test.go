package staging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutAndRead(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "uploads"))

	err := store.Put("proj-1", []byte(`{"id":"proj-1"}`))
	require.NoError(t, err)

	raw, err := store.Read("proj-1")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"proj-1"}`, string(raw))
}

func TestPutOverwritesExistingEntry(t *testing.T) {
	store := NewStore(t.TempDir())

	require.NoError(t, store.Put("proj-1", []byte("first")))
	require.NoError(t, store.Put("proj-1", []byte("second")))

	raw, err := store.Read("proj-1")
	require.NoError(t, err)
	assert.Equal(t, "second", string(raw))

	ids, err := store.ListPending()
	require.NoError(t, err)
	assert.Equal(t, []string{"proj-1"}, ids)
}

func TestPutRejectsPathSeparators(t *testing.T) {
	store := NewStore(t.TempDir())

	err := store.Put("../evil", []byte("x"))
	assert.Error(t, err)
}

func TestListPendingFiltersBySuffix(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	require.NoError(t, store.Put("a", []byte("{}")))
	require.NoError(t, store.Put("b", []byte("{}")))

	// Stray files without the entry suffix are not pending work.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub_config.json"), 0o755))

	ids, err := store.ListPending()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, ids)
}

func TestListPendingMissingDir(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "never-created"))

	ids, err := store.ListPending()
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestRemoveIsIdempotent(t *testing.T) {
	store := NewStore(t.TempDir())

	require.NoError(t, store.Put("proj-1", []byte("{}")))
	require.NoError(t, store.Remove("proj-1"))

	// Second removal of the same id is a no-op.
	assert.NoError(t, store.Remove("proj-1"))
	assert.NoError(t, store.Remove("never-staged"))
}
