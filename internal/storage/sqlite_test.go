package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteRoundtrip(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.Get(ApplicationKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ApplicationKey, `{"version":1}`))

	value, ok, err := store.Get(ApplicationKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"version":1}`, value)

	// Overwrite replaces the value.
	require.NoError(t, store.Set(ApplicationKey, `{"version":2}`))
	value, _, _ = store.Get(ApplicationKey)
	assert.Equal(t, `{"version":2}`, value)
}

func TestSQLiteRemove(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Set("k", "v"))
	require.NoError(t, store.Remove("k"))

	_, ok, err := store.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing an absent key is fine.
	assert.NoError(t, store.Remove("k"))
}

func TestSQLiteIdenticalSetIsNoop(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Set("k", "same"))

	var before string
	err := store.db.QueryRow(`SELECT updated_at FROM app_state WHERE key = 'k'`).Scan(&before)
	require.NoError(t, err)

	require.NoError(t, store.Set("k", "same"))

	var after string
	err = store.db.QueryRow(`SELECT updated_at FROM app_state WHERE key = 'k'`).Scan(&after)
	require.NoError(t, err)
	assert.Equal(t, before, after, "identical re-save must not touch the row")
}
