package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	m := NewMemory()

	_, ok, err := m.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set(KeyProducts, `[{"id":"a"}]`))
	value, ok, err := m.Get(KeyProducts)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"a"}]`, value)

	// Overwrite wins.
	require.NoError(t, m.Set(KeyProducts, `[]`))
	value, _, _ = m.Get(KeyProducts)
	assert.Equal(t, `[]`, value)
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)

	_, ok, err := s.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(KeySales, `[{"id":"s1"}]`))
	require.NoError(t, s.Set(KeySales, `[{"id":"s1"},{"id":"s2"}]`))

	value, ok, err := s.Get(KeySales)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"s1"},{"id":"s2"}]`, value)

	// Blobs survive reopening the file.
	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	value, ok, err = reopened.Get(KeySales)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"s1"},{"id":"s2"}]`, value)
}
