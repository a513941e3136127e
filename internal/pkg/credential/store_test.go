package credential

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "petbloom", "credential")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	// Empty before anything is saved.
	tok, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, tok)

	require.NoError(t, store.Save("tok1"))
	tok, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok1", tok)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, store.Clear())
	tok, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestFileStoreClearIsIdempotent(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "credential"))
	require.NoError(t, err)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
}

func TestFileStoreTrimsTrailingWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credential")
	require.NoError(t, os.WriteFile(path, []byte("tok1\n"), 0o600))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	tok, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok1", tok)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	tok, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, tok)

	require.NoError(t, store.Save("tok1"))
	tok, _ = store.Load()
	assert.Equal(t, "tok1", tok)

	require.NoError(t, store.Clear())
	tok, _ = store.Load()
	assert.Empty(t, tok)
}
