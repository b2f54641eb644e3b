package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func onlyFile(t *testing.T, dir, name string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.Equal(t, name, entry.Name(), "unexpected file in directory")
	}
}

func TestAtomicFileCommit(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "hands.txt")

	f, err := CreateAtomic(path, 0644)
	require.NoError(t, err)
	defer f.Abort()

	_, err = f.Write([]byte("hand one\n"))
	require.NoError(t, err)
	_, err = f.Write([]byte("hand two\n"))
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "destination must not exist before commit")

	require.NoError(t, f.Commit())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hand one\nhand two\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
	onlyFile(t, dir, "hands.txt")

	_, err = f.Write([]byte("late"))
	assert.ErrorIs(t, err, os.ErrClosed)
}

func TestAtomicFileAbortKeepsOriginal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "hands.txt")
	require.NoError(t, os.WriteFile(path, []byte("previous run"), 0644))

	f, err := CreateAtomic(path, 0644)
	require.NoError(t, err)
	_, err = f.Write([]byte("partial"))
	require.NoError(t, err)
	f.Abort()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous run", string(data))
	onlyFile(t, dir, "hands.txt")
}

func TestAtomicFileOverwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.txt")
	require.NoError(t, os.WriteFile(path, []byte("initial"), 0600))

	f, err := CreateAtomic(path, 0644)
	require.NoError(t, err)
	_, err = f.Write([]byte("updated content"))
	require.NoError(t, err)
	require.NoError(t, f.Commit())
	f.Abort()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "updated content", string(data))
	onlyFile(t, dir, "test.txt")
}

func TestCreateAtomicInvalidDir(t *testing.T) {
	t.Parallel()

	_, err := CreateAtomic("/nonexistent/dir/test.txt", 0644)
	assert.Error(t, err)
}
