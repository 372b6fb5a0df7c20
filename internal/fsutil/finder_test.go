package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRegularFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt", "._a.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "c.txt"), []byte("x"), 0644))

	files, err := ListRegularFiles(dir, "._")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.txt"),
	}, files)
}

func TestListRegularFiles_EmptyPrefixSkipsNothing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "._meta"), []byte("x"), 0644))

	files, err := ListRegularFiles(dir, "")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "._meta")}, files)
}

func TestListRegularFiles_FollowsSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(t.TempDir(), "real.txt")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0644))
	if err := os.Symlink(target, filepath.Join(dir, "link.txt")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, "dangling.txt")))

	files, err := ListRegularFiles(dir, "._")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "link.txt")}, files)
}

func TestListRegularFiles_MissingDir(t *testing.T) {
	_, err := ListRegularFiles(filepath.Join(t.TempDir(), "nope"), "._")
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
