package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/shotgun/internal/errors"
)

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("small file", func(t *testing.T) {
		path := filepath.Join(dir, "post.md")
		require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

		data, err := ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("exactly the limit", func(t *testing.T) {
		path := filepath.Join(dir, "limit.md")
		require.NoError(t, os.WriteFile(path, make([]byte, MaxReadSize), 0o644))

		data, err := ReadFile(path)
		require.NoError(t, err)
		assert.Len(t, data, int(MaxReadSize))
	})

	t.Run("over the limit", func(t *testing.T) {
		path := filepath.Join(dir, "big.md")
		require.NoError(t, os.WriteFile(path, make([]byte, MaxReadSize+1), 0o644))

		_, err := ReadFile(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrTooLarge))
	})

	t.Run("missing", func(t *testing.T) {
		_, err := ReadFile(filepath.Join(dir, "nope.md"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "draft.md")

	require.NoError(t, WriteFile(path, []byte("first"), 0o644))
	require.NoError(t, WriteFile(path, []byte("second"), 0o600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "x.yaml"), []byte("x"), 0o600)
	assert.Error(t, err)
}

func TestWriteFile_KeepsOldContentOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

	// A directory at the target makes the final rename fail.
	target := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(target, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep"), []byte("x"), 0o600))
	require.Error(t, WriteFile(target, []byte("new"), 0o600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), "."), "leftover temp file %s", e.Name())
	}
}

func TestWriteYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	v := map[string]any{
		"version":           1,
		"default_platforms": []string{"twitter", "discord"},
	}

	require.NoError(t, WriteYAML(path, v, 0o600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "default_platforms:\n  - twitter\n  - discord\nversion: 1\n", string(data))
}

func TestWriteYAML_Unencodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	err := WriteYAML(path, map[string]any{"f": func() {}}, 0o600)
	require.Error(t, err)
	assert.NoFileExists(t, path)
}
