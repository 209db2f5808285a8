package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, Write("hello\nworld\n", path, false))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld\n", got)

	require.NoError(t, Write("replaced", path, false))
	got, err = Read(path)
	require.NoError(t, err)
	assert.Equal(t, "replaced", got)
}

func TestReadMissing(t *testing.T) {
	t.Parallel()

	_, err := Read(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrReadFailed)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.False(t, errors.Is(err, ErrWriteFailed))

	var fileErr *FileError
	require.ErrorAs(t, err, &fileErr)
	assert.Equal(t, "read", fileErr.Op)
}

func TestWriteFailure(t *testing.T) {
	t.Parallel()

	err := Write("x", filepath.Join(t.TempDir(), "no", "such", "dir", "f.txt"), false)
	require.ErrorIs(t, err, ErrWriteFailed)
	assert.Contains(t, err.Error(), "failed to write contents to file")
}

func TestExpandHome(t *testing.T) {
	t.Parallel()

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	tests := []struct {
		in, want string
	}{
		{"~", home},
		{"~/notes.txt", filepath.Join(home, "notes.txt")},
		{"/tmp/~notes", "/tmp/~notes"},
		{"relative/path", "relative/path"},
	}
	for _, tt := range tests {
		got, err := expandHome(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

// Not parallel: changes the working directory.
func TestWriteInCurrentDir(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NoError(t, Write("content", "out.txt", true))
	data, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	require.NoError(t, err)
	require.Equal(t, "content", string(data))
}
