package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func TestFileExists(t *testing.T) {
	path := writeFile(t, "a.txt", []byte("hello"))
	assert.True(t, FileExists(path))
	assert.False(t, FileExists(path+".missing"))
	assert.False(t, FileExists(""))
}

func TestFileSize(t *testing.T) {
	path := writeFile(t, "a.txt", []byte("hello"))
	assert.Equal(t, int64(5), FileSize(path))
	assert.Equal(t, int64(-1), FileSize(path+".missing"))
}

func TestIsTextFile(t *testing.T) {
	t.Run("plain text", func(t *testing.T) {
		path := writeFile(t, "a.fa", []byte(">seq1\nACGT\n"))
		assert.True(t, IsTextFile(path))
	})

	t.Run("utf8 text", func(t *testing.T) {
		path := writeFile(t, "a.txt", []byte("séquence génomique\n"))
		assert.True(t, IsTextFile(path))
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, "empty.txt", nil)
		assert.True(t, IsTextFile(path))
	})

	t.Run("binary with NUL bytes", func(t *testing.T) {
		path := writeFile(t, "a.bin", []byte{0x00, 0x01, 0x02, 'A'})
		assert.False(t, IsTextFile(path))
	})

	t.Run("invalid utf8", func(t *testing.T) {
		path := writeFile(t, "a.bin", []byte{0xff, 0xfe, 0xfd})
		assert.False(t, IsTextFile(path))
	})

	t.Run("missing file", func(t *testing.T) {
		assert.False(t, IsTextFile(filepath.Join(t.TempDir(), "nope")))
	})
}
