// Package fileutil provides file-system level checks used by the suites.
package fileutil

import (
	"bytes"
	"io"
	"os"
	"unicode/utf8"
)

// textSampleSize is how much of the file IsTextFile inspects.
const textSampleSize = 8 * 1024

// FileExists reports whether a file exists at the given path.
func FileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// FileSize returns the size of the file in bytes, or -1 if it does not exist.
func FileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return -1
	}
	return info.Size()
}

// IsTextFile reports whether the leading sample of the file looks like text:
// valid UTF-8 with no NUL bytes. An empty file counts as text.
func IsTextFile(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, textSampleSize)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return false
	}
	sample := buf[:n]
	if bytes.IndexByte(sample, 0) >= 0 {
		return false
	}
	if n == textSampleSize {
		// A full sample may end mid-rune; drop up to three trailing bytes
		// of a truncated sequence before validating.
		for i := 0; i < utf8.UTFMax-1 && len(sample) > 0 && !utf8.Valid(sample); i++ {
			sample = sample[:len(sample)-1]
		}
	}
	return utf8.Valid(sample)
}
