package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.fa")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLineLengthCheck(t *testing.T) {
	long := strings.Repeat("A", 85)
	path := writeFile(t, ">seq1\n"+long+"\nACGT\n")

	warnings, err := LineLengthCheck(path, 80)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, "Line 2 is longer than 80 characters.", warnings[0])
}

func TestLineLengthCheckTrailingWhitespaceIgnored(t *testing.T) {
	line := strings.Repeat("A", 80) + "   "
	path := writeFile(t, line+"\n")

	warnings, err := LineLengthCheck(path, 80)
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestAllowedCharacterCheck(t *testing.T) {
	t.Run("clean file", func(t *testing.T) {
		path := writeFile(t, ">seq1\nACGTACGT\n")
		line, err := AllowedCharacterCheck(path, NucleotideChars)
		require.NoError(t, err)
		assert.Equal(t, 0, line)
	})

	t.Run("bad character reports line number", func(t *testing.T) {
		path := writeFile(t, ">seq1\nACGT\nAC7GT\n")
		line, err := AllowedCharacterCheck(path, NucleotideChars)
		require.NoError(t, err)
		assert.Equal(t, 3, line)
	})

	t.Run("header lines are skipped", func(t *testing.T) {
		path := writeFile(t, ">seq1 {weird} header!\nACGT\n")
		line, err := AllowedCharacterCheck(path, NucleotideChars)
		require.NoError(t, err)
		assert.Equal(t, 0, line)
	})

	t.Run("lower case sequence allowed", func(t *testing.T) {
		path := writeFile(t, ">seq1\nacgt\n")
		line, err := AllowedCharacterCheck(path, NucleotideChars)
		require.NoError(t, err)
		assert.Equal(t, 0, line)
	})
}

func TestDetermineFastaType(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected FastaType
	}{
		{"nucleotide by U", ">s\nACGU\n", TypeNucleotide},
		{"protein by E", ">s\nMEEPQSDPSV\n", TypeProtein},
		{"ambiguous ACGT only", ">s\nACGT\n", TypeUnknown},
		{"empty file", "", TypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.content)
			got, err := DetermineFastaType(path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEndsWithNewline(t *testing.T) {
	t.Run("with newline", func(t *testing.T) {
		path := writeFile(t, ">s\nACGT\n")
		ok, err := EndsWithNewline(path)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("without newline", func(t *testing.T) {
		path := writeFile(t, ">s\nACGT")
		ok, err := EndsWithNewline(path)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, "")
		ok, err := EndsWithNewline(path)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
