package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFastaSimple(t *testing.T) {
	input := ">seq1\nATGC\n>seq2 desc\nGGTT\n"
	recs, err := ParseFasta(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "seq1", recs[0].Header)
	assert.Equal(t, "ATGC", recs[0].Sequence)
	assert.Equal(t, "seq2 desc", recs[1].Header)
	assert.Equal(t, "GGTT", recs[1].Sequence)
}

func TestParseFastaMultilineSequence(t *testing.T) {
	input := ">seq1\nATGC\nGGTT\n"
	recs, err := ParseFasta(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "ATGCGGTT", recs[0].Sequence)
}

func TestParseFastaEmptySequence(t *testing.T) {
	input := ">seq1\n>seq2\nACGT\n"
	recs, err := ParseFasta(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "", recs[0].Sequence)
	assert.Equal(t, "ACGT", recs[1].Sequence)
}

func TestParseFastaLeadingJunkIgnored(t *testing.T) {
	input := "not a header\n>seq1\nACGT\n"
	recs, err := ParseFasta(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "seq1", recs[0].Header)
}

func TestParseFastaEmptyInput(t *testing.T) {
	recs, err := ParseFasta(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, recs)
}
