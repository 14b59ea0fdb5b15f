package content

import (
	"bufio"
	"io"
	"strings"
)

// FastaRecord represents a single FASTA record (header and sequence).
type FastaRecord struct {
	Header   string
	Sequence string
}

// ParseFasta reads FASTA records from r. Lines beginning with '>' denote
// headers; subsequent sequence lines are concatenated.
func ParseFasta(r io.Reader) ([]FastaRecord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var records []FastaRecord
	var current *FastaRecord
	var seq strings.Builder
	flush := func() {
		if current != nil {
			current.Sequence = seq.String()
			records = append(records, *current)
			seq.Reset()
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, ">") {
			flush()
			current = &FastaRecord{Header: strings.TrimSpace(line[1:])}
			continue
		}
		if current != nil {
			seq.WriteString(strings.TrimSpace(line))
		}
	}
	flush()
	return records, scanner.Err()
}
