// Package suites pulls in every check suite so importing it registers them all.
package suites

import (
	_ "datacheck/internal/suites/fasta"
	_ "datacheck/internal/suites/metadata"
	_ "datacheck/internal/suites/vcf"
)
