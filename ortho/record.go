// Package ortho acquires ortholog pair records for synteny block
// construction. Sources (TSV files, a homology database) all produce the
// same normalized synteny.Pair values: strand codes reduced to +/-, interval
// endpoints swapped when they arrive reversed. A record that cannot be
// normalized aborts the load with a MalformedRecordError naming the record;
// silently skipping it would corrupt downstream rank assignment.
package ortho

import (
	"fmt"
	"strconv"

	"github.com/mgijax/bio-synteny/synteny"
)

// Record is one raw ortholog pair row as delivered by a pair source.
// Coordinates and strands are kept as strings until Pair() validates them.
type Record struct {
	SymbolA string
	ChromA  string
	StartA  string
	EndA    string
	StrandA string

	SymbolB string
	ChromB  string
	StartB  string
	EndB    string
	StrandB string
}

// MalformedRecordError reports a record with a missing or non-numeric
// coordinate, or an unrecognized strand code. The offending record is
// identified by gene symbol and chromosome.
type MalformedRecordError struct {
	Symbol string
	Chrom  string
	Field  string
	Value  string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("ortho: malformed record %s (chromosome %s): bad %s %q",
		e.Symbol, e.Chrom, e.Field, e.Value)
}

// parseStrand normalizes a strand code to +/-. Recognized codes are
// "+", "-", "f", "r", "forward", "reverse".
func parseStrand(code string) (synteny.Strand, bool) {
	switch code {
	case "+", "f", "forward":
		return synteny.Plus, true
	case "-", "r", "reverse":
		return synteny.Minus, true
	}
	return 0, false
}

// Pair validates and normalizes the record. Reversed intervals (end before
// start) are swapped; strand codes are reduced to +/-.
func (r *Record) Pair() (synteny.Pair, error) {
	var p synteny.Pair
	startA, endA, err := r.interval("A", r.StartA, r.EndA)
	if err != nil {
		return p, err
	}
	startB, endB, err := r.interval("B", r.StartB, r.EndB)
	if err != nil {
		return p, err
	}
	strandA, ok := parseStrand(r.StrandA)
	if !ok {
		return p, &MalformedRecordError{Symbol: r.SymbolA, Chrom: r.ChromA, Field: "strand", Value: r.StrandA}
	}
	strandB, ok := parseStrand(r.StrandB)
	if !ok {
		return p, &MalformedRecordError{Symbol: r.SymbolB, Chrom: r.ChromB, Field: "strand", Value: r.StrandB}
	}
	p = synteny.Pair{
		SymbolA: r.SymbolA,
		A:       synteny.Interval{Chrom: r.ChromA, Start: startA, End: endA},
		StrandA: strandA,
		SymbolB: r.SymbolB,
		B:       synteny.Interval{Chrom: r.ChromB, Start: startB, End: endB},
		StrandB: strandB,
	}
	return p, nil
}

func (r *Record) interval(genome, startStr, endStr string) (start, end int, err error) {
	symbol, chrom := r.SymbolA, r.ChromA
	if genome == "B" {
		symbol, chrom = r.SymbolB, r.ChromB
	}
	if start, err = parseCoord(startStr); err != nil {
		return 0, 0, &MalformedRecordError{Symbol: symbol, Chrom: chrom, Field: "start", Value: startStr}
	}
	if end, err = parseCoord(endStr); err != nil {
		return 0, 0, &MalformedRecordError{Symbol: symbol, Chrom: chrom, Field: "end", Value: endStr}
	}
	if end < start {
		start, end = end, start
	}
	return start, end, nil
}

func parseCoord(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v < 1 {
		return 0, fmt.Errorf("coordinate %d < 1", v)
	}
	return v, nil
}

// Pairs normalizes a batch of records, stopping at the first malformed one.
func Pairs(records []Record) ([]synteny.Pair, error) {
	pairs := make([]synteny.Pair, 0, len(records))
	for i := range records {
		p, err := records[i].Pair()
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}
