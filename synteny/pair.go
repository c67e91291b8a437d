package synteny

// Strand designates the DNA strand a gene lies on.
type Strand int8

const (
	// Plus is the forward strand.
	Plus Strand = 1
	// Minus is the reverse strand.
	Minus Strand = -1
)

func (s Strand) String() string {
	if s == Minus {
		return "-"
	}
	return "+"
}

// Interval is a closed, 1-based coordinate range on one chromosome of one
// genome. Strand is not part of the interval: a finished block spans
// double-stranded DNA and has no strand of its own.
type Interval struct {
	Chrom string
	Start int
	End   int
}

// Pair is one ortholog pair: a gene in genome A and its ortholog in genome B,
// with normalized coordinates (Start <= End) for both. Pairs are treated as
// immutable; derived per-run state lives on RankedPair.
type Pair struct {
	SymbolA string
	A       Interval
	StrandA Strand

	SymbolB string
	B       Interval
	StrandB Strand
}

// Orientation returns +1 if the pair's two genes lie on the same strand, -1
// otherwise.
func (p *Pair) Orientation() int {
	if p.StrandA == p.StrandB {
		return 1
	}
	return -1
}

// RankedPair is a surviving pair annotated with its 0-based position in each
// genome's (chromosome, start) order. BlockID is filled in when the pair is
// consumed into a block.
type RankedPair struct {
	Pair
	RankA   int
	RankB   int
	BlockID string
}

// Chromosome names compare as plain strings (so "10" sorts before "2"),
// matching the ordering of the upstream query.
func lessA(x, y *Pair) bool {
	if x.A.Chrom != y.A.Chrom {
		return x.A.Chrom < y.A.Chrom
	}
	return x.A.Start < y.A.Start
}

func lessB(x, y *Pair) bool {
	if x.B.Chrom != y.B.Chrom {
		return x.B.Chrom < y.B.Chrom
	}
	return x.B.Start < y.B.Start
}

func minInt(x, y int) int {
	if x < y {
		return x
	}
	return y
}

func maxInt(x, y int) int {
	if x > y {
		return x
	}
	return y
}
