package synteny

import "fmt"

// Block is one synteny block: a pair of genomic intervals, one per genome,
// covering a maximal run of collinear ortholog pairs with a single
// orientation.
type Block struct {
	// ID is "<chromosomeA>_<n>", n counting blocks started on that
	// chromosome from 1.
	ID string
	// Orientation is +1 if every merged pair had StrandA == StrandB, -1 if
	// every pair had opposite strands. Fixed at block creation.
	Orientation int
	// PairCount is the number of ortholog pairs merged into the block.
	PairCount int
	A         Interval
	B         Interval

	// FirstRankA is the genome-A rank of the first pair merged into the
	// block. LastRankB is the genome-B rank of the most recently merged
	// pair; during generation it drives the rank-adjacency test.
	FirstRankA int
	LastRankB  int
}

// StartRankB returns the genome-B rank of the block's lowest-ranked member.
// For forward blocks ranks ascend, so the last merged rank overshoots by
// PairCount-1; for reverse blocks they descend and the last one is already
// the lowest.
func (b *Block) StartRankB() int {
	if b.Orientation > 0 {
		return b.LastRankB - (b.PairCount - 1)
	}
	return b.LastRankB
}

type generator struct {
	blocks []*Block
	curr   *Block
	// Per genome-A chromosome counters for block naming, owned by the
	// generator rather than shared process state.
	counts map[string]int
}

// GenerateBlocks scans pairs, which must be in genome-A rank order, merging
// each pair into the current block when it remains collinear with it and
// starting a new block otherwise. Every pair lands in exactly one block and
// has its BlockID set in place; an empty input yields an empty block list.
func GenerateBlocks(pairs []RankedPair) []*Block {
	g := generator{counts: map[string]int{}}
	for i := range pairs {
		p := &pairs[i]
		if g.canMerge(p) {
			g.merge(p)
		} else {
			g.start(p)
		}
		p.BlockID = g.curr.ID
	}
	return g.blocks
}

// canMerge reports whether p can extend the current block: same chromosome
// pair, same orientation, and a genome-B rank immediately adjacent to the
// last merged pair's in the block's direction. The rank test is what keeps
// merged genes strictly collinear in both genomes.
func (g *generator) canMerge(p *RankedPair) bool {
	b := g.curr
	if b == nil {
		return false
	}
	return p.A.Chrom == b.A.Chrom &&
		p.B.Chrom == b.B.Chrom &&
		p.Orientation() == b.Orientation &&
		p.RankB == b.LastRankB+b.Orientation
}

func (g *generator) merge(p *RankedPair) {
	b := g.curr
	b.PairCount++
	b.A.Start = minInt(b.A.Start, p.A.Start)
	b.A.End = maxInt(b.A.End, p.A.End)
	b.B.Start = minInt(b.B.Start, p.B.Start)
	b.B.End = maxInt(b.B.End, p.B.End)
	b.LastRankB = p.RankB
}

func (g *generator) start(p *RankedPair) {
	g.counts[p.A.Chrom]++
	b := &Block{
		ID:          fmt.Sprintf("%s_%d", p.A.Chrom, g.counts[p.A.Chrom]),
		Orientation: p.Orientation(),
		PairCount:   1,
		A:           p.A,
		B:           p.B,
		FirstRankA:  p.RankA,
		LastRankB:   p.RankB,
	}
	g.curr = b
	g.blocks = append(g.blocks, b)
}
