package synteny

import "sort"

// genome selects which of a block's two intervals a massaging pass operates
// on. The two passes never touch the other genome's coordinates.
type genome int

const (
	genomeA genome = iota
	genomeB
)

func (b *Block) interval(g genome) *Interval {
	if g == genomeA {
		return &b.A
	}
	return &b.B
}

// MassageBlocks adjusts block boundaries so that, independently in each
// genome, the blocks form a gapless, non-overlapping partition: the first
// block on each chromosome starts at 1, and every gap between same-chromosome
// neighbors is split between them. The last block on a chromosome keeps its
// observed end; it is not extended to the physical chromosome length.
// Blocks are left sorted in genome-A order.
func MassageBlocks(blocks []*Block) {
	massage(blocks, genomeA)
	massage(blocks, genomeB)
	sortBlocks(blocks, genomeA)
}

func massage(blocks []*Block, g genome) {
	sortBlocks(blocks, g)
	for i, b := range blocks {
		cur := b.interval(g)
		if i == 0 || blocks[i-1].interval(g).Chrom != cur.Chrom {
			cur.Start = 1
		}
		if i+1 == len(blocks) {
			break
		}
		next := blocks[i+1].interval(g)
		if next.Chrom != cur.Chrom {
			continue
		}
		// Split the gap as evenly as possible, giving the extra base of an
		// odd gap to the earlier block, and leave the neighbors exactly
		// adjacent: cur.End+1 == next.Start.
		delta := next.Start - cur.End
		epsilon := 1 - delta%2
		cur.End += delta / 2
		next.Start -= delta/2 - epsilon
	}
}

func sortBlocks(blocks []*Block, g genome) {
	sort.SliceStable(blocks, func(i, j int) bool {
		bi, bj := blocks[i].interval(g), blocks[j].interval(g)
		if bi.Chrom != bj.Chrom {
			return bi.Chrom < bj.Chrom
		}
		return bi.Start < bj.Start
	})
}
