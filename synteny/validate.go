package synteny

import (
	"fmt"

	"github.com/biogo/store/interval"
)

// pairRange adapts a pair's coordinate range for interval-tree overlap
// queries. Touching pairs (one's end equal to the next one's start) are not
// overlaps: the filter retains them, so the validator must accept them.
type pairRange struct {
	start, end int
	uid        uintptr
}

func (r pairRange) Overlap(q interval.IntRange) bool {
	return r.end > q.Start && r.start < q.End
}

func (r pairRange) ID() uintptr { return r.uid }

func (r pairRange) Range() interval.IntRange {
	return interval.IntRange{Start: r.start, End: r.end}
}

// blockRange is the block-interval counterpart. Massaged blocks own every
// coordinate exclusively, so here even a shared endpoint is an overlap.
type blockRange struct {
	start, end int
	uid        uintptr
}

func (r blockRange) Overlap(q interval.IntRange) bool {
	return r.end >= q.Start && r.start <= q.End
}

func (r blockRange) ID() uintptr { return r.uid }

func (r blockRange) Range() interval.IntRange {
	return interval.IntRange{Start: r.start, End: r.end}
}

// ValidatePairs checks that surviving pairs are pairwise non-overlapping
// within each genome. Each pair's interval is queried against an interval
// tree per (genome, chromosome) before insertion; the first collision is
// reported.
func ValidatePairs(pairs []RankedPair) error {
	for _, g := range []genome{genomeA, genomeB} {
		trees := map[string]*interval.IntTree{}
		for i := range pairs {
			iv := pairInterval(&pairs[i], g)
			t := trees[iv.Chrom]
			if t == nil {
				t = &interval.IntTree{}
				trees[iv.Chrom] = t
			}
			r := pairRange{start: iv.Start, end: iv.End, uid: uintptr(i)}
			if hits := t.Get(r); len(hits) > 0 {
				prev := &pairs[int(hits[0].ID())]
				return fmt.Errorf("synteny: pairs %s and %s overlap on chromosome %s",
					prev.SymbolA, pairs[i].SymbolA, iv.Chrom)
			}
			if err := t.Insert(r, false); err != nil {
				return err
			}
		}
	}
	return nil
}

func pairInterval(p *RankedPair, g genome) *Interval {
	if g == genomeA {
		return &p.A
	}
	return &p.B
}

// ValidateBlocks checks the partition invariants on massaged blocks: within
// each genome, blocks sorted by (chromosome, start) are non-overlapping, each
// chromosome's first block starts at 1, and adjacent same-chromosome blocks
// are exactly contiguous (end+1 == start). Block-level fields are sanity
// checked as well.
func ValidateBlocks(blocks []*Block) error {
	for _, b := range blocks {
		if b.Orientation != 1 && b.Orientation != -1 {
			return fmt.Errorf("synteny: block %s: bad orientation %d", b.ID, b.Orientation)
		}
		if b.PairCount < 1 {
			return fmt.Errorf("synteny: block %s: bad pair count %d", b.ID, b.PairCount)
		}
	}
	for _, g := range []genome{genomeA, genomeB} {
		sorted := make([]*Block, len(blocks))
		copy(sorted, blocks)
		sortBlocks(sorted, g)

		trees := map[string]*interval.IntTree{}
		for i, b := range sorted {
			cur := b.interval(g)
			t := trees[cur.Chrom]
			if t == nil {
				t = &interval.IntTree{}
				trees[cur.Chrom] = t
			}
			r := blockRange{start: cur.Start, end: cur.End, uid: uintptr(i)}
			if hits := t.Get(r); len(hits) > 0 {
				return fmt.Errorf("synteny: blocks %s and %s overlap on chromosome %s",
					sorted[int(hits[0].ID())].ID, b.ID, cur.Chrom)
			}
			if err := t.Insert(r, false); err != nil {
				return err
			}

			newChrom := i == 0 || sorted[i-1].interval(g).Chrom != cur.Chrom
			if newChrom {
				if cur.Start != 1 {
					return fmt.Errorf("synteny: block %s: chromosome %s starts at %d, want 1",
						b.ID, cur.Chrom, cur.Start)
				}
				continue
			}
			if prev := sorted[i-1].interval(g); prev.End+1 != cur.Start {
				return fmt.Errorf("synteny: gap between blocks %s and %s on chromosome %s: end %d, next start %d",
					sorted[i-1].ID, b.ID, cur.Chrom, prev.End, cur.Start)
			}
		}
	}
	return nil
}
