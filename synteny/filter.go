package synteny

import "sort"

// FilterOverlaps drops pairs whose interval overlaps the previously retained
// pair's interval on the same chromosome. Two sequential sweeps: first in
// genome-A (chromosome, start) order, then the survivors in genome-B order.
// The B sweep runs over the A sweep's output, not the original input, so a
// pair can be dropped for a B overlap that only arises after A filtering.
// This asymmetry is intentional; it matches the upstream mapping this
// package replaces.
//
// The returned slice is in genome-B order; callers needing a particular
// order re-sort (AssignRanks does).
func FilterOverlaps(pairs []Pair) []Pair {
	kept := make([]Pair, len(pairs))
	copy(kept, pairs)

	sort.SliceStable(kept, func(i, j int) bool { return lessA(&kept[i], &kept[j]) })
	kept = dropOverlaps(kept, func(p *Pair) *Interval { return &p.A })

	sort.SliceStable(kept, func(i, j int) bool { return lessB(&kept[i], &kept[j]) })
	return dropOverlaps(kept, func(p *Pair) *Interval { return &p.B })
}

// dropOverlaps scans pairs, already sorted by (chromosome, start) of the
// interval that iv selects, and removes each pair whose start precedes the
// end of the last retained pair on the same chromosome. A chromosome change
// resets the check.
func dropOverlaps(pairs []Pair, iv func(*Pair) *Interval) []Pair {
	out := pairs[:0]
	var last *Interval
	for i := range pairs {
		cur := iv(&pairs[i])
		if last != nil && last.Chrom == cur.Chrom && cur.Start < last.End {
			continue
		}
		out = append(out, pairs[i])
		last = iv(&out[len(out)-1])
	}
	return out
}
