package synteny

// BuildBlocks is the toplevel entry point. It runs the full pipeline on the
// given ortholog pairs and returns the massaged blocks in genome-A
// (chromosome, start) order, together with the surviving pairs annotated
// with their ranks and block IDs. Empty input yields an empty block list.
func BuildBlocks(pairs []Pair) ([]*Block, []RankedPair) {
	kept := FilterOverlaps(pairs)
	ranked := AssignRanks(kept)
	blocks := GenerateBlocks(ranked)
	MassageBlocks(blocks)
	return blocks, ranked
}
