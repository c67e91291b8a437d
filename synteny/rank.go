package synteny

import "sort"

// AssignRanks annotates filtered pairs with their 0-based rank in each
// genome's (chromosome, start) order: genome B first, then genome A. The two
// passes are independent sorts; the returned slice is left in genome-A order,
// which is the working order for block generation.
func AssignRanks(pairs []Pair) []RankedPair {
	ranked := make([]RankedPair, len(pairs))
	for i := range pairs {
		ranked[i].Pair = pairs[i]
	}
	sortByGenomeB(ranked)
	for i := range ranked {
		ranked[i].RankB = i
	}
	sortByGenomeA(ranked)
	for i := range ranked {
		ranked[i].RankA = i
	}
	return ranked
}

func sortByGenomeB(pairs []RankedPair) {
	sort.SliceStable(pairs, func(i, j int) bool { return lessB(&pairs[i].Pair, &pairs[j].Pair) })
}

func sortByGenomeA(pairs []RankedPair) {
	sort.SliceStable(pairs, func(i, j int) bool { return lessA(&pairs[i].Pair, &pairs[j].Pair) })
}
