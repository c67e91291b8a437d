package synteny

import (
	"strings"
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestValidatePairsDetectsOverlap(t *testing.T) {
	// Hand-built ranked pairs that bypass the filter.
	ranked := AssignRanks([]Pair{
		testPair("a", "1", 100, 200, Plus, "A", "1", 100, 200, Plus),
		testPair("b", "1", 150, 300, Plus, "B", "1", 400, 500, Plus),
	})
	err := ValidatePairs(ranked)
	expect.True(t, err != nil)
	expect.True(t, strings.Contains(err.Error(), "overlap"))

	expect.NoError(t, ValidatePairs(AssignRanks(FilterOverlaps([]Pair{
		testPair("a", "1", 100, 200, Plus, "A", "1", 100, 200, Plus),
		testPair("b", "1", 150, 300, Plus, "B", "1", 400, 500, Plus),
	}))))
}

func TestValidatePairsAllowsTouching(t *testing.T) {
	// The filter retains a pair whose start equals the previous pair's end;
	// the validator must accept what the filter lets through.
	pairs := []Pair{
		testPair("a", "1", 100, 200, Plus, "A", "1", 100, 200, Plus),
		testPair("c", "1", 200, 400, Plus, "C", "1", 700, 800, Plus),
	}
	kept := FilterOverlaps(pairs)
	expect.EQ(t, symbolsA(kept), []string{"a", "c"})
	expect.NoError(t, ValidatePairs(AssignRanks(kept)))
}

func TestValidateBlocksDetectsGap(t *testing.T) {
	blocks := []*Block{
		testBlock("1_1", Interval{"1", 1, 100}, Interval{"1", 1, 100}),
		testBlock("1_2", Interval{"1", 150, 200}, Interval{"1", 101, 200}),
	}
	err := ValidateBlocks(blocks)
	expect.True(t, err != nil)
	expect.True(t, strings.Contains(err.Error(), "gap"))
}

func TestValidateBlocksDetectsBadStart(t *testing.T) {
	blocks := []*Block{
		testBlock("1_1", Interval{"1", 5, 100}, Interval{"1", 1, 100}),
	}
	err := ValidateBlocks(blocks)
	expect.True(t, err != nil)
	expect.True(t, strings.Contains(err.Error(), "starts at 5"))
}

func TestValidateBlocksDetectsOverlap(t *testing.T) {
	blocks := []*Block{
		testBlock("1_1", Interval{"1", 1, 100}, Interval{"1", 1, 100}),
		testBlock("1_2", Interval{"1", 90, 200}, Interval{"1", 101, 200}),
	}
	err := ValidateBlocks(blocks)
	expect.True(t, err != nil)
	expect.True(t, strings.Contains(err.Error(), "overlap"))
}

func TestValidateBlocksOK(t *testing.T) {
	blocks, _ := BuildBlocks(testScenarioPairs())
	expect.NoError(t, ValidateBlocks(blocks))
}
