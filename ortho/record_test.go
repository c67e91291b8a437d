package ortho

import (
	"testing"

	"github.com/mgijax/bio-synteny/synteny"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord() Record {
	return Record{
		SymbolA: "Kit", ChromA: "5", StartA: "75735647", EndA: "75817382", StrandA: "+",
		SymbolB: "KIT", ChromB: "4", StartB: "55524095", EndB: "55606881", StrandB: "f",
	}
}

func TestRecordPair(t *testing.T) {
	rec := testRecord()
	p, err := rec.Pair()
	require.NoError(t, err)
	assert.Equal(t, "Kit", p.SymbolA)
	assert.Equal(t, synteny.Interval{Chrom: "5", Start: 75735647, End: 75817382}, p.A)
	assert.Equal(t, synteny.Plus, p.StrandA)
	assert.Equal(t, synteny.Plus, p.StrandB)
}

func TestRecordReversedInterval(t *testing.T) {
	rec := testRecord()
	rec.StartB, rec.EndB = rec.EndB, rec.StartB
	p, err := rec.Pair()
	require.NoError(t, err)
	assert.Equal(t, 55524095, p.B.Start)
	assert.Equal(t, 55606881, p.B.End)
}

func TestRecordStrandCodes(t *testing.T) {
	for _, code := range []string{"+", "f", "forward"} {
		rec := testRecord()
		rec.StrandA = code
		p, err := rec.Pair()
		require.NoError(t, err, "code %q", code)
		assert.Equal(t, synteny.Plus, p.StrandA)
	}
	for _, code := range []string{"-", "r", "reverse"} {
		rec := testRecord()
		rec.StrandA = code
		p, err := rec.Pair()
		require.NoError(t, err, "code %q", code)
		assert.Equal(t, synteny.Minus, p.StrandA)
	}
}

func TestRecordMalformed(t *testing.T) {
	rec := testRecord()
	rec.StartA = "x123"
	_, err := rec.Pair()
	require.Error(t, err)
	merr, ok := err.(*MalformedRecordError)
	require.True(t, ok)
	assert.Equal(t, "Kit", merr.Symbol)
	assert.Equal(t, "5", merr.Chrom)
	assert.Equal(t, "start", merr.Field)
	assert.Contains(t, err.Error(), `"x123"`)

	rec = testRecord()
	rec.EndB = ""
	_, err = rec.Pair()
	require.Error(t, err)
	merr = err.(*MalformedRecordError)
	assert.Equal(t, "KIT", merr.Symbol)
	assert.Equal(t, "end", merr.Field)

	rec = testRecord()
	rec.StrandB = "fwd"
	_, err = rec.Pair()
	require.Error(t, err)
	merr = err.(*MalformedRecordError)
	assert.Equal(t, "strand", merr.Field)

	rec = testRecord()
	rec.StartA = "0"
	_, err = rec.Pair()
	require.Error(t, err)
}

func TestPairsStopsAtFirstMalformed(t *testing.T) {
	bad := testRecord()
	bad.StrandA = "?"
	_, err := Pairs([]Record{testRecord(), bad})
	require.Error(t, err)

	pairs, err := Pairs([]Record{testRecord(), testRecord()})
	require.NoError(t, err)
	assert.Len(t, pairs, 2)
}
