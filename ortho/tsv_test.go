package ortho

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHeader = "symbolA\tchrA\tstartA\tendA\tstrandA\tsymbolB\tchrB\tstartB\tendB\tstrandB\n"

func TestReadTSV(t *testing.T) {
	in := testHeader +
		"Kit\t5\t100\t200\t+\tKIT\t4\t300\t400\tf\n" +
		"Trp53\t11\t900\t800\t-\tTP53\t17\t500\t600\tr\n"
	pairs, err := readTSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, "Kit", pairs[0].SymbolA)
	assert.Equal(t, "KIT", pairs[0].SymbolB)
	// Reversed interval normalized on read.
	assert.Equal(t, 800, pairs[1].A.Start)
	assert.Equal(t, 900, pairs[1].A.End)
}

func TestReadTSVMalformed(t *testing.T) {
	in := testHeader + "Kit\t5\tabc\t200\t+\tKIT\t4\t300\t400\t+\n"
	_, err := readTSV(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Kit")
}

func TestReadTSVColumnsBindByName(t *testing.T) {
	// Header order differs from the struct's field order.
	in := "symbolB\tchrB\tstartB\tendB\tstrandB\tsymbolA\tchrA\tstartA\tendA\tstrandA\n" +
		"KIT\t4\t300\t400\tf\tKit\t5\t100\t200\t+\n"
	pairs, err := readTSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "Kit", pairs[0].SymbolA)
	assert.Equal(t, "4", pairs[0].B.Chrom)
}

func TestReadTSVMissingColumn(t *testing.T) {
	in := "symbolA\tchrA\tstartA\tendA\tstrandA\tsymbolB\tchrB\tstartB\tendB\n" +
		"Kit\t5\t100\t200\t+\tKIT\t4\t300\t400\n"
	_, err := readTSV(strings.NewReader(in))
	require.Error(t, err)
}

func TestReadTSVEmpty(t *testing.T) {
	pairs, err := readTSV(strings.NewReader(testHeader))
	require.NoError(t, err)
	assert.Empty(t, pairs)
}
