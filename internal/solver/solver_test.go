package solver

import (
	"testing"

	"github.com/halvardk/dlxsudoku/internal/grid"
	"github.com/stretchr/testify/require"
)

func solve(t *testing.T, r, c int, in string, variant Variant) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(r, c, in)
	require.NoError(t, err)
	out, err := SolveSudoku(g, variant)
	require.NoError(t, err)
	return out
}

func TestSolveSudoku2x2BothVariants(t *testing.T) {
	in := "xx3x0xx1xxx2x0xx"
	want := "1230032131022013"

	for _, variant := range []Variant{VariantDescriptor, VariantSparse} {
		out := solve(t, 2, 2, in, variant)
		require.True(t, out.IsComplete())
		require.True(t, grid.Validate(out))
		require.Equal(t, want, out.Render())
	}
}

func TestSolveSudoku3x3(t *testing.T) {
	in := "x0x25xx4xxx1xxxxxxx4xx803xx76xxxxxxx4xx5x7xx6xxxxxxx80xx803xx5xxxxxxx6xxx7xx64x2x"
	want := "307256841851473062246180375762308514480517236513642780628031457134725608075864123"

	out := solve(t, 3, 3, in, VariantDescriptor)
	require.True(t, out.IsComplete())
	require.True(t, grid.Validate(out))
	require.Equal(t, want, out.Render())
}

func TestSolveSudokuInconsistentInputReturnsAllEmpty(t *testing.T) {
	in := "x33xxxxxxxxxxxxx"
	out := solve(t, 2, 2, in, VariantDescriptor)
	require.False(t, out.IsComplete())
}

func TestSolveSudokuPreservesGivens(t *testing.T) {
	in := "x0x25xx4xxx1xxxxxxx4xx803xx76xxxxxxx4xx5x7xx6xxxxxxx80xx803xx5xxxxxxx6xxx7xx64x2x"
	g, err := grid.Parse(3, 3, in)
	require.NoError(t, err)

	out, err := SolveSudoku(g, VariantDescriptor)
	require.NoError(t, err)

	n := g.N
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			inCell, _ := g.Get(r, c)
			if !inCell.IsSet() {
				continue
			}
			v0, _ := inCell.Value()
			outCell, _ := out.Get(r, c)
			v1, _ := outCell.Value()
			require.Equal(t, v0, v1)
		}
	}
}

func TestColumnNameIdentifiesBlocks(t *testing.T) {
	name := ColumnName(grid.NewDims(2, 2))
	require.Equal(t, "cell(0,0)", name(0))
	require.Equal(t, "row(0)=0", name(16))
	require.Equal(t, "col(0)=0", name(32))
	require.Equal(t, "region(0)=0", name(48))
}
