package reduction

import (
	"testing"

	"github.com/halvardk/dlxsudoku/internal/dlx"
	"github.com/halvardk/dlxsudoku/internal/grid"
	"github.com/stretchr/testify/require"
)

func TestColumnCountIsFourTimesNSquared(t *testing.T) {
	g := grid.New(2, 2)
	red, err := New(g)
	require.NoError(t, err)
	require.Equal(t, 4*16, red.Cols())
}

func TestEmptyGridHasNCandidatesPerCell(t *testing.T) {
	g := grid.New(2, 2)
	red, err := New(g)
	require.NoError(t, err)
	require.Len(t, red.Candidates(), 4*4*4)
}

func TestSetCellHasExactlyOneCandidate(t *testing.T) {
	g := grid.New(2, 2)
	require.NoError(t, g.Set(0, 0, 2))
	red, err := New(g)
	require.NoError(t, err)

	count := 0
	for _, cand := range red.Candidates() {
		if cand.Row == 0 && cand.Col == 0 {
			count++
			require.Equal(t, 2, cand.Value)
		}
	}
	require.Equal(t, 1, count)
}

func TestDescriptorAndSparseMatricesAgree(t *testing.T) {
	g, err := grid.Parse(2, 2, "0123312x1x203x1x")
	require.NoError(t, err)
	red, err := New(g)
	require.NoError(t, err)

	desc := red.DescriptorMatrix()
	sp, err := red.SparseMatrix()
	require.NoError(t, err)

	require.Equal(t, desc.Rows(), sp.Rows())
	require.Equal(t, desc.Cols(), sp.Cols())
	for r := 0; r < desc.Rows(); r++ {
		for c := 0; c < desc.Cols(); c++ {
			require.Equal(t, desc.Present(r, c), sp.Present(r, c), "row %d col %d", r, c)
		}
	}
}

func TestDecodeEmptyRowIDsYieldsAllEmptyGrid(t *testing.T) {
	g := grid.New(2, 2)
	red, err := New(g)
	require.NoError(t, err)

	out, err := red.Decode(nil)
	require.NoError(t, err)
	require.False(t, out.IsComplete())
}

func TestDecodeOutOfRangeRowErrors(t *testing.T) {
	g := grid.New(2, 2)
	red, err := New(g)
	require.NoError(t, err)

	_, err = red.Decode([]int{len(red.Candidates()) + 1})
	require.ErrorIs(t, err, ErrInconsistentDims)
}

func TestReduceSolveDecodeScenario2x2(t *testing.T) {
	// Scenario 3: "xx3x 0xx1 xxx2 x0xx" -> "1230 0321 3102 2013"
	g, err := grid.Parse(2, 2, "xx3x0xx1xxx2x0xx")
	require.NoError(t, err)

	red, err := New(g)
	require.NoError(t, err)

	rows := dlx.Solve(red.DescriptorMatrix())
	require.NotEmpty(t, rows)

	out, err := red.Decode(rows)
	require.NoError(t, err)
	require.Equal(t, "1230032131022013", out.Render())
}

func TestReduceSolveInconsistentInputYieldsEmptyGrid(t *testing.T) {
	// Scenario 5: two 3s in the same row -> no cover.
	g, err := grid.Parse(2, 2, "x33xxxxxxxxxxxxx")
	require.NoError(t, err)

	red, err := New(g)
	require.NoError(t, err)

	rows := dlx.Solve(red.DescriptorMatrix())
	require.Empty(t, rows)

	out, err := red.Decode(rows)
	require.NoError(t, err)
	require.False(t, out.IsComplete())
}
