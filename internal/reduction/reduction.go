// Package reduction encodes a Sudoku grid as an exact-cover binary matrix
// and decodes a solver's row-index set back into a completed grid. The
// column layout is a bit-exact contract shared with the DLX engine: four
// contiguous blocks of N² columns each, one block per constraint kind.
package reduction

import (
	"errors"
	"fmt"

	"github.com/halvardk/dlxsudoku/internal/grid"
	"github.com/halvardk/dlxsudoku/internal/matrix"
	"github.com/halvardk/dlxsudoku/internal/sparse"
)

// ErrInconsistentDims is returned when a row-index set references rows
// outside the reduction's descriptor table.
var ErrInconsistentDims = errors.New("reduction: row index out of range")

// Candidate is a single (cell, value) placement and the four exact-cover
// columns it satisfies, one per constraint block (cell, row, column,
// region), in that order.
type Candidate struct {
	Row, Col, Value int
	Cols            [4]int
}

// Reduction holds the candidate row descriptors for one grid.
type Reduction struct {
	dims       grid.Dims
	n2         int
	candidates []Candidate
}

// New builds the row descriptors for g. Set cells contribute exactly one
// forced candidate; Empty cells contribute one candidate per value in
// [0, N).
func New(g *grid.Grid) (*Reduction, error) {
	dims := g.Dims
	n := dims.N
	n2 := n * n

	red := &Reduction{dims: dims, n2: n2}

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cell, err := g.Get(r, c)
			if err != nil {
				return nil, fmt.Errorf("reduction: New: %w", err)
			}

			lo, hi := 0, n
			if cell.IsSet() {
				v, err := cell.Value()
				if err != nil {
					return nil, fmt.Errorf("reduction: New: %w", err)
				}
				lo, hi = v, v+1
			}

			for v := lo; v < hi; v++ {
				red.candidates = append(red.candidates, red.newCandidate(r, c, v))
			}
		}
	}
	return red, nil
}

// newCandidate builds the row descriptor for placing value v at (r,c),
// computing the four column indices per the bit-exact layout of §4.4:
// block 0 is cell-uniqueness, block 1 row-uniqueness, block 2
// column-uniqueness, block 3 region-uniqueness.
func (red *Reduction) newCandidate(r, c, v int) Candidate {
	n := red.dims.N
	n2 := red.n2
	g := red.dims.Region(r, c)

	return Candidate{
		Row: r, Col: c, Value: v,
		Cols: [4]int{
			0*n2 + n*r + c,
			1*n2 + n*r + v,
			2*n2 + n*c + v,
			3*n2 + n*g + v,
		},
	}
}

// Candidates returns the row descriptors in generation order.
func (red *Reduction) Candidates() []Candidate {
	return red.candidates
}

// Cols returns the total number of exact-cover columns, 4*N².
func (red *Reduction) Cols() int {
	return 4 * red.n2
}

// descriptorMatrix is the materialization-free matrix.Binary adapter:
// present(row,col) is computed directly from the row's descriptor without
// ever building a dense or sparse matrix.
type descriptorMatrix struct {
	red *Reduction
}

var _ matrix.Binary = (*descriptorMatrix)(nil)

func (d *descriptorMatrix) Rows() int { return len(d.red.candidates) }
func (d *descriptorMatrix) Cols() int { return d.red.Cols() }

// Present exploits the guarantee that each descriptor has exactly one
// column in each contiguous block: quarter = col / N² selects which of the
// four recorded columns to compare against.
func (d *descriptorMatrix) Present(row, col int) bool {
	quarter := col / d.red.n2
	return d.red.candidates[row].Cols[quarter] == col
}

// DescriptorMatrix returns the on-the-fly matrix.Binary adapter over the
// row descriptors, computing membership without materializing any matrix.
func (red *Reduction) DescriptorMatrix() matrix.Binary {
	return &descriptorMatrix{red: red}
}

// SparseMatrix materializes the same exact-cover matrix into a sparse.Matrix,
// the alternate representation exercised alongside DescriptorMatrix to
// check both variants agree on every input.
func (red *Reduction) SparseMatrix() (*sparse.Matrix, error) {
	m := sparse.New(len(red.candidates), red.Cols())
	for row, cand := range red.candidates {
		for _, col := range cand.Cols {
			if err := m.Set(row, col, 1); err != nil {
				return nil, fmt.Errorf("reduction: SparseMatrix: %w", err)
			}
		}
	}
	return m, nil
}

// Decode maps a solver's row-index set back into a grid. An empty rowIDs
// means no cover was found; Decode then returns a grid of all-Empty cells.
func (red *Reduction) Decode(rowIDs []int) (*grid.Grid, error) {
	out := grid.New(red.dims.R, red.dims.C)
	for _, id := range rowIDs {
		if id < 0 || id >= len(red.candidates) {
			return nil, fmt.Errorf("reduction: Decode: row %d: %w", id, ErrInconsistentDims)
		}
		cand := red.candidates[id]
		if err := out.Set(cand.Row, cand.Col, cand.Value); err != nil {
			return nil, fmt.Errorf("reduction: Decode: %w", err)
		}
	}
	return out, nil
}
