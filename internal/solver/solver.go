// Package solver ties the grid, reduction, and dlx packages together into
// the public Sudoku-solving entry point.
package solver

import (
	"fmt"

	"github.com/halvardk/dlxsudoku/internal/dlx"
	"github.com/halvardk/dlxsudoku/internal/grid"
	"github.com/halvardk/dlxsudoku/internal/matrix"
	"github.com/halvardk/dlxsudoku/internal/reduction"
)

// Variant selects which matrix.Binary representation the exact-cover
// reduction hands to the DLX engine. Both variants must agree on every
// input; Variant exists so callers (and cmd/dlxdemo) can exercise either
// or both.
type Variant int

const (
	// VariantDescriptor uses the on-the-fly, materialization-free adapter.
	VariantDescriptor Variant = iota
	// VariantSparse materializes the exact-cover matrix into a sparse.Matrix.
	VariantSparse
)

// SolveSudoku solves g using the given matrix representation. On success it
// returns a completed, Set-everywhere grid; if no cover exists it returns a
// grid of all-Empty cells, per §6/§7 of the no-solution contract -- this is
// a normal result, never an error.
func SolveSudoku(g *grid.Grid, variant Variant) (*grid.Grid, error) {
	red, err := reduction.New(g)
	if err != nil {
		return nil, fmt.Errorf("solver: SolveSudoku: %w", err)
	}

	var m matrix.Binary
	switch variant {
	case VariantDescriptor:
		m = red.DescriptorMatrix()
	case VariantSparse:
		sp, err := red.SparseMatrix()
		if err != nil {
			return nil, fmt.Errorf("solver: SolveSudoku: %w", err)
		}
		m = sp
	default:
		return nil, fmt.Errorf("solver: SolveSudoku: unknown variant %d", variant)
	}

	rowIDs := dlx.Solve(m)

	out, err := red.Decode(rowIDs)
	if err != nil {
		return nil, fmt.Errorf("solver: SolveSudoku: %w", err)
	}
	return out, nil
}

// ColumnName builds human-readable debug names for the exact-cover columns
// of a grid with the given dimensions, identifying which of the four
// constraint blocks a column belongs to and the (position, value) it
// encodes. Used by cmd/dlxdemo to name the mesh columns and to list the
// columns of an example candidate.
func ColumnName(d grid.Dims) func(int) string {
	n := d.N
	n2 := n * n
	return func(col int) string {
		quarter := col / n2
		rem := col % n2
		switch quarter {
		case 0:
			return fmt.Sprintf("cell(%d,%d)", rem/n, rem%n)
		case 1:
			return fmt.Sprintf("row(%d)=%d", rem/n, rem%n)
		case 2:
			return fmt.Sprintf("col(%d)=%d", rem/n, rem%n)
		case 3:
			return fmt.Sprintf("region(%d)=%d", rem/n, rem%n)
		default:
			return fmt.Sprintf("col%d", col)
		}
	}
}
