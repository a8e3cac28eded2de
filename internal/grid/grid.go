// Package grid implements a generalized Sudoku grid: regions of size R x C
// tiling an N x N board, where N = R*C.  A cell is either Empty or holds a
// value in [0, N).
package grid

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a cell subscript or a cell value falls
// outside the grid's declared dimensions.
var ErrOutOfRange = errors.New("grid: subscript or value out of range")

// ErrCellEmpty is returned by Cell.Value when called on a cell that has no
// value set.
var ErrCellEmpty = errors.New("grid: cell has no value")

// Dims parameterizes a grid by its region shape.  N is always R*C.
type Dims struct {
	R, C, N int
}

// NewDims builds the Dims for an R x C region shape.
func NewDims(r, c int) Dims {
	return Dims{R: r, C: c, N: r * c}
}

// Region returns the region index for cell (r,c), using the convention
// preserved from the original source: g = (r div R) + (c div C)*C.  This is
// NOT the textbook (r div R)*R + (c div C); both formulas number the same
// R x C blocks, but in a different order.  Every consumer of region identity (the reduction, the
// validator) calls this single function so they cannot disagree.
func (d Dims) Region(r, c int) int {
	return r/d.R + (c/d.C)*d.C
}

// Cell is a sum of two variants: Empty, or Set(v) for v in [0, N).
type Cell struct {
	isSet bool
	value int
}

// IsSet reports whether the cell holds a value.
func (c Cell) IsSet() bool { return c.isSet }

// Value returns the cell's value, or ErrCellEmpty if the cell is Empty.
func (c Cell) Value() (int, error) {
	if !c.isSet {
		return 0, ErrCellEmpty
	}
	return c.value, nil
}

// Grid is an N x N array of cells parameterized by (R, C).
type Grid struct {
	Dims
	cells [][]Cell
}

// New returns an all-Empty grid with the given region shape.
func New(r, c int) *Grid {
	dims := NewDims(r, c)
	cells := make([][]Cell, dims.N)
	for i := range cells {
		cells[i] = make([]Cell, dims.N)
	}
	return &Grid{Dims: dims, cells: cells}
}

func (g *Grid) inRange(r, c int) bool {
	return r >= 0 && r < g.N && c >= 0 && c < g.N
}

// Get returns the cell at (r,c).
func (g *Grid) Get(r, c int) (Cell, error) {
	if !g.inRange(r, c) {
		return Cell{}, fmt.Errorf("grid: Get(%d,%d): %w", r, c, ErrOutOfRange)
	}
	return g.cells[r][c], nil
}

// Set places value v at cell (r,c).
func (g *Grid) Set(r, c, v int) error {
	if !g.inRange(r, c) {
		return fmt.Errorf("grid: Set(%d,%d): %w", r, c, ErrOutOfRange)
	}
	if v < 0 || v >= g.N {
		return fmt.Errorf("grid: Set(%d,%d,%d): value out of [0,%d): %w", r, c, v, g.N, ErrOutOfRange)
	}
	g.cells[r][c] = Cell{isSet: true, value: v}
	return nil
}

// Clear resets cell (r,c) to Empty.
func (g *Grid) Clear(r, c int) error {
	if !g.inRange(r, c) {
		return fmt.Errorf("grid: Clear(%d,%d): %w", r, c, ErrOutOfRange)
	}
	g.cells[r][c] = Cell{}
	return nil
}

// IsComplete reports whether every cell in the grid is Set.
func (g *Grid) IsComplete() bool {
	for _, row := range g.cells {
		for _, cell := range row {
			if !cell.isSet {
				return false
			}
		}
	}
	return true
}
