// Package sparse implements the auxiliary sparse row-indexed matrix used by
// one of the Sudoku reduction variants to materialize its binary matrix
// before handing it to the DLX engine.
package sparse

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

// ErrOutOfRange is returned when a subscript passed to Get or Set falls
// outside the matrix's declared dimensions.
var ErrOutOfRange = errors.New("sparse: subscript out of range")

// entry is one non-zero cell within a row's bucket, kept sorted by col so
// that Get/Set can binary-search it.
type entry struct {
	col int
	val int
}

// Matrix is a dense-by-row, sparse-by-column container: rows indexed
// buckets, each bucket an ordered mapping from column index to value.  No
// entry with a zero value is ever stored, so len of a row's bucket is
// exactly that row's density.
type Matrix struct {
	rows, cols int
	data       [][]entry
}

// New allocates an empty rows x cols sparse matrix.
func New(rows, cols int) *Matrix {
	return &Matrix{rows: rows, cols: cols, data: make([][]entry, rows)}
}

func (m *Matrix) Rows() int { return m.rows }
func (m *Matrix) Cols() int { return m.cols }

func (m *Matrix) checkRange(r, c int) error {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return fmt.Errorf("sparse: (%d,%d) outside %dx%d: %w", r, c, m.rows, m.cols, ErrOutOfRange)
	}
	return nil
}

func search(row []entry, col int) (int, bool) {
	return slices.BinarySearchFunc(row, col, func(e entry, target int) int {
		return e.col - target
	})
}

// Get returns the stored value at (r,c), or the zero value if nothing has
// been set there.
func (m *Matrix) Get(r, c int) (int, error) {
	if err := m.checkRange(r, c); err != nil {
		return 0, err
	}
	idx, found := search(m.data[r], c)
	if !found {
		return 0, nil
	}
	return m.data[r][idx].val, nil
}

// Set stores v at (r,c).  Setting the zero value removes any existing
// entry rather than storing a zero, preserving the invariant that the
// number of stored entries equals the number of non-zero cells.
func (m *Matrix) Set(r, c, v int) error {
	if err := m.checkRange(r, c); err != nil {
		return err
	}
	row := m.data[r]
	idx, found := search(row, c)
	switch {
	case v == 0 && found:
		m.data[r] = slices.Delete(row, idx, idx+1)
	case v == 0:
		// Not present and staying absent; nothing to do.
	case found:
		row[idx].val = v
	default:
		m.data[r] = slices.Insert(row, idx, entry{col: c, val: v})
	}
	return nil
}

// Present implements matrix.Binary: a cell is present iff it holds a
// non-zero value.
func (m *Matrix) Present(r, c int) bool {
	v, err := m.Get(r, c)
	return err == nil && v != 0
}

// Len returns the total number of stored (non-zero) entries across every
// row, used by tests to check the sparse-storage invariant directly.
func (m *Matrix) Len() int {
	n := 0
	for _, row := range m.data {
		n += len(row)
	}
	return n
}
