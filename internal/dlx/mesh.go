// Package dlx implements Knuth's Dancing Links technique: a toroidal,
// doubly-linked mesh over a binary matrix with O(1) cover/uncover, searched
// with a minimum-remaining-values column choice.
package dlx

import (
	"fmt"

	"github.com/halvardk/dlxsudoku/internal/matrix"
)

// Node is a single cell in the mesh.  Column headers embed a Node so that a
// header can sit in the same left/right/up/down rings as the interior nodes
// it owns.
type Node struct {
	Left, Right, Up, Down *Node
	Column                *ColumnHeader
	RowID                 int // original row index in the source matrix
}

// ColumnHeader is the sentinel at the top of each column.
type ColumnHeader struct {
	Node
	Size int    // live count of interior nodes in this column
	Name string // descriptive name, used only for debugging/printing
}

// Mesh is the built toroidal structure, ready to search.
type Mesh struct {
	Root *ColumnHeader
}

// Build constructs the DLX mesh for the given matrix.  names, if non-nil,
// supplies a debug name for each column; columns default to "C<i>".
func Build(m matrix.Binary, names func(col int) string) *Mesh {
	root := &ColumnHeader{Name: "root"}
	root.Left = &root.Node
	root.Right = &root.Node
	root.Column = root

	cols := m.Cols()
	headers := make([]*ColumnHeader, cols)
	for i := 0; i < cols; i++ {
		name := fmt.Sprintf("C%d", i)
		if names != nil {
			name = names(i)
		}
		col := &ColumnHeader{Name: name}
		col.Up = &col.Node
		col.Down = &col.Node
		col.Column = col

		// Splice into the horizontal ring, just left of root.
		col.Left = root.Left
		col.Right = &root.Node
		root.Left.Right = &col.Node
		root.Left = &col.Node

		headers[i] = col
	}

	rows := m.Rows()
	for r := 0; r < rows; r++ {
		var first, last *Node
		for c := 0; c < cols; c++ {
			if !m.Present(r, c) {
				continue
			}
			h := headers[c]
			n := &Node{Column: h, RowID: r}

			// Splice above the header, i.e. at the bottom of the column.
			n.Down = &h.Node
			n.Up = h.Up
			h.Up.Down = n
			h.Up = n
			h.Size++

			if first == nil {
				first = n
				n.Left = n
				n.Right = n
			} else {
				n.Left = last
				n.Right = first
				last.Right = n
				first.Left = n
			}
			last = n
		}
	}

	return &Mesh{Root: root}
}

// cover splices column header h out of the root ring and every row that
// intersects h out of its column rings.
func (mesh *Mesh) cover(h *ColumnHeader) {
	h.Right.Left = h.Left
	h.Left.Right = h.Right

	for col := h.Down; col != &h.Node; col = col.Down {
		for row := col.Right; row != col; row = row.Right {
			row.Up.Down = row.Down
			row.Down.Up = row.Up
			row.Column.Size--
		}
	}
}

// uncover is the exact inverse of cover, performed in reverse traversal
// order, restoring the mesh to its pre-cover state.
func (mesh *Mesh) uncover(h *ColumnHeader) {
	for col := h.Up; col != &h.Node; col = col.Up {
		for row := col.Left; row != col; row = row.Left {
			row.Column.Size++
			row.Up.Down = row
			row.Down.Up = row
		}
	}

	h.Right.Left = &h.Node
	h.Left.Right = &h.Node
}

// choose returns the uncovered column header with the fewest live nodes
// (minimum remaining values), breaking ties in left-to-right ring order.  If
// every column has been covered, choose returns Root itself, signaling that
// a solution has been found.
func (mesh *Mesh) choose() *ColumnHeader {
	best := mesh.Root
	minSize := -1
	for col := mesh.Root.Right; col != &mesh.Root.Node; col = col.Right {
		h := col.Column
		if minSize == -1 || h.Size < minSize {
			best = h
			minSize = h.Size
		}
	}
	return best
}
