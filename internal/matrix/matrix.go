// Package matrix defines the read-only binary-matrix adapter that the DLX
// engine consumes.  It deliberately knows nothing about Sudoku, sparse
// storage, or any other producer; any value that can answer three questions
// -- how many rows, how many columns, is cell (r,c) present -- can be solved.
package matrix

// Binary is an abstract view over a 0/1 matrix.  Present need not be backed
// by storage; it may compute membership on the fly.  Present must be pure
// for the duration of a solve: the DLX engine calls it only while building
// the mesh, so mutating the underlying data after Build has returned has no
// effect on a search already in progress.
type Binary interface {
	Rows() int
	Cols() int
	Present(row, col int) bool
}
