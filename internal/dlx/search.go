package dlx

import "github.com/halvardk/dlxsudoku/internal/matrix"

// Solve runs Algorithm X over the mesh and returns the row indices of one
// exact cover, or nil if none exists.  The order of the returned indices is
// an implementation detail (the post-order of successful cover/uncover
// frames); callers must treat it as an unordered set.
func (mesh *Mesh) Solve() []int {
	var solution []int
	mesh.search(&solution)
	return solution
}

// search implements the recursive backtracking search described in
// spec.md's §4.3: choose a column, cover it, try each candidate row in turn,
// and on success append the winning row's id in post-order.
func (mesh *Mesh) search(solution *[]int) bool {
	h := mesh.choose()
	if h == mesh.Root {
		return true
	}

	mesh.cover(h)

	success := false
	for n := h.Down; n != &h.Node; n = n.Down {
		for p := n.Right; p != n; p = p.Right {
			mesh.cover(p.Column)
		}

		success = mesh.search(solution)

		for p := n.Left; p != n; p = p.Left {
			mesh.uncover(p.Column)
		}

		if success {
			*solution = append(*solution, n.RowID)
			break
		}
	}

	mesh.uncover(h)
	return success
}

// Solve is the free-function form of the solver entry point described in
// spec.md §6: it builds the mesh for m and immediately solves it.
func Solve(m matrix.Binary) []int {
	return Build(m, nil).Solve()
}
