package dlx

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

// Stats tracks search statistics for one SolveWithStats call.
type Stats struct {
	NodesVisited   int
	BacktrackCount int
	SolutionsFound int
	TimeElapsed    time.Duration
	MatrixSize     MatrixInfo
}

// MatrixInfo describes the mesh's shape at the moment the search started.
type MatrixInfo struct {
	Columns    int
	TotalNodes int
}

func (mesh *Mesh) matrixInfo() MatrixInfo {
	info := MatrixInfo{}
	for col := mesh.Root.Right; col != &mesh.Root.Node; col = col.Right {
		info.Columns++
		info.TotalNodes += col.Column.Size
	}
	return info
}

// SolveWithStats behaves like Solve but also reports search statistics, and
// aborts (returning no solution) if timeLimit elapses first.  A zero
// timeLimit means no limit.
func (mesh *Mesh) SolveWithStats(timeLimit time.Duration) ([]int, *Stats) {
	stats := &Stats{MatrixSize: mesh.matrixInfo()}

	start := time.Now()
	defer func() { stats.TimeElapsed = time.Since(start) }()

	// The channel is closed (not sent on) when the limit elapses, so that
	// every pending and later frame of the search observes the deadline.
	var deadline <-chan time.Time
	if timeLimit > 0 {
		expired := make(chan time.Time)
		timer := time.AfterFunc(timeLimit, func() { close(expired) })
		defer timer.Stop()
		deadline = expired
	}

	var solution []int
	mesh.searchWithStats(&solution, stats, deadline)
	return solution, stats
}

func (mesh *Mesh) searchWithStats(solution *[]int, stats *Stats, deadline <-chan time.Time) bool {
	select {
	case <-deadline:
		return false
	default:
	}

	stats.NodesVisited++

	h := mesh.choose()
	if h == mesh.Root {
		stats.SolutionsFound++
		return true
	}

	mesh.cover(h)

	success := false
	for n := h.Down; n != &h.Node; n = n.Down {
		for p := n.Right; p != n; p = p.Right {
			mesh.cover(p.Column)
		}

		success = mesh.searchWithStats(solution, stats, deadline)

		for p := n.Left; p != n; p = p.Left {
			mesh.uncover(p.Column)
		}

		if success {
			*solution = append(*solution, n.RowID)
			break
		}
		stats.BacktrackCount++
	}

	mesh.uncover(h)
	return success
}

// PrintStats renders search statistics the way the rest of this module's
// CLI surface renders everything else: via fatih/color.
func (stats *Stats) PrintStats() {
	fmt.Printf("%s\n", color.HiCyanString("Dancing Links Statistics"))
	fmt.Printf("  Columns:         %s\n", color.HiYellowString("%d", stats.MatrixSize.Columns))
	fmt.Printf("  Matrix Nodes:    %s\n", color.HiYellowString("%d", stats.MatrixSize.TotalNodes))
	fmt.Printf("  Nodes Visited:   %s\n", color.HiGreenString("%d", stats.NodesVisited))
	fmt.Printf("  Backtracks:      %s\n", color.HiRedString("%d", stats.BacktrackCount))
	fmt.Printf("  Solutions Found: %s\n", color.HiGreenString("%d", stats.SolutionsFound))
	fmt.Printf("  Time Elapsed:    %s\n", color.HiBlueString("%v", stats.TimeElapsed))
}
