package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/halvardk/dlxsudoku/internal/grid"
	"github.com/halvardk/dlxsudoku/internal/solver"
	"github.com/mattn/go-isatty"
)

func main() {
	r := flag.Int("r", 3, "region height")
	c := flag.Int("c", 3, "region width")
	sparse := flag.Bool("sparse", false, "use the sparse-materialized matrix instead of the descriptor adapter")
	flag.Parse()

	if isStdinTTY() {
		n := *r * *c
		fmt.Printf("Enter initial board as %d lines of %d characters.\n", n, n)
		fmt.Println("Use 'x' or a space for empty cells, 0-9 and a-w for values.")
		fmt.Println("(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
	}

	g, err := grid.ReadFrom(*r, *c, os.Stdin)
	if err != nil {
		fatalError(err)
	}

	variant := solver.VariantDescriptor
	if *sparse {
		variant = solver.VariantSparse
	}

	out, err := solver.SolveSudoku(g, variant)
	if err != nil {
		fatalError(err)
	}

	if out.IsComplete() {
		color.HiWhite("\nSolution:")
	} else {
		color.HiWhite("\nNo solution found.")
	}
	out.Print()
}

func isStdinTTY() bool {
	return isTerminal(os.Stdin)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func fatalError(err error) {
	fmt.Fprintln(os.Stderr, color.HiRedString("error: %v", err))
	os.Exit(1)
}
