// Command medinfo prints the block decomposition a median filter invocation
// would use for a given array shape, window radius, and block hint.
//
// Usage:
//
//	medinfo [flags]
//
// Examples:
//
//	medinfo -n 65536 -radius 16
//	medinfo -n 65536 -radius 16 -block 64
//	medinfo -width 1920 -height 1080 -rx 3 -ry 3
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-medfilt/median"
)

func main() {
	n := flag.Int("n", 0, "1D array length")
	radius := flag.Int("radius", 0, "1D window half-radius")
	width := flag.Int("width", 0, "2D array width")
	height := flag.Int("height", 0, "2D array height")
	rx := flag.Int("rx", 0, "2D window half-radius along x")
	ry := flag.Int("ry", 0, "2D window half-radius along y")
	block := flag.Int("block", 0, "block-size hint (0 = heuristic)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: medinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints median-filter block decompositions.\n")
		fmt.Fprintf(os.Stderr, "Use -n/-radius for 1D or -width/-height/-rx/-ry for 2D.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  medinfo -n 65536 -radius 16\n")
		fmt.Fprintf(os.Stderr, "  medinfo -width 1920 -height 1080 -rx 3 -ry 3 -block 32\n")
	}
	flag.Parse()

	switch {
	case *n > 0:
		layout, err := median.Layout1D(*n, *radius, *block)
		if err != nil {
			fatal(err)
		}
		printLayouts(
			row{"x", *n, *radius, layout},
		)
	case *width > 0 && *height > 0:
		lx, ly, err := median.Layout2D(*width, *height, *rx, *ry, *block)
		if err != nil {
			fatal(err)
		}
		printLayouts(
			row{"x", *width, *rx, lx},
			row{"y", *height, *ry, ly},
		)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

type row struct {
	dim    string
	size   int
	radius int
	layout median.BlockLayout
}

func printLayouts(rows ...row) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "dim\tsize\tradius\tblock\tstep\tblocks\twindow")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
			r.dim, r.size, r.radius, r.layout.BlockSize, r.layout.Step, r.layout.Count,
			2*r.radius+1)
	}
	w.Flush()
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
