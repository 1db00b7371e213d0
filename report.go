package main

import (
	"bufio"
	"fmt"
	"io"
)

// WriteResults formats results as a flat-text report and writes them
// to w, one blank-line-separated block per record
func WriteResults(w io.Writer, results []Result) error {
	nw := bufio.NewWriter(w)
	for _, r := range results {
		fmt.Fprintf(nw, "Temperature: %g K\n", r.Temp)
		fmt.Fprintf(nw, "Traceless Tensor (cm³*K/mol):\n")
		for i := 0; i < 3; i++ {
			fmt.Fprintf(nw, "%.6f %.6f %.6f\n",
				r.Traceless.At(i, 0),
				r.Traceless.At(i, 1),
				r.Traceless.At(i, 2),
			)
		}
		fmt.Fprintf(nw, "Eigenvalues (Mehring order): [%.6e %.6e %.6e]\n",
			r.Eigs[0], r.Eigs[1], r.Eigs[2])
		fmt.Fprintf(nw, "Axiality (ax) Method 1: %.6e m³\n", r.Ax1)
		fmt.Fprintf(nw, "Rhombicity (rh) Method 1: %.6e m³\n", r.Rh1)
		fmt.Fprintf(nw, "Axiality (ax) Method 2: %.6e m³\n", r.Ax2)
		fmt.Fprintf(nw, "Rhombicity (rh) Method 2: %.6e m³\n", r.Rh2)
		fmt.Fprintf(nw, "Relative Rhombicity (rh_rel): %.6e\n", r.RhRel)
		fmt.Fprintf(nw, "Isotropy (iso): %.6e m³\n", r.Iso)
		fmt.Fprint(nw, "\n")
	}
	return nw.Flush()
}
