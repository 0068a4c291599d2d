// Command rebininfo inspects a flux-conserving bin decomposition.
//
// Usage:
//
//	rebininfo [flags]
//
// Target bins are given either as centers or as edges. With a sample grid,
// it additionally reports which samples support each output bin.
//
// Examples:
//
//	rebininfo -centers 1,2,3
//	rebininfo -edges 0.5,1.5,2.5,3.5
//	rebininfo -centers 3650,3700,3750 -grid 3600:9800:311
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-rebin/internal/vecmath"
	"github.com/cwbudde/algo-rebin/rebin"
)

func main() {
	var (
		centersArg = flag.String("centers", "", "comma-separated bin centers")
		edgesArg   = flag.String("edges", "", "comma-separated bin edges")
		gridArg    = flag.String("grid", "", "sample grid as min:max:n")
	)
	flag.Parse()

	if (*centersArg == "") == (*edgesArg == "") {
		fmt.Fprintln(os.Stderr, "rebininfo: exactly one of -centers or -edges is required")
		flag.Usage()
		os.Exit(2)
	}

	edges, err := targetEdges(*centersArg, *edgesArg)
	if err != nil {
		fatal(err)
	}
	if len(edges) < 2 {
		fatal(fmt.Errorf("need at least 2 edges, got %d", len(edges)))
	}

	var r *rebin.Rebinner
	if *gridArg != "" {
		x, err := parseGrid(*gridArg)
		if err != nil {
			fatal(err)
		}
		if r, err = rebin.New(x, edges); err != nil {
			fatal(err)
		}
	}

	printDecomposition(edges, r)
}

func targetEdges(centersArg, edgesArg string) ([]float64, error) {
	if centersArg != "" {
		centers, err := parseFloats(centersArg)
		if err != nil {
			return nil, err
		}
		return rebin.CentersToEdges(centers)
	}
	return parseFloats(edgesArg)
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad value %q: %v", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func parseGrid(s string) ([]float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return nil, fmt.Errorf("bad grid %q: want min:max:n", s)
	}
	lo, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil, fmt.Errorf("bad grid min %q: %v", parts[0], err)
	}
	hi, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return nil, fmt.Errorf("bad grid max %q: %v", parts[1], err)
	}
	n, err := strconv.Atoi(parts[2])
	if err != nil || n < 2 {
		return nil, fmt.Errorf("bad grid count %q: want an integer >= 2", parts[2])
	}
	x := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range x {
		x[i] = lo + float64(i)*step
	}
	x[n-1] = hi
	return x, nil
}

func printDecomposition(edges []float64, r *rebin.Rebinner) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if r != nil {
		fmt.Fprintln(w, "bin\tlo\thi\twidth\tsamples")
	} else {
		fmt.Fprintln(w, "bin\tlo\thi\twidth")
	}

	widths := make([]float64, len(edges)-1)
	for k := range widths {
		widths[k] = edges[k+1] - edges[k]
		if r != nil {
			first, n := r.BinSupport(k)
			fmt.Fprintf(w, "%d\t%g\t%g\t%g\t%d..%d\n", k, edges[k], edges[k+1], widths[k], first, first+n-1)
		} else {
			fmt.Fprintf(w, "%d\t%g\t%g\t%g\n", k, edges[k], edges[k+1], widths[k])
		}
	}
	w.Flush()

	fmt.Printf("\nbins: %d  span: [%g, %g]  total width: %g\n",
		len(widths), edges[0], edges[len(edges)-1], vecmath.Sum(widths))
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "rebininfo: %v\n", err)
	os.Exit(1)
}
