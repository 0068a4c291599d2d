package rebin

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGrid indicates a malformed sample grid: fewer than two
	// samples, a non-increasing x, or a y length that does not match x.
	ErrInvalidGrid = errors.New("rebin: invalid sample grid")
	// ErrInvalidBins indicates malformed target bins: fewer than two edges,
	// non-increasing edges or centers, or a zero-width bin.
	ErrInvalidBins = errors.New("rebin: invalid target bins")
	// ErrRange indicates target edges extending beyond the sample range.
	ErrRange = errors.New("rebin: target bins outside sample range")
)

// Rebin resamples the density y tabulated on x onto the bins bounded by
// edges, returning one mean density per bin. The piecewise-linear
// interpolant of (x, y) is integrated exactly over each bin and divided by
// the bin width, so per-bin flux is conserved.
//
// x must be strictly increasing with len(x) == len(y) >= 2. edges must be
// strictly increasing with at least two entries and must lie within
// [x[0], x[len(x)-1]]; edges outside that range fail with ErrRange before
// any integration work.
func Rebin(x, y, edges []float64) ([]float64, error) {
	if err := validateGrid(x, y); err != nil {
		return nil, err
	}
	if err := validateEdges(x, edges); err != nil {
		return nil, err
	}
	out := make([]float64, len(edges)-1)
	rebinScan(out, x, y, edges)
	return out, nil
}

// RebinCenters is Rebin with the target given as bin centers instead of
// edges. Edges are derived with CentersToEdges first, so the derived outer
// edges extend half a bin beyond the first and last center and must still
// lie within the sample range.
func RebinCenters(x, y, centers []float64) ([]float64, error) {
	edges, err := CentersToEdges(centers)
	if err != nil {
		return nil, err
	}
	return Rebin(x, y, edges)
}

// Integrate returns the trapezoidal integral of the tabulated density y
// over the full sample grid x.
func Integrate(x, y []float64) (float64, error) {
	if err := validateGrid(x, y); err != nil {
		return 0, err
	}
	total := 0.0
	for i := 0; i < len(x)-1; i++ {
		total += 0.5 * (y[i] + y[i+1]) * (x[i+1] - x[i])
	}
	return total, nil
}

// rebinScan fills out with one mean density per bin. It walks bins left to
// right with a single cursor into x; both sequences are monotonic, so the
// cursor never moves backward and each sample interval is visited once.
// Inputs must already be validated.
func rebinScan(out, x, y, edges []float64) {
	j := 0
	for k := range out {
		lo, hi := edges[k], edges[k+1]

		// Advance to the interval containing lo: x[j] <= lo < x[j+1].
		// lo < edges[len(edges)-1] <= x[len(x)-1] keeps j in range.
		for x[j+1] <= lo {
			j++
		}

		area := 0.0
		left := lo
		yLeft := lerp(x, y, j, lo)

		// Full sub-intervals inside the bin, one trapezoid each. The
		// strict comparison leaves a sample coincident with hi to the
		// closing trapezoid so it contributes exactly once.
		for x[j+1] < hi {
			area += 0.5 * (yLeft + y[j+1]) * (x[j+1] - left)
			left = x[j+1]
			yLeft = y[j+1]
			j++
		}

		// Closing partial trapezoid up to hi, with hi <= x[j+1].
		area += 0.5 * (yLeft + lerp(x, y, j, hi)) * (hi - left)
		out[k] = area / (hi - lo)
	}
}

// lerp evaluates the linear interpolant of (x, y) at position at, which
// must lie within [x[j], x[j+1]].
func lerp(x, y []float64, j int, at float64) float64 {
	t := (at - x[j]) / (x[j+1] - x[j])
	return y[j] + t*(y[j+1]-y[j])
}

func validateGrid(x, y []float64) error {
	if err := validateX(x); err != nil {
		return err
	}
	if len(y) != len(x) {
		return fmt.Errorf("%w: len(y) = %d, len(x) = %d", ErrInvalidGrid, len(y), len(x))
	}
	return nil
}

func validateX(x []float64) error {
	if len(x) < 2 {
		return fmt.Errorf("%w: need at least 2 samples, got %d", ErrInvalidGrid, len(x))
	}
	for i := 0; i < len(x)-1; i++ {
		if x[i+1] <= x[i] {
			return fmt.Errorf("%w: x not strictly increasing at index %d", ErrInvalidGrid, i+1)
		}
	}
	return nil
}

func validateEdges(x, edges []float64) error {
	if len(edges) < 2 {
		return fmt.Errorf("%w: need at least 2 edges, got %d", ErrInvalidBins, len(edges))
	}
	for i := 0; i < len(edges)-1; i++ {
		if edges[i+1] <= edges[i] {
			return fmt.Errorf("%w: edges not strictly increasing at index %d", ErrInvalidBins, i+1)
		}
	}
	if edges[0] < x[0] || edges[len(edges)-1] > x[len(x)-1] {
		return fmt.Errorf("%w: edges span [%g, %g], samples span [%g, %g]",
			ErrRange, edges[0], edges[len(edges)-1], x[0], x[len(x)-1])
	}
	return nil
}
