package rebin

// binWeights is the sample-to-bin decomposition for one (x, edges) pair.
// Each output bin touches a contiguous run of samples, so row k is stored
// as a dense weight segment aligned at first[k]:
//
//	integral(k) = dot(weights[offsets[k]:offsets[k+1]], y[first[k]:first[k]+rowLen])
//
// Dividing by the bin width turns the integral into a mean density; the
// reciprocal widths are precomputed so that step is a block multiply.
// The structure is immutable after buildWeights and safe for concurrent
// readers.
type binWeights struct {
	nbins    int
	nx       int
	first    []int
	offsets  []int
	weights  []float64
	invWidth []float64
}

// buildWeights runs the same cursor scan as rebinScan, but instead of
// integrating a particular y it records how each trapezoid distributes over
// the two samples supporting it. Inputs must already be validated.
func buildWeights(x, edges []float64) *binWeights {
	nb := len(edges) - 1
	w := &binWeights{
		nbins:    nb,
		nx:       len(x),
		first:    make([]int, nb),
		offsets:  make([]int, nb+1),
		invWidth: make([]float64, nb),
	}

	var row []float64
	j := 0
	for k := 0; k < nb; k++ {
		lo, hi := edges[k], edges[k+1]
		for x[j+1] <= lo {
			j++
		}

		base := j
		w.first[k] = base
		row = row[:0]

		left := lo
		for x[j+1] < hi {
			row = accumTrapezoid(row, j-base, x, j, left, x[j+1])
			left = x[j+1]
			j++
		}
		row = accumTrapezoid(row, j-base, x, j, left, hi)

		w.offsets[k+1] = w.offsets[k] + len(row)
		w.weights = append(w.weights, row...)
		w.invWidth[k] = 1 / (hi - lo)
	}
	return w
}

// accumTrapezoid adds the trapezoid over [a, b] to row, where [a, b] lies
// within the sample interval [x[j], x[j+1]] and r is j's index within the
// row. The trapezoid's area is linear in y[j] and y[j+1]:
//
//	0.5*(y(a)+y(b))*(b-a) = h*(2-ta-tb)*y[j] + h*(ta+tb)*y[j+1]
//
// with h = (b-a)/2 and ta, tb the interpolation positions of a and b.
func accumTrapezoid(row []float64, r int, x []float64, j int, a, b float64) []float64 {
	for len(row) < r+2 {
		row = append(row, 0)
	}
	dx := x[j+1] - x[j]
	ta := (a - x[j]) / dx
	tb := (b - x[j]) / dx
	h := 0.5 * (b - a)
	row[r] += h * (2 - ta - tb)
	row[r+1] += h * (ta + tb)
	return row
}
