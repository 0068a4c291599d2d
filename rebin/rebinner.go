package rebin

import (
	"fmt"
	"slices"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// Rebinner applies one fixed (x, edges) decomposition to many spectra. The
// sample-to-bin weights are computed once at construction and reused for
// every spectrum, which is what makes rebinning a batch cheaper than
// calling Rebin per spectrum. All state is read-only after New, so a
// Rebinner is safe for concurrent use.
type Rebinner struct {
	x       []float64
	edges   []float64
	w       *binWeights
	workers int
	kernel  Kernel
}

// New builds a Rebinner for the sample grid x and the target bins bounded
// by edges. Validation matches Rebin: a range or malformed-input error here
// means every subsequent call would fail the same way.
func New(x, edges []float64, opts ...Option) (*Rebinner, error) {
	if err := validateX(x); err != nil {
		return nil, err
	}
	if err := validateEdges(x, edges); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Rebinner{
		x:       slices.Clone(x),
		edges:   slices.Clone(edges),
		w:       buildWeights(x, edges),
		workers: cfg.workers,
		kernel:  cfg.kernel,
	}, nil
}

// NewFromCenters builds a Rebinner with the target given as bin centers;
// edges are derived with CentersToEdges.
func NewFromCenters(x, centers []float64, opts ...Option) (*Rebinner, error) {
	edges, err := CentersToEdges(centers)
	if err != nil {
		return nil, err
	}
	return New(x, edges, opts...)
}

// Bins returns the number of output bins.
func (r *Rebinner) Bins() int {
	return r.w.nbins
}

// Edges returns a copy of the bin edges.
func (r *Rebinner) Edges() []float64 {
	return slices.Clone(r.edges)
}

// SampleRange returns the closed range covered by the sample grid.
func (r *Rebinner) SampleRange() (lo, hi float64) {
	return r.x[0], r.x[len(r.x)-1]
}

// BinSupport reports the contiguous run of sample indices contributing to
// bin k: the first index and the run length.
func (r *Rebinner) BinSupport(k int) (first, n int) {
	return r.w.first[k], r.w.offsets[k+1] - r.w.offsets[k]
}

// Rebin resamples one spectrum, returning one mean density per bin.
func (r *Rebinner) Rebin(y []float64) ([]float64, error) {
	out := make([]float64, r.w.nbins)
	if err := r.RebinInto(out, y); err != nil {
		return nil, err
	}
	return out, nil
}

// RebinInto resamples one spectrum into dst, which must have one element
// per bin.
func (r *Rebinner) RebinInto(dst, y []float64) error {
	if len(y) != len(r.x) {
		return fmt.Errorf("%w: len(y) = %d, grid has %d samples", ErrInvalidGrid, len(y), len(r.x))
	}
	if len(dst) != r.w.nbins {
		return fmt.Errorf("%w: len(dst) = %d, want %d", ErrInvalidBins, len(dst), r.w.nbins)
	}
	r.apply(dst, y)
	return nil
}

// RebinBatch resamples every spectrum in ys, all sharing the receiver's
// sample grid, returning one output per spectrum in order. The whole batch
// is validated up front; a bad spectrum fails the call before any output is
// produced. Work is spread over the configured number of goroutines, each
// owning a disjoint slice of the batch.
func (r *Rebinner) RebinBatch(ys [][]float64) ([][]float64, error) {
	for i, y := range ys {
		if len(y) != len(r.x) {
			return nil, fmt.Errorf("%w: spectrum %d has %d samples, grid has %d",
				ErrInvalidGrid, i, len(y), len(r.x))
		}
	}

	outs := make([][]float64, len(ys))
	for i := range outs {
		outs[i] = make([]float64, r.w.nbins)
	}

	workers := min(r.workers, len(ys))
	if workers <= 1 {
		for i := range ys {
			r.apply(outs[i], ys[i])
		}
		return outs, nil
	}

	chunk := (len(ys) + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < len(ys); lo += chunk {
		hi := min(lo+chunk, len(ys))
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				r.apply(outs[i], ys[i])
			}
		}(lo, hi)
	}
	wg.Wait()
	return outs, nil
}

// apply runs the weighted reduction for one spectrum: a dot product per
// bin, then a block multiply by the reciprocal bin widths.
func (r *Rebinner) apply(dst, y []float64) {
	w := r.w
	for k := 0; k < w.nbins; k++ {
		row := w.weights[w.offsets[k]:w.offsets[k+1]]
		dst[k] = r.kernel(row, y[w.first[k]:w.first[k]+len(row)])
	}
	vecmath.MulBlockInPlace(dst, w.invWidth)
}

// RebinBatch resamples a batch of spectra sharing one sample grid onto the
// bins bounded by edges. It is shorthand for New followed by
// Rebinner.RebinBatch.
func RebinBatch(x []float64, ys [][]float64, edges []float64, opts ...Option) ([][]float64, error) {
	r, err := New(x, edges, opts...)
	if err != nil {
		return nil, err
	}
	return r.RebinBatch(ys)
}
