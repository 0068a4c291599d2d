// Package rebin resamples tabulated densities onto new bins while
// conserving flux.
//
// A spectrum is a pair of slices (x, y) where y samples a piecewise-linear
// density over the strictly increasing grid x. Rebinning integrates that
// interpolant over each target bin and reports the integral divided by the
// bin width, so the result stays a density comparable to the input while the
// per-bin flux is preserved exactly.
//
// Target bins are given either as N+1 edges or as N centers;
// [CentersToEdges] derives edges from centers using interior midpoints and
// symmetric end extrapolation. Edges must lie within the closed sample
// range; requests outside it fail with [ErrRange] rather than extrapolating.
//
// Two evaluation paths produce identical results:
//
//   - [Rebin]: a single-pass trapezoidal scan with a non-backtracking
//     cursor into x. Exact and allocation-light; the reference semantics.
//   - [Rebinner]: precomputes the sample-to-bin weight decomposition once
//     from (x, edges) and applies it to each spectrum as a dense dot
//     product. [Rebinner.RebinBatch] fans a batch of spectra sharing one
//     grid across worker goroutines.
//
// The weighted path matches the reference path to double-precision
// accumulation tolerance for every input, regardless of worker count or
// reduction kernel.
package rebin
