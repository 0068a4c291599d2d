// Package generic provides the pure-Go baseline reduction kernels. They
// are the fallback for every architecture and the semantic reference for
// any SIMD variant added above them.
package generic

// DotProduct returns sum(a[i] * b[i]). Only the minimum length of the two
// slices is used; empty input yields 0.
func DotProduct(a, b []float64) float64 {
	n := min(len(a), len(b))
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// Sum returns the sum of all elements in x. Empty input yields 0.
func Sum(x []float64) float64 {
	sum := 0.0
	for _, v := range x {
		sum += v
	}
	return sum
}
