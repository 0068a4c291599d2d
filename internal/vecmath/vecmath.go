// Package vecmath fronts the reduction kernels used by the weighted rebin
// path. Each operation binds to the best registered implementation for the
// current CPU on first use and never re-dispatches afterwards.
package vecmath

import (
	"sync"

	"github.com/cwbudde/algo-rebin/internal/cpu"
	"github.com/cwbudde/algo-rebin/internal/vecmath/registry"

	_ "github.com/cwbudde/algo-rebin/internal/vecmath/arch/generic"
)

var (
	dotProductImpl func([]float64, []float64) float64
	dotProductOnce sync.Once

	sumImpl func([]float64) float64
	sumOnce sync.Once
)

func initDotProduct() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("vecmath: no dot product implementation registered")
	}
	if entry.DotProduct == nil {
		panic("vecmath: selected implementation missing dot product")
	}
	dotProductImpl = entry.DotProduct
}

// DotProduct returns the dot product of a and b: sum(a[i] * b[i]).
// Only the minimum length of the two slices is used; empty input yields 0.
func DotProduct(a, b []float64) float64 {
	dotProductOnce.Do(initDotProduct)
	return dotProductImpl(a, b)
}

func initSum() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("vecmath: no sum implementation registered")
	}
	if entry.Sum == nil {
		panic("vecmath: selected implementation missing sum")
	}
	sumImpl = entry.Sum
}

// Sum returns the sum of all elements in x. Empty input yields 0.
func Sum(x []float64) float64 {
	sumOnce.Do(initSum)
	return sumImpl(x)
}
