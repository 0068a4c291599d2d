package rebin

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-rebin/internal/testutil"
)

func benchGrid(nx, nbins int) (x, y, edges []float64) {
	x = testutil.Linspace(3600, 9800, nx)
	y = testutil.SampleFunc(func(v float64) float64 { return math.Sin(v/300) + 2 }, x)
	edges = testutil.Linspace(3650, 9750, nbins+1)
	return x, y, edges
}

func BenchmarkRebin(b *testing.B) {
	x, y, edges := benchGrid(4096, 512)
	b.ReportAllocs()
	b.SetBytes(int64(len(x) * 8))
	for range b.N {
		if _, err := Rebin(x, y, edges); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRebinnerRebinInto(b *testing.B) {
	x, y, edges := benchGrid(4096, 512)
	r, err := New(x, edges)
	if err != nil {
		b.Fatal(err)
	}
	dst := make([]float64, r.Bins())
	b.ReportAllocs()
	b.SetBytes(int64(len(x) * 8))
	for range b.N {
		if err := r.RebinInto(dst, y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRebinBatch(b *testing.B) {
	x, _, edges := benchGrid(4096, 512)
	ys := randomSpectra(42, 64, len(x))
	r, err := New(x, edges)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.SetBytes(int64(len(ys) * len(x) * 8))
	for range b.N {
		if _, err := r.RebinBatch(ys); err != nil {
			b.Fatal(err)
		}
	}
}
