package vecmath

import (
	"math"
	"testing"
)

func TestDotProduct(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"empty", nil, nil, 0},
		{"single", []float64{2}, []float64{3}, 6},
		{"basic", []float64{1, 2, 3}, []float64{4, 5, 6}, 32},
		{"mismatched lengths", []float64{1, 2, 3, 100}, []float64{4, 5, 6}, 32},
		{"signs", []float64{1, -2, 3}, []float64{-4, 5, 6}, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DotProduct(tc.a, tc.b)
			if math.Abs(got-tc.want) > 1e-12 {
				t.Fatalf("DotProduct() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSum(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		want float64
	}{
		{"empty", nil, 0},
		{"single", []float64{2.5}, 2.5},
		{"cancellation", []float64{1, -1, 2, -2}, 0},
		{"basic", []float64{0.5, 1.5, 2.5}, 4.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Sum(tc.x)
			if math.Abs(got-tc.want) > 1e-12 {
				t.Fatalf("Sum() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDotProductLarge(t *testing.T) {
	n := 10000
	a := make([]float64, n)
	b := make([]float64, n)
	for i := range a {
		a[i] = 1
		b[i] = float64(i)
	}
	want := float64(n) * float64(n-1) / 2
	if got := DotProduct(a, b); got != want {
		t.Fatalf("DotProduct() = %v, want %v", got, want)
	}
}
