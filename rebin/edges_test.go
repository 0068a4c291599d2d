package rebin

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-rebin/internal/testutil"
)

func TestCentersToEdges(t *testing.T) {
	tests := []struct {
		name    string
		centers []float64
		want    []float64
	}{
		{"unit spacing", []float64{1, 2, 3}, []float64{0.5, 1.5, 2.5, 3.5}},
		{"double spacing", []float64{1, 3, 5}, []float64{0, 2, 4, 6}},
		{"uneven spacing", []float64{1, 3, 4}, []float64{0, 2, 3.5, 4.5}},
		{"two centers", []float64{2, 4}, []float64{1, 3, 5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CentersToEdges(tc.centers)
			if err != nil {
				t.Fatalf("CentersToEdges() error = %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, got, tc.want, 1e-12)
		})
	}
}

func TestCentersToEdgesShape(t *testing.T) {
	centers := []float64{0.3, 1.1, 2.9, 3.0, 7.5}
	edges, err := CentersToEdges(centers)
	if err != nil {
		t.Fatalf("CentersToEdges() error = %v", err)
	}
	if len(edges) != len(centers)+1 {
		t.Fatalf("len(edges) = %d, want %d", len(edges), len(centers)+1)
	}
	for i := 0; i < len(edges)-1; i++ {
		if edges[i+1] <= edges[i] {
			t.Fatalf("edges not strictly increasing at index %d: %v", i+1, edges)
		}
	}
	// Every center must be enclosed by its derived bin.
	for i, c := range centers {
		if c <= edges[i] || c >= edges[i+1] {
			t.Fatalf("center %d (%v) outside bin [%v, %v]", i, c, edges[i], edges[i+1])
		}
	}
	// Interior edges are exact midpoints.
	for i := 1; i < len(centers); i++ {
		want := 0.5 * (centers[i-1] + centers[i])
		if edges[i] != want {
			t.Fatalf("edge %d = %v, want midpoint %v", i, edges[i], want)
		}
	}
}

func TestCentersToEdgesValidation(t *testing.T) {
	tests := []struct {
		name    string
		centers []float64
	}{
		{"empty", nil},
		{"single", []float64{1}},
		{"decreasing", []float64{3, 2, 1}},
		{"duplicate", []float64{1, 1, 2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := CentersToEdges(tc.centers); !errors.Is(err, ErrInvalidBins) {
				t.Fatalf("CentersToEdges(%v) error = %v, want ErrInvalidBins", tc.centers, err)
			}
		})
	}
}
