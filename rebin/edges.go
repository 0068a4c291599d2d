package rebin

import "fmt"

// CentersToEdges derives N+1 bin edges from N bin centers. Interior edges
// are midpoints of consecutive centers; the outer edges mirror the adjacent
// interior edge about the end center, so every center is enclosed by its
// bin and the boundary bins inherit the spacing of their nearest neighbor.
//
// centers must be strictly increasing with at least two entries.
func CentersToEdges(centers []float64) ([]float64, error) {
	if len(centers) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 centers, got %d", ErrInvalidBins, len(centers))
	}
	for i := 0; i < len(centers)-1; i++ {
		if centers[i+1] <= centers[i] {
			return nil, fmt.Errorf("%w: centers not strictly increasing at index %d", ErrInvalidBins, i+1)
		}
	}

	n := len(centers)
	edges := make([]float64, n+1)
	for i := 1; i < n; i++ {
		edges[i] = 0.5 * (centers[i-1] + centers[i])
	}
	edges[0] = centers[0] - (edges[1] - centers[0])
	edges[n] = centers[n-1] + (centers[n-1] - edges[n-1])
	return edges, nil
}
