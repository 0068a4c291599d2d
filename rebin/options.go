package rebin

import (
	"runtime"

	"github.com/cwbudde/algo-rebin/internal/vecmath"
)

// Kernel reduces two equal-length slices to their dot product. It is the
// execution strategy of the weighted path: the default is selected from the
// kernel registry at first use, and callers may substitute their own
// (for instrumentation, or to route the reduction elsewhere). A kernel must
// be pure and safe for concurrent calls.
type Kernel func(a, b []float64) float64

type config struct {
	workers int
	kernel  Kernel
}

// Option configures a Rebinner.
type Option func(*config)

// WithWorkers sets the number of goroutines RebinBatch spreads a batch
// over. 1 forces fully sequential evaluation. The default is
// runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.workers = n
		}
	}
}

// WithKernel overrides the reduction kernel used by the weighted path.
func WithKernel(k Kernel) Option {
	return func(cfg *config) {
		if k != nil {
			cfg.kernel = k
		}
	}
}

func defaultConfig() config {
	return config{
		workers: runtime.GOMAXPROCS(0),
		kernel:  vecmath.DotProduct,
	}
}
