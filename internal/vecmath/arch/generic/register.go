package generic

import (
	"github.com/cwbudde/algo-rebin/internal/cpu"
	"github.com/cwbudde/algo-rebin/internal/vecmath/registry"
)

// init registers the pure-Go kernels at the lowest priority so any SIMD
// variant, once registered, is preferred automatically.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:       "generic",
		SIMDLevel:  cpu.SIMDNone,
		Priority:   0,
		DotProduct: DotProduct,
		Sum:        Sum,
	})
}
