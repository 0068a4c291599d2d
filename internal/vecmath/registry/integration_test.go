package registry_test

import (
	"testing"

	"github.com/cwbudde/algo-rebin/internal/cpu"
	"github.com/cwbudde/algo-rebin/internal/vecmath/registry"

	_ "github.com/cwbudde/algo-rebin/internal/vecmath/arch/generic"
)

func TestGlobalHasGenericFallback(t *testing.T) {
	// The generic arch package registers itself on import; it must be
	// selectable even with every SIMD level disabled.
	entry := registry.Global.Lookup(cpu.Features{ForceGeneric: true})
	if entry == nil {
		t.Fatal("no generic fallback registered in Global")
	}
	if entry.Name != "generic" {
		t.Fatalf("fallback = %q, want generic", entry.Name)
	}
	if entry.DotProduct == nil || entry.Sum == nil {
		t.Fatalf("generic entry missing operations: %+v", entry)
	}
}

func TestGlobalSelectsForCurrentCPU(t *testing.T) {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		t.Fatal("Lookup returned nil for current CPU")
	}
	if entry.DotProduct([]float64{2, 3}, []float64{4, 5}) != 23 {
		t.Fatalf("selected %q DotProduct gave wrong result", entry.Name)
	}
}
