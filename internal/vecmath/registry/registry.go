// Package registry holds the implementation registry for reduction
// kernels.
//
// Kernel variants (generic today, SIMD levels as they are added) register
// themselves from init() functions; the vecmath package asks the registry
// for the highest-priority variant the current CPU supports. Keeping the
// dispatch here, behind plain function pointers, means a batch reduction
// never branches on CPU features in its inner loop.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-rebin/internal/cpu"
)

// OpEntry is one registered kernel variant. Only the operations a variant
// actually implements need to be populated.
type OpEntry struct {
	// Name identifies the variant ("generic", "avx2", ...).
	Name string

	// SIMDLevel is the instruction set this variant requires.
	SIMDLevel cpu.SIMDLevel

	// Priority orders selection when several variants are compatible;
	// higher wins. Generic registers at 0, SIMD variants above it.
	Priority int

	// DotProduct returns sum(a[i] * b[i]) over the shorter length.
	DotProduct func(a, b []float64) float64

	// Sum returns the sum of all elements.
	Sum func(x []float64) float64
}

// OpRegistry manages kernel variant registration and lookup.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the registry all kernel dispatch goes through.
var Global = &OpRegistry{}

// Register adds a variant. Called from init() functions; registrations
// must complete before the first Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority variant compatible with features, or
// nil if nothing is registered for them. With the generic fallback
// registered, nil never happens.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}
	return nil
}

// sortByPriority orders entries descending by priority. Insertion sort;
// the registry holds a handful of entries. Caller holds the write lock.
func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered variants. For tests and
// diagnostics.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears the registry. For tests only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
	r.sorted = false
}
