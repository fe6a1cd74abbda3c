// Package strreg implements the deduplicating string-to-ref registry
// (spec.md §3 StringRegistry): the first insert of a string allocates a new
// ref via an injected labeller function, subsequent inserts of the same
// string return the previously-allocated ref.
//
// Grounded on original_source/src/types/string_value_registry.cpp, which
// wraps a `std::map<std::string,uint32_t>` keyed by an injected
// `labeller_fn`. Per spec.md §9 Open Question (c), this implementation uses
// an explicit two-value map lookup ("comma ok") to detect presence, rather
// than comparing against the map's zero value, to avoid colliding with a
// legitimately zero-valued ref.
package strreg

import "sync"

// Labeller allocates a new, process-wide unique string ref.
type Labeller func() uint32

// Registry is a deduplicating string -> ref map.
//
// spec.md §5 notes the registry is "single-threaded-accessed by
// construction... if used at runtime it requires an external lock". This
// implementation takes the simpler, safer route of owning its own mutex so
// every caller gets the same safety guarantee regardless of when it calls
// Insert; see DESIGN.md for the rationale.
type Registry struct {
	mu       sync.Mutex
	labeller Labeller
	labels   map[string]uint32
}

// New constructs a Registry that allocates refs via labeller.
func New(labeller Labeller) *Registry {
	if labeller == nil {
		panic("strreg: labeller must not be nil")
	}
	return &Registry{
		labeller: labeller,
		labels:   make(map[string]uint32),
	}
}

// Insert returns the ref for s, allocating a new one via the labeller on
// first insert and reusing the stored ref on every subsequent insert of an
// identical string.
func (r *Registry) Insert(s string) uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ref, ok := r.labels[s]; ok {
		return ref
	}

	ref := r.labeller()
	r.labels[s] = ref
	return ref
}

// Len reports the number of distinct strings registered so far.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.labels)
}

// Each calls fn once per (string, ref) pair currently registered, in
// unspecified order. Used when flushing the string table to the archive at
// finalise.
func (r *Registry) Each(fn func(s string, ref uint32)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for s, ref := range r.labels {
		fn(s, ref)
	}
}
