// Package collections implements the small generic LIFO/FIFO containers the
// region/location lifetime engine is built on: the per-location active
// region stack, the saved-region-def-queue stack used for hoisting, and the
// per-task saved region stack used across task-switch boundaries.
//
// Grounded on original_source's `public/types/stack.h` / `queue.h` (an
// opaque `otter_stack_t`/`otter_queue_t` of `data_item_t` unions) and on the
// teacher's per-thread `regionStack []*TrRegion` in trace2dataset.go, here
// made generic and typed instead of a `void*`-backed stack.
package collections

// Stack is a LIFO stack of T. The zero value is ready to use.
type Stack[T any] struct {
	items []T
}

// Push adds an item to the top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top item. ok is false if the stack was empty.
func (s *Stack[T]) Pop() (v T, ok bool) {
	if len(s.items) == 0 {
		return v, false
	}
	n := len(s.items) - 1
	v = s.items[n]
	s.items = s.items[:n]
	return v, true
}

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// IsEmpty reports whether the stack has no items.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Items returns the stack contents, bottom-to-top. The returned slice aliases
// internal storage and must be treated as read-only by the caller.
func (s *Stack[T]) Items() []T {
	return s.items
}

// Transfer moves all items out of src and onto dst, preserving order. src is
// left empty. Used to move a location's active region stack to/from a task's
// saved stack at task-switch boundaries (spec.md §4.1/§4.3).
func Transfer[T any](dst, src *Stack[T]) {
	dst.items = append(dst.items, src.items...)
	src.items = nil
}
