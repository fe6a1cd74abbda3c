// Package ref implements the process-wide monotonic counters that allocate
// unique ids and refs: task ids, location refs, region refs and string refs.
//
// Grounded on the teacher's use of atomic counters for its dataset/span ids
// (trace2dataset.go's datasetId counter) and on original_source's
// `get_unique_id()`/`get_unique_loc_ref()` family in trace-core.c, which are
// plain atomic fetch-and-add counters. Counters never reset between
// archives, matching Design Note "Global counters" in spec.md §9.
package ref

import "sync/atomic"

// Counter is a monotonic, process-wide allocator of 64-bit values.
type Counter struct {
	n uint64
}

// Next returns the next value in the sequence, starting at 0.
func (c *Counter) Next() uint64 {
	return atomic.AddUint64(&c.n, 1) - 1
}

var (
	taskIDs     Counter
	locationRef Counter
	regionRef   Counter
	stringRef   Counter
)

// NewTaskID allocates a process-wide unique task id.
func NewTaskID() uint64 { return taskIDs.Next() }

// NewLocationRef allocates a process-wide unique location ref.
func NewLocationRef() uint32 { return uint32(locationRef.Next()) }

// NewRegionRef allocates a process-wide unique region ref.
func NewRegionRef() uint32 { return uint32(regionRef.Next()) }

// NewStringRef allocates a process-wide unique string ref.
func NewStringRef() uint32 { return uint32(stringRef.Next()) }
