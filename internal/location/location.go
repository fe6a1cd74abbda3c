// Package location implements the Location data model of spec.md §3/§4.3: a
// per-thread cursor tracking the stack of regions currently open on that
// thread, the queue of region definitions awaiting a write, and the
// hoisting protocol that lets a nested scope's nested region definitions
// bubble up to an enclosing scope that can actually write them.
//
// Grounded on original_source/src/otter-trace/trace-location.c, which
// defines exactly this struct (`trace_location_def_t`) and its
// `trace_location_enter_region_def_scope`/`..._leave_region_def_scope`
// swap-on-entry/exit mechanism, and on the teacher's `TrThread` in
// trace2dataset.go (a per-thread `regionStack []*TrRegion` with
// push/pop-and-complete helpers), generalized here to the full
// region-definition hoisting protocol the spec requires.
package location

import (
	"fmt"

	"github.com/otterspan/otterspan/internal/attr"
	"github.com/otterspan/otterspan/internal/collections"
	"github.com/otterspan/otterspan/internal/ref"
	"github.com/otterspan/otterspan/internal/region"
)

// EventWriter is the narrow interface a Location needs to emit trace events.
// Implemented by internal/archive; kept as an interface here so this package
// never has to import the archive encoding.
type EventWriter interface {
	WriteEnter(locationRef uint32, def *region.Def, timestamp uint64) error
	WriteLeave(locationRef uint32, def *region.Def, timestamp uint64) error
}

// DefWriter is the narrow interface a Location needs to flush definitions at
// teardown.
type DefWriter interface {
	WriteRegionDef(def *region.Def) error
	WriteLocationDef(loc *Location) error
}

// Location is one traced thread of execution.
type Location struct {
	ref           uint32
	threadType    attr.Label
	locationGroup uint64
	eventCount    uint64

	rgnStack     *collections.Stack[*region.Def]
	rgnDefs      *collections.Queue[*region.Def]
	rgnDefsStack *collections.Stack[*collections.Queue[*region.Def]]

	attrs *attr.List

	events EventWriter
	defs   DefWriter
}

// New constructs a Location for a newly-begun thread of the given type,
// under locationGroup (the process/address-space it belongs to).
func New(threadType attr.Label, locationGroup uint64, events EventWriter, defs DefWriter) *Location {
	return &Location{
		ref:           ref.NewLocationRef(),
		threadType:    threadType,
		locationGroup: locationGroup,
		rgnStack:      &collections.Stack[*region.Def]{},
		rgnDefs:       &collections.Queue[*region.Def]{},
		rgnDefsStack:  &collections.Stack[*collections.Queue[*region.Def]]{},
		attrs:         attr.NewList(),
		events:        events,
		defs:          defs,
	}
}

// Ref returns this location's unique archive reference.
func (l *Location) Ref() uint32 { return l.ref }

// ThreadType returns the location's thread-type label (initial or worker).
func (l *Location) ThreadType() attr.Label { return l.threadType }

// Attrs returns the location's reusable attribute buffer.
func (l *Location) Attrs() *attr.List { return l.attrs }

// EventCount returns the number of events recorded on this location so far.
func (l *Location) EventCount() uint64 { return l.eventCount }

func (l *Location) incEventCount() { l.eventCount++ }

// EnterRegion pushes def onto this location's active-region stack and
// writes its Enter event.
func (l *Location) EnterRegion(def *region.Def, timestamp uint64) error {
	l.rgnStack.Push(def)
	l.incEventCount()
	return l.events.WriteEnter(l.ref, def, timestamp)
}

// LeaveRegion pops the innermost active region from this location's stack
// and writes its Leave event. Popping an empty stack is a programmer error
// (spec.md §7a): the caller is expected to escalate the returned error via
// fatal.Abort.
func (l *Location) LeaveRegion(timestamp uint64) (*region.Def, error) {
	def, ok := l.rgnStack.Pop()
	if !ok {
		return nil, fmt.Errorf("location %d: leave with no active region", l.ref)
	}
	l.incEventCount()
	if err := l.events.WriteLeave(l.ref, def, timestamp); err != nil {
		return def, err
	}
	return def, nil
}

// ActiveRegionDepth reports how many regions are currently open on this
// location.
func (l *Location) ActiveRegionDepth() int { return l.rgnStack.Len() }

// StoreRegionDef enqueues def onto this location's current region-definitions
// queue, to be written once its enclosing scope closes: either a Parallel
// region's inherited queue if this location is currently inside one (see
// EnterRegionDefScope/LeaveRegionDefScope), or this location's own rgn_defs
// queue, flushed at Destroy, if it is not. Used for every non-shared
// region's definition instead of writing it immediately at Leave, so that a
// definition produced inside a Parallel region is attributed to that region
// rather than to whichever worker happened to produce it (spec.md §4.2/§4.3).
func (l *Location) StoreRegionDef(def *region.Def) {
	l.rgnDefs.Push(def)
}

// EnterRegionDefScope starts a fresh, nested region-definitions queue,
// saving the current one to be restored on the matching LeaveRegionDefScope.
// This is the hoisting swap, and is only ever called when entering a shared
// (Parallel) region (spec.md §4.3: "When the thread enters a Parallel
// region..."): definitions queued inside the nested scope are kept separate
// until LeaveRegionDefScope hands them to that region's inherited queue.
func (l *Location) EnterRegionDefScope() {
	l.rgnDefsStack.Push(l.rgnDefs)
	l.rgnDefs = &collections.Queue[*region.Def]{}
}

// LeaveRegionDefScope restores the region-definitions queue saved by the
// matching EnterRegionDefScope, and hands everything collected during the
// nested scope to parallelDef's inherited queue, so the region's eventual
// destroyer can write them all in one place (spec.md §4.3). parallelDef must
// be the shared (Parallel) region whose scope is closing; the caller is
// expected to hold parallelDef's lock for the duration of this call. Returns
// an error if called without a matching EnterRegionDefScope, or if
// parallelDef is not a shared region (programmer error, spec.md §7a).
func (l *Location) LeaveRegionDefScope(parallelDef *region.Def) error {
	parent, ok := l.rgnDefsStack.Pop()
	if !ok {
		return fmt.Errorf("location %d: leave region-def scope without matching enter", l.ref)
	}
	inherited := parallelDef.InheritedQueue()
	if inherited == nil {
		return fmt.Errorf("location %d: leave region-def scope on non-shared region (kind %v)", l.ref, parallelDef.Kind())
	}
	inherited.Append(l.rgnDefs)
	l.rgnDefs = parent
	return nil
}

// DrainRegionDefs returns and clears every region definition currently
// queued on this location, in enqueue order.
func (l *Location) DrainRegionDefs() []*region.Def {
	return l.rgnDefs.Drain()
}

// SaveActiveRegionsToTask transfers this location's entire active-region
// stack onto task, for later restoration by RestoreActiveRegionsFromTask
// when the task resumes on (possibly) a different location. It is a
// programmer error for task to already hold a saved stack (spec.md §4.5,
// grounded on trace-location.c's fatal-if-nonempty-destination check).
func (l *Location) SaveActiveRegionsToTask(task *region.Def) error {
	saved := task.SavedStack()
	if saved == nil {
		return fmt.Errorf("location %d: task region has no saved-stack slot", l.ref)
	}
	if !saved.IsEmpty() {
		return fmt.Errorf("location %d: task %d already has a saved active-region stack", l.ref, task.TaskID())
	}
	collections.Transfer(saved, l.rgnStack)
	return nil
}

// RestoreActiveRegionsFromTask transfers task's saved active-region stack
// onto this location. It is a programmer error for this location to
// already have an active-region stack at the point of restore (spec.md
// §4.5): a task switch must land on a location with no regions of its own
// still open.
func (l *Location) RestoreActiveRegionsFromTask(task *region.Def) error {
	if !l.rgnStack.IsEmpty() {
		return fmt.Errorf("location %d: active-region stack not empty before task-switch restore", l.ref)
	}
	collections.Transfer(l.rgnStack, task.SavedStack())
	return nil
}

// Destroy flushes every region definition still queued on this location,
// then writes the location's own definition record. Called once, when the
// thread the location represents ends.
func (l *Location) Destroy() error {
	for _, def := range l.DrainRegionDefs() {
		if err := l.defs.WriteRegionDef(def); err != nil {
			return err
		}
	}
	return l.defs.WriteLocationDef(l)
}
