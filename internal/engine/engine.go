// Package engine implements the Event Engine (spec.md §4.1, 20% share): the
// component that actually applies Enter/Leave/TaskCreate/TaskSchedule/
// TaskSwitch semantics against a Location's active-region stack and a
// RegionDef's lock/refcount state, emitting events to an archive sink.
//
// Grounded on original_source/src/otter-trace/trace-core.c's
// `trace_event_enter`/`trace_event_leave`/`trace_event_task_create`/
// `trace_event_task_schedule`/`trace_event_task_switch`, which this package
// follows step for step: lock a shared region before touching its attribute
// list, push a region-definition scope, increment the refcount under lock;
// on leave, pop the region-definition scope before checking whether the
// observed refcount reached zero, and destroy only if it did, always under
// the same lock acquisition.
package engine

import (
	"go.uber.org/zap"

	"github.com/otterspan/otterspan/internal/attr"
	"github.com/otterspan/otterspan/internal/clock"
	"github.com/otterspan/otterspan/internal/fatal"
	"github.com/otterspan/otterspan/internal/location"
	"github.com/otterspan/otterspan/internal/region"
)

// Sink is the narrow archive-facing surface the engine needs: a location's
// usual enter/leave/definition writers, plus the ability to write a single
// discrete (non-paired) event such as task_create or task_switch.
type Sink interface {
	location.EventWriter
	location.DefWriter
	WriteDiscrete(locationRef uint32, def *region.Def, label attr.Label, timestamp uint64) error
}

// Engine applies region lifetime and task-switch semantics against
// Locations and RegionDefs, using clk for event timestamps and sink to
// persist the result.
type Engine struct {
	logger *zap.Logger
	clk    clock.Source
	sink   Sink
}

// New constructs an Engine. logger may be nil, in which case fatal aborts
// are not logged before panicking.
func New(logger *zap.Logger, clk clock.Source, sink Sink) *Engine {
	return &Engine{logger: logger, clk: clk, sink: sink}
}

// NewLocation begins a new traced thread of execution.
func (e *Engine) NewLocation(threadType attr.Label, locationGroup uint64) *location.Location {
	return location.New(threadType, locationGroup, e.sink, e.sink)
}

// EndLocation ends a traced thread of execution, flushing its queued region
// definitions and writing its own location definition.
func (e *Engine) EndLocation(loc *location.Location) error {
	return loc.Destroy()
}

// Enter opens def as the innermost active region on loc (spec.md §4.1). If
// def IsShared, its mutex is held for the whole operation so that attribute
// assembly and refcount increment are atomic with respect to every other
// location concurrently entering or leaving the same region.
func (e *Engine) Enter(loc *location.Location, def *region.Def) {
	fatal.AbortIf(e.logger, loc == nil, "engine: Enter on nil location")
	fatal.AbortIf(e.logger, def == nil, "engine: Enter with nil region")

	def.Lock()
	def.Attrs().Reset()
	def.AddCommonAttributes()
	if err := def.AddVariantAttributes(); err != nil {
		def.Unlock()
		fatal.Abort(e.logger, err.Error())
	}
	def.Attrs().AddLabel(attr.EventType, def.EventTypeLabel())
	def.Attrs().AddLabel(attr.Endpoint, attr.EndpointEnter)
	def.IncRefCount()
	if def.IsShared() {
		loc.EnterRegionDefScope()
	}

	ts := e.clk.Now()
	if err := loc.EnterRegion(def, ts); err != nil {
		def.Unlock()
		fatal.Abort(e.logger, err.Error())
	}
	def.Unlock()
}

// Leave closes the innermost active region on loc.
//
// If the closed region is shared (Parallel) and the refcount this leaver
// observes under lock is zero, this leaver is the one that destroys it: any
// region definitions hoisted into its inherited queue are flushed to the
// archive, and its own definition is written (spec.md §4.1/§5: "the last
// location to leave... is responsible for destroying it").
//
// Otherwise, def is not shared, so its definition is never written
// immediately at Leave. Per spec.md §4.2, a non-shared region definition is
// instead enqueued via StoreRegionDef: onto the enclosing Parallel region's
// inherited queue if loc is currently nested inside one, or onto loc's own
// rgn_defs queue — flushed at Destroy — if it is not.
func (e *Engine) Leave(loc *location.Location) *region.Def {
	fatal.AbortIf(e.logger, loc == nil, "engine: Leave on nil location")

	ts := e.clk.Now()
	def, err := loc.LeaveRegion(ts)
	if err != nil {
		fatal.Abort(e.logger, err.Error())
	}

	def.Lock()
	if def.IsShared() {
		if err := loc.LeaveRegionDefScope(def); err != nil {
			def.Unlock()
			fatal.Abort(e.logger, err.Error())
		}
	}

	destroy := true
	if def.IsShared() {
		destroy = def.DecRefCount() == 0
	}
	def.Unlock()

	if def.IsShared() {
		if destroy {
			e.destroyRegion(def)
		}
	} else {
		loc.StoreRegionDef(def)
	}
	return def
}

// destroyRegion flushes a shared region's inherited region-definition queue
// and writes the region's own definition record. Only ever called for a
// shared (Parallel) region that the caller has observed reaching refcount
// zero.
func (e *Engine) destroyRegion(def *region.Def) {
	if q := def.InheritedQueue(); q != nil {
		for {
			inherited, ok := q.Pop()
			if !ok {
				break
			}
			if err := e.sink.WriteRegionDef(inherited); err != nil {
				fatal.Abort(e.logger, err.Error())
			}
		}
	}
	if err := e.sink.WriteRegionDef(def); err != nil {
		fatal.Abort(e.logger, err.Error())
	}
}
