// Package region implements the RegionDef data model of spec.md §3/§4.2: a
// tagged union of the six region variants (Parallel, Workshare, Sync,
// Master, Task, Phase), their shared fields, and the locking/ref-counting
// discipline that lets a Parallel region be safely shared across worker
// locations.
//
// Grounded on original_source's `trace-region-def.h`, which declares exactly
// this set of constructors/destructors/getters/setters over an opaque
// `trace_region_def_t`, and on the teacher's `TrRegion`/`TrThread` pattern in
// trace2dataset.go (a per-thread region stack of in-flight spans with a
// `lifetime` and variant-ish payload fields), generalized here from a single
// "region" concept to the full tagged-union region-type model the spec
// requires. A Go sum type is modeled as a tag plus one non-nil variant
// pointer rather than an interface hierarchy, per spec.md §9's design note
// that a tagged sum is the natural fit.
package region

import (
	"fmt"

	"github.com/otterspan/otterspan/internal/attr"
	"github.com/otterspan/otterspan/internal/collections"
	"github.com/otterspan/otterspan/internal/ref"
)

// Kind tags which region variant a Def holds.
type Kind int

const (
	Parallel Kind = iota
	Workshare
	Sync
	Master
	Task
	Phase
)

func (k Kind) String() string {
	switch k {
	case Parallel:
		return "parallel"
	case Workshare:
		return "workshare"
	case Sync:
		return "sync"
	case Master:
		return "master"
	case Task:
		return "task"
	case Phase:
		return "phase"
	default:
		return "unknown"
	}
}

// Def is a RegionDef: a traced scope. Exactly one of the variant fields
// below is non-nil, selected by Kind.
type Def struct {
	ref              uint32
	kind             Kind
	encounteringTask uint64
	attrs            *attr.List

	parallel  *parallelData
	workshare *workshareData
	sync      *syncData
	master    *masterData
	task      *taskData
	phase     *phaseData
}

func newDef(kind Kind, encounteringTask uint64) *Def {
	return &Def{
		ref:              ref.NewRegionRef(),
		kind:             kind,
		encounteringTask: encounteringTask,
		attrs:            attr.NewList(),
	}
}

// Ref returns this region's unique archive reference.
func (d *Def) Ref() uint32 { return d.ref }

// Kind returns the region's variant tag.
func (d *Def) Kind() Kind { return d.kind }

// EncounteringTask returns the id of the task that was executing when this
// region was entered or created.
func (d *Def) EncounteringTask() uint64 { return d.encounteringTask }

// Attrs returns the region's reusable attribute buffer. Callers must hold
// the region's lock (via Lock/Unlock) before touching it if the region
// IsShared.
func (d *Def) Attrs() *attr.List { return d.attrs }

// IsShared reports whether this region may be concurrently active on more
// than one location. Only Parallel regions are currently shared.
func (d *Def) IsShared() bool { return d.kind == Parallel }

// AddCommonAttributes adds the attributes common to every Enter/Leave event
// regardless of region variant: the encountering task id and the region
// type label (spec.md §4.1 step (b)).
func (d *Def) AddCommonAttributes() {
	d.attrs.AddUint64(attr.EncounteringTaskID, d.encounteringTask)
	d.attrs.AddString(attr.RegionType, d.kind.String())
}

// AddVariantAttributes dispatches to the variant-specific attribute
// contributor (spec.md §4.1 step (d) / §4.2). Fatal-aborts (by returning a
// non-nil error to the caller, which is expected to escalate it) on an
// unhandled kind — this should be unreachable for a Def constructed via one
// of the New* constructors in this package.
func (d *Def) AddVariantAttributes() error {
	switch d.kind {
	case Parallel:
		d.addParallelAttributes()
	case Workshare:
		d.addWorkshareAttributes()
	case Sync:
		d.addSyncAttributes()
	case Master:
		// marker only; no additional attributes
	case Task:
		d.addTaskAttributes()
	case Phase:
		d.addPhaseAttributes()
	default:
		return fmt.Errorf("region: unhandled region kind %v", d.kind)
	}
	return nil
}

// EventTypeLabel returns the event-type label attached to an Enter event for
// this region's variant (spec.md §4.1 step (c)).
func (d *Def) EventTypeLabel() attr.Label {
	switch d.kind {
	case Parallel:
		return attr.EventTypeParallelBegin
	case Workshare:
		return attr.EventTypeWorkshareBegin
	case Sync:
		return attr.EventTypeSyncBegin
	case Master:
		return attr.EventTypeMasterBegin
	case Phase:
		return attr.EventTypePhaseBegin
	default:
		return attr.EventTypeTaskEnter
	}
}

// LeaveEventTypeLabel returns the Leave-event counterpart of EventTypeLabel
// for this region's variant. The engine's Leave does not attach it: a Leave
// event carries the attributes assembled at the matching Enter, including
// the Enter event-type and endpoint labels.
func (d *Def) LeaveEventTypeLabel() attr.Label {
	switch d.kind {
	case Parallel:
		return attr.EventTypeParallelEnd
	case Workshare:
		return attr.EventTypeWorkshareEnd
	case Sync:
		return attr.EventTypeSyncEnd
	case Master:
		return attr.EventTypeMasterEnd
	case Phase:
		return attr.EventTypePhaseEnd
	default:
		return attr.EventTypeTaskLeave
	}
}

// Lock acquires the region's mutex. Only meaningful for a shared (Parallel)
// region; a no-op on every other variant, since spec.md §5 states "Non-shared
// regions require no locking".
func (d *Def) Lock() {
	if d.parallel != nil {
		d.parallel.mu.Lock()
	}
}

// Unlock releases the region's mutex. See Lock.
func (d *Def) Unlock() {
	if d.parallel != nil {
		d.parallel.mu.Unlock()
	}
}

// IncRefCount increments a Parallel region's live-enter reference count and
// cumulative enter count. No-op on non-Parallel regions. Callers must hold
// the region's lock.
func (d *Def) IncRefCount() {
	if d.parallel == nil {
		return
	}
	d.parallel.refCount++
	d.parallel.enterCount++
}

// DecRefCount decrements a Parallel region's live-enter reference count and
// returns the value after decrementing. Callers must hold the region's lock.
// No-op (returns 0) on non-Parallel regions.
func (d *Def) DecRefCount() uint32 {
	if d.parallel == nil {
		return 0
	}
	d.parallel.refCount--
	return d.parallel.refCount
}

// RefCount returns a Parallel region's current live-enter count. Callers
// should hold the region's lock for a consistent read outside of Enter/Leave.
func (d *Def) RefCount() uint32 {
	if d.parallel == nil {
		return 0
	}
	return d.parallel.refCount
}

// EnterCount returns a Parallel region's cumulative enter count.
func (d *Def) EnterCount() uint32 {
	if d.parallel == nil {
		return 0
	}
	return d.parallel.enterCount
}

// InheritedQueue returns the Parallel region's queue of region definitions
// hoisted out of its nested scope (spec.md §4.3). Returns nil for
// non-Parallel regions.
func (d *Def) InheritedQueue() *collections.Queue[*Def] {
	if d.parallel == nil {
		return nil
	}
	return &d.parallel.inherited
}

// SavedStack returns the Task region's saved active-region stack, used to
// suspend/resume a task's open regions across task-switch boundaries
// (spec.md §3 Task payload). Returns nil for non-Task regions.
func (d *Def) SavedStack() *collections.Stack[*Def] {
	if d.task == nil {
		return nil
	}
	return &d.task.savedStack
}

// SetTaskStatus records the reason the most recent schedule/switch event
// occurred for this Task region. It is a programmer error to call this on a
// non-Task region.
func (d *Def) SetTaskStatus(status TaskStatus) error {
	if d.task == nil {
		return fmt.Errorf("region: SetTaskStatus on non-task region (kind %v)", d.kind)
	}
	d.task.status = status
	return nil
}

// TaskStatus returns the Task region's last recorded schedule status.
func (d *Def) TaskStatus() TaskStatus {
	if d.task == nil {
		return TaskStatusUndefined
	}
	return d.task.status
}

// TaskID returns the Task region's task id, or 0 for non-Task regions.
func (d *Def) TaskID() uint64 {
	if d.task == nil {
		return 0
	}
	return d.task.id
}
