package trace

import "github.com/otterspan/otterspan/internal/region"

// Region is an opaque handle onto a RegionDef (spec.md §3). Callers outside
// this module obtain one only through the New*Region constructors below
// and pass it back into Runtime's Enter/Leave/TaskCreate/TaskSchedule/
// TaskSwitch/SynchroniseTasks methods; its internal representation never
// needs to be named directly.
type Region struct {
	def *region.Def
}

// NewParallelRegion constructs a Parallel region.
func NewParallelRegion(id, masterID, encounteringTask uint64, flags int, requestedParallelism uint) *Region {
	return &Region{def: region.NewParallel(id, masterID, encounteringTask, flags, requestedParallelism)}
}

// NewWorkshareRegion constructs a Workshare region.
func NewWorkshareRegion(kind WorkshareKind, count, encounteringTask uint64) *Region {
	return &Region{def: region.NewWorkshare(kind, count, encounteringTask)}
}

// NewSyncRegion constructs a Sync region.
func NewSyncRegion(kind SyncKind, mode TaskSyncMode, encounteringTask uint64) *Region {
	return &Region{def: region.NewSync(kind, mode, encounteringTask)}
}

// NewMasterRegion constructs a Master region.
func NewMasterRegion(encounteringTask uint64) *Region {
	return &Region{def: region.NewMaster(encounteringTask)}
}

// NewTaskRegion constructs a Task region: the RegionDef payload that
// accompanies a task-graph TaskContext (spec.md §3: "TaskContext is
// identity only; the RegionDef carries the Task payload").
func NewTaskRegion(taskID, parentID uint64, flags int, hasDependences bool, src SrcLocation, createReturnAddress uint64, flavour int) *Region {
	return &Region{def: region.NewTask(taskID, parentID, flags, hasDependences, src, createReturnAddress, flavour)}
}

// NewPhaseRegion constructs a Phase region.
func NewPhaseRegion(phaseType int, name string, encounteringTask uint64) *Region {
	return &Region{def: region.NewPhase(phaseType, name, encounteringTask)}
}

// TaskID returns the region's task id if it is a Task region, else 0.
func (r *Region) TaskID() uint64 { return r.def.TaskID() }

// ParentTaskID returns the region's parent task id if it is a Task region,
// else 0.
func (r *Region) ParentTaskID() uint64 { return r.def.ParentID() }

// SetTaskStatus records why a Task region's task was most recently
// scheduled or switched. Returns an error if called on a non-Task region.
func (r *Region) SetTaskStatus(status TaskStatus) error { return r.def.SetTaskStatus(status) }

// TaskStatus returns a Task region's last recorded schedule status.
func (r *Region) TaskStatus() TaskStatus { return r.def.TaskStatus() }
