package region

import (
	"github.com/otterspan/otterspan/internal/attr"
	"github.com/otterspan/otterspan/internal/collections"
)

// taskData is the Task variant's payload: the task's own identity and
// creation context, plus the stack of regions that were active on its
// location at the moment it was suspended by a task switch (spec.md §4.5,
// grounded on trace-location.c's
// `trace_location_store_active_regions_in_task`/`..._get_active_regions_from_task`).
type taskData struct {
	id             uint64
	parentID       uint64
	flags          int
	hasDependences bool
	status         TaskStatus
	src            SrcLocation
	createRA       uint64
	flavour        int

	savedStack collections.Stack[*Def]
}

// NewTask constructs a Task RegionDef. taskID/parentID identify this task
// and its parent (spec.md §3's TASK_ID_UNDEFINED sentinel is represented as
// parentID 0 at this layer; see internal/taskctx for the allocation
// discipline). createRA is the caller's return address, used only for
// diagnostic display.
func NewTask(taskID, parentID uint64, flags int, hasDependences bool, src SrcLocation, createRA uint64, flavour int) *Def {
	d := newDef(Task, parentID)
	d.task = &taskData{
		id:             taskID,
		parentID:       parentID,
		flags:          flags,
		hasDependences: hasDependences,
		src:            src,
		createRA:       createRA,
		flavour:        flavour,
	}
	return d
}

// ParentID returns the Task region's parent task id, or 0 for non-Task
// regions.
func (d *Def) ParentID() uint64 {
	if d.task == nil {
		return 0
	}
	return d.task.parentID
}

// Flavour returns the Task region's caller-defined flavour tag, or 0 for
// non-Task regions.
func (d *Def) Flavour() int {
	if d.task == nil {
		return 0
	}
	return d.task.flavour
}

func (d *Def) addTaskAttributes() {
	t := d.task
	d.attrs.AddUint64(attr.TaskID, t.id)
	d.attrs.AddUint64(attr.TaskParentID, t.parentID)
	d.attrs.AddInt32(attr.TaskFlags, int32(t.flags))
	d.attrs.AddBool(attr.TaskHasDependences, t.hasDependences)
	d.attrs.AddInt32(attr.TaskFlavour, int32(t.flavour))
	d.attrs.AddUint64(attr.TaskCreateRA, t.createRA)
	d.attrs.AddString(attr.TaskSourceFile, t.src.File)
	d.attrs.AddString(attr.TaskSourceFunc, t.src.Func)
	d.attrs.AddInt32(attr.TaskSourceLine, int32(t.src.Line))
}
