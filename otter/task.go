package otter

import (
	"github.com/otterspan/otterspan/internal/taskctx"
	"github.com/otterspan/otterspan/trace"
)

// TaskInitialise allocates a new TaskContext and its backing Task region,
// records its creation against loc, but does not start it (spec.md's
// supplemented task-graph model keeps allocation, creation-recording, and
// starting as separate steps, mirroring `otterTaskInitialise` followed
// later by `otterTaskStart`).
func TaskInitialise(loc *trace.Location, parent *TaskContext, flavour int, createReturnAddress uint64, src trace.SrcLocation) *TaskContext {
	ctx := taskctx.Alloc()

	var parentCtx *taskctx.TaskContext
	var parentID uint64
	if parent != nil {
		parentCtx = parent.ctx
		parentID = parent.ctx.ID()
	}
	ctx.Init(parentCtx, 0)

	rgn := trace.NewTaskRegion(ctx.ID(), parentID, 0, false, src, createReturnAddress, flavour)
	tc := &TaskContext{ctx: ctx, rgn: rgn}

	currentRuntime().TaskCreate(loc, rgn)
	return tc
}

// TaskStart marks task as beginning execution on loc, opening its Task
// region as loc's innermost active region so any nested regions the task
// encounters are correctly parented under it. A nil task is logged (when the
// session has a logger) and ignored.
func TaskStart(loc *trace.Location, task *TaskContext) {
	if task == nil {
		if logger := currentRuntime().Logger(); logger != nil {
			logger.Warn("otter: TaskStart called with a nil task")
		}
		return
	}
	task.ctx.SetStartTime(0)
	currentRuntime().Enter(loc, task.rgn)
}

// TaskBegin is TaskInitialise followed immediately by TaskStart, flavour 0:
// the common case where a task begins executing as soon as it is created.
func TaskBegin(loc *trace.Location, parent *TaskContext) *TaskContext {
	return TaskBeginFlavour(loc, parent, 0)
}

// TaskBeginFlavour is TaskBegin with a caller-defined flavour tag.
func TaskBeginFlavour(loc *trace.Location, parent *TaskContext, flavour int) *TaskContext {
	task := TaskInitialise(loc, parent, flavour, 0, trace.SrcLocation{})
	TaskStart(loc, task)
	return task
}

// TaskEnd closes task's Task region as loc's innermost active region. The
// Leave event carries the end timestamp; the end time stored on task's
// context is set to 0, not to a clock reading.
func TaskEnd(loc *trace.Location, task *TaskContext) {
	currentRuntime().Leave(loc)
	task.ctx.SetEndTime(0)
}

// SynchroniseTasks brackets a synchronisation point against task: mode
// selects whether only task's direct children or all of its descendants
// are synchronised (spec.md's supplemented task-graph model, grounded on
// `otterSynchroniseTasks`).
func SynchroniseTasks(loc *trace.Location, task *TaskContext, mode trace.TaskSyncMode) {
	sync := trace.NewSyncRegion(trace.SyncTaskgroup, mode, task.ID())
	currentRuntime().SynchroniseTasks(loc, sync)
}
