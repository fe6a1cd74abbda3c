// Package taskctx implements TaskContext (spec.md §3): the identity-only
// handle an instrumented program holds for a task, as distinct from the
// Task RegionDef that carries the task's traced payload (spec.md §3: "the
// RegionDef carries the Task payload").
//
// Grounded on original_source/src/otter-trace/trace-task-context.c, whose
// `otterTaskContext_alloc`/`_init`/`_delete` split allocation from
// initialisation and allocate the task id from a process-wide atomic
// counter (`__sync_fetch_and_add`), mirrored here by internal/ref.
package taskctx

import "github.com/otterspan/otterspan/internal/ref"

// undefinedParent is the sentinel recorded when a TaskContext has no parent
// (the initial/outermost task), grounded on original_source's
// `TASK_ID_UNDEFINED` (`OTF2_UNDEFINED_UINT64`). Go's zero-valued uint64
// (0) doubles as a legitimate allocated id, so the sentinel here is the
// maximum uint64 rather than 0.
const undefinedParent uint64 = ^uint64(0)

// TaskContext is the public, identity-only handle returned to the
// instrumented program by TaskInitialise. It carries the task's own id, its
// parent's id, and the timestamps the task-graph API surface records
// against it.
type TaskContext struct {
	id       uint64
	parentID uint64

	createTime uint64
	startTime  uint64
	endTime    uint64
}

// Alloc allocates a new TaskContext with a fresh process-wide unique id, but
// does not yet record a parent or timestamps; callers pair it with Init.
// Split into two steps to mirror original_source's alloc/init split, which
// exists there so the id can be read back immediately after allocation
// (before the rest of initialisation can fail).
func Alloc() *TaskContext {
	return &TaskContext{id: ref.NewTaskID()}
}

// Init records parent and create timestamp on an allocated TaskContext.
// parent may be nil, meaning this task has no traced parent.
func (t *TaskContext) Init(parent *TaskContext, createTime uint64) {
	if parent == nil {
		t.parentID = undefinedParent
	} else {
		t.parentID = parent.id
	}
	t.createTime = createTime
}

// ID returns t's task id. Per spec.md §9 Open Question (a)'s legacy
// null-task compatibility concession, a nil *TaskContext returns 0 rather
// than panicking, matching callers that historically passed a null task
// context through code paths that only use the id for bookkeeping.
func (t *TaskContext) ID() uint64 {
	if t == nil {
		return 0
	}
	return t.id
}

// ParentID returns t's parent task id, or the undefined-parent sentinel if
// t has no traced parent. Nil-safe; see ID.
func (t *TaskContext) ParentID() uint64 {
	if t == nil {
		return 0
	}
	return t.parentID
}

// HasParent reports whether t was created with a traced parent task.
func (t *TaskContext) HasParent() bool {
	if t == nil {
		return false
	}
	return t.parentID != undefinedParent
}

// SetStartTime records when this task began executing.
func (t *TaskContext) SetStartTime(ts uint64) {
	if t == nil {
		return
	}
	t.startTime = ts
}

// SetEndTime records when this task finished executing.
func (t *TaskContext) SetEndTime(ts uint64) {
	if t == nil {
		return
	}
	t.endTime = ts
}

// CreateTime, StartTime and EndTime return the timestamps recorded on t.
func (t *TaskContext) CreateTime() uint64 {
	if t == nil {
		return 0
	}
	return t.createTime
}

func (t *TaskContext) StartTime() uint64 {
	if t == nil {
		return 0
	}
	return t.startTime
}

func (t *TaskContext) EndTime() uint64 {
	if t == nil {
		return 0
	}
	return t.endTime
}
