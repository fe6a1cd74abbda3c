package region

// WorkshareKind enumerates the workshare-construct flavours a Workshare
// region can represent, grounded on original_source's `otter_work_t`.
type WorkshareKind int

const (
	WorkshareLoop WorkshareKind = iota
	WorkshareSections
	WorkshareSingleExecutor
	WorkshareSingleOther
	WorkshareTaskloop
)

func (w WorkshareKind) String() string {
	switch w {
	case WorkshareLoop:
		return "loop"
	case WorkshareSections:
		return "sections"
	case WorkshareSingleExecutor:
		return "single_executor"
	case WorkshareSingleOther:
		return "single_other"
	case WorkshareTaskloop:
		return "taskloop"
	default:
		return "unknown"
	}
}

// SyncKind enumerates the synchronisation-construct flavours a Sync region
// can represent, grounded on original_source's `otter_sync_region_t`.
type SyncKind int

const (
	SyncBarrier SyncKind = iota
	SyncTaskwait
	SyncTaskgroup
)

func (s SyncKind) String() string {
	switch s {
	case SyncBarrier:
		return "barrier"
	case SyncTaskwait:
		return "taskwait"
	case SyncTaskgroup:
		return "taskgroup"
	default:
		return "unknown"
	}
}

// TaskSyncMode distinguishes whether a Sync region waits on the
// encountering task's direct children or all of its descendants, grounded on
// original_source's `trace_task_sync_t`.
type TaskSyncMode int

const (
	SyncChildrenOnly TaskSyncMode = iota
	SyncDescendants
)

func (m TaskSyncMode) String() string {
	if m == SyncDescendants {
		return "descendants"
	}
	return "children"
}

// TaskStatus records why a task was most recently scheduled or switched,
// grounded on original_source's `otter_task_status_t`.
type TaskStatus int

const (
	TaskStatusUndefined TaskStatus = iota
	TaskStatusComplete
	TaskStatusYield
	TaskStatusCancel
	TaskStatusDetach
	TaskStatusSwitch
)

func (s TaskStatus) String() string {
	switch s {
	case TaskStatusComplete:
		return "complete"
	case TaskStatusYield:
		return "yield"
	case TaskStatusCancel:
		return "cancel"
	case TaskStatusDetach:
		return "detach"
	case TaskStatusSwitch:
		return "switch"
	default:
		return "undefined"
	}
}

// SrcLocation is the source location a Task region was created at, grounded
// on original_source's `otter_src_location_t`.
type SrcLocation struct {
	File string
	Func string
	Line uint32
}
