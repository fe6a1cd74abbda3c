package trace

import (
	"github.com/otterspan/otterspan/internal/attr"
	"github.com/otterspan/otterspan/internal/region"
)

// ThreadType re-exports internal/attr's thread-type labels so Runtime's
// NewLocation can be called without importing internal/attr.
type ThreadType = attr.Label

const (
	ThreadTypeInitial = attr.ThreadTypeInitial
	ThreadTypeWorker  = attr.ThreadTypeWorker
)

// These re-export internal/region's enums and value types under the trace
// package so that callers outside this module (and otter, which only
// imports trace, not internal/region) never need to name an internal
// package directly.

type WorkshareKind = region.WorkshareKind

const (
	WorkshareLoop           = region.WorkshareLoop
	WorkshareSections       = region.WorkshareSections
	WorkshareSingleExecutor = region.WorkshareSingleExecutor
	WorkshareSingleOther    = region.WorkshareSingleOther
	WorkshareTaskloop       = region.WorkshareTaskloop
)

type SyncKind = region.SyncKind

const (
	SyncBarrier   = region.SyncBarrier
	SyncTaskwait  = region.SyncTaskwait
	SyncTaskgroup = region.SyncTaskgroup
)

type TaskSyncMode = region.TaskSyncMode

const (
	SyncChildrenOnly = region.SyncChildrenOnly
	SyncDescendants  = region.SyncDescendants
)

type TaskStatus = region.TaskStatus

const (
	TaskStatusUndefined = region.TaskStatusUndefined
	TaskStatusComplete  = region.TaskStatusComplete
	TaskStatusYield     = region.TaskStatusYield
	TaskStatusCancel    = region.TaskStatusCancel
	TaskStatusDetach    = region.TaskStatusDetach
	TaskStatusSwitch    = region.TaskStatusSwitch
)

type SrcLocation = region.SrcLocation
