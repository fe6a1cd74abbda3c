// Package otter is the task-graph instrumentation surface (spec.md's
// supplemented task-graph event model): the public API an instrumented
// program calls directly to record task creation, scheduling, and
// synchronisation, built on top of the generic region model in the trace
// package.
//
// Grounded on original_source/src/otter-task-graph/otter-task-graph.c's
// public API surface (`otterTraceInitialise`/`Finalise`,
// `otterTaskInitialise`/`Start`/`Begin`/`End`,
// `otterTaskRegisterLabel`/`GetLabel`/`PopLabel`, `otterSynchroniseTasks`,
// `otterPhaseBegin`/`End`/`Switch`, `otterTraceStart`/`Stop`), translated
// into an idiomatic Go API: the original's implicit per-OS-thread state is
// passed here as an explicit *trace.Location parameter, since a goroutine
// has no thread-local storage of its own to hold it.
package otter

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/otterspan/otterspan/internal/taskctx"
	"github.com/otterspan/otterspan/internal/taskmgr"
	"github.com/otterspan/otterspan/trace"
)

var (
	mu     sync.Mutex
	rt     *trace.Runtime
	labels = taskmgr.New[*TaskContext]()
)

// TraceInitialise opens the process-wide trace session. It is a programmer
// error to call it twice without an intervening TraceFinalise.
func TraceInitialise(opts trace.Options, logger *zap.Logger) error {
	mu.Lock()
	defer mu.Unlock()
	if rt != nil {
		return fmt.Errorf("otter: trace already initialised")
	}
	r, err := trace.Initialise(opts, logger)
	if err != nil {
		return err
	}
	rt = r
	return nil
}

// TraceFinalise closes the process-wide trace session opened by
// TraceInitialise, flushing the archive.
func TraceFinalise() error {
	mu.Lock()
	r := rt
	rt = nil
	mu.Unlock()
	if r == nil {
		return fmt.Errorf("otter: trace not initialised")
	}
	return r.Finalise()
}

// currentRuntime returns the active trace session. Calling an otter
// location, task or synchronisation function before TraceInitialise (or
// after TraceFinalise) is a programmer error and panics; the label and phase
// functions do not use the session.
func currentRuntime() *trace.Runtime {
	mu.Lock()
	r := rt
	mu.Unlock()
	if r == nil {
		panic("otter: no active trace; call TraceInitialise first")
	}
	return r
}

// NewLocation begins a new traced thread of execution (spec.md §3
// Location). Call once per OS thread or long-lived worker goroutine.
func NewLocation(threadType trace.ThreadType) *trace.Location {
	return currentRuntime().NewLocation(threadType)
}

// DestroyLocation ends a traced thread of execution.
func DestroyLocation(loc *trace.Location) error {
	return currentRuntime().DestroyLocation(loc)
}

// TaskContext is the identity-only handle an instrumented program holds for
// a task (spec.md §3: "TaskContext... Identity only; the RegionDef carries
// the Task payload"). All methods are nil-safe per spec.md §9 Open
// Question (a)'s legacy null-task compatibility concession: code that
// historically passed a null task context through bookkeeping-only call
// paths keeps working, returning zero values instead of panicking.
type TaskContext struct {
	ctx *taskctx.TaskContext
	rgn *trace.Region
}

// ID returns t's task id, or 0 if t is nil.
func (t *TaskContext) ID() uint64 {
	if t == nil {
		return 0
	}
	return t.ctx.ID()
}

// ParentID returns t's parent task id, 0 if t is nil, or the all-ones
// undefined-parent sentinel if t has no parent.
func (t *TaskContext) ParentID() uint64 {
	if t == nil {
		return 0
	}
	return t.ctx.ParentID()
}
