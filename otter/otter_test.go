package otter

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otterspan/otterspan/trace"
)

func newTestOpts(t *testing.T) trace.Options {
	o := trace.Options{TraceName: "test", TracePath: t.TempDir(), ArchiveName: "archive"}
	require.NoError(t, o.Validate())
	return o
}

func resetRuntime() {
	mu.Lock()
	rt = nil
	mu.Unlock()
}

func TestTraceInitialiseTwiceErrors(t *testing.T) {
	defer resetRuntime()
	require.NoError(t, TraceInitialise(newTestOpts(t), nil))
	assert.Error(t, TraceInitialise(newTestOpts(t), nil))
	require.NoError(t, TraceFinalise())
}

func TestTraceFinaliseWithoutInitialiseErrors(t *testing.T) {
	defer resetRuntime()
	assert.Error(t, TraceFinalise())
}

func TestOperationBeforeInitialisePanics(t *testing.T) {
	defer resetRuntime()
	assert.Panics(t, func() {
		NewLocation(trace.ThreadTypeWorker)
	})
}

func TestTaskLifecycle(t *testing.T) {
	defer resetRuntime()
	opts := newTestOpts(t)
	require.NoError(t, TraceInitialise(opts, nil))

	loc := NewLocation(trace.ThreadTypeWorker)

	parent := TaskBegin(loc, nil)
	require.NotNil(t, parent)
	child := TaskBegin(loc, parent)
	assert.Equal(t, parent.ID(), child.ParentID())

	TaskEnd(loc, child)
	TaskEnd(loc, parent)

	require.NoError(t, DestroyLocation(loc))
	require.NoError(t, TraceFinalise())

	_, err := os.Stat(opts.ArchivePath())
	require.NoError(t, err)
}

func TestNilTaskContextMethodsAreSafe(t *testing.T) {
	var tc *TaskContext
	assert.EqualValues(t, 0, tc.ID())
	assert.EqualValues(t, 0, tc.ParentID())
}

func TestLabelRegistryRoundTrip(t *testing.T) {
	defer resetRuntime()
	opts := newTestOpts(t)
	require.NoError(t, TraceInitialise(opts, nil))

	loc := NewLocation(trace.ThreadTypeWorker)
	task := TaskBegin(loc, nil)
	TaskRegisterLabelf(task, "stage-%d", 1)

	got, ok := TaskGetLabelf("stage-%d", 1)
	require.True(t, ok)
	assert.Equal(t, task, got)

	popped, ok := TaskPopLabelf("stage-%d", 1)
	require.True(t, ok)
	assert.Equal(t, task, popped)

	_, ok = TaskGetLabelf("stage-%d", 1)
	assert.False(t, ok)

	TaskEnd(loc, task)
	require.NoError(t, DestroyLocation(loc))
	require.NoError(t, TraceFinalise())
}

func TestSynchroniseTasksDoesNotPanic(t *testing.T) {
	defer resetRuntime()
	opts := newTestOpts(t)
	require.NoError(t, TraceInitialise(opts, nil))

	loc := NewLocation(trace.ThreadTypeWorker)
	task := TaskBegin(loc, nil)
	SynchroniseTasks(loc, task, trace.SyncChildrenOnly)
	TaskEnd(loc, task)

	require.NoError(t, DestroyLocation(loc))
	require.NoError(t, TraceFinalise())
}

func TestPhaseAndTraceStartStopAreNoops(t *testing.T) {
	PhaseBegin("init")
	PhaseSwitch("compute")
	PhaseEnd()
	TraceStart()
	TraceStop()
}
