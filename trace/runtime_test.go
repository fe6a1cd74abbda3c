package trace

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestOptions(t *testing.T) Options {
	o := Options{TraceName: "test", TracePath: t.TempDir(), ArchiveName: "archive"}
	require.NoError(t, o.Validate())
	return o
}

func TestInitialiseFinaliseWritesArchive(t *testing.T) {
	opts := newTestOptions(t)
	rt, err := Initialise(opts, nil)
	require.NoError(t, err)

	loc := rt.NewLocation(ThreadTypeWorker)
	rt.Enter(loc, NewMasterRegion(0))
	rt.Leave(loc)
	require.NoError(t, rt.DestroyLocation(loc))

	require.NoError(t, rt.Finalise())

	_, err = os.Stat(opts.ArchivePath())
	require.NoError(t, err)
}

func TestFinaliseCreatesDummyLocationWhenNoneTraced(t *testing.T) {
	opts := newTestOptions(t)
	rt, err := Initialise(opts, nil)
	require.NoError(t, err)

	require.NoError(t, rt.Finalise())

	_, err = os.Stat(opts.ArchivePath())
	require.NoError(t, err)
}

func TestTaskSwitchThroughRuntime(t *testing.T) {
	opts := newTestOptions(t)
	rt, err := Initialise(opts, nil)
	require.NoError(t, err)

	loc := rt.NewLocation(ThreadTypeWorker)
	prior := NewTaskRegion(1, 0, 0, false, SrcLocation{}, 0, 0)
	next := NewTaskRegion(2, 0, 0, false, SrcLocation{}, 0, 0)

	rt.Enter(loc, NewWorkshareRegion(WorkshareLoop, 1, prior.TaskID()))
	rt.TaskSwitch(loc, prior, TaskStatusSwitch, next)

	require.NoError(t, rt.DestroyLocation(loc))
	require.NoError(t, rt.Finalise())
}
