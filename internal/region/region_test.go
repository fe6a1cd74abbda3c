package region

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otterspan/otterspan/internal/attr"
)

func TestNewParallelIsShared(t *testing.T) {
	p := NewParallel(1, 0, 0, 0, 4)
	assert.True(t, p.IsShared())
	assert.Equal(t, Parallel, p.Kind())

	w := NewWorkshare(WorkshareLoop, 100, 1)
	assert.False(t, w.IsShared())
}

func TestParallelRefCounting(t *testing.T) {
	p := NewParallel(1, 0, 0, 0, 4)
	p.Lock()
	p.IncRefCount()
	p.IncRefCount()
	assert.EqualValues(t, 2, p.RefCount())
	assert.EqualValues(t, 2, p.EnterCount())
	left := p.DecRefCount()
	assert.EqualValues(t, 1, left)
	p.Unlock()
}

func TestParallelRefCountingConcurrent(t *testing.T) {
	p := NewParallel(1, 0, 0, 0, 8)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Lock()
			p.IncRefCount()
			p.Unlock()
		}()
	}
	wg.Wait()
	assert.EqualValues(t, 8, p.RefCount())
}

func TestNonSharedLockIsNoop(t *testing.T) {
	m := NewMaster(0)
	// Lock/Unlock on a non-Parallel region must not block or panic.
	m.Lock()
	m.Unlock()
	assert.EqualValues(t, 0, m.RefCount())
}

func TestAddCommonAndVariantAttributes(t *testing.T) {
	cases := []*Def{
		NewParallel(1, 0, 7, 0, 2),
		NewWorkshare(WorkshareSections, 3, 7),
		NewSync(SyncTaskwait, SyncDescendants, 7),
		NewMaster(7),
		NewTask(10, 7, 0, false, SrcLocation{File: "a.c", Func: "f", Line: 1}, 0, 0),
		NewPhase(0, "init", 7),
	}

	for _, d := range cases {
		d.AddCommonAttributes()
		require.NoError(t, d.AddVariantAttributes())
		assert.Greater(t, d.Attrs().Len(), 0)

		var sawRegionType bool
		d.Attrs().Each(func(k attr.Key, v any) {
			if k == attr.RegionType {
				sawRegionType = true
				assert.Equal(t, d.Kind().String(), v)
			}
		})
		assert.True(t, sawRegionType)
	}
}

func TestTaskSavedStackRoundTrip(t *testing.T) {
	task := NewTask(1, 0, 0, false, SrcLocation{}, 0, 0)
	inner := NewWorkshare(WorkshareLoop, 1, 1)

	stack := task.SavedStack()
	require.NotNil(t, stack)
	stack.Push(inner)

	popped, ok := task.SavedStack().Pop()
	require.True(t, ok)
	assert.Same(t, inner, popped)
}

func TestSetTaskStatusRejectsNonTask(t *testing.T) {
	w := NewWorkshare(WorkshareLoop, 1, 0)
	err := w.SetTaskStatus(TaskStatusComplete)
	assert.Error(t, err)

	task := NewTask(1, 0, 0, false, SrcLocation{}, 0, 0)
	require.NoError(t, task.SetTaskStatus(TaskStatusYield))
	assert.Equal(t, TaskStatusYield, task.TaskStatus())
}

func TestEventTypeLabels(t *testing.T) {
	p := NewParallel(1, 0, 0, 0, 1)
	assert.Equal(t, attr.EventTypeParallelBegin, p.EventTypeLabel())
	assert.Equal(t, attr.EventTypeParallelEnd, p.LeaveEventTypeLabel())

	task := NewTask(1, 0, 0, false, SrcLocation{}, 0, 0)
	assert.Equal(t, attr.EventTypeTaskEnter, task.EventTypeLabel())
	assert.Equal(t, attr.EventTypeTaskLeave, task.LeaveEventTypeLabel())
}
