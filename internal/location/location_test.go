package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otterspan/otterspan/internal/attr"
	"github.com/otterspan/otterspan/internal/region"
)

type fakeWriter struct {
	enters []uint32
	leaves []uint32
	defs   []*region.Def
	locs   []*Location
}

func (f *fakeWriter) WriteEnter(locationRef uint32, def *region.Def, ts uint64) error {
	f.enters = append(f.enters, locationRef)
	return nil
}

func (f *fakeWriter) WriteLeave(locationRef uint32, def *region.Def, ts uint64) error {
	f.leaves = append(f.leaves, locationRef)
	return nil
}

func (f *fakeWriter) WriteRegionDef(def *region.Def) error {
	f.defs = append(f.defs, def)
	return nil
}

func (f *fakeWriter) WriteLocationDef(loc *Location) error {
	f.locs = append(f.locs, loc)
	return nil
}

func newTestLocation(w *fakeWriter) *Location {
	return New(attr.ThreadTypeWorker, 1, w, w)
}

func TestEnterLeaveRegion(t *testing.T) {
	w := &fakeWriter{}
	loc := newTestLocation(w)

	def := region.NewMaster(0)
	require.NoError(t, loc.EnterRegion(def, 100))
	assert.Equal(t, 1, loc.ActiveRegionDepth())

	popped, err := loc.LeaveRegion(200)
	require.NoError(t, err)
	assert.Same(t, def, popped)
	assert.Equal(t, 0, loc.ActiveRegionDepth())
	assert.EqualValues(t, 2, loc.EventCount())
}

func TestLeaveRegionOnEmptyStackErrors(t *testing.T) {
	w := &fakeWriter{}
	loc := newTestLocation(w)
	_, err := loc.LeaveRegion(1)
	assert.Error(t, err)
}

func TestRegionDefScopeHoisting(t *testing.T) {
	w := &fakeWriter{}
	loc := newTestLocation(w)

	outer := region.NewWorkshare(region.WorkshareLoop, 1, 0)
	loc.StoreRegionDef(outer)

	parallel := region.NewParallel(1, 0, 0, 0, 1)
	loc.EnterRegionDefScope()
	inner := region.NewSync(region.SyncBarrier, region.SyncChildrenOnly, 0)
	loc.StoreRegionDef(inner)

	require.NoError(t, loc.LeaveRegionDefScope(parallel))

	// The nested scope's definitions are handed to the parallel region's
	// inherited queue, not to this location's own queue.
	inheritedQueue := parallel.InheritedQueue()
	first, ok := inheritedQueue.Pop()
	require.True(t, ok)
	assert.Same(t, inner, first)
	_, ok = inheritedQueue.Pop()
	assert.False(t, ok)

	// The outer definition, stored before the nested scope opened, remains on
	// this location's own queue.
	drained := loc.DrainRegionDefs()
	require.Len(t, drained, 1)
	assert.Same(t, outer, drained[0])
}

func TestLeaveRegionDefScopeWithoutEnterErrors(t *testing.T) {
	w := &fakeWriter{}
	loc := newTestLocation(w)
	assert.Error(t, loc.LeaveRegionDefScope(region.NewParallel(1, 0, 0, 0, 1)))
}

func TestLeaveRegionDefScopeOnNonSharedRegionErrors(t *testing.T) {
	w := &fakeWriter{}
	loc := newTestLocation(w)
	loc.EnterRegionDefScope()
	assert.Error(t, loc.LeaveRegionDefScope(region.NewMaster(0)))
}

func TestTaskSwitchStackTransfer(t *testing.T) {
	w := &fakeWriter{}
	loc := newTestLocation(w)

	task := region.NewTask(1, 0, 0, false, region.SrcLocation{}, 0, 0)
	open := region.NewMaster(0)
	require.NoError(t, loc.EnterRegion(open, 1))

	require.NoError(t, loc.SaveActiveRegionsToTask(task))
	assert.Equal(t, 0, loc.ActiveRegionDepth())

	// Saving again onto a task that already holds a saved stack must fail.
	assert.Error(t, loc.SaveActiveRegionsToTask(task))

	require.NoError(t, loc.RestoreActiveRegionsFromTask(task))
	assert.Equal(t, 1, loc.ActiveRegionDepth())

	// Restoring onto a location that still has regions open must fail.
	require.NoError(t, loc.SaveActiveRegionsToTask(region.NewTask(2, 0, 0, false, region.SrcLocation{}, 0, 0)))
	require.NoError(t, loc.EnterRegion(region.NewMaster(0), 2))
	assert.Error(t, loc.RestoreActiveRegionsFromTask(task))
}

func TestDestroyFlushesQueuedDefsThenLocationDef(t *testing.T) {
	w := &fakeWriter{}
	loc := newTestLocation(w)

	loc.StoreRegionDef(region.NewMaster(0))
	loc.StoreRegionDef(region.NewMaster(0))

	require.NoError(t, loc.Destroy())
	assert.Len(t, w.defs, 2)
	assert.Len(t, w.locs, 1)
	assert.Same(t, loc, w.locs[0])
}
