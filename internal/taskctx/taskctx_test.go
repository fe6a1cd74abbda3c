package taskctx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocAssignsDistinctIDs(t *testing.T) {
	a := Alloc()
	b := Alloc()
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestInitWithoutParent(t *testing.T) {
	tc := Alloc()
	tc.Init(nil, 100)
	assert.False(t, tc.HasParent())
	assert.EqualValues(t, 100, tc.CreateTime())
}

func TestInitWithParent(t *testing.T) {
	parent := Alloc()
	child := Alloc()
	child.Init(parent, 1)
	assert.True(t, child.HasParent())
	assert.Equal(t, parent.ID(), child.ParentID())
}

func TestNilTaskContextIsSafe(t *testing.T) {
	var tc *TaskContext
	assert.EqualValues(t, 0, tc.ID())
	assert.EqualValues(t, 0, tc.ParentID())
	assert.False(t, tc.HasParent())
	assert.EqualValues(t, 0, tc.CreateTime())
	tc.SetStartTime(5) // must not panic
}

func TestStartEndTimestamps(t *testing.T) {
	tc := Alloc()
	tc.SetStartTime(10)
	tc.SetEndTime(20)
	assert.EqualValues(t, 10, tc.StartTime())
	assert.EqualValues(t, 20, tc.EndTime())
}
