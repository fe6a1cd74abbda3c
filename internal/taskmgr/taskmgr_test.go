package taskmgr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterGetPop(t *testing.T) {
	m := New[string]()

	_, ok := m.Get("stage1")
	assert.False(t, ok)

	m.Register("stage1", "task-a")
	got, ok := m.Get("stage1")
	require.True(t, ok)
	assert.Equal(t, "task-a", got)

	// Get must not remove.
	_, ok = m.Get("stage1")
	assert.True(t, ok)

	popped, ok := m.Pop("stage1")
	require.True(t, ok)
	assert.Equal(t, "task-a", popped)

	_, ok = m.Pop("stage1")
	assert.False(t, ok)
}

func TestRegisterOverwrites(t *testing.T) {
	m := New[int]()
	m.Register("x", 1)
	m.Register("x", 2)

	got, ok := m.Get("x")
	require.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestLen(t *testing.T) {
	m := New[int]()
	assert.Equal(t, 0, m.Len())
	m.Register("a", 1)
	m.Register("b", 2)
	assert.Equal(t, 2, m.Len())
	m.Pop("a")
	assert.Equal(t, 1, m.Len())
}
