package archive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otterspan/otterspan/internal/attr"
	"github.com/otterspan/otterspan/internal/clock"
	"github.com/otterspan/otterspan/internal/engine"
	"github.com/otterspan/otterspan/internal/region"
	"github.com/otterspan/otterspan/internal/strreg"
)

func TestEnterLeaveProducesOneSpanPerRegion(t *testing.T) {
	a := New(nil, nil)
	clk := clock.New()
	e := engine.New(nil, clk, a)

	loc := e.NewLocation(attr.ThreadTypeWorker, 1)
	m := region.NewMaster(0)
	e.Enter(loc, m)
	e.Leave(loc)
	require.NoError(t, e.EndLocation(loc))

	td := a.Close()
	assert.Equal(t, 1, td.SpanCount())
}

func TestNestedRegionsGetParentSpanID(t *testing.T) {
	a := New(nil, nil)
	clk := clock.New()
	e := engine.New(nil, clk, a)

	loc := e.NewLocation(attr.ThreadTypeWorker, 1)
	outer := region.NewWorkshare(region.WorkshareLoop, 10, 0)
	inner := region.NewSync(region.SyncTaskwait, region.SyncChildrenOnly, 0)

	e.Enter(loc, outer)
	e.Enter(loc, inner)
	e.Leave(loc)
	e.Leave(loc)

	found := false
	td := a.Close()
	rss := td.ResourceSpans()
	for i := 0; i < rss.Len(); i++ {
		sss := rss.At(i).ScopeSpans()
		for j := 0; j < sss.Len(); j++ {
			spans := sss.At(j).Spans()
			for k := 0; k < spans.Len(); k++ {
				sp := spans.At(k)
				if sp.Name() == "sync" {
					assert.NotEqual(t, [8]byte{}, [8]byte(sp.ParentSpanID()))
					found = true
				}
			}
		}
	}
	assert.True(t, found)
}

func TestStringTableFlushedOnClose(t *testing.T) {
	labeller := func() func() uint32 {
		var n uint32
		return func() uint32 { n++; return n }
	}()
	reg := strreg.New(labeller)
	reg.Insert("hello")
	reg.Insert("world")

	a := New(nil, reg)
	td := a.Close()

	var sawTable bool
	rss := td.ResourceSpans()
	for i := 0; i < rss.Len(); i++ {
		v, ok := rss.At(i).Resource().Attributes().Get("otter.kind")
		if ok && v.Str() == "string_table" {
			sawTable = true
		}
	}
	assert.True(t, sawTable)
}

func TestWriteFileWritesArchive(t *testing.T) {
	a := New(nil, nil)
	clk := clock.New()
	e := engine.New(nil, clk, a)
	loc := e.NewLocation(attr.ThreadTypeInitial, 1)
	e.Enter(loc, region.NewMaster(0))
	e.Leave(loc)

	td := a.Close()
	path := t.TempDir() + "/trace.otlp"
	require.NoError(t, WriteFile(td, path))
}
