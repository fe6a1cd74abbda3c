// Package archive implements the archive sink facade (spec.md §6 "Portable
// binary trace archive"): the component that turns Enter/Leave/discrete
// events and region/location definitions from internal/engine into a
// pdata trace document, and serialises that document to the archive file
// at finalise.
//
// Grounded on the teacher's use of go.opentelemetry.io/collector/pdata's
// ptrace/pcommon packages to build its span model, and on rcvr_base.go's
// pattern of handing a built ptrace.Traces to an injected
// consumer.Traces — this package plays the OTF2-writer role
// original_source's trace-location.c/trace-core.c delegate to libotf2,
// but building OTLP trace spans instead of OTF2 event streams: each
// RegionDef's Enter/Leave pair becomes one span, nested by the location's
// active-region stack exactly as it is nested in the trace.
package archive

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/collector/consumer"
	"go.opentelemetry.io/collector/pdata/pcommon"
	"go.opentelemetry.io/collector/pdata/ptrace"
	"go.uber.org/zap"

	"github.com/otterspan/otterspan/internal/attr"
	"github.com/otterspan/otterspan/internal/collections"
	"github.com/otterspan/otterspan/internal/location"
	"github.com/otterspan/otterspan/internal/region"
	"github.com/otterspan/otterspan/internal/strreg"
)

// Archive accumulates an in-memory pdata trace document from engine events
// and serialises it on Close. It implements both location.EventWriter and
// location.DefWriter, plus engine.Sink's WriteDiscrete, so a single Archive
// can be handed to internal/engine.New as the sink.
type Archive struct {
	logger *zap.Logger

	mu      sync.Mutex
	td      ptrace.Traces
	strings *strreg.Registry

	resources map[uint32]ptrace.ResourceSpans
	scopes    map[uint32]ptrace.ScopeSpans
	stacks    map[uint32]*collections.Stack[uint32]
	spans     map[uint32]map[uint32]ptrace.Span // locationRef -> regionRef -> span
	discreteSeq map[uint32]uint64
}

// New constructs an empty Archive. strings, if non-nil, is flushed into the
// archive as a string-table span on Close.
func New(logger *zap.Logger, strings *strreg.Registry) *Archive {
	return &Archive{
		logger:      logger,
		td:          ptrace.NewTraces(),
		strings:     strings,
		resources:   make(map[uint32]ptrace.ResourceSpans),
		scopes:      make(map[uint32]ptrace.ScopeSpans),
		stacks:      make(map[uint32]*collections.Stack[uint32]),
		spans:       make(map[uint32]map[uint32]ptrace.Span),
		discreteSeq: make(map[uint32]uint64),
	}
}

// scopeFor returns (creating if necessary) the per-location resource/scope
// pair that all of a location's spans live under, mirroring a per-location
// event stream.
func (a *Archive) scopeFor(locationRef uint32) ptrace.ScopeSpans {
	if ss, ok := a.scopes[locationRef]; ok {
		return ss
	}
	rs := a.td.ResourceSpans().AppendEmpty()
	rs.Resource().Attributes().PutInt(string(attr.UniqueID), int64(locationRef))
	ss := rs.ScopeSpans().AppendEmpty()
	ss.Scope().SetName("otterspan")

	a.resources[locationRef] = rs
	a.scopes[locationRef] = ss
	a.stacks[locationRef] = &collections.Stack[uint32]{}
	a.spans[locationRef] = make(map[uint32]ptrace.Span)
	return ss
}

func writeAttrs(span ptrace.Span, attrs *attr.List) {
	m := span.Attributes()
	attrs.Each(func(k attr.Key, v any) {
		switch val := v.(type) {
		case string:
			m.PutStr(string(k), val)
		case uint64:
			m.PutInt(string(k), int64(val))
		case int32:
			m.PutInt(string(k), int64(val))
		case bool:
			m.PutBool(string(k), val)
		}
	})
}

// WriteEnter implements location.EventWriter.
func (a *Archive) WriteEnter(locationRef uint32, def *region.Def, timestamp uint64) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	ss := a.scopeFor(locationRef)
	stack := a.stacks[locationRef]

	span := ss.Spans().AppendEmpty()
	span.SetName(def.Kind().String())
	span.SetTraceID(traceID(locationRef))
	span.SetSpanID(spanID(locationRef, def.Ref()))
	if parents := stack.Items(); len(parents) > 0 {
		span.SetParentSpanID(spanID(locationRef, parents[len(parents)-1]))
	}
	span.SetStartTimestamp(pcommon.Timestamp(timestamp))
	writeAttrs(span, def.Attrs())

	stack.Push(def.Ref())
	a.spans[locationRef][def.Ref()] = span
	return nil
}

// WriteLeave implements location.EventWriter.
func (a *Archive) WriteLeave(locationRef uint32, def *region.Def, timestamp uint64) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	stack, ok := a.stacks[locationRef]
	if !ok {
		return fmt.Errorf("archive: leave on location %d with no open spans", locationRef)
	}
	top, ok := stack.Pop()
	if !ok || top != def.Ref() {
		return fmt.Errorf("archive: leave on location %d does not match innermost open span", locationRef)
	}

	span, ok := a.spans[locationRef][def.Ref()]
	if !ok {
		return fmt.Errorf("archive: no open span for region %d on location %d", def.Ref(), locationRef)
	}
	span.SetEndTimestamp(pcommon.Timestamp(timestamp))
	writeAttrs(span, def.Attrs())
	return nil
}

// WriteDiscrete implements engine.Sink: it records def as a zero-duration
// span rather than an Enter/Leave pair, used for task_create and
// task_switch events which have no nested scope of their own.
func (a *Archive) WriteDiscrete(locationRef uint32, def *region.Def, label attr.Label, timestamp uint64) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	ss := a.scopeFor(locationRef)
	seq := a.discreteSeq[locationRef]
	a.discreteSeq[locationRef] = seq + 1

	span := ss.Spans().AppendEmpty()
	span.SetName(string(label))
	span.SetTraceID(traceID(locationRef))
	span.SetSpanID(discreteSpanID(locationRef, def.Ref(), seq))
	if stack := a.stacks[locationRef]; stack != nil {
		if parents := stack.Items(); len(parents) > 0 {
			span.SetParentSpanID(spanID(locationRef, parents[len(parents)-1]))
		}
	}
	span.SetStartTimestamp(pcommon.Timestamp(timestamp))
	span.SetEndTimestamp(pcommon.Timestamp(timestamp))
	writeAttrs(span, def.Attrs())
	return nil
}

// WriteRegionDef implements location.DefWriter: it enriches every span
// already written for def (at Enter/Leave time) with any attributes only
// known once the region is fully closed, such as a Parallel region's final
// enter count. A shared region may have been entered on several locations at
// once, so every matching span is enriched, not just the first found.
func (a *Archive) WriteRegionDef(def *region.Def) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, spans := range a.spans {
		span, ok := spans[def.Ref()]
		if !ok {
			continue
		}
		if def.IsShared() {
			span.Attributes().PutInt("otter.parallel.enter_count", int64(def.EnterCount()))
		}
		delete(spans, def.Ref())
	}
	return nil
}

// WriteLocationDef implements location.DefWriter: it records the location's
// final event count as a resource attribute once the location ends.
func (a *Archive) WriteLocationDef(loc *location.Location) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	rs, ok := a.resources[loc.Ref()]
	if !ok {
		rs = a.td.ResourceSpans().AppendEmpty()
		a.resources[loc.Ref()] = rs
	}
	rs.Resource().Attributes().PutStr(string(attr.ThreadType), string(loc.ThreadType()))
	rs.Resource().Attributes().PutInt("otter.location.event_count", int64(loc.EventCount()))
	return nil
}

// Close flushes the string registry (if any) into the archive as a single
// synthetic resource (tagged otter.kind=string_table) holding one span that
// carries one attribute per registered string, and
// returns the final pdata document ready to be marshaled or handed to a
// consumer.
func (a *Archive) Close() ptrace.Traces {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.strings != nil && a.strings.Len() > 0 {
		rs := a.td.ResourceSpans().AppendEmpty()
		rs.Resource().Attributes().PutStr("otter.kind", "string_table")
		ss := rs.ScopeSpans().AppendEmpty()
		span := ss.Spans().AppendEmpty()
		span.SetName("otter.string_table")
		a.strings.Each(func(s string, ref uint32) {
			span.Attributes().PutStr(fmt.Sprintf("otter.string.%d", ref), s)
		})
	}
	return a.td
}

// ConsumeVia hands the closed document to c, the same way the teacher's
// receiver hands a batch of spans to its injected consumer.Traces.
func ConsumeVia(ctx context.Context, c consumer.Traces, td ptrace.Traces) error {
	return c.ConsumeTraces(ctx, td)
}
