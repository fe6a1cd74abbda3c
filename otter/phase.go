package otter

// PhaseBegin, PhaseEnd, PhaseSwitch and TraceStart/TraceStop are
// intentionally no-ops, mirroring original_source's
// `otterPhaseBegin`/`End`/`Switch` and `otterTraceStart`/`Stop`, which are
// themselves explicit TODOs in the C implementation this was ported from.
// See spec.md §9 Open Question (b): phases are accepted at the API surface
// so call sites compile and link against a future implementation, but nothing
// observes them yet.

// PhaseBegin starts a named execution phase. Currently a no-op.
func PhaseBegin(name string) {}

// PhaseEnd ends the current execution phase. Currently a no-op.
func PhaseEnd() {}

// PhaseSwitch ends the current execution phase and begins a new one named
// name. Currently a no-op.
func PhaseSwitch(name string) {}

// TraceStart resumes event recording after a prior TraceStop. Currently a
// no-op: recording is never paused.
func TraceStart() {}

// TraceStop pauses event recording. Currently a no-op: recording is never
// paused.
func TraceStop() {}
