package trace

import "github.com/otterspan/otterspan/internal/location"

// Location is an opaque handle onto a traced thread of execution
// (spec.md §3). Obtained from Runtime.NewLocation and released via
// Runtime.DestroyLocation.
type Location struct {
	inner *location.Location
}

// ID returns the location's unique archive reference, useful for logging.
func (l *Location) ID() uint32 { return l.inner.Ref() }
