package region

import (
	"sync"

	"github.com/otterspan/otterspan/internal/attr"
	"github.com/otterspan/otterspan/internal/collections"
)

// parallelData is the Parallel variant's payload. It is the only variant
// that carries a mutex and a refcount: a Parallel region is shared by every
// location executing inside it, so entry/exit and the attribute list it
// exposes must be serialised, and it is only destroyed once the last leaver
// observes a zero refcount (spec.md §4.1/§5, grounded on trace-core.c's
// `trace_event_enter`/`trace_event_leave`).
type parallelData struct {
	mu sync.Mutex

	id                   uint64
	masterID             uint64
	flags                int
	requestedParallelism uint

	refCount  uint32
	enterCount uint32

	// inherited holds region definitions hoisted out of the parallel
	// region's nested scope by the location-level hoisting protocol
	// (spec.md §4.3) and awaiting being written once the region closes.
	inherited collections.Queue[*Def]
}

// NewParallel constructs a Parallel RegionDef. id and masterID are the
// parallel-region id and the id of the master thread that created it;
// requestedParallelism is the number of threads the construct requested.
func NewParallel(id, masterID, encounteringTask uint64, flags int, requestedParallelism uint) *Def {
	d := newDef(Parallel, encounteringTask)
	d.parallel = &parallelData{
		id:                   id,
		masterID:             masterID,
		flags:                flags,
		requestedParallelism: requestedParallelism,
	}
	return d
}

func (d *Def) addParallelAttributes() {
	p := d.parallel
	d.attrs.AddUint64(attr.ParallelID, p.id)
	d.attrs.AddUint64(attr.ParallelMasterID, p.masterID)
	d.attrs.AddInt32(attr.ParallelFlags, int32(p.flags))
	d.attrs.AddUint64(attr.ParallelRequestedPllsm, uint64(p.requestedParallelism))
}
