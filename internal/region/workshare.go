package region

import "github.com/otterspan/otterspan/internal/attr"

// workshareData is the Workshare variant's payload: a loop, sections,
// single, or taskloop construct, along with the work count it covers where
// known (e.g. loop trip count).
type workshareData struct {
	wstype WorkshareKind
	count  uint64
}

// NewWorkshare constructs a Workshare RegionDef.
func NewWorkshare(wstype WorkshareKind, count uint64, encounteringTask uint64) *Def {
	d := newDef(Workshare, encounteringTask)
	d.workshare = &workshareData{wstype: wstype, count: count}
	return d
}

func (d *Def) addWorkshareAttributes() {
	w := d.workshare
	d.attrs.AddString(attr.WorkshareType, w.wstype.String())
	d.attrs.AddUint64(attr.WorkshareCount, w.count)
}
