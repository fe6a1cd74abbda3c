package region

import "github.com/otterspan/otterspan/internal/attr"

// phaseData is the Phase variant's payload: a named, user-declared
// execution phase (spec.md's "Supplemented features" phase API). Phases are
// currently reported but not yet used to gate any engine behaviour; see the
// otter package's PhaseBegin/End/Switch, which are no-ops pending
// spec.md §9 Open Question (b).
type phaseData struct {
	phaseType int
	name      string
}

// NewPhase constructs a Phase RegionDef.
func NewPhase(phaseType int, name string, encounteringTask uint64) *Def {
	d := newDef(Phase, encounteringTask)
	d.phase = &phaseData{phaseType: phaseType, name: name}
	return d
}

// PhaseName returns the Phase region's name, or "" for non-Phase regions.
func (d *Def) PhaseName() string {
	if d.phase == nil {
		return ""
	}
	return d.phase.name
}

func (d *Def) addPhaseAttributes() {
	p := d.phase
	d.attrs.AddInt32(attr.PhaseType, int32(p.phaseType))
	d.attrs.AddString(attr.PhaseName, p.name)
}
