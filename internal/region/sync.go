package region

import "github.com/otterspan/otterspan/internal/attr"

// syncData is the Sync variant's payload: a barrier, taskwait, or
// taskgroup, plus whether it synchronises only the encountering task's
// direct children or all descendants.
type syncData struct {
	syncType SyncKind
	mode     TaskSyncMode
}

// NewSync constructs a Sync RegionDef.
func NewSync(syncType SyncKind, mode TaskSyncMode, encounteringTask uint64) *Def {
	d := newDef(Sync, encounteringTask)
	d.sync = &syncData{syncType: syncType, mode: mode}
	return d
}

func (d *Def) addSyncAttributes() {
	s := d.sync
	d.attrs.AddString(attr.SyncType, s.syncType.String())
	d.attrs.AddString(attr.SyncTaskMode, s.mode.String())
}
