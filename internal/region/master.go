package region

// masterData marks a Master region. It carries no fields beyond its
// presence: a Master region is always single-threaded and unshared, so
// there is nothing to record beyond the common attributes every region
// gets.
type masterData struct{}

// NewMaster constructs a Master RegionDef.
func NewMaster(encounteringTask uint64) *Def {
	d := newDef(Master, encounteringTask)
	d.master = &masterData{}
	return d
}
