package attr

// List is a region's or location's reusable attribute buffer: the
// in-process analogue of OTF2's `OTF2_AttributeList`. spec.md §3/§4.2 calls
// out that this buffer is not valid for concurrent use unless the owning
// region is locked, and that it is reused (cleared and repopulated) on every
// event emission rather than reallocated.
type List struct {
	values map[Key]any
	order  []Key
}

// NewList returns an empty, ready-to-use attribute list.
func NewList() *List {
	return &List{values: make(map[Key]any)}
}

// Reset clears the list for reuse by the next event.
func (l *List) Reset() {
	for k := range l.values {
		delete(l.values, k)
	}
	l.order = l.order[:0]
}

// AddString adds a string-valued attribute.
func (l *List) AddString(k Key, v string) { l.set(k, v) }

// AddUint64 adds a uint64-valued attribute.
func (l *List) AddUint64(k Key, v uint64) { l.set(k, v) }

// AddInt32 adds an int32-valued attribute.
func (l *List) AddInt32(k Key, v int32) { l.set(k, v) }

// AddBool adds a bool-valued attribute.
func (l *List) AddBool(k Key, v bool) { l.set(k, v) }

// AddLabel adds a Label (a fixed string value) as a string-valued attribute.
func (l *List) AddLabel(k Key, v Label) { l.set(k, string(v)) }

func (l *List) set(k Key, v any) {
	if _, exists := l.values[k]; !exists {
		l.order = append(l.order, k)
	}
	l.values[k] = v
}

// Each calls fn once per attribute currently in the list, in insertion
// order, matching the order the engine assembled them in.
func (l *List) Each(fn func(k Key, v any)) {
	for _, k := range l.order {
		fn(k, l.values[k])
	}
}

// Len reports how many attributes are currently buffered.
func (l *List) Len() int { return len(l.order) }
