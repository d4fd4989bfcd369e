package maputil

// Frozen is a read-only view over a map snapshot. Freeze copies its input
// once; neither later changes to the source map nor Set calls on the
// wrapper are ever observable through it.
//
// Set silently does nothing. That is the documented contract of the
// wrapper — freezing turns writes into no-ops, it does not report them.
type Frozen[K comparable, V any] struct {
	entries map[K]V
}

// Freeze snapshots m into a read-only wrapper.
func Freeze[K comparable, V any](m map[K]V) Frozen[K, V] {
	return Frozen[K, V]{entries: Clone(m)}
}

// Get returns the value stored under k and whether it is present.
func (f Frozen[K, V]) Get(k K) (V, bool) {
	v, ok := f.entries[k]

	return v, ok
}

// Has reports whether k is present in the snapshot.
func (f Frozen[K, V]) Has(k K) bool {
	_, ok := f.entries[k]

	return ok
}

// Len returns the number of entries in the snapshot.
func (f Frozen[K, V]) Len() int { return len(f.entries) }

// Set is a silent no-op: a frozen map ignores writes.
func (f Frozen[K, V]) Set(K, V) {}

// Snapshot returns a mutable shallow copy of the frozen entries.
func (f Frozen[K, V]) Snapshot() map[K]V {
	return Clone(f.entries)
}
