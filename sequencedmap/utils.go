package sequencedmap

import (
	"cmp"
	"slices"
)

// SortByKeys returns a new map with the same elements but keys in ascending order.
// Used to normalize generated configuration objects for diff-friendliness.
func SortByKeys[K cmp.Ordered, V any](m *Map[K, V]) *Map[K, V] {
	sorted := New[K, V]()
	if m == nil {
		return sorted
	}

	keys := make([]K, 0, m.Len())
	for k := range m.Keys() {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		sorted.Set(k, m.GetOrZero(k))
	}

	return sorted
}
