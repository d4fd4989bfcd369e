package groupby

import (
	"sort"
)

// Group partitions items into a multimap: every item contributes
// value(item) to the bucket key(item). Values inside a bucket keep the
// input order. A nil or empty input yields an empty, non-nil map.
func Group[T any, K comparable, V any](items []T, key func(T) K, value func(T) V) map[K][]V {
	out := make(map[K][]V)
	for _, item := range items {
		k := key(item)
		out[k] = append(out[k], value(item))
	}

	return out
}

// SortStable returns a copy of items ordered by primary(item), ties broken
// by secondary(item), remaining ties keeping input order. The input slice
// is left untouched.
func SortStable[T any](items []T, primary, secondary func(T) string) []T {
	out := make([]T, len(items))
	copy(out, items)

	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := primary(out[i]), primary(out[j])
		if pi != pj {
			return pi < pj
		}

		return secondary(out[i]) < secondary(out[j])
	})

	return out
}
