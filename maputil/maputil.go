package maputil

// Number covers the built-in numeric kinds MergeSum can accumulate.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Clone returns a shallow copy of m. Values are copied by assignment;
// reference values stay shared with the original. nil in, nil out.
func Clone[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

// MergeSum merges any number of maps into a fresh one, summing the values
// of keys that occur in several inputs. Passing no maps yields an empty map.
func MergeSum[K comparable, N Number](ms ...map[K]N) map[K]N {
	out := make(map[K]N)
	for _, m := range ms {
		for k, v := range m {
			out[k] += v
		}
	}

	return out
}

// Omit returns a copy of m without the listed keys. Keys absent from m are
// ignored. nil in, nil out.
func Omit[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	if m == nil {
		return nil
	}
	drop := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		if _, skip := drop[k]; !skip {
			out[k] = v
		}
	}

	return out
}

// Equal reports whether a and b hold exactly the same key/value pairs.
// nil and empty maps compare equal.
func Equal[K, V comparable](a, b map[K]V) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		if bv, ok := b[k]; !ok || av != bv {
			return false
		}
	}

	return true
}

// IsEmpty reports whether m is nil or holds no entries.
func IsEmpty[K comparable, V any](m map[K]V) bool {
	return len(m) == 0
}
