// Package groupby builds multimaps from sequences and stably sorts record
// slices by two string keys.
//
// What:
//
//   - Group partitions a slice into a map of key -> values, applying a key
//     selector and a value selector to each item; per-key value order
//     follows input order.
//   - SortStable returns a new slice ordered by a primary string key, ties
//     broken by a secondary key, equal records keeping their input order.
//
// Both helpers are pure: inputs are never mutated.
//
// Complexity: Group is O(n); SortStable is O(n log n) comparisons plus one
// O(n) copy.
package groupby
