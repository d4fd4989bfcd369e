// Package maputil provides small generic helpers over plain maps: shallow
// copying, key-wise summing merge, key removal, shallow equality, emptiness
// checks, and a frozen read-only wrapper.
//
// What:
//
//   - Clone / Omit / MergeSum build fresh maps; inputs are never mutated.
//   - Equal / IsEmpty are pure predicates.
//   - Frozen snapshots a map at construction; later Set calls silently
//     no-op, matching the contract of an immutability wrapper rather than
//     failing loudly.
//
// Why:
//
//   - Keep call sites free of four-line copy loops.
//   - Hand a map to untrusted code without handing out write access.
//
// Complexity: every helper is a single pass — O(len(m)) time, and O(len(m))
// memory where a fresh map is returned.
//
// All helpers treat a nil map as the empty map, and none of them can fail.
package maputil
