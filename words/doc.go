// Package words reconstructs a word from a scrambled description: each
// letter maps to the list of zero-based positions it occupies.
//
// What:
//
//   - Reconstruct(map[rune][]int) places every letter at each of its
//     positions and returns the assembled word.
//   - The word length is the total number of listed positions; together
//     the lists must cover exactly the range [0, length).
//
// Errors:
//
//   - ErrPositionOutOfRange: a position is negative or beyond the word end.
//   - ErrPositionConflict: two letters (or one letter twice) claim a slot.
//
// Complexity: O(L) time and memory, L = total number of positions.
package words
