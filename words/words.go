package words

import (
	"errors"
	"fmt"
)

// Sentinel errors for word reconstruction.
var (
	// ErrPositionOutOfRange indicates a listed position is negative or not
	// smaller than the total number of positions.
	ErrPositionOutOfRange = errors.New("words: position out of range")
	// ErrPositionConflict indicates two letters claim the same position.
	ErrPositionConflict = errors.New("words: position claimed twice")
)

// Reconstruct assembles a word from per-letter position lists. The word's
// length equals the total number of positions listed; the lists must cover
// every slot exactly once. An empty (or nil) map yields "".
//
// The input is never mutated.
func Reconstruct(letters map[rune][]int) (string, error) {
	total := 0
	for _, positions := range letters {
		total += len(positions)
	}
	if total == 0 {
		return "", nil
	}

	slots := make([]rune, total)
	filled := make([]bool, total)
	for letter, positions := range letters {
		for _, p := range positions {
			if p < 0 || p >= total {
				return "", fmt.Errorf("letter %q at %d (word length %d): %w", letter, p, total, ErrPositionOutOfRange)
			}
			if filled[p] {
				return "", fmt.Errorf("letter %q at %d: %w", letter, p, ErrPositionConflict)
			}
			slots[p] = letter
			filled[p] = true
		}
	}
	// Every in-range, conflict-free placement of exactly `total` positions
	// fills every slot, so no completeness pass is needed.

	return string(slots), nil
}
