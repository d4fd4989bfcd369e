package words_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/webkata/words"
)

// TestReconstruct_Basic rebuilds a word from shuffled position lists.
func TestReconstruct_Basic(t *testing.T) {
	got, err := words.Reconstruct(map[rune][]int{
		'l': {3},
		'h': {0},
		'e': {1},
		'o': {4},
		'?': {2},
	})
	require.NoError(t, err)
	assert.Equal(t, "he?lo", got)
}

// TestReconstruct_RepeatedLetter verifies one letter occupying several slots.
func TestReconstruct_RepeatedLetter(t *testing.T) {
	got, err := words.Reconstruct(map[rune][]int{
		'l': {2, 3},
		'h': {0},
		'e': {1},
		'o': {4},
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

// TestReconstruct_Empty returns "" for nil and empty inputs.
func TestReconstruct_Empty(t *testing.T) {
	for name, in := range map[string]map[rune][]int{
		"Nil":       nil,
		"Empty":     {},
		"EmptyList": {'a': {}},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := words.Reconstruct(in)
			require.NoError(t, err)
			assert.Equal(t, "", got)
		})
	}
}

// TestReconstruct_Errors drives malformed position lists against their
// sentinel errors.
func TestReconstruct_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   map[rune][]int
		err  error
	}{
		{"Negative", map[rune][]int{'a': {-1}, 'b': {0}}, words.ErrPositionOutOfRange},
		{"PastEnd", map[rune][]int{'a': {0}, 'b': {2}}, words.ErrPositionOutOfRange},
		{"ConflictTwoLetters", map[rune][]int{'a': {0}, 'b': {0}, 'c': {1}}, words.ErrPositionConflict},
		{"ConflictSameLetter", map[rune][]int{'a': {0, 0}}, words.ErrPositionConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := words.Reconstruct(tc.in)
			if !errors.Is(err, tc.err) {
				t.Errorf("Reconstruct(%v) error = %v; want %v", tc.in, err, tc.err)
			}
		})
	}
}
