package groupby_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/webkata/groupby"
)

type person struct {
	Name    string
	Surname string
	City    string
}

// TestGroup buckets people by city, keeping per-bucket input order.
func TestGroup(t *testing.T) {
	people := []person{
		{"Ada", "Lovelace", "London"},
		{"Alan", "Turing", "London"},
		{"Grace", "Hopper", "New York"},
	}

	got := groupby.Group(people,
		func(p person) string { return p.City },
		func(p person) string { return p.Name },
	)

	assert.Equal(t, map[string][]string{
		"London":   {"Ada", "Alan"},
		"New York": {"Grace"},
	}, got)
}

// TestGroup_KeyTransform verifies arbitrary key/value selectors.
func TestGroup_KeyTransform(t *testing.T) {
	wordsIn := []string{"apple", "Avocado", "banana", "Blueberry"}

	got := groupby.Group(wordsIn,
		func(w string) string { return strings.ToLower(w[:1]) },
		strings.ToUpper,
	)

	assert.Equal(t, map[string][]string{
		"a": {"APPLE", "AVOCADO"},
		"b": {"BANANA", "BLUEBERRY"},
	}, got)
}

// TestGroup_Empty yields an empty, non-nil map for nil input.
func TestGroup_Empty(t *testing.T) {
	got := groupby.Group(nil,
		func(n int) int { return n },
		func(n int) int { return n },
	)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// TestSortStable orders by surname then name and keeps input order for
// full ties.
func TestSortStable(t *testing.T) {
	people := []person{
		{"Grace", "Hopper", "New York"},
		{"Alan", "Turing", "London"},
		{"Ada", "Lovelace", "London"},
		{"Alonzo", "Turing", "Princeton"}, // same surname, earlier name
		{"Alan", "Turing", "Manchester"},  // full key tie with #2
	}

	got := groupby.SortStable(people,
		func(p person) string { return p.Surname },
		func(p person) string { return p.Name },
	)

	want := []person{
		{"Grace", "Hopper", "New York"},
		{"Ada", "Lovelace", "London"},
		{"Alan", "Turing", "London"},
		{"Alan", "Turing", "Manchester"}, // stable: input order preserved
		{"Alonzo", "Turing", "Princeton"},
	}
	assert.Equal(t, want, got)

	// Input untouched.
	assert.Equal(t, person{"Grace", "Hopper", "New York"}, people[0])
	assert.Len(t, people, 5)
}

// TestSortStable_Empty returns an empty slice for nil input.
func TestSortStable_Empty(t *testing.T) {
	got := groupby.SortStable(nil,
		func(s string) string { return s },
		func(s string) string { return s },
	)
	assert.Empty(t, got)
}
