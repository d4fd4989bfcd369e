// Package selector defines the Selector value type, part ranks,
// combinator tokens, and sentinel errors.
package selector

import (
	"errors"
)

// Sentinel errors for selector construction.
var (
	// ErrOrderViolation indicates a part was appended below an
	// already-present higher-ranked category in the same chain.
	ErrOrderViolation = errors.New("selector: parts must follow element, id, class, attribute, pseudo-class, pseudo-element order")
	// ErrDuplicatePart indicates element, id or pseudo-element was
	// appended a second time in the same chain.
	ErrDuplicatePart = errors.New("selector: element, id and pseudo-element may occur at most once inside a selector")
)

// Standard combinator tokens accepted by Combine. Combine does not
// validate its combinator argument; any string is joined verbatim.
const (
	// Descendant matches right-hand elements nested anywhere under the left.
	Descendant = " "
	// Child matches direct children only.
	Child = ">"
	// Adjacent matches the immediately following sibling.
	Adjacent = "+"
	// Sibling matches any following sibling.
	Sibling = "~"
)

// partRank is the fixed ordinal position of a part category in the
// required selector syntax order. rankNone marks a chain with no parts yet.
type partRank uint8

const (
	rankNone partRank = iota
	rankElement
	rankID
	rankClass
	rankAttr
	rankPseudoClass
	rankPseudoElement
)

// Selector is an immutable partial CSS selector. The zero value is the
// empty root selector, renders as "", and is ready to use.
//
// Appends never mutate the receiver: each returns a fresh successor value,
// so a Selector may be retained and branched from any number of times, and
// shared across goroutines without synchronization.
type Selector struct {
	text             string
	highestRank      partRank
	hasElement       bool
	hasID            bool
	hasPseudoElement bool
}

// String returns the accumulated selector text verbatim.
func (s Selector) String() string { return s.text }
