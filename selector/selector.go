package selector

import (
	"fmt"
)

// Element appends a bare element name ("div", "a"). At most one element
// per chain. The duplicate check runs first, so a second element is always
// reported as a duplicate even when other categories sit in between.
//
// Errors:
//   - ErrDuplicatePart if an element was already appended in this chain.
//   - ErrOrderViolation if any higher-ranked part is already present.
func (s Selector) Element(value string) (Selector, error) {
	if s.hasElement {
		return Selector{}, fmt.Errorf("Element(%q): %w", value, ErrDuplicatePart)
	}
	if s.highestRank > rankElement {
		return Selector{}, fmt.Errorf("Element(%q): %w", value, ErrOrderViolation)
	}
	next := s
	next.text += value
	next.highestRank = rankElement
	next.hasElement = true

	return next, nil
}

// ID appends an id part, rendered with a '#' prefix. At most one id per chain.
//
// Errors:
//   - ErrDuplicatePart if an id was already appended in this chain.
//   - ErrOrderViolation if a class, attribute or pseudo part is already present.
func (s Selector) ID(value string) (Selector, error) {
	if s.hasID {
		return Selector{}, fmt.Errorf("ID(%q): %w", value, ErrDuplicatePart)
	}
	if s.highestRank > rankID {
		return Selector{}, fmt.Errorf("ID(%q): %w", value, ErrOrderViolation)
	}
	next := s
	next.text += "#" + value
	next.highestRank = rankID
	next.hasID = true

	return next, nil
}

// Class appends a class part, rendered with a '.' prefix. Repeatable.
//
// Errors:
//   - ErrOrderViolation if an attribute or pseudo part is already present.
func (s Selector) Class(value string) (Selector, error) {
	if s.highestRank > rankClass {
		return Selector{}, fmt.Errorf("Class(%q): %w", value, ErrOrderViolation)
	}
	next := s
	next.text += "." + value
	next.highestRank = rankClass

	return next, nil
}

// Attr appends an attribute part, rendered inside '[' and ']'. The value
// supplies the full inner content ("href", `href$=".png"`) and is not
// escaped or validated. Repeatable.
//
// Errors:
//   - ErrOrderViolation if a pseudo-class or pseudo-element is already present.
func (s Selector) Attr(value string) (Selector, error) {
	if s.highestRank > rankAttr {
		return Selector{}, fmt.Errorf("Attr(%q): %w", value, ErrOrderViolation)
	}
	next := s
	next.text += "[" + value + "]"
	next.highestRank = rankAttr

	return next, nil
}

// PseudoClass appends a pseudo-class part, rendered with a ':' prefix.
// Repeatable.
//
// Errors:
//   - ErrOrderViolation if a pseudo-element is already present.
func (s Selector) PseudoClass(value string) (Selector, error) {
	if s.highestRank > rankPseudoClass {
		return Selector{}, fmt.Errorf("PseudoClass(%q): %w", value, ErrOrderViolation)
	}
	next := s
	next.text += ":" + value
	next.highestRank = rankPseudoClass

	return next, nil
}

// PseudoElement appends a pseudo-element part, rendered with a '::'
// prefix. At most one pseudo-element per chain. As the highest-ranked
// category it can never order-fail; a second append in the same chain
// fails with ErrDuplicatePart.
func (s Selector) PseudoElement(value string) (Selector, error) {
	if s.hasPseudoElement {
		return Selector{}, fmt.Errorf("PseudoElement(%q): %w", value, ErrDuplicatePart)
	}
	next := s
	next.text += "::" + value
	next.highestRank = rankPseudoElement
	next.hasPseudoElement = true

	return next, nil
}

// Package-level entry points start a chain from the empty root selector.
// The first append on a fresh chain cannot violate order or duplicate
// rules, so these never fail.

// Element starts a new chain with a bare element name.
func Element(value string) Selector { return mustRoot(Selector{}.Element(value)) }

// ID starts a new chain with an id part.
func ID(value string) Selector { return mustRoot(Selector{}.ID(value)) }

// Class starts a new chain with a class part.
func Class(value string) Selector { return mustRoot(Selector{}.Class(value)) }

// Attr starts a new chain with an attribute part.
func Attr(value string) Selector { return mustRoot(Selector{}.Attr(value)) }

// PseudoClass starts a new chain with a pseudo-class part.
func PseudoClass(value string) Selector { return mustRoot(Selector{}.PseudoClass(value)) }

// PseudoElement starts a new chain with a pseudo-element part.
func PseudoElement(value string) Selector { return mustRoot(Selector{}.PseudoElement(value)) }

// mustRoot unwraps an append on the zero-value root, which cannot fail.
func mustRoot(s Selector, err error) Selector {
	if err != nil {
		panic("selector: append on root selector failed: " + err.Error())
	}

	return s
}
