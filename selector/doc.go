// Package selector builds CSS selector strings from immutable, validated
// parts, enforcing the canonical part order as the selector is assembled.
//
// What:
//
//   - Selector is an opaque immutable value; the zero value is the empty
//     root selector and renders as "".
//   - Six part categories in fixed order: element, id, class, attribute,
//     pseudo-class, pseudo-element. Element, id and pseudo-element may
//     appear at most once per chain; class, attribute and pseudo-class
//     repeat freely.
//   - Every append derives a fresh Selector and leaves the receiver
//     untouched, so one prefix can branch into many selectors safely.
//   - Combine joins two finished selectors with a combinator token into a
//     new root-state Selector.
//
// Why:
//
//   - Catch malformed selectors (".editable#main", "a::before::after") at
//     construction time instead of shipping broken strings to a matcher.
//   - Share common prefixes: build "div.card" once, derive variants freely.
//
// Order rule, precisely:
//
//	A part whose category rank is strictly lower than the highest rank
//	already present in the chain is rejected with ErrOrderViolation.
//	Equal rank passes the order check — that is what makes repeated
//	classes legal, and what routes a second id to the duplicate check
//	rather than the order check.
//
// Errors:
//
//   - ErrOrderViolation: part appended below an already-present higher-ranked category.
//   - ErrDuplicatePart: element, id or pseudo-element appended twice in one chain.
//
// Both are programmer errors, raised eagerly at the offending append and
// never deferred to String(). Branch with errors.Is.
//
// Complexity: every operation is O(len(text)) time (string append), O(1)
// extra state.
package selector
