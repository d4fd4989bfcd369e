package selector

// Combine joins two finished selectors with a combinator token into a new
// Selector whose text is
//
//	left.String() + " " + combinator + " " + right.String()
//
// The combinator is joined verbatim and deliberately unvalidated; the
// documented tokens are Descendant, Child, Adjacent and Sibling, but any
// string is accepted. The result carries no chain state: its order and
// multiplicity trackers are reset, the same as a fresh root. Appending
// further parts onto a combined selector is unsupported (the result of
// such appends is unspecified), but the operands themselves are never
// altered — Combine is a pure function of its three arguments.
func Combine(left Selector, combinator string, right Selector) Selector {
	return Selector{text: left.text + " " + combinator + " " + right.text}
}
