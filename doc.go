// Package webkata is a collection of small, self-contained exercises in
// pure in-memory data manipulation — from map helpers to an immutable
// CSS-selector builder.
//
// 🚀 What is webkata?
//
//	A zero-I/O library of independent packages, one exercise each:
//		• selector/ — immutable, order-validated CSS-selector builder with combinators
//		• maputil/  — shallow copy, summing merge, key removal, equality, freezing
//		• words/    — reconstruct a word from per-letter position lists
//		• tickets/  — greedy change-making queue simulation
//		• jsonlite/ — minimal structural JSON encoder & flat-object decoder
//		• groupby/  — grouping multimap builder and stable two-key record sort
//
// ✨ Why choose webkata?
//
//   - Beginner-friendly – minimal API per package, clear, intuitive naming
//   - Value semantics – every operation returns a fresh value, nothing mutates
//   - Pure Go – no cgo, no hidden deps
//   - Independent – packages never import each other; take only what you need
//
// Every exported operation is a pure function of its arguments (or a method
// on an immutable value), so sharing values across goroutines needs no
// locking: there is nothing to synchronize.
//
// Quick taste:
//
//	s, _ := selector.Element("a")
//	s, _ = s.Attr(`href$=".png"`)
//	s, _ = s.PseudoClass("focus")
//	fmt.Println(s) // a[href$=".png"]:focus
//
//	go get github.com/katalvlaran/webkata
package webkata
