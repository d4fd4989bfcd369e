package selector_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/webkata/selector"
)

// ExampleSelector demonstrates a plain append chain across several
// categories, rendered with String.
func ExampleSelector() {
	s, err := selector.Element("a").Attr(`href$=".png"`)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	s, err = s.PseudoClass("focus")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(s)
	// Output:
	// a[href$=".png"]:focus
}

// ExampleCombine builds two selectors independently and joins them with
// the adjacent-sibling combinator.
func ExampleCombine() {
	a, _ := selector.Element("div").ID("main")
	b, _ := selector.Element("table").ID("data")

	fmt.Println(selector.Combine(a, selector.Adjacent, b))
	// Output:
	// div#main + table#data
}

// ExampleSelector_branching derives two variants from one shared prefix;
// immutability keeps the branches independent.
func ExampleSelector_branching() {
	base := selector.Element("input")

	text, _ := base.Attr(`type="text"`)
	radio, _ := base.Attr(`type="radio"`)

	fmt.Println(text)
	fmt.Println(radio)
	fmt.Println(base)
	// Output:
	// input[type="text"]
	// input[type="radio"]
	// input
}

// ExampleSelector_validation shows both failure kinds surfacing at the
// offending append.
func ExampleSelector_validation() {
	_, err := selector.Class("editable").ID("main")
	fmt.Println(errors.Is(err, selector.ErrOrderViolation))

	_, err = selector.Element("div").Element("span")
	fmt.Println(errors.Is(err, selector.ErrDuplicatePart))
	// Output:
	// true
	// true
}
