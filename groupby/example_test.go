package groupby_test

import (
	"fmt"

	"github.com/katalvlaran/webkata/groupby"
)

// ExampleGroup buckets file names by extension.
func ExampleGroup() {
	files := []string{"a.go", "b.md", "c.go"}

	byExt := groupby.Group(files,
		func(f string) string { return f[len(f)-2:] },
		func(f string) string { return f },
	)
	fmt.Println(byExt["go"])
	fmt.Println(byExt["md"])
	// Output:
	// [a.go c.go]
	// [b.md]
}
