package core_test

import (
	"fmt"

	"github.com/varalys/huelint/pkg/core"
)

// ExampleCheck lints a single in-memory stylesheet.
func ExampleCheck() {
	for _, f := range core.Check("styles/app.css", "body {\n  color: #333;\n  background: rgba(var(--bg-rgb), 0.9);\n}\n") {
		fmt.Printf("%s:%d:%d [%s] %s\n", f.File, f.Line, f.Column, f.Kind, f.Snippet)
	}
	// Output:
	// styles/app.css:2:10 [hex] #333
}
