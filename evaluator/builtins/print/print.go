// Package print implements go-script's print builtin.
package print

import (
	"fmt"

	"go-script/value"
)

// Print renders args space-separated using each value's own String
// form and writes them to stdout followed by a newline. This is the
// interpreted program's own output channel, distinct from and never
// routed through the interpreter's structured diagnostic logging.
//
// Syntax: print(arg1, arg2, ...)
func Print(args []value.Value) (value.Value, error) {
	for i, arg := range args {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Print(arg.String())
	}
	fmt.Println()
	return value.Undefined(), nil
}
