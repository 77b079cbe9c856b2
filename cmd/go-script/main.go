// Command go-script runs the interpreter's CLI.
package main

import (
	"fmt"
	"os"

	"go-script/cmd/go-script/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
