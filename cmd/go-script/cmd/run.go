package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go-script/parser"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a go-script source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runScript,
}

func runScript(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	p := parser.New(string(content))
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		for _, msg := range p.Errors() {
			fmt.Fprintln(os.Stderr, "parse error:", msg)
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(p.Errors()))
	}

	ev, exec := newInterpreter()
	if _, err := exec.ExecuteProgram(ev, program); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	return nil
}
