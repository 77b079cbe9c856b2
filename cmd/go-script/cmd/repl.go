package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"go-script/parser"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive go-script REPL",
	Args:  cobra.NoArgs,
	RunE:  runREPL,
}

func runREPL(_ *cobra.Command, _ []string) error {
	fmt.Println("go-script REPL - type 'exit' or press Ctrl+C to quit")

	ev, exec := newInterpreter()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(">> ")

		if !scanner.Scan() {
			break
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.TrimSpace(line) == "exit" {
			fmt.Println("Goodbye!")
			return nil
		}

		p := parser.New(line)
		program := p.ParseProgram()
		if len(p.Errors()) > 0 {
			for _, msg := range p.Errors() {
				fmt.Fprintln(os.Stderr, "parse error:", msg)
			}
			continue
		}

		if _, err := exec.ExecuteProgram(ev, program); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	return nil
}
