// Package cmd implements the go-script command-line tool: a Cobra
// command tree wrapping the interpreter in evaluator/statement/heap,
// grounded on the teacher's own REPL/file-runner main.go and on
// CWBudde-go-dws's Cobra-based dwscript CLI.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go-script/evaluator"
	"go-script/evaluator/builtins"
	"go-script/heap"
	"go-script/statement"
)

var rootCmd = &cobra.Command{
	Use:   "go-script",
	Short: "go-script is an interpreter for a small JavaScript-like scripting language",
	Long: `go-script parses and evaluates programs written in a small,
JavaScript-inspired scripting language: variables, closures,
prototype-chain objects, arrays, and a handful of built-ins
(print, fetch, JSON.stringify/parse, len).

With no subcommand it starts an interactive REPL.`,
	RunE: func(c *cobra.Command, args []string) error {
		return replCmd.RunE(c, args)
	},
}

func init() {
	rootCmd.PersistentFlags().Int("gc-threshold", 1024, "live heap object count that triggers a collection at the next safepoint")
	if err := viper.BindPFlag("gc-threshold", rootCmd.PersistentFlags().Lookup("gc-threshold")); err != nil {
		panic(err)
	}

	viper.SetEnvPrefix("GOSCRIPT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	if err := viper.BindEnv("gc-threshold"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newInterpreter builds an evaluator wired to a fresh heap, statement
// executor, and builtin registry, all sharing the configured GC
// threshold and a plain-text logr sink good enough for a CLI. The
// statement executor is returned concretely (rather than through the
// evaluator.StatementExecutor interface it also satisfies) so callers
// can reach ExecuteProgram, which that interface deliberately omits.
func newInterpreter() (*evaluator.Evaluator, *statement.Executor) {
	log := funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintln(os.Stderr, prefix+":", args)
			return
		}
		fmt.Fprintln(os.Stderr, args)
	}, funcr.Options{})

	h := heap.New(viper.GetInt("gc-threshold"), log)
	exec := statement.New()
	ev := evaluator.New(h, exec, log)
	builtins.Register(ev.Global, h)
	return ev, exec
}
