package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/cwbudde/golisp/internal/config"
	"github.com/cwbudde/golisp/internal/interp"
	"github.com/cwbudde/golisp/internal/printer"
	"github.com/cwbudde/golisp/internal/reader"
)

var replDumpAST bool

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	RunE:  runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().BoolVar(&replDumpAST, "dump-ast", false, "pretty-print each form before evaluating it")
}

func runREPL(_ *cobra.Command, args []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	interpreter := interp.New(os.Stdout, os.Stdin, cfg, args)
	if err := interpreter.LoadStdlib(); err != nil {
		return fmt.Errorf("loading stdlib: %w", err)
	}

	return replLoop(interpreter, os.Stdout, cfg.Prompt)
}

// replLoop reads lines through interpreter.ReadLine — the same
// buffered reader the readline builtin uses — so a program that calls
// (readline) from the REPL consumes the next line rather than racing a
// second reader over stdin.
func replLoop(interpreter *interp.Interpreter, out io.Writer, prompt string) error {
	var history []string

	for {
		fmt.Fprint(out, prompt)
		line, err := interpreter.ReadLine()
		if err != nil {
			fmt.Fprintln(out)
			return appendHistory(interpreter, history)
		}
		if line == "" {
			continue
		}
		history = append(history, line)

		if replDumpAST {
			form, err := reader.ReadStr(line)
			if err == nil {
				fmt.Fprintf(out, "%# v\n", pretty.Formatter(form))
			}
		}

		result, err := interpreter.REPLStep(line)
		if err != nil {
			fmt.Fprintf(out, "Runtime error: %s\n", err)
			continue
		}
		fmt.Fprintln(out, printer.Print(result, true))
	}
}

func appendHistory(interpreter *interp.Interpreter, history []string) error {
	path := interpreter.Config.HistoryFile
	if path == "" || len(history) == 0 {
		return nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil
	}
	defer f.Close()
	for _, line := range history {
		fmt.Fprintln(f, line)
	}
	return nil
}
