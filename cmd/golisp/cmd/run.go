package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/cwbudde/golisp/internal/config"
	"github.com/cwbudde/golisp/internal/interp"
	"github.com/cwbudde/golisp/internal/reader"
)

var (
	dumpAST bool
	watch   bool
)

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Run a golisp source file",
	Long: `Read and evaluate every top-level form in FILE, in order.

Examples:
  golisp run script.lisp
  golisp run --dump-ast script.lisp
  golisp run --watch script.lisp`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFile,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "pretty-print the parsed forms before evaluating them")
	runCmd.Flags().BoolVar(&watch, "watch", false, "re-run the file whenever it changes on disk")
}

func runFile(_ *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := config.Load(filepath.Dir(path))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	interpreter := interp.New(os.Stdout, os.Stdin, cfg, args[1:])
	if err := interpreter.LoadStdlib(); err != nil {
		return fmt.Errorf("loading stdlib: %w", err)
	}

	if err := evalFile(interpreter, path); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		if !watch {
			return fmt.Errorf("execution failed")
		}
	}

	if !watch {
		return nil
	}
	return watchFile(interpreter, path)
}

func evalFile(interpreter *interp.Interpreter, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}

	if dumpAST {
		forms, err := reader.ReadAll(string(data))
		if err != nil {
			return err
		}
		for _, form := range forms {
			fmt.Printf("%# v\n", pretty.Formatter(form))
		}
	}

	_, err = interpreter.EvalString(string(data))
	return err
}

func watchFile(interpreter *interp.Interpreter, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	fmt.Fprintf(os.Stderr, "watching %s for changes...\n", path)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			fmt.Fprintf(os.Stderr, "--- %s changed, re-running ---\n", path)
			if err := evalFile(interpreter, path); err != nil {
				fmt.Fprintf(os.Stderr, "%s\n", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %s\n", err)
		}
	}
}
