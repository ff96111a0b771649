// Command golisp is the command-line driver for the interpreter: a
// run subcommand that executes a file (optionally watching it for
// changes), a repl subcommand for interactive sessions, and a version
// subcommand, built the way the teacher's cmd/dwscript driver is.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/golisp/cmd/golisp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
