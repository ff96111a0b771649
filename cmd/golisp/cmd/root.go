package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "golisp",
	Short: "A Make-A-Lisp-lineage Lisp interpreter",
	Long: `golisp is a small Lisp-family interpreter: a reader, a tree-walking
evaluator with tail-call elimination and macros, a lexically scoped
environment model, quasiquote expansion, a mutable atom primitive, and
a built-in function table sufficient to host a bootstrap standard
library written in the language itself.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}
