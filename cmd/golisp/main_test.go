package main

import (
	"fmt"
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/cwbudde/golisp/cmd/golisp/cmd"
)

// TestMain lets the test binary re-exec itself as the golisp command,
// so testscript scripts can shell out to `golisp run ...` / `golisp repl`
// without needing a separately built binary on PATH.
func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"golisp": cmdMain,
	}))
}

func cmdMain() int {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func TestCLIScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
	})
}
