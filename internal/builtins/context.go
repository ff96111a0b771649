package builtins

import (
	"bufio"
	"io"

	"github.com/cwbudde/golisp/internal/runtime"
)

// Context carries the host resources a handful of builtins need beyond
// their arguments: where to print to, where to read a line from, the
// root environment `eval` evaluates against, the program's extra CLI
// arguments, and the values exposed as *host-language* and *config*.
type Context struct {
	Out     io.Writer
	In      *bufio.Reader
	RootEnv *runtime.Environment

	HostLanguage string
	Argv         []string
	Config       *runtime.Map // exposed to the language as *config*

	// Eval is the evaluator entry point, injected rather than imported
	// directly so this package never has to import internal/eval: the
	// `eval` and `swap!` builtins need to evaluate or apply, and
	// internal/eval is the one package that knows how.
	Eval  func(ast runtime.Value, env *runtime.Environment) (runtime.Value, error)
	Apply func(fn *runtime.Fn, args []runtime.Value) (runtime.Value, error)
}

// NewContext builds a Context writing to out and reading from in.
func NewContext(out io.Writer, in io.Reader, rootEnv *runtime.Environment) *Context {
	return &Context{
		Out:     out,
		In:      bufio.NewReader(in),
		RootEnv: rootEnv,
	}
}
