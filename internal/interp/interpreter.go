// Package interp assembles the pipeline stages — lexer, reader,
// evaluator, printer, and builtins — into a runnable interpreter, the
// way the teacher's internal/interp.Interpreter assembles DWScript's
// lexer/parser/semantic/eval stages behind a single entry point.
package interp

import (
	"io"
	"os"

	"github.com/cwbudde/golisp/internal/builtins"
	"github.com/cwbudde/golisp/internal/config"
	"github.com/cwbudde/golisp/internal/eval"
	"github.com/cwbudde/golisp/internal/reader"
	"github.com/cwbudde/golisp/internal/runtime"
)

// HostLanguage is reported to running programs via *host-language*.
const HostLanguage = "golisp"

// Interpreter owns the root environment and the builtin registry bound
// into it, and is the single entry point file-run and REPL mode share.
type Interpreter struct {
	RootEnv  *runtime.Environment
	Registry *builtins.Registry
	Config   *config.Config

	out io.Writer
	ctx *builtins.Context
}

// New builds an Interpreter writing program output to out and reading
// readline/stdin requests from in, with cfg supplying *config* and argv
// supplying *ARGV*.
func New(out io.Writer, in io.Reader, cfg *config.Config, argv []string) *Interpreter {
	rootEnv := runtime.NewEnvironment()
	ctx := builtins.NewContext(out, in, rootEnv)
	ctx.HostLanguage = HostLanguage
	ctx.Argv = argv
	ctx.Config = cfg.ToValue()
	ctx.Eval = eval.Eval
	ctx.Apply = eval.Apply

	reg := builtins.RegisterAll(ctx)

	interp := &Interpreter{
		RootEnv:  rootEnv,
		Registry: reg,
		Config:   cfg,
		out:      out,
		ctx:      ctx,
	}
	return interp
}

// ReadLine reads one line from the same buffered stdin reader the
// readline builtin uses, so the REPL loop and (readline) never race
// over who gets the next line of input.
func (i *Interpreter) ReadLine() (string, error) {
	line, err := i.ctx.In.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line, nil
}

// EvalString reads every top-level form from src and evaluates them in
// sequence against the root environment, returning the value of the
// last form (Nil if src had none).
func (i *Interpreter) EvalString(src string) (runtime.Value, error) {
	forms, err := reader.ReadAll(src)
	if err != nil {
		return nil, err
	}
	var result runtime.Value = runtime.NilValue
	for _, form := range forms {
		result, err = eval.Eval(form, i.RootEnv)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// REPLStep reads one form from src, evaluates it, and returns the
// resulting value. Used by the REPL loop, which reads one line at a time
// and prints the value in readable mode.
func (i *Interpreter) REPLStep(src string) (runtime.Value, error) {
	form, err := reader.ReadStr(src)
	if err != nil {
		return nil, err
	}
	return eval.Eval(form, i.RootEnv)
}

// LoadStdlib evaluates the bootstrap standard library file named by
// i.Config.StdlibPath, if one was configured. The file's contents and
// conventions are an external collaborator — this interpreter only
// supplies the mechanism (read, wrap as "(do ... nil)", evaluate at the
// root environment) that load-file itself uses.
func (i *Interpreter) LoadStdlib() error {
	if i.Config.StdlibPath == "" {
		return nil
	}
	data, err := os.ReadFile(i.Config.StdlibPath)
	if err != nil {
		return err
	}
	form, err := reader.ReadStr("(do " + string(data) + " nil)")
	if err != nil {
		return err
	}
	_, err = eval.Eval(form, i.RootEnv)
	return err
}
