package builtins

import (
	"os"

	"github.com/cwbudde/golisp/internal/reader"
	"github.com/cwbudde/golisp/internal/runtime"
)

// RegisterReaderBridge registers read-string, slurp, and eval: the three
// primitives that connect the running program back to the reader, the
// filesystem, and the evaluator.
func RegisterReaderBridge(r *Registry, ctx *Context) {
	r.Register("read-string", readString, CategoryReader, "Parse the first form from a string.")
	r.Register("slurp", slurp, CategoryReader, "Return the full contents of a file as a string.")
	r.Register("eval", evalBuiltin(ctx), CategoryReader, "Evaluate a form in the root environment.")
}

func readString(args []runtime.Value) (runtime.Value, error) {
	if err := arity("read-string", args, 1); err != nil {
		return nil, err
	}
	s, err := asStr("read-string", args[0])
	if err != nil {
		return nil, err
	}
	return reader.ReadStr(s)
}

func slurp(args []runtime.Value) (runtime.Value, error) {
	if err := arity("slurp", args, 1); err != nil {
		return nil, err
	}
	path, err := asStr("slurp", args[0])
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, runtime.NewDomainError("slurp: %s", err)
	}
	return runtime.NewStr(string(data)), nil
}

func evalBuiltin(ctx *Context) runtime.Primitive {
	return func(args []runtime.Value) (runtime.Value, error) {
		if err := arity("eval", args, 1); err != nil {
			return nil, err
		}
		return ctx.Eval(args[0], ctx.RootEnv)
	}
}
