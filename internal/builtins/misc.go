package builtins

import (
	"io"
	"os"
	"time"

	"github.com/cwbudde/golisp/internal/reader"
	"github.com/cwbudde/golisp/internal/runtime"
)

// RegisterMisc registers time-ms, readline, and load-file, and binds the
// *host-language*, *ARGV*, and *config* globals into ctx.RootEnv.
func RegisterMisc(r *Registry, ctx *Context) {
	r.Register("time-ms", timeMs, CategoryMisc, "Current wall-clock time in milliseconds since the Unix epoch.")
	r.Register("readline", readline(ctx), CategoryMisc, "Read one line from standard input, or nil at end of input.")
	r.Register("load-file", loadFile(ctx), CategoryMisc, "Read and evaluate the forms of a file at the root environment.")

	argv := make([]runtime.Value, len(ctx.Argv))
	for i, a := range ctx.Argv {
		argv[i] = runtime.NewStr(a)
	}
	ctx.RootEnv.Set("*ARGV*", runtime.NewList(argv...))
	ctx.RootEnv.Set("*host-language*", runtime.NewStr(ctx.HostLanguage))
	if ctx.Config != nil {
		ctx.RootEnv.Set("*config*", ctx.Config)
	} else {
		ctx.RootEnv.Set("*config*", runtime.NewMap())
	}
}

func timeMs(args []runtime.Value) (runtime.Value, error) {
	if err := arity("time-ms", args, 0); err != nil {
		return nil, err
	}
	return runtime.NewInt(time.Now().UnixMilli()), nil
}

func readline(ctx *Context) runtime.Primitive {
	return func(args []runtime.Value) (runtime.Value, error) {
		if err := arity("readline", args, 0); err != nil {
			return nil, err
		}
		line, err := ctx.In.ReadString('\n')
		if err != nil {
			if err == io.EOF && line != "" {
				return runtime.NewStr(trimNewline(line)), nil
			}
			return runtime.NilValue, nil
		}
		return runtime.NewStr(trimNewline(line)), nil
	}
}

func trimNewline(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\n' {
		s = s[:n-1]
	}
	if n := len(s); n > 0 && s[n-1] == '\r' {
		s = s[:n-1]
	}
	return s
}

func loadFile(ctx *Context) runtime.Primitive {
	return func(args []runtime.Value) (runtime.Value, error) {
		if err := arity("load-file", args, 1); err != nil {
			return nil, err
		}
		path, err := asStr("load-file", args[0])
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, runtime.NewDomainError("load-file: %s", err)
		}
		form, err := reader.ReadStr("(do " + string(data) + " nil)")
		if err != nil {
			return nil, err
		}
		return ctx.Eval(form, ctx.RootEnv)
	}
}
