package builtins

import (
	"fmt"
	"strings"

	"github.com/cwbudde/golisp/internal/printer"
	"github.com/cwbudde/golisp/internal/runtime"
)

// RegisterPrinting registers prn, println, pr-str, and str. prn prints
// readable, newline-terminated, space-joined; println prints
// non-readable the same way; pr-str returns the readable joined string;
// str concatenates non-readable representations with no separator.
func RegisterPrinting(r *Registry, ctx *Context) {
	r.Register("prn", prn(ctx), CategoryPrinting, "Print arguments readable, space-separated, newline-terminated.")
	r.Register("println", println_(ctx), CategoryPrinting, "Print arguments non-readable, space-separated, newline-terminated.")
	r.Register("pr-str", prStr, CategoryPrinting, "Return arguments readable, space-separated, as one string.")
	r.Register("str", str, CategoryPrinting, "Concatenate arguments non-readable, with no separator.")
}

func printJoined(args []runtime.Value, readable bool, sep string) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = printer.Print(a, readable)
	}
	return strings.Join(parts, sep)
}

func prn(ctx *Context) runtime.Primitive {
	return func(args []runtime.Value) (runtime.Value, error) {
		fmt.Fprintln(ctx.Out, printJoined(args, true, " "))
		return runtime.NilValue, nil
	}
}

func println_(ctx *Context) runtime.Primitive {
	return func(args []runtime.Value) (runtime.Value, error) {
		fmt.Fprintln(ctx.Out, printJoined(args, false, " "))
		return runtime.NilValue, nil
	}
}

func prStr(args []runtime.Value) (runtime.Value, error) {
	return runtime.NewStr(printJoined(args, true, " ")), nil
}

func str(args []runtime.Value) (runtime.Value, error) {
	return runtime.NewStr(printJoined(args, false, "")), nil
}
