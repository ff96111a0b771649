package builtins

import "github.com/cwbudde/golisp/internal/runtime"

// RegisterControl registers throw, apply, and map.
func RegisterControl(r *Registry, ctx *Context) {
	r.Register("throw", throw, CategoryControl, "Raise a value as a catch*-able exception.")
	r.Register("apply", applyBuiltin(ctx), CategoryControl, "Call a function with arguments built from leading values plus a trailing sequence.")
	r.Register("map", mapBuiltin(ctx), CategoryControl, "Apply a function to every element of a sequence, returning a list of results.")
}

func throw(args []runtime.Value) (runtime.Value, error) {
	if err := arity("throw", args, 1); err != nil {
		return nil, err
	}
	return nil, &runtime.ThrownValue{Val: args[0]}
}

func applyBuiltin(ctx *Context) runtime.Primitive {
	return func(args []runtime.Value) (runtime.Value, error) {
		if err := arityRange("apply", args, 2, -1); err != nil {
			return nil, err
		}
		fn, err := asFn("apply", args[0])
		if err != nil {
			return nil, err
		}
		last, err := asSeq("apply", args[len(args)-1])
		if err != nil {
			return nil, err
		}
		callArgs := make([]runtime.Value, 0, len(args)-2+len(last))
		callArgs = append(callArgs, args[1:len(args)-1]...)
		callArgs = append(callArgs, last...)
		return ctx.Apply(fn, callArgs)
	}
}

func mapBuiltin(ctx *Context) runtime.Primitive {
	return func(args []runtime.Value) (runtime.Value, error) {
		if err := arity("map", args, 2); err != nil {
			return nil, err
		}
		fn, err := asFn("map", args[0])
		if err != nil {
			return nil, err
		}
		it, err := asSeq("map", args[1])
		if err != nil {
			return nil, err
		}
		out := make([]runtime.Value, len(it))
		for i, v := range it {
			result, err := ctx.Apply(fn, []runtime.Value{v})
			if err != nil {
				return nil, err
			}
			out[i] = result
		}
		return runtime.NewList(out...), nil
	}
}
