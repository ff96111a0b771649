package builtins

import "github.com/cwbudde/golisp/internal/runtime"

// RegisterAtoms registers atom, atom?, deref, reset!, and swap!.
func RegisterAtoms(r *Registry, ctx *Context) {
	r.Register("atom", atomNew, CategoryAtom, "Construct a new atom holding the given value.")
	r.Register("atom?", isAtom, CategoryAtom, "True if the argument is an atom.")
	r.Register("deref", deref, CategoryAtom, "Value currently held by an atom.")
	r.Register("reset!", resetBang, CategoryAtom, "Replace the value held by an atom, returning it.")
	r.Register("swap!", swapBang(ctx), CategoryAtom, "Apply a function to an atom's value and extra arguments, storing and returning the result.")
}

func atomNew(args []runtime.Value) (runtime.Value, error) {
	if err := arity("atom", args, 1); err != nil {
		return nil, err
	}
	return runtime.NewAtom(args[0]), nil
}

func isAtom(args []runtime.Value) (runtime.Value, error) {
	if err := arity("atom?", args, 1); err != nil {
		return nil, err
	}
	_, ok := args[0].(*runtime.Atom)
	return runtime.MakeBool(ok), nil
}

func deref(args []runtime.Value) (runtime.Value, error) {
	if err := arity("deref", args, 1); err != nil {
		return nil, err
	}
	a, err := asAtom("deref", args[0])
	if err != nil {
		return nil, err
	}
	return a.Deref(), nil
}

func resetBang(args []runtime.Value) (runtime.Value, error) {
	if err := arity("reset!", args, 2); err != nil {
		return nil, err
	}
	a, err := asAtom("reset!", args[0])
	if err != nil {
		return nil, err
	}
	return a.Reset(args[1]), nil
}

func swapBang(ctx *Context) runtime.Primitive {
	return func(args []runtime.Value) (runtime.Value, error) {
		if err := arityRange("swap!", args, 2, -1); err != nil {
			return nil, err
		}
		a, err := asAtom("swap!", args[0])
		if err != nil {
			return nil, err
		}
		fn, err := asFn("swap!", args[1])
		if err != nil {
			return nil, err
		}
		callArgs := make([]runtime.Value, 0, len(args)-1)
		callArgs = append(callArgs, a.Deref())
		callArgs = append(callArgs, args[2:]...)
		result, err := ctx.Apply(fn, callArgs)
		if err != nil {
			return nil, err
		}
		return a.Reset(result), nil
	}
}
