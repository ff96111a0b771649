package eval

import "github.com/cwbudde/golisp/internal/runtime"

// macroCallee returns the macro closure ast calls, if ast is a non-empty
// List whose head is a Sym bound to a macro-flagged closure.
func macroCallee(ast runtime.Value, env *runtime.Environment) *runtime.Fn {
	list, ok := ast.(*runtime.List)
	if !ok || len(list.Items) == 0 {
		return nil
	}
	sym, ok := list.Items[0].(*runtime.Sym)
	if !ok {
		return nil
	}
	val, found := env.Find(sym.Name)
	if !found {
		return nil
	}
	fn, ok := val.(*runtime.Fn)
	if !ok || !fn.IsMacro {
		return nil
	}
	return fn
}

// macroExpandOnce expands ast fully (repeatedly, per macroExpandFull)
// before EVAL's loop inspects it, as required at every step of the
// evaluator.
func macroExpandOnce(ast runtime.Value, env *runtime.Environment) (runtime.Value, error) {
	return macroExpandFull(ast, env)
}

// macroExpandFull implements macroexpand: while ast is a macro call,
// replace it with the result of calling that macro on its arguments,
// stopping as soon as it is no longer one.
func macroExpandFull(ast runtime.Value, env *runtime.Environment) (runtime.Value, error) {
	for {
		fn := macroCallee(ast, env)
		if fn == nil {
			return ast, nil
		}
		list := ast.(*runtime.List)
		result, err := Apply(fn, list.Items[1:])
		if err != nil {
			return nil, err
		}
		ast = result
	}
}
