package eval

import "github.com/cwbudde/golisp/internal/runtime"

// quasiquote is the pure AST-to-AST rewrite described in the component
// design: unquote substitutes directly, splice-unquote concats, a
// List otherwise builds up via cons, and Map/Sym quote themselves so
// they survive to evaluation time unevaluated. Vec passes through
// unchanged -- a strict Make-A-Lisp variant would wrap it too, but
// spec's own note says to follow this behavior, so that is what this
// does.
func quasiquote(ast runtime.Value) runtime.Value {
	switch t := ast.(type) {
	case *runtime.List:
		if len(t.Items) == 0 {
			return t
		}
		if sym, ok := t.Items[0].(*runtime.Sym); ok && sym.Name == "unquote" {
			if len(t.Items) < 2 {
				return runtime.NilValue
			}
			return t.Items[1]
		}
		elt := t.Items[0]
		rest := &runtime.List{Items: t.Items[1:]}
		if eltList, ok := elt.(*runtime.List); ok && len(eltList.Items) > 0 {
			if sym, ok := eltList.Items[0].(*runtime.Sym); ok && sym.Name == "splice-unquote" {
				if len(eltList.Items) < 2 {
					return quasiquote(rest)
				}
				return runtime.NewList(runtime.NewSym("concat"), eltList.Items[1], quasiquote(rest))
			}
		}
		return runtime.NewList(runtime.NewSym("cons"), quasiquote(elt), quasiquote(rest))
	case *runtime.Map, *runtime.Sym:
		return runtime.NewList(runtime.NewSym("quote"), ast)
	default:
		return ast
	}
}
