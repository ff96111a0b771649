package builtins

import "github.com/cwbudde/golisp/internal/runtime"

// RegisterPredicates registers the single-argument type predicates:
// nil?, true?, false?, symbol?, keyword?, string?, number?, fn?.
func RegisterPredicates(r *Registry) {
	r.Register("nil?", typePred("nil?", runtime.TypeNil), CategoryPredicate, "True if the argument is nil.")
	r.Register("true?", isTrue, CategoryPredicate, "True if the argument is the boolean true.")
	r.Register("false?", isFalse, CategoryPredicate, "True if the argument is the boolean false.")
	r.Register("symbol?", typePred("symbol?", runtime.TypeSym), CategoryPredicate, "True if the argument is a symbol.")
	r.Register("keyword?", typePred("keyword?", runtime.TypeKw), CategoryPredicate, "True if the argument is a keyword.")
	r.Register("string?", typePred("string?", runtime.TypeStr), CategoryPredicate, "True if the argument is a string.")
	r.Register("number?", typePred("number?", runtime.TypeInt), CategoryPredicate, "True if the argument is an integer.")
	r.Register("fn?", typePred("fn?", runtime.TypeFn), CategoryPredicate, "True if the argument is callable (primitive or closure, macros excluded).")
}

func typePred(who, want string) runtime.Primitive {
	return func(args []runtime.Value) (runtime.Value, error) {
		if err := arity(who, args, 1); err != nil {
			return nil, err
		}
		if want == runtime.TypeFn {
			fn, ok := args[0].(*runtime.Fn)
			return runtime.MakeBool(ok && !fn.IsMacro), nil
		}
		return runtime.MakeBool(args[0].Type() == want), nil
	}
}

func isTrue(args []runtime.Value) (runtime.Value, error) {
	if err := arity("true?", args, 1); err != nil {
		return nil, err
	}
	b, ok := args[0].(*runtime.Bool)
	return runtime.MakeBool(ok && b.Val), nil
}

func isFalse(args []runtime.Value) (runtime.Value, error) {
	if err := arity("false?", args, 1); err != nil {
		return nil, err
	}
	b, ok := args[0].(*runtime.Bool)
	return runtime.MakeBool(ok && !b.Val), nil
}
