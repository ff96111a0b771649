package builtins

import "github.com/cwbudde/golisp/internal/runtime"

// RegisterConstructors registers symbol and keyword, which build a Sym
// or Kw from a string (keyword is idempotent on an existing keyword).
func RegisterConstructors(r *Registry) {
	r.Register("symbol", symbol, CategoryConstruct, "Construct a symbol from a string.")
	r.Register("keyword", keyword, CategoryConstruct, "Construct a keyword from a string, or pass an existing keyword through.")
}

func symbol(args []runtime.Value) (runtime.Value, error) {
	if err := arity("symbol", args, 1); err != nil {
		return nil, err
	}
	s, err := asStr("symbol", args[0])
	if err != nil {
		return nil, err
	}
	return runtime.NewSym(s), nil
}

func keyword(args []runtime.Value) (runtime.Value, error) {
	if err := arity("keyword", args, 1); err != nil {
		return nil, err
	}
	if kw, ok := args[0].(*runtime.Kw); ok {
		return kw, nil
	}
	s, err := asStr("keyword", args[0])
	if err != nil {
		return nil, err
	}
	return runtime.NewKw(s), nil
}
