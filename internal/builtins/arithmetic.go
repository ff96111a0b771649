package builtins

import "github.com/cwbudde/golisp/internal/runtime"

// RegisterArithmetic registers +, -, *, /, and the chained comparison
// operators. Per the data model, + - * are variadic left folds, / is a
// left fold truncated to integer (truncation toward zero, Go's native
// int64 division semantics), and the comparisons are variadic, requiring
// a monotonic chain across every adjacent pair.
func RegisterArithmetic(r *Registry) {
	r.Register("+", add, CategoryArithmetic, "Variadic integer sum.")
	r.Register("-", sub, CategoryArithmetic, "Variadic integer difference, left fold.")
	r.Register("*", mul, CategoryArithmetic, "Variadic integer product.")
	r.Register("/", div, CategoryArithmetic, "Variadic integer quotient, truncated toward zero, left fold.")
	r.Register("=", eq, CategoryArithmetic, "Structural equality across every adjacent pair of arguments.")
	r.Register("<", chain(func(a, b int64) bool { return a < b }), CategoryArithmetic, "Variadic strictly-increasing chain.")
	r.Register("<=", chain(func(a, b int64) bool { return a <= b }), CategoryArithmetic, "Variadic non-decreasing chain.")
	r.Register(">", chain(func(a, b int64) bool { return a > b }), CategoryArithmetic, "Variadic strictly-decreasing chain.")
	r.Register(">=", chain(func(a, b int64) bool { return a >= b }), CategoryArithmetic, "Variadic non-increasing chain.")
}

func intArgs(who string, args []runtime.Value) ([]int64, error) {
	if len(args) == 0 {
		return nil, runtime.NewArityError(who, 1, 0)
	}
	out := make([]int64, len(args))
	for i, a := range args {
		n, err := asInt(who, a)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func add(args []runtime.Value) (runtime.Value, error) {
	ns, err := intArgs("+", args)
	if err != nil {
		return nil, err
	}
	var acc int64
	for _, n := range ns {
		acc += n
	}
	return runtime.NewInt(acc), nil
}

func sub(args []runtime.Value) (runtime.Value, error) {
	ns, err := intArgs("-", args)
	if err != nil {
		return nil, err
	}
	if len(ns) == 1 {
		return runtime.NewInt(-ns[0]), nil
	}
	acc := ns[0]
	for _, n := range ns[1:] {
		acc -= n
	}
	return runtime.NewInt(acc), nil
}

func mul(args []runtime.Value) (runtime.Value, error) {
	ns, err := intArgs("*", args)
	if err != nil {
		return nil, err
	}
	acc := int64(1)
	for _, n := range ns {
		acc *= n
	}
	return runtime.NewInt(acc), nil
}

func div(args []runtime.Value) (runtime.Value, error) {
	ns, err := intArgs("/", args)
	if err != nil {
		return nil, err
	}
	if len(ns) == 1 {
		return runtime.NewInt(ns[0]), nil
	}
	acc := ns[0]
	for _, n := range ns[1:] {
		if n == 0 {
			return nil, runtime.NewDomainError("division by zero")
		}
		acc /= n
	}
	return runtime.NewInt(acc), nil
}

func eq(args []runtime.Value) (runtime.Value, error) {
	if len(args) == 0 {
		return nil, runtime.NewArityError("=", 1, 0)
	}
	for i := 1; i < len(args); i++ {
		if !runtime.Equals(args[i-1], args[i]) {
			return runtime.BoolFalse, nil
		}
	}
	return runtime.BoolTrue, nil
}

func chain(cmp func(a, b int64) bool) runtime.Primitive {
	return func(args []runtime.Value) (runtime.Value, error) {
		ns, err := intArgs("compare", args)
		if err != nil {
			return nil, err
		}
		for i := 1; i < len(ns); i++ {
			if !cmp(ns[i-1], ns[i]) {
				return runtime.BoolFalse, nil
			}
		}
		return runtime.BoolTrue, nil
	}
}
