package builtins

import "github.com/cwbudde/golisp/internal/runtime"

// RegisterMapOps registers the map-specific accessors and the
// immutable update primitives assoc/dissoc, which return a modified
// clone rather than mutating their argument.
func RegisterMapOps(r *Registry) {
	r.Register("assoc", assoc, CategoryMap, "Return a copy of a map with additional key/value pairs set.")
	r.Register("dissoc", dissoc, CategoryMap, "Return a copy of a map with the given keys removed.")
	r.Register("get", get, CategoryMap, "Value bound to a key in a map, or nil if absent or given nil.")
	r.Register("contains?", containsQ, CategoryMap, "True if a map has a binding for the given key.")
	r.Register("keys", keysFn, CategoryMap, "List of the keys bound in a map.")
	r.Register("vals", valsFn, CategoryMap, "List of the values bound in a map.")
}

func assoc(args []runtime.Value) (runtime.Value, error) {
	if err := arityRange("assoc", args, 1, -1); err != nil {
		return nil, err
	}
	m, err := asMap("assoc", args[0])
	if err != nil {
		return nil, err
	}
	rest := args[1:]
	if len(rest)%2 != 0 {
		return nil, runtime.NewDomainError("assoc: odd number of key/value arguments")
	}
	out := m.Clone()
	for i := 0; i < len(rest); i += 2 {
		if err := out.Set(rest[i], rest[i+1]); err != nil {
			return nil, runtime.NewDomainError("assoc: %s", err)
		}
	}
	return out, nil
}

func dissoc(args []runtime.Value) (runtime.Value, error) {
	if err := arityRange("dissoc", args, 1, -1); err != nil {
		return nil, err
	}
	m, err := asMap("dissoc", args[0])
	if err != nil {
		return nil, err
	}
	out := m.Clone()
	for _, k := range args[1:] {
		out.Delete(k)
	}
	return out, nil
}

func get(args []runtime.Value) (runtime.Value, error) {
	if err := arity("get", args, 2); err != nil {
		return nil, err
	}
	if _, ok := args[0].(*runtime.Nil); ok {
		return runtime.NilValue, nil
	}
	m, err := asMap("get", args[0])
	if err != nil {
		return nil, err
	}
	v, ok := m.Get(args[1])
	if !ok {
		return runtime.NilValue, nil
	}
	return v, nil
}

func containsQ(args []runtime.Value) (runtime.Value, error) {
	if err := arity("contains?", args, 2); err != nil {
		return nil, err
	}
	m, err := asMap("contains?", args[0])
	if err != nil {
		return nil, err
	}
	_, ok := m.Get(args[1])
	return runtime.MakeBool(ok), nil
}

func keysFn(args []runtime.Value) (runtime.Value, error) {
	if err := arity("keys", args, 1); err != nil {
		return nil, err
	}
	m, err := asMap("keys", args[0])
	if err != nil {
		return nil, err
	}
	var out []runtime.Value
	m.Range(func(k, _ runtime.Value) bool {
		out = append(out, k)
		return true
	})
	return runtime.NewList(out...), nil
}

func valsFn(args []runtime.Value) (runtime.Value, error) {
	if err := arity("vals", args, 1); err != nil {
		return nil, err
	}
	m, err := asMap("vals", args[0])
	if err != nil {
		return nil, err
	}
	var out []runtime.Value
	m.Range(func(_, v runtime.Value) bool {
		out = append(out, v)
		return true
	})
	return runtime.NewList(out...), nil
}
