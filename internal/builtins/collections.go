package builtins

import "github.com/cwbudde/golisp/internal/runtime"

// RegisterCollections registers the sequence constructors, predicates,
// and structural operations shared by List and Vec: list, list?, vector,
// vec, vector?, sequential?, hash-map, map?, empty?, count, nth, first,
// rest, cons, concat, seq, conj.
func RegisterCollections(r *Registry) {
	r.Register("list", list, CategoryCollection, "Construct a list from its arguments.")
	r.Register("list?", isList, CategoryCollection, "True if the argument is a list.")
	r.Register("vector", vector, CategoryCollection, "Construct a vector from its arguments.")
	r.Register("vec", vec, CategoryCollection, "Coerce a list or vector into a vector.")
	r.Register("vector?", isVector, CategoryCollection, "True if the argument is a vector.")
	r.Register("sequential?", isSequential, CategoryCollection, "True if the argument is a list or vector.")
	r.Register("hash-map", hashMap, CategoryCollection, "Construct a map from alternating key/value arguments.")
	r.Register("map?", isMap, CategoryCollection, "True if the argument is a map.")
	r.Register("empty?", isEmpty, CategoryCollection, "True if the argument is an empty list, vector, or map.")
	r.Register("count", count, CategoryCollection, "Number of elements in a list, vector, or map; 0 for nil.")
	r.Register("nth", nth, CategoryCollection, "Element at an index, or a domain error if out of range.")
	r.Register("first", first, CategoryCollection, "First element of a list or vector, or nil for an empty one or nil.")
	r.Register("rest", rest, CategoryCollection, "All but the first element, as a list; nil or empty yields ().")
	r.Register("cons", cons, CategoryCollection, "Prepend an element onto a list or vector, yielding a new list.")
	r.Register("concat", concat, CategoryCollection, "Concatenate any number of lists/vectors into one list.")
	r.Register("seq", seq, CategoryCollection, "Coerce a list, vector, string, or nil into a seq-able list.")
	r.Register("conj", conj, CategoryCollection, "Add elements to a collection: appended for vector, prepended for list.")
}

func list(args []runtime.Value) (runtime.Value, error) {
	return runtime.NewList(args...), nil
}

func isList(args []runtime.Value) (runtime.Value, error) {
	if err := arity("list?", args, 1); err != nil {
		return nil, err
	}
	_, ok := args[0].(*runtime.List)
	return runtime.MakeBool(ok), nil
}

func vector(args []runtime.Value) (runtime.Value, error) {
	return runtime.NewVec(args...), nil
}

func vec(args []runtime.Value) (runtime.Value, error) {
	if err := arity("vec", args, 1); err != nil {
		return nil, err
	}
	it, err := asSeq("vec", args[0])
	if err != nil {
		return nil, err
	}
	cp := make([]runtime.Value, len(it))
	copy(cp, it)
	return runtime.NewVec(cp...), nil
}

func isVector(args []runtime.Value) (runtime.Value, error) {
	if err := arity("vector?", args, 1); err != nil {
		return nil, err
	}
	_, ok := args[0].(*runtime.Vec)
	return runtime.MakeBool(ok), nil
}

func isSequential(args []runtime.Value) (runtime.Value, error) {
	if err := arity("sequential?", args, 1); err != nil {
		return nil, err
	}
	_, ok := items(args[0])
	return runtime.MakeBool(ok), nil
}

func hashMap(args []runtime.Value) (runtime.Value, error) {
	if len(args)%2 != 0 {
		return nil, runtime.NewDomainError("hash-map: odd number of arguments")
	}
	m := runtime.NewMap()
	for i := 0; i < len(args); i += 2 {
		if err := m.Set(args[i], args[i+1]); err != nil {
			return nil, runtime.NewDomainError("hash-map: %s", err)
		}
	}
	return m, nil
}

func isMap(args []runtime.Value) (runtime.Value, error) {
	if err := arity("map?", args, 1); err != nil {
		return nil, err
	}
	_, ok := args[0].(*runtime.Map)
	return runtime.MakeBool(ok), nil
}

func isEmpty(args []runtime.Value) (runtime.Value, error) {
	if err := arity("empty?", args, 1); err != nil {
		return nil, err
	}
	switch t := args[0].(type) {
	case *runtime.List:
		return runtime.MakeBool(len(t.Items) == 0), nil
	case *runtime.Vec:
		return runtime.MakeBool(len(t.Items) == 0), nil
	case *runtime.Map:
		return runtime.MakeBool(t.Len() == 0), nil
	default:
		return nil, &runtime.TypeError{Who: "empty?", Expected: "list, vector, or map", Got: args[0]}
	}
}

func count(args []runtime.Value) (runtime.Value, error) {
	if err := arity("count", args, 1); err != nil {
		return nil, err
	}
	switch t := args[0].(type) {
	case *runtime.Nil:
		return runtime.NewInt(0), nil
	case *runtime.List:
		return runtime.NewInt(int64(len(t.Items))), nil
	case *runtime.Vec:
		return runtime.NewInt(int64(len(t.Items))), nil
	case *runtime.Map:
		return runtime.NewInt(int64(t.Len())), nil
	default:
		return nil, &runtime.TypeError{Who: "count", Expected: "list, vector, map, or nil", Got: args[0]}
	}
}

func nth(args []runtime.Value) (runtime.Value, error) {
	if err := arity("nth", args, 2); err != nil {
		return nil, err
	}
	it, err := asSeq("nth", args[0])
	if err != nil {
		return nil, err
	}
	i, err := asInt("nth", args[1])
	if err != nil {
		return nil, err
	}
	if i < 0 || int(i) >= len(it) {
		return nil, runtime.NewDomainError("nth: index %d out of range", i)
	}
	return it[i], nil
}

func first(args []runtime.Value) (runtime.Value, error) {
	if err := arity("first", args, 1); err != nil {
		return nil, err
	}
	if _, ok := args[0].(*runtime.Nil); ok {
		return runtime.NilValue, nil
	}
	it, err := asSeq("first", args[0])
	if err != nil {
		return nil, err
	}
	if len(it) == 0 {
		return runtime.NilValue, nil
	}
	return it[0], nil
}

func rest(args []runtime.Value) (runtime.Value, error) {
	if err := arity("rest", args, 1); err != nil {
		return nil, err
	}
	if _, ok := args[0].(*runtime.Nil); ok {
		return runtime.NewList(), nil
	}
	it, err := asSeq("rest", args[0])
	if err != nil {
		return nil, err
	}
	if len(it) <= 1 {
		return runtime.NewList(), nil
	}
	cp := make([]runtime.Value, len(it)-1)
	copy(cp, it[1:])
	return runtime.NewList(cp...), nil
}

func cons(args []runtime.Value) (runtime.Value, error) {
	if err := arity("cons", args, 2); err != nil {
		return nil, err
	}
	it, err := asSeq("cons", args[1])
	if err != nil {
		return nil, err
	}
	out := make([]runtime.Value, 0, len(it)+1)
	out = append(out, args[0])
	out = append(out, it...)
	return runtime.NewList(out...), nil
}

func concat(args []runtime.Value) (runtime.Value, error) {
	var out []runtime.Value
	for _, a := range args {
		it, err := asSeq("concat", a)
		if err != nil {
			return nil, err
		}
		out = append(out, it...)
	}
	return runtime.NewList(out...), nil
}

func seq(args []runtime.Value) (runtime.Value, error) {
	if err := arity("seq", args, 1); err != nil {
		return nil, err
	}
	switch t := args[0].(type) {
	case *runtime.Nil:
		return runtime.NilValue, nil
	case *runtime.List:
		if len(t.Items) == 0 {
			return runtime.NilValue, nil
		}
		return t, nil
	case *runtime.Vec:
		if len(t.Items) == 0 {
			return runtime.NilValue, nil
		}
		cp := make([]runtime.Value, len(t.Items))
		copy(cp, t.Items)
		return runtime.NewList(cp...), nil
	case *runtime.Str:
		if len(t.Val) == 0 {
			return runtime.NilValue, nil
		}
		chars := make([]runtime.Value, 0, len(t.Val))
		for _, r := range t.Val {
			chars = append(chars, runtime.NewStr(string(r)))
		}
		return runtime.NewList(chars...), nil
	default:
		return nil, &runtime.TypeError{Who: "seq", Expected: "list, vector, string, or nil", Got: args[0]}
	}
}

func conj(args []runtime.Value) (runtime.Value, error) {
	if err := arityRange("conj", args, 1, -1); err != nil {
		return nil, err
	}
	switch t := args[0].(type) {
	case *runtime.Vec:
		out := make([]runtime.Value, len(t.Items), len(t.Items)+len(args)-1)
		copy(out, t.Items)
		out = append(out, args[1:]...)
		return runtime.NewVec(out...), nil
	case *runtime.List:
		out := make([]runtime.Value, 0, len(t.Items)+len(args)-1)
		for i := len(args) - 1; i >= 1; i-- {
			out = append(out, args[i])
		}
		out = append(out, t.Items...)
		return runtime.NewList(out...), nil
	default:
		return nil, &runtime.TypeError{Who: "conj", Expected: "list or vector", Got: args[0]}
	}
}
