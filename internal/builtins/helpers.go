package builtins

import (
	"strconv"

	"github.com/cwbudde/golisp/internal/runtime"
)

func arity(name string, args []runtime.Value, n int) error {
	if len(args) != n {
		return runtime.NewArityError(name, n, len(args))
	}
	return nil
}

func arityRange(name string, args []runtime.Value, min, max int) error {
	if len(args) < min || (max >= 0 && len(args) > max) {
		return &runtime.ArityError{Who: name, Expected: rangeStr(min, max), Got: len(args)}
	}
	return nil
}

func rangeStr(min, max int) string {
	if max < 0 {
		return "at least " + strconv.Itoa(min)
	}
	if min == max {
		return strconv.Itoa(min)
	}
	return strconv.Itoa(min) + " to " + strconv.Itoa(max)
}

func asInt(who string, v runtime.Value) (int64, error) {
	i, ok := v.(*runtime.Int)
	if !ok {
		return 0, &runtime.TypeError{Who: who, Expected: "int", Got: v}
	}
	return i.Val, nil
}

func asStr(who string, v runtime.Value) (string, error) {
	s, ok := v.(*runtime.Str)
	if !ok {
		return "", &runtime.TypeError{Who: who, Expected: "string", Got: v}
	}
	return s.Val, nil
}

func asFn(who string, v runtime.Value) (*runtime.Fn, error) {
	fn, ok := v.(*runtime.Fn)
	if !ok {
		return nil, &runtime.TypeError{Who: who, Expected: "function", Got: v}
	}
	return fn, nil
}

func asAtom(who string, v runtime.Value) (*runtime.Atom, error) {
	a, ok := v.(*runtime.Atom)
	if !ok {
		return nil, &runtime.TypeError{Who: who, Expected: "atom", Got: v}
	}
	return a, nil
}

func asMap(who string, v runtime.Value) (*runtime.Map, error) {
	m, ok := v.(*runtime.Map)
	if !ok {
		return nil, &runtime.TypeError{Who: who, Expected: "map", Got: v}
	}
	return m, nil
}

// items returns the elements of a List or Vec, and whether v was one of
// those two variants at all.
func items(v runtime.Value) ([]runtime.Value, bool) {
	switch t := v.(type) {
	case *runtime.List:
		return t.Items, true
	case *runtime.Vec:
		return t.Items, true
	}
	return nil, false
}

// asSeq returns the elements of a List or Vec, raising a TypeError
// otherwise.
func asSeq(who string, v runtime.Value) ([]runtime.Value, error) {
	it, ok := items(v)
	if !ok {
		return nil, &runtime.TypeError{Who: who, Expected: "list or vector", Got: v}
	}
	return it, nil
}
