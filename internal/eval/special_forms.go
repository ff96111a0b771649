package eval

import (
	"github.com/cwbudde/golisp/internal/runtime"
)

// evalDef implements def!: evaluate operand 2 in env, bind operand 1 in
// the root environment, return the value.
func evalDef(list *runtime.List, env *runtime.Environment) (runtime.Value, error) {
	if len(list.Items) != 3 {
		return nil, runtime.NewArityError("def!", 2, len(list.Items)-1)
	}
	name, ok := list.Items[1].(*runtime.Sym)
	if !ok {
		return nil, &runtime.TypeError{Who: "def!", Expected: "symbol", Got: list.Items[1]}
	}
	val, err := Eval(list.Items[2], env)
	if err != nil {
		return nil, err
	}
	env.SetRoot(name.Name, val)
	return val, nil
}

// evalLetStar implements let*: returns the child environment and the
// body form, for the caller's trampoline to continue into (let* is a
// tail position).
func evalLetStar(list *runtime.List, env *runtime.Environment) (*runtime.Environment, runtime.Value, error) {
	if len(list.Items) != 3 {
		return nil, nil, runtime.NewArityError("let*", 2, len(list.Items)-1)
	}
	bindings, err := bindingPairs(list.Items[1])
	if err != nil {
		return nil, nil, err
	}
	child := env.NewChild()
	for i := 0; i < len(bindings); i += 2 {
		sym, ok := bindings[i].(*runtime.Sym)
		if !ok {
			return nil, nil, &runtime.TypeError{Who: "let*", Expected: "symbol", Got: bindings[i]}
		}
		val, err := Eval(bindings[i+1], child)
		if err != nil {
			return nil, nil, err
		}
		child.Set(sym.Name, val)
	}
	return child, list.Items[2], nil
}

func bindingPairs(v runtime.Value) ([]runtime.Value, error) {
	var items []runtime.Value
	switch t := v.(type) {
	case *runtime.List:
		items = t.Items
	case *runtime.Vec:
		items = t.Items
	default:
		return nil, &runtime.TypeError{Who: "let*", Expected: "list or vector of bindings", Got: v}
	}
	if len(items)%2 != 0 {
		return nil, runtime.NewDomainError("let* requires an even number of binding forms")
	}
	return items, nil
}

// evalDoButLast evaluates every operand but the last for side effect and
// returns the last, unevaluated, for the caller's trampoline to continue
// into (do is a tail position). (do) with no operands evaluates to nil.
func evalDoButLast(list *runtime.List, env *runtime.Environment) (runtime.Value, error) {
	ops := list.Items[1:]
	if len(ops) == 0 {
		return runtime.NilValue, nil
	}
	for _, op := range ops[:len(ops)-1] {
		if _, err := Eval(op, env); err != nil {
			return nil, err
		}
	}
	return ops[len(ops)-1], nil
}

// evalIf evaluates the condition and returns the branch the caller's
// trampoline should continue into.
func evalIf(list *runtime.List, env *runtime.Environment) (runtime.Value, error) {
	if len(list.Items) < 3 || len(list.Items) > 4 {
		return nil, runtime.NewArityError("if", 2, len(list.Items)-1)
	}
	cond, err := Eval(list.Items[1], env)
	if err != nil {
		return nil, err
	}
	if runtime.Truthy(cond) {
		return list.Items[2], nil
	}
	if len(list.Items) == 4 {
		return list.Items[3], nil
	}
	return runtime.NilValue, nil
}

// evalFnStar builds a closure capturing the body, parameter list, and
// current environment.
func evalFnStar(list *runtime.List, env *runtime.Environment) (runtime.Value, error) {
	if len(list.Items) != 3 {
		return nil, runtime.NewArityError("fn*", 2, len(list.Items)-1)
	}
	names, err := paramNames(list.Items[1])
	if err != nil {
		return nil, err
	}
	return runtime.NewClosure(names, list.Items[2], env), nil
}

func paramNames(v runtime.Value) ([]string, error) {
	var items []runtime.Value
	switch t := v.(type) {
	case *runtime.List:
		items = t.Items
	case *runtime.Vec:
		items = t.Items
	default:
		return nil, &runtime.TypeError{Who: "fn*", Expected: "list or vector of parameters", Got: v}
	}
	names := make([]string, len(items))
	for i, it := range items {
		sym, ok := it.(*runtime.Sym)
		if !ok {
			return nil, &runtime.TypeError{Who: "fn*", Expected: "symbol parameter", Got: it}
		}
		names[i] = sym.Name
	}
	return names, nil
}

// evalQuote returns operand 1 unevaluated.
func evalQuote(list *runtime.List) (runtime.Value, error) {
	if len(list.Items) != 2 {
		return nil, runtime.NewArityError("quote", 1, len(list.Items)-1)
	}
	return list.Items[1], nil
}

// evalDefMacro evaluates operand 2 (which must produce a closure), sets
// its macro flag, and binds it in the root environment.
func evalDefMacro(list *runtime.List, env *runtime.Environment) (runtime.Value, error) {
	if len(list.Items) != 3 {
		return nil, runtime.NewArityError("defmacro!", 2, len(list.Items)-1)
	}
	name, ok := list.Items[1].(*runtime.Sym)
	if !ok {
		return nil, &runtime.TypeError{Who: "defmacro!", Expected: "symbol", Got: list.Items[1]}
	}
	val, err := Eval(list.Items[2], env)
	if err != nil {
		return nil, err
	}
	fn, ok := val.(*runtime.Fn)
	if !ok || !fn.IsClosure() {
		return nil, &runtime.TypeError{Who: "defmacro!", Expected: "closure", Got: val}
	}
	fn.IsMacro = true
	env.SetRoot(name.Name, fn)
	return fn, nil
}

// evalTryStar evaluates operand 1 in a protected region. On failure, if
// operand 2 is a (catch* SYM BODY) form, BODY is evaluated in a child
// env binding SYM to the thrown payload; otherwise the error re-raises.
func evalTryStar(list *runtime.List, env *runtime.Environment) (runtime.Value, error) {
	if len(list.Items) < 2 {
		return nil, runtime.NewArityError("try*", 1, len(list.Items)-1)
	}
	result, err := Eval(list.Items[1], env)
	if err == nil {
		return result, nil
	}
	if len(list.Items) < 3 {
		return nil, err
	}
	catch, ok := list.Items[2].(*runtime.List)
	if !ok || len(catch.Items) != 3 {
		return nil, err
	}
	head, ok := catch.Items[0].(*runtime.Sym)
	if !ok || head.Name != "catch*" {
		return nil, err
	}
	bindName, ok := catch.Items[1].(*runtime.Sym)
	if !ok {
		return nil, err
	}
	child := env.NewChild()
	child.Set(bindName.Name, runtime.CatchPayload(err))
	return Eval(catch.Items[2], child)
}
