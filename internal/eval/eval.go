// Package eval implements the tree-walking evaluator: EVAL's trampoline
// loop, its special-form dispatch table, eval_ast for non-list forms,
// and the Apply entry point builtins use to call a value as a function.
//
// The trampoline is central to this package's design: tail positions
// (let*, do, if branches, quasiquote, and ordinary closure calls) rewrite the loop's
// own ast/env variables and `continue` instead of recursing, so deep
// tail recursion in user code never grows the Go call stack. Every
// other branch returns directly. Do not replace the loop with plain
// recursion — that is the one change that would break tail-call safety.
package eval

import (
	"github.com/cwbudde/golisp/internal/runtime"
)

// Eval evaluates ast in env, dispatching special forms and applying
// macro expansion at every iteration, per the component design's
// EVAL(ast, env) specification.
func Eval(ast runtime.Value, env *runtime.Environment) (runtime.Value, error) {
	for {
		expanded, err := macroExpandOnce(ast, env)
		if err != nil {
			return nil, err
		}
		ast = expanded

		list, isList := ast.(*runtime.List)
		if !isList {
			return evalAST(ast, env)
		}
		if len(list.Items) == 0 {
			return ast, nil
		}

		if sym, ok := list.Items[0].(*runtime.Sym); ok {
			switch sym.Name {
			case "def!":
				return evalDef(list, env)
			case "let*":
				newEnv, body, err := evalLetStar(list, env)
				if err != nil {
					return nil, err
				}
				env, ast = newEnv, body
				continue
			case "do":
				body, err := evalDoButLast(list, env)
				if err != nil {
					return nil, err
				}
				ast = body
				continue
			case "if":
				branch, err := evalIf(list, env)
				if err != nil {
					return nil, err
				}
				ast = branch
				continue
			case "fn*":
				return evalFnStar(list, env)
			case "quote":
				return evalQuote(list)
			case "quasiquote":
				operand, err := oneOperand(list, "quasiquote")
				if err != nil {
					return nil, err
				}
				ast = quasiquote(operand)
				continue
			case "quasiquoteexpand":
				operand, err := oneOperand(list, "quasiquoteexpand")
				if err != nil {
					return nil, err
				}
				return quasiquote(operand), nil
			case "defmacro!":
				return evalDefMacro(list, env)
			case "macroexpand":
				operand, err := oneOperand(list, "macroexpand")
				if err != nil {
					return nil, err
				}
				return macroExpandFull(operand, env)
			case "try*":
				return evalTryStar(list, env)
			}
		}

		// Ordinary call: evaluate head and every argument, then apply.
		vals := make([]runtime.Value, len(list.Items))
		for i, item := range list.Items {
			v, err := Eval(item, env)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		fn, ok := vals[0].(*runtime.Fn)
		if !ok {
			return nil, &runtime.TypeError{Who: "call", Expected: "function", Got: vals[0]}
		}
		args := vals[1:]
		if !fn.IsClosure() {
			return fn.Prim(args)
		}
		newEnv, err := fn.Bind(args)
		if err != nil {
			return nil, arityErr(fn, args, err)
		}
		env, ast = newEnv, fn.Body
		continue
	}
}

// Apply calls fn with already-evaluated args: a host primitive is
// invoked directly, a closure's body is evaluated in a fresh frame over
// its captured environment. Used by builtins (apply, map, swap!) and by
// macro expansion, neither of which is itself a tail position of EVAL's
// own loop.
func Apply(fn *runtime.Fn, args []runtime.Value) (runtime.Value, error) {
	if !fn.IsClosure() {
		return fn.Prim(args)
	}
	env, err := fn.Bind(args)
	if err != nil {
		return nil, arityErr(fn, args, err)
	}
	return Eval(fn.Body, env)
}

func arityErr(fn *runtime.Fn, args []runtime.Value, cause error) error {
	who := fn.Name
	if who == "" {
		who = "#<function>"
	}
	return &runtime.ArityError{Who: who, Expected: cause.Error(), Got: len(args)}
}

// evalAST implements the non-List evaluation rule: symbols look up in
// env; Vec and Map evaluate their children element-wise, producing a
// new Vec/Map of the same variant (Map keys are carried over literally,
// only values are evaluated, since map literal keys are data, not
// expressions naming something in env); everything else is
// self-evaluating.
func evalAST(ast runtime.Value, env *runtime.Environment) (runtime.Value, error) {
	switch t := ast.(type) {
	case *runtime.Sym:
		return env.Get(t.Name)
	case *runtime.Vec:
		items := make([]runtime.Value, len(t.Items))
		for i, it := range t.Items {
			v, err := Eval(it, env)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return &runtime.Vec{Items: items}, nil
	case *runtime.Map:
		out := runtime.NewMap()
		var rerr error
		t.Range(func(k, v runtime.Value) bool {
			vv, err := Eval(v, env)
			if err != nil {
				rerr = err
				return false
			}
			rerr = out.Set(k, vv)
			return rerr == nil
		})
		if rerr != nil {
			return nil, rerr
		}
		return out, nil
	default:
		return ast, nil
	}
}

func oneOperand(list *runtime.List, who string) (runtime.Value, error) {
	if len(list.Items) != 2 {
		return nil, runtime.NewArityError(who, 1, len(list.Items)-1)
	}
	return list.Items[1], nil
}
