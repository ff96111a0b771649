package eval

import (
	"testing"

	"github.com/cwbudde/golisp/internal/reader"
	"github.com/cwbudde/golisp/internal/runtime"
)

func evalStr(t *testing.T, env *runtime.Environment, src string) runtime.Value {
	t.Helper()
	form, err := reader.ReadStr(src)
	if err != nil {
		t.Fatalf("ReadStr(%q): %v", src, err)
	}
	v, err := Eval(form, env)
	if err != nil {
		t.Fatalf("Eval(%q): %v", src, err)
	}
	return v
}

func newTestEnv() *runtime.Environment {
	env := runtime.NewEnvironment()
	env.Set("+", runtime.NewPrimitive("+", func(args []runtime.Value) (runtime.Value, error) {
		var acc int64
		for _, a := range args {
			acc += a.(*runtime.Int).Val
		}
		return runtime.NewInt(acc), nil
	}))
	env.Set("-", runtime.NewPrimitive("-", func(args []runtime.Value) (runtime.Value, error) {
		acc := args[0].(*runtime.Int).Val
		for _, a := range args[1:] {
			acc -= a.(*runtime.Int).Val
		}
		return runtime.NewInt(acc), nil
	}))
	env.Set("=", runtime.NewPrimitive("=", func(args []runtime.Value) (runtime.Value, error) {
		return runtime.MakeBool(runtime.Equals(args[0], args[1])), nil
	}))
	return env
}

func TestEvalSelfEvaluating(t *testing.T) {
	env := newTestEnv()
	v := evalStr(t, env, "5")
	if v.(*runtime.Int).Val != 5 {
		t.Errorf("got %v", v)
	}
}

func TestEvalArithmeticCall(t *testing.T) {
	env := newTestEnv()
	v := evalStr(t, env, "(+ 1 2 3)")
	if v.(*runtime.Int).Val != 6 {
		t.Errorf("got %v", v)
	}
}

func TestEvalDefAndLookup(t *testing.T) {
	env := newTestEnv()
	evalStr(t, env, "(def! x 10)")
	v := evalStr(t, env, "x")
	if v.(*runtime.Int).Val != 10 {
		t.Errorf("got %v", v)
	}
}

func TestEvalLetStarScoping(t *testing.T) {
	env := newTestEnv()
	v := evalStr(t, env, "(let* (a 2 b (+ a 1)) (+ a b))")
	if v.(*runtime.Int).Val != 5 {
		t.Errorf("got %v", v)
	}
	if _, err := env.Get("a"); err == nil {
		t.Error("let* bindings should not leak into the enclosing environment")
	}
}

func TestEvalIfBranches(t *testing.T) {
	env := newTestEnv()
	if v := evalStr(t, env, "(if true 1 2)"); v.(*runtime.Int).Val != 1 {
		t.Errorf("got %v", v)
	}
	if v := evalStr(t, env, "(if false 1 2)"); v.(*runtime.Int).Val != 2 {
		t.Errorf("got %v", v)
	}
	if v := evalStr(t, env, "(if nil 1 2)"); v.(*runtime.Int).Val != 2 {
		t.Errorf("nil should be falsy, got %v", v)
	}
	if v := evalStr(t, env, "(if false 1)"); v != runtime.NilValue {
		t.Errorf("missing else branch should yield nil, got %v", v)
	}
}

func TestEvalDoSequencesAndReturnsLast(t *testing.T) {
	env := newTestEnv()
	evalStr(t, env, "(def! log (quote ()))")
	v := evalStr(t, env, "(do 1 2 3)")
	if v.(*runtime.Int).Val != 3 {
		t.Errorf("got %v", v)
	}
}

func TestEvalFnStarClosure(t *testing.T) {
	env := newTestEnv()
	v := evalStr(t, env, "((fn* (a b) (+ a b)) 3 4)")
	if v.(*runtime.Int).Val != 7 {
		t.Errorf("got %v", v)
	}
}

func TestEvalFnStarRestParam(t *testing.T) {
	env := newTestEnv()
	evalStr(t, env, "(def! countargs (fn* (& args) (count args)))")
	env.Set("count", runtime.NewPrimitive("count", func(args []runtime.Value) (runtime.Value, error) {
		lst := args[0].(*runtime.List)
		return runtime.NewInt(int64(len(lst.Items))), nil
	}))
	v := evalStr(t, env, "(countargs 1 2 3)")
	if v.(*runtime.Int).Val != 3 {
		t.Errorf("got %v", v)
	}
}

func TestEvalQuoteDoesNotEvaluate(t *testing.T) {
	env := newTestEnv()
	v := evalStr(t, env, "(quote (+ 1 2))")
	lst, ok := v.(*runtime.List)
	if !ok || len(lst.Items) != 3 {
		t.Fatalf("got %#v", v)
	}
}

func TestEvalDeepTailRecursionDoesNotOverflow(t *testing.T) {
	env := newTestEnv()
	evalStr(t, env, `(def! count-to (fn* (n acc) (if (= n acc) acc (count-to n (+ acc 1)))))`)
	v := evalStr(t, env, "(count-to 100000 0)")
	if v.(*runtime.Int).Val != 100000 {
		t.Errorf("got %v", v)
	}
}

func TestEvalTryCatch(t *testing.T) {
	env := newTestEnv()
	env.Set("throw-it", runtime.NewPrimitive("throw-it", func(args []runtime.Value) (runtime.Value, error) {
		return nil, &runtime.ThrownValue{Val: runtime.NewStr("boom")}
	}))
	v := evalStr(t, env, `(try* (throw-it) (catch* e e))`)
	if s, ok := v.(*runtime.Str); !ok || s.Val != "boom" {
		t.Errorf("got %#v", v)
	}
}

func TestEvalDefMacroAndExpansion(t *testing.T) {
	env := newTestEnv()
	evalStr(t, env, `(defmacro! unless (fn* (pred a b) (list (quote if) pred b a)))`)
	env.Set("list", runtime.NewPrimitive("list", func(args []runtime.Value) (runtime.Value, error) {
		return runtime.NewList(args...), nil
	}))
	v := evalStr(t, env, "(unless false 1 2)")
	if v.(*runtime.Int).Val != 1 {
		t.Errorf("got %v", v)
	}
}

func TestEvalQuasiquoteUnquoteAndSplice(t *testing.T) {
	env := newTestEnv()
	env.Set("list", runtime.NewPrimitive("list", func(args []runtime.Value) (runtime.Value, error) {
		return runtime.NewList(args...), nil
	}))
	// The quasiquote expansion calls cons and concat.
	env.Set("cons", runtime.NewPrimitive("cons", func(args []runtime.Value) (runtime.Value, error) {
		return runtime.NewList(append([]runtime.Value{args[0]}, args[1].(*runtime.List).Items...)...), nil
	}))
	env.Set("concat", runtime.NewPrimitive("concat", func(args []runtime.Value) (runtime.Value, error) {
		var out []runtime.Value
		for _, a := range args {
			out = append(out, a.(*runtime.List).Items...)
		}
		return runtime.NewList(out...), nil
	}))
	evalStr(t, env, "(def! x 7)")
	evalStr(t, env, "(def! xs (list 1 2))")
	v := evalStr(t, env, "`(~x ~@xs 9)")
	lst, ok := v.(*runtime.List)
	if !ok || len(lst.Items) != 4 {
		t.Fatalf("got %#v", v)
	}
	if lst.Items[0].(*runtime.Int).Val != 7 {
		t.Errorf("first element = %v, want 7", lst.Items[0])
	}
	if lst.Items[3].(*runtime.Int).Val != 9 {
		t.Errorf("last element = %v, want 9", lst.Items[3])
	}
}

func TestApplyClosure(t *testing.T) {
	env := newTestEnv()
	fnVal := evalStr(t, env, "(fn* (a) (+ a 1))")
	fn := fnVal.(*runtime.Fn)
	v, err := Apply(fn, []runtime.Value{runtime.NewInt(41)})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if v.(*runtime.Int).Val != 42 {
		t.Errorf("got %v", v)
	}
}
