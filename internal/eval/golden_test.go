package eval_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cwbudde/golisp/internal/builtins"
	"github.com/cwbudde/golisp/internal/eval"
	"github.com/cwbudde/golisp/internal/reader"
	"github.com/cwbudde/golisp/internal/runtime"
)

// newInterpreter wires a full evaluator + builtin registry the way
// internal/interp does, without importing that package (which would
// also pull in internal/config and its YAML loading, which this test
// has no use for).
func newInterpreter(out *bytes.Buffer) *builtins.Context {
	rootEnv := runtime.NewEnvironment()
	ctx := builtins.NewContext(out, strings.NewReader(""), rootEnv)
	ctx.HostLanguage = "golisp"
	ctx.Eval = eval.Eval
	ctx.Apply = eval.Apply
	builtins.RegisterAll(ctx)
	return ctx
}

func evalProgram(t *testing.T, ctx *builtins.Context, src string) string {
	t.Helper()
	forms, err := reader.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	var last runtime.Value = runtime.NilValue
	for _, form := range forms {
		last, err = eval.Eval(form, ctx.RootEnv)
		if err != nil {
			return "ERROR: " + err.Error()
		}
	}
	return last.String()
}

func TestGoldenEvaluationScenarios(t *testing.T) {
	scenarios := map[string]string{
		"fibonacci": `
			(def! fib (fn* (n) (if (< n 2) n (+ (fib (- n 1)) (fib (- n 2))))))
			(fib 10)`,
		"map-filter-via-recursion": `
			(def! my-filter (fn* (pred lst)
				(if (empty? lst)
					lst
					(if (pred (first lst))
						(cons (first lst) (my-filter pred (rest lst)))
						(my-filter pred (rest lst))))))
			(my-filter (fn* (x) (> x 2)) (list 1 2 3 4 5))`,
		"macro-unless": `
			(defmacro! unless (fn* (pred a b) (list (quote if) pred b a)))
			(unless false "yes" "no")`,
		"quasiquote-splice": "`(1 ~@(list 2 3) 4)",
		"atom-counter": `
			(def! counter (atom 0))
			(swap! counter (fn* (n) (+ n 1)))
			(swap! counter (fn* (n) (+ n 1)))
			(deref counter)`,
		"try-catch-thrown-map": `
			(try*
				(throw (hash-map :msg "boom"))
				(catch* e (get e :msg)))`,
		"string-building": `(str "result: " (+ 1 2 3))`,
		"json-roundtrip": `(json-decode (json-encode (list 1 "two" (list 3 4))))`,
	}

	out := &bytes.Buffer{}
	ctx := newInterpreter(out)

	for name, src := range scenarios {
		name, src := name, src
		t.Run(name, func(t *testing.T) {
			result := evalProgram(t, ctx, src)
			snaps.MatchSnapshot(t, result)
		})
	}
}

func TestGoldenPrintSideEffects(t *testing.T) {
	out := &bytes.Buffer{}
	ctx := newInterpreter(out)
	evalProgram(t, ctx, `(println "line one") (prn "line" 2) (pr-str "unused")`)
	snaps.MatchSnapshot(t, out.String())
}
