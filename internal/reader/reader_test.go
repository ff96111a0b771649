package reader

import (
	"testing"

	"github.com/cwbudde/golisp/internal/runtime"
)

func mustRead(t *testing.T, input string) runtime.Value {
	t.Helper()
	v, err := ReadStr(input)
	if err != nil {
		t.Fatalf("ReadStr(%q): %v", input, err)
	}
	return v
}

func TestReadAtoms(t *testing.T) {
	if v := mustRead(t, "123"); v.String() != "123" {
		t.Errorf("got %s", v.String())
	}
	if _, ok := mustRead(t, "nil").(*runtime.Nil); !ok {
		t.Errorf("expected nil value")
	}
	if b, ok := mustRead(t, "true").(*runtime.Bool); !ok || !b.Val {
		t.Errorf("expected true")
	}
	if s, ok := mustRead(t, `"hi\n"`).(*runtime.Str); !ok || s.Val != "hi\n" {
		t.Errorf("expected decoded string, got %#v", mustRead(t, `"hi\n"`))
	}
	if kw, ok := mustRead(t, ":foo").(*runtime.Kw); !ok || kw.Name != "foo" {
		t.Errorf("expected keyword foo")
	}
}

func TestReadCollections(t *testing.T) {
	lst, ok := mustRead(t, "(1 2 3)").(*runtime.List)
	if !ok || len(lst.Items) != 3 {
		t.Fatalf("expected 3-element list, got %#v", lst)
	}
	vec, ok := mustRead(t, "[1 2]").(*runtime.Vec)
	if !ok || len(vec.Items) != 2 {
		t.Fatalf("expected 2-element vec, got %#v", vec)
	}
	m, ok := mustRead(t, `{:a 1}`).(*runtime.Map)
	if !ok || m.Len() != 1 {
		t.Fatalf("expected 1-entry map, got %#v", m)
	}
}

func TestReadQuoteFamily(t *testing.T) {
	tests := map[string]string{
		"'a":  "quote",
		"`a":  "quasiquote",
		"~a":  "unquote",
		"~@a": "splice-unquote",
		"@a":  "deref",
	}
	for input, wantHead := range tests {
		lst, ok := mustRead(t, input).(*runtime.List)
		if !ok || len(lst.Items) != 2 {
			t.Fatalf("%q: expected 2-element list, got %#v", input, mustRead(t, input))
		}
		sym, ok := lst.Items[0].(*runtime.Sym)
		if !ok || sym.Name != wantHead {
			t.Errorf("%q: head = %#v, want symbol %s", input, lst.Items[0], wantHead)
		}
	}
}

func TestReadMetaReversesOrder(t *testing.T) {
	lst, ok := mustRead(t, `^{:a 1} [1 2]`).(*runtime.List)
	if !ok || len(lst.Items) != 3 {
		t.Fatalf("expected (with-meta [1 2] {:a 1}), got %#v", mustRead(t, `^{:a 1} [1 2]`))
	}
	sym, ok := lst.Items[0].(*runtime.Sym)
	if !ok || sym.Name != "with-meta" {
		t.Fatalf("head = %#v, want with-meta", lst.Items[0])
	}
	if _, ok := lst.Items[1].(*runtime.Vec); !ok {
		t.Errorf("second operand should be the vector, got %#v", lst.Items[1])
	}
	if _, ok := lst.Items[2].(*runtime.Map); !ok {
		t.Errorf("third operand should be the metadata map, got %#v", lst.Items[2])
	}
}

func TestReadUnclosedFormIsEOF(t *testing.T) {
	_, err := ReadStr("(1 2")
	if err == nil || err.Error() != "EOF" {
		t.Fatalf("expected EOF error, got %v", err)
	}
	_, err = ReadStr(`"unterminated`)
	if err == nil || err.Error() != "EOF" {
		t.Fatalf("expected EOF error for unterminated string, got %v", err)
	}
}

func TestReadStrEmptyInputYieldsNilNotError(t *testing.T) {
	v, err := ReadStr("")
	if err != nil {
		t.Fatalf("expected no error for empty input, got %v", err)
	}
	if v != runtime.NilValue {
		t.Fatalf("expected NilValue, got %v", v)
	}
	v, err = ReadStr("; just a comment\n")
	if err != nil {
		t.Fatalf("expected no error for comment-only input, got %v", err)
	}
	if v != runtime.NilValue {
		t.Fatalf("expected NilValue, got %v", v)
	}
}

func TestReadAllReturnsEveryTopLevelForm(t *testing.T) {
	forms, err := ReadAll("1 2 (+ 1 2)")
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(forms) != 3 {
		t.Fatalf("expected 3 forms, got %d", len(forms))
	}
}
