package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/golisp/internal/config"
)

func newTestInterpreter(in string) (*Interpreter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cfg := config.Default()
	interp := New(out, strings.NewReader(in), cfg, nil)
	return interp, out
}

func TestEvalStringReturnsLastFormResult(t *testing.T) {
	interp, _ := newTestInterpreter("")
	v, err := interp.EvalString("(def! x 10) (+ x 5)")
	if err != nil {
		t.Fatalf("EvalString: %v", err)
	}
	if v.String() != "15" {
		t.Errorf("got %v", v)
	}
}

func TestREPLStepEvaluatesOneForm(t *testing.T) {
	interp, _ := newTestInterpreter("")
	v, err := interp.REPLStep("(+ 1 2)")
	if err != nil {
		t.Fatalf("REPLStep: %v", err)
	}
	if v.String() != "3" {
		t.Errorf("got %v", v)
	}
}

func TestReadLineStripsTrailingNewline(t *testing.T) {
	interp, _ := newTestInterpreter("hello\r\nworld\n")
	line, err := interp.ReadLine()
	if err != nil {
		t.Fatalf("ReadLine: %v", err)
	}
	if line != "hello" {
		t.Errorf("got %q", line)
	}
	line, err = interp.ReadLine()
	if err != nil {
		t.Fatalf("ReadLine: %v", err)
	}
	if line != "world" {
		t.Errorf("got %q", line)
	}
}

func TestReadLineEOFReturnsError(t *testing.T) {
	interp, _ := newTestInterpreter("")
	_, err := interp.ReadLine()
	if err == nil {
		t.Fatal("expected an error at EOF")
	}
}

func TestLoadStdlibNoopWhenUnconfigured(t *testing.T) {
	interp, _ := newTestInterpreter("")
	if err := interp.LoadStdlib(); err != nil {
		t.Fatalf("LoadStdlib: %v", err)
	}
}

func TestArgvAndHostLanguageBound(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := config.Default()
	interp := New(out, strings.NewReader(""), cfg, []string{"a", "b"})
	v, err := interp.EvalString("(count *ARGV*)")
	if err != nil {
		t.Fatalf("EvalString: %v", err)
	}
	if v.String() != "2" {
		t.Errorf("*ARGV* count = %v, want 2", v)
	}
	v, err = interp.EvalString("*host-language*")
	if err != nil {
		t.Fatalf("EvalString: %v", err)
	}
	if v.String() != "golisp" {
		t.Errorf("*host-language* = %v", v)
	}
}
