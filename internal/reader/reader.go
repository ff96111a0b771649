// Package reader implements the recursive-descent reader described in
// the component design: it consumes the token stream produced by the
// lexer and builds a single AST value, with reader macros for quoting,
// quasiquoting, unquoting, splice-unquoting, deref, and metadata
// attachment.
package reader

import (
	"strconv"
	"strings"

	"github.com/cwbudde/golisp/internal/lexer"
	"github.com/cwbudde/golisp/internal/runtime"
	"github.com/cwbudde/golisp/internal/token"
)

// isIntegerLiteral matches a token that reprints to itself as a decimal
// integer: the reader rule is "the token equals its integer re-printing",
// which this regexp-free check implements directly via ParseInt plus a
// round-trip comparison, avoiding a second lexical grammar just for
// integers.
func isIntegerLiteral(s string) bool {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return false
	}
	return strconv.FormatInt(n, 10) == s
}

// Reader holds a token stream and a cursor into it.
type Reader struct {
	tokens []token.Token
	pos    int
}

// New creates a Reader over an already-tokenized stream.
func New(tokens []token.Token) *Reader {
	return &Reader{tokens: tokens}
}

func (r *Reader) peek() (token.Token, bool) {
	if r.pos >= len(r.tokens) {
		return token.Token{}, false
	}
	return r.tokens[r.pos], true
}

func (r *Reader) next() (token.Token, bool) {
	t, ok := r.peek()
	if ok {
		r.pos++
	}
	return t, ok
}

// ReadForm reads and returns exactly one form from the token stream,
// advancing the cursor past it. Returns a *runtime.ReaderError (wrapped
// as error EOF per the component design) if the stream runs out before a
// complete form is read, and (nil, nil) if the stream was already empty
// when ReadForm was called (no more forms to read, not itself an error).
func (r *Reader) ReadForm() (runtime.Value, error) {
	t, ok := r.peek()
	if !ok {
		return nil, nil
	}

	switch t.Literal {
	case "'":
		return r.readWrapped("quote")
	case "`":
		return r.readWrapped("quasiquote")
	case "~":
		return r.readWrapped("unquote")
	case "~@":
		return r.readWrapped("splice-unquote")
	case "^":
		return r.readMeta()
	case "@":
		return r.readDeref()
	case "(":
		return r.readSeq("(", ")", func(items []runtime.Value) runtime.Value {
			return &runtime.List{Items: items}
		})
	case "[":
		return r.readSeq("[", "]", func(items []runtime.Value) runtime.Value {
			return &runtime.Vec{Items: items}
		})
	case "{":
		return r.readMap()
	case ")", "]", "}":
		return nil, eofErr()
	default:
		r.next()
		return r.readAtom(t.Literal)
	}
}

func (r *Reader) readWrapped(head string) (runtime.Value, error) {
	r.next() // consume the reader-macro token
	inner, err := r.ReadForm()
	if err != nil {
		return nil, err
	}
	if inner == nil {
		return nil, eofErr()
	}
	return runtime.NewList(runtime.NewSym(head), inner), nil
}

// readMeta implements `^meta value` -> (with-meta value meta): metadata
// appears first in the source but second in the expansion.
func (r *Reader) readMeta() (runtime.Value, error) {
	r.next() // consume '^'
	meta, err := r.ReadForm()
	if err != nil {
		return nil, err
	}
	if meta == nil {
		return nil, eofErr()
	}
	val, err := r.ReadForm()
	if err != nil {
		return nil, err
	}
	if val == nil {
		return nil, eofErr()
	}
	return runtime.NewList(runtime.NewSym("with-meta"), val, meta), nil
}

func (r *Reader) readDeref() (runtime.Value, error) {
	r.next() // consume '@'
	inner, err := r.ReadForm()
	if err != nil {
		return nil, err
	}
	if inner == nil {
		return nil, eofErr()
	}
	return runtime.NewList(runtime.NewSym("deref"), inner), nil
}

func (r *Reader) readSeq(open, close string, build func([]runtime.Value) runtime.Value) (runtime.Value, error) {
	r.next() // consume the opening bracket
	var items []runtime.Value
	for {
		t, ok := r.peek()
		if !ok {
			return nil, eofErr()
		}
		if t.Literal == close {
			r.next()
			return build(items), nil
		}
		form, err := r.ReadForm()
		if err != nil {
			return nil, err
		}
		if form == nil {
			return nil, eofErr()
		}
		items = append(items, form)
	}
}

func (r *Reader) readMap() (runtime.Value, error) {
	r.next() // consume '{'
	m := runtime.NewMap()
	for {
		t, ok := r.peek()
		if !ok {
			return nil, eofErr()
		}
		if t.Literal == "}" {
			r.next()
			return m, nil
		}
		key, err := r.ReadForm()
		if err != nil {
			return nil, err
		}
		if key == nil {
			return nil, eofErr()
		}
		t, ok = r.peek()
		if !ok || t.Literal == "}" {
			return nil, eofErr() // odd number of forms in a map literal
		}
		val, err := r.ReadForm()
		if err != nil {
			return nil, err
		}
		if val == nil {
			return nil, eofErr()
		}
		if err := m.Set(key, val); err != nil {
			return nil, err
		}
	}
}

func (r *Reader) readAtom(lit string) (runtime.Value, error) {
	switch lit {
	case "nil":
		return runtime.NilValue, nil
	case "true":
		return runtime.BoolTrue, nil
	case "false":
		return runtime.BoolFalse, nil
	}
	if strings.HasPrefix(lit, ":") {
		return runtime.NewKw(lit[1:]), nil
	}
	if isIntegerLiteral(lit) {
		n, _ := strconv.ParseInt(lit, 10, 64)
		return runtime.NewInt(n), nil
	}
	if strings.HasPrefix(lit, `"`) {
		s, err := decodeString(lit)
		if err != nil {
			return nil, err
		}
		return runtime.NewStr(s), nil
	}
	return runtime.NewSym(lit), nil
}

// decodeString decodes a string token's source syntax -- the surrounding
// quotes and the three recognized escapes \\, \", \n -- into its value.
// Any other \X sequence, or a missing closing quote, is an EOF.
func decodeString(lit string) (string, error) {
	if len(lit) < 2 || lit[len(lit)-1] != '"' {
		return "", eofErr()
	}
	body := lit[1 : len(lit)-1]

	var sb strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return "", eofErr()
		}
		switch body[i] {
		case '\\':
			sb.WriteByte('\\')
		case '"':
			sb.WriteByte('"')
		case 'n':
			sb.WriteByte('\n')
		default:
			return "", eofErr()
		}
	}
	return sb.String(), nil
}

func eofErr() error {
	return &runtime.ReaderError{Reason: "unexpected end of input"}
}

// ReadStr tokenizes input and reads exactly the first form from it,
// discarding any trailing tokens — the behavior read-string relies on.
func ReadStr(input string) (runtime.Value, error) {
	toks := lexer.New(input).Tokenize()
	r := New(toks)
	form, err := r.ReadForm()
	if err != nil {
		return nil, err
	}
	if form == nil {
		return runtime.NilValue, nil
	}
	return form, nil
}

// ReadAll tokenizes input and reads every top-level form it contains, in
// order. Used by the driver to load a whole file (and by the bootstrap
// stdlib loader) where multiple top-level forms must each be evaluated.
func ReadAll(input string) ([]runtime.Value, error) {
	toks := lexer.New(input).Tokenize()
	r := New(toks)
	var forms []runtime.Value
	for {
		form, err := r.ReadForm()
		if err != nil {
			return nil, err
		}
		if form == nil {
			return forms, nil
		}
		forms = append(forms, form)
	}
}
