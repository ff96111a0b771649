// Package runtime defines the runtime value model shared by the reader,
// evaluator, and printer: the tagged union of value variants from the
// data model, their equality and truthiness semantics, and the
// environment and closure machinery that gives those values lexical
// scope.
package runtime

import "strconv"

// Value is the interface every runtime value variant implements. Type
// returns the variant's type tag (used by predicates like list? and by
// error messages); String returns a debug-oriented representation —
// the printer, not this method, is the readable/non-readable rendering
// used by pr-str/str/prn/println.
type Value interface {
	Type() string
	String() string
}

// Type tags, returned by Value.Type() and used throughout the builtin
// predicates (list?, vector?, map?, ...) and error messages.
const (
	TypeNil    = "nil"
	TypeBool   = "bool"
	TypeInt    = "int"
	TypeStr    = "string"
	TypeSym    = "symbol"
	TypeKw     = "keyword"
	TypeList   = "list"
	TypeVec    = "vector"
	TypeMap    = "map"
	TypeAtom   = "atom"
	TypeFn     = "function"
)

// Nil is the singleton null value. There is exactly one Nil value;
// equality and identity coincide for it.
type Nil struct{}

// NilValue is the single shared Nil instance. Every nil in the system is
// this same pointer, so `== ` identity checks work where needed.
var NilValue = &Nil{}

func (*Nil) Type() string   { return TypeNil }
func (*Nil) String() string { return "nil" }

// Bool wraps a boolean. BoolTrue/BoolFalse are the shared singletons.
type Bool struct {
	Val bool
}

var (
	BoolTrue  = &Bool{Val: true}
	BoolFalse = &Bool{Val: false}
)

// MakeBool returns the shared Bool singleton for b.
func MakeBool(b bool) *Bool {
	if b {
		return BoolTrue
	}
	return BoolFalse
}

func (b *Bool) Type() string   { return TypeBool }
func (b *Bool) String() string { return strconv.FormatBool(b.Val) }

// Int is a signed host-word-size integer.
type Int struct {
	Val int64
}

func NewInt(v int64) *Int { return &Int{Val: v} }

func (i *Int) Type() string   { return TypeInt }
func (i *Int) String() string { return strconv.FormatInt(i.Val, 10) }

// Str is an immutable string value.
type Str struct {
	Val string
}

func NewStr(v string) *Str { return &Str{Val: v} }

func (s *Str) Type() string   { return TypeStr }
func (s *Str) String() string { return s.Val }

// Sym is an interned-by-name identifier. Symbols compare by name and
// never carry a namespace.
type Sym struct {
	Name string
}

func NewSym(name string) *Sym { return &Sym{Name: name} }

func (s *Sym) Type() string   { return TypeSym }
func (s *Sym) String() string { return s.Name }

// Kw is a keyword: a name prefixed with ':' that reads and prints back
// identically. Distinct from Str and from Sym.
type Kw struct {
	Name string
}

func NewKw(name string) *Kw { return &Kw{Name: name} }

func (k *Kw) Type() string   { return TypeKw }
func (k *Kw) String() string { return ":" + k.Name }

// Truthy reports whether v is truthy: everything except Nil and a false
// Bool is truthy.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case *Nil:
		return false
	case nil:
		return false
	case *Bool:
		return t.Val
	default:
		return true
	}
}

// Equals implements the structural `=` semantics from the data model:
// List and Vec of equal length with pairwise-equal elements compare
// equal to each other; Maps compare equal if keysets match and values
// are pairwise equal; Atoms and Fns compare by identity.
func Equals(a, b Value) bool {
	switch av := a.(type) {
	case *Nil:
		_, ok := b.(*Nil)
		return ok
	case *Bool:
		bv, ok := b.(*Bool)
		return ok && av.Val == bv.Val
	case *Int:
		bv, ok := b.(*Int)
		return ok && av.Val == bv.Val
	case *Str:
		bv, ok := b.(*Str)
		return ok && av.Val == bv.Val
	case *Sym:
		bv, ok := b.(*Sym)
		return ok && av.Name == bv.Name
	case *Kw:
		bv, ok := b.(*Kw)
		return ok && av.Name == bv.Name
	case *List:
		return sequenceEquals(av.Items, b)
	case *Vec:
		return sequenceEquals(av.Items, b)
	case *Map:
		return mapEquals(av, b)
	case *Atom:
		return a == b
	case *Fn:
		return a == b
	default:
		return false
	}
}

func sequenceEquals(items []Value, b Value) bool {
	var other []Value
	switch bv := b.(type) {
	case *List:
		other = bv.Items
	case *Vec:
		other = bv.Items
	default:
		return false
	}
	if len(items) != len(other) {
		return false
	}
	for i := range items {
		if !Equals(items[i], other[i]) {
			return false
		}
	}
	return true
}

func mapEquals(m *Map, b Value) bool {
	bm, ok := b.(*Map)
	if !ok || len(m.entries) != len(bm.entries) {
		return false
	}
	for k, e := range m.entries {
		oe, ok := bm.entries[k]
		if !ok || !Equals(e.Val, oe.Val) {
			return false
		}
	}
	return true
}
