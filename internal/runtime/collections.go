package runtime

import (
	"fmt"
	"strings"
)

// List is an ordered sequence read as "(...)". Lists and Vecs are
// distinct variants even though both are ordered sequences (list? and
// vector? distinguish them; sequential? accepts either).
type List struct {
	Items []Value
	Meta  Value
}

func NewList(items ...Value) *List {
	return &List{Items: items}
}

func (l *List) Type() string { return TypeList }

func (l *List) String() string {
	return "(" + joinValues(l.Items) + ")"
}

// Vec is an ordered sequence read as "[...]".
type Vec struct {
	Items []Value
	Meta  Value
}

func NewVec(items ...Value) *Vec {
	return &Vec{Items: items}
}

func (v *Vec) Type() string { return TypeVec }

func (v *Vec) String() string {
	return "[" + joinValues(v.Items) + "]"
}

func joinValues(items []Value) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.String()
	}
	return strings.Join(parts, " ")
}

// MapEntry pairs a stored key Value with its bound value. The key is
// kept alongside the canonical map-key string so `keys` can recover the
// original key value (a Str key and a Kw key never collide, even though
// both are ultimately strings).
type MapEntry struct {
	Key Value
	Val Value
}

// Map is a mapping from value to value. Only Str, Kw, Sym, Int, Nil and
// Bool may appear as keys, per the data model; order is not preserved.
type Map struct {
	entries map[string]*MapEntry
	Meta    Value
}

func NewMap() *Map {
	return &Map{entries: make(map[string]*MapEntry)}
}

// mapKey returns the canonical string key used to index m.entries for a
// given key Value, or an error if v is not a valid map key type.
func mapKey(v Value) (string, error) {
	switch k := v.(type) {
	case *Nil:
		return "n:", nil
	case *Bool:
		if k.Val {
			return "b:t", nil
		}
		return "b:f", nil
	case *Int:
		return fmt.Sprintf("i:%d", k.Val), nil
	case *Str:
		return "s:" + k.Val, nil
	case *Kw:
		return "k:" + k.Name, nil
	case *Sym:
		return "y:" + k.Name, nil
	default:
		return "", fmt.Errorf("value of type %s cannot be used as a map key", v.Type())
	}
}

// Set stores v under key, overwriting any existing binding.
func (m *Map) Set(key, v Value) error {
	k, err := mapKey(key)
	if err != nil {
		return err
	}
	m.entries[k] = &MapEntry{Key: key, Val: v}
	return nil
}

// Get returns the value bound to key, or (nil, false) if unbound.
func (m *Map) Get(key Value) (Value, bool) {
	k, err := mapKey(key)
	if err != nil {
		return nil, false
	}
	e, ok := m.entries[k]
	if !ok {
		return nil, false
	}
	return e.Val, true
}

// Delete removes key from m, if present.
func (m *Map) Delete(key Value) {
	k, err := mapKey(key)
	if err != nil {
		return
	}
	delete(m.entries, k)
}

// Len returns the number of entries in m.
func (m *Map) Len() int { return len(m.entries) }

// Clone returns a shallow copy of m: a new entries map with the same
// key/value pairs, so mutating the copy never affects the original.
// Used by assoc/dissoc, which must not mutate their argument.
func (m *Map) Clone() *Map {
	out := NewMap()
	for k, e := range m.entries {
		out.entries[k] = &MapEntry{Key: e.Key, Val: e.Val}
	}
	out.Meta = m.Meta
	return out
}

// Range calls f for every entry in m. Iteration order is unspecified.
func (m *Map) Range(f func(key, val Value) bool) {
	for _, e := range m.entries {
		if !f(e.Key, e.Val) {
			return
		}
	}
}

func (m *Map) Type() string { return TypeMap }

func (m *Map) String() string {
	var parts []string
	m.Range(func(k, v Value) bool {
		parts = append(parts, k.String(), v.String())
		return true
	})
	return "{" + strings.Join(parts, " ") + "}"
}

// Meta returns the metadata attached to v, or NilValue if v carries no
// metadata slot or none was ever attached. Only List, Vec, Map, and Fn
// carry metadata.
func Meta(v Value) Value {
	var m Value
	switch t := v.(type) {
	case *List:
		m = t.Meta
	case *Vec:
		m = t.Meta
	case *Map:
		m = t.Meta
	case *Fn:
		m = t.Meta
	}
	if m == nil {
		return NilValue
	}
	return m
}

// WithMeta returns a shallow copy of v with its metadata slot set to
// meta; v itself is unchanged. Returns an error if v cannot carry
// metadata.
func WithMeta(v, meta Value) (Value, error) {
	switch t := v.(type) {
	case *List:
		cp := &List{Items: t.Items, Meta: meta}
		return cp, nil
	case *Vec:
		cp := &Vec{Items: t.Items, Meta: meta}
		return cp, nil
	case *Map:
		cp := t.Clone()
		cp.Meta = meta
		return cp, nil
	case *Fn:
		cp := *t
		cp.Meta = meta
		return &cp, nil
	default:
		return nil, fmt.Errorf("value of type %s cannot carry metadata", v.Type())
	}
}
