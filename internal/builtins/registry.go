// Package builtins implements the fixed table of host-implemented
// primitives bound into the root environment at startup: arithmetic and
// comparison, printing, the reader bridge, collection and map
// operations, atoms, control primitives, predicates, constructors,
// metadata, and a small set of miscellaneous and domain-stack
// extensions (JSON interop, launch configuration).
//
// Builtins are organized into a Registry, grouped by category, the way
// the teacher interpreter's builtin table is (internal/interp/builtins),
// so a caller assembling a custom root environment can register a subset
// of categories instead of everything.
package builtins

import "github.com/cwbudde/golisp/internal/runtime"

// Category names, used only for documentation/introspection grouping.
const (
	CategoryArithmetic = "arithmetic"
	CategoryPrinting   = "printing"
	CategoryReader     = "reader"
	CategoryCollection = "collection"
	CategoryMap        = "map"
	CategoryAtom       = "atom"
	CategoryControl    = "control"
	CategoryPredicate  = "predicate"
	CategoryConstruct  = "constructor"
	CategoryMetadata   = "metadata"
	CategoryMisc       = "misc"
	CategoryJSON       = "json"
)

// Entry is one registered builtin.
type Entry struct {
	Name     string
	Fn       runtime.Primitive
	Category string
	Doc      string
}

// Registry is an ordered collection of builtin Entries.
type Registry struct {
	order   []string
	entries map[string]*Entry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Entry)}
}

// Register adds or replaces the entry named name.
func (r *Registry) Register(name string, fn runtime.Primitive, category, doc string) {
	if _, exists := r.entries[name]; !exists {
		r.order = append(r.order, name)
	}
	r.entries[name] = &Entry{Name: name, Fn: fn, Category: category, Doc: doc}
}

// Entries returns every registered entry, in registration order.
func (r *Registry) Entries() []*Entry {
	out := make([]*Entry, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.entries[name])
	}
	return out
}

// Bind installs every registered builtin into env as a host Fn value.
func (r *Registry) Bind(env *runtime.Environment) {
	for _, e := range r.Entries() {
		env.Set(e.Name, runtime.NewPrimitive(e.Name, e.Fn))
	}
}
