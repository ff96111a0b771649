package builtins

import "github.com/cwbudde/golisp/internal/runtime"

// RegisterMetadata registers meta and with-meta.
func RegisterMetadata(r *Registry) {
	r.Register("meta", metaFn, CategoryMetadata, "Metadata attached to a list, vector, map, or function, or nil.")
	r.Register("with-meta", withMeta, CategoryMetadata, "Shallow copy of the argument with its metadata slot replaced.")
}

func metaFn(args []runtime.Value) (runtime.Value, error) {
	if err := arity("meta", args, 1); err != nil {
		return nil, err
	}
	return runtime.Meta(args[0]), nil
}

func withMeta(args []runtime.Value) (runtime.Value, error) {
	if err := arity("with-meta", args, 2); err != nil {
		return nil, err
	}
	v, err := runtime.WithMeta(args[0], args[1])
	if err != nil {
		return nil, runtime.NewDomainError("with-meta: %s", err)
	}
	return v, nil
}
