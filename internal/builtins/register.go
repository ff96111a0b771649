package builtins

// RegisterAll builds a Registry with every builtin category bound,
// mirroring the teacher interpreter's top-level registration entry
// point (internal/interp/builtins.RegisterAll), and binds the result
// into ctx.RootEnv.
func RegisterAll(ctx *Context) *Registry {
	r := NewRegistry()
	RegisterArithmetic(r)
	RegisterPrinting(r, ctx)
	RegisterReaderBridge(r, ctx)
	RegisterCollections(r)
	RegisterMapOps(r)
	RegisterAtoms(r, ctx)
	RegisterControl(r, ctx)
	RegisterPredicates(r)
	RegisterConstructors(r)
	RegisterMetadata(r)
	RegisterJSON(r)
	r.Bind(ctx.RootEnv)

	// RegisterMisc binds *ARGV*/*host-language*/*config* directly into
	// ctx.RootEnv as a side effect, so it runs last, after every other
	// builtin name is already bound.
	RegisterMisc(r, ctx)
	r.Bind(ctx.RootEnv)
	return r
}
