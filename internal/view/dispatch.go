package view

import "fmt"

// Dispatch renders v with the renderer registered for its kind.
//
// A registry built by NewRegistry covers every declared kind, so a miss here
// means the union and its registry have drifted apart. That is a programming
// error: Dispatch panics with an *ExhaustivenessError instead of skipping v.
func Dispatch[K ~string, V Variant[K], O any](r *Registry[K, V, O], v V) O {
	if any(v) == nil {
		panic(fmt.Errorf("view: %s: dispatch of nil variant", r.union))
	}
	kind := v.Kind()
	if !r.Has(kind) {
		panic(&ExhaustivenessError{Union: r.union, Missing: []string{string(kind)}})
	}
	return r.renderers[kind](v)
}

// DispatchAll renders vs in order.
func DispatchAll[K ~string, V Variant[K], O any](r *Registry[K, V, O], vs []V) []O {
	out := make([]O, 0, len(vs))
	for _, v := range vs {
		out = append(out, Dispatch(r, v))
	}
	return out
}
