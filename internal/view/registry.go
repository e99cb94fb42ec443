package view

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ExhaustivenessError reports a registry whose key set differs from the
// declared kinds of its union.
type ExhaustivenessError struct {
	Union     string
	Missing   []string
	Extra     []string
	Duplicate []string
}

func (e *ExhaustivenessError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing "+strings.Join(e.Missing, ", "))
	}
	if len(e.Extra) > 0 {
		parts = append(parts, "extra "+strings.Join(e.Extra, ", "))
	}
	if len(e.Duplicate) > 0 {
		parts = append(parts, "duplicate "+strings.Join(e.Duplicate, ", "))
	}
	return fmt.Sprintf("view: %s registry is not exhaustive: %s", e.Union, strings.Join(parts, "; "))
}

// Binding pairs one kind with the renderer for its member type.
type Binding[K ~string, V Variant[K], O any] struct {
	kind   K
	render func(union string, v V) O
	err    error
}

// Bind registers fn as the renderer for kind. P is the member type fn accepts;
// it must belong to union V and report kind from its zero value.
func Bind[K ~string, V Variant[K], P Variant[K], O any](kind K, fn func(P) O) Binding[K, V, O] {
	var zero P
	b := Binding[K, V, O]{kind: kind}
	switch {
	case fn == nil:
		b.err = fmt.Errorf("kind %q: nil renderer", kind)
		return b
	case !isMember[V](zero):
		b.err = fmt.Errorf("kind %q: %T is not a member of the union", kind, zero)
		return b
	case zero.Kind() != kind:
		b.err = fmt.Errorf("kind %q: %T reports kind %q", kind, zero, zero.Kind())
		return b
	}
	b.render = func(union string, v V) O {
		p, ok := any(v).(P)
		if !ok {
			panic(&NarrowingError{
				Union: union,
				Kind:  string(kind),
				Want:  fmt.Sprintf("%T", zero),
				Got:   fmt.Sprintf("%T", v),
			})
		}
		return fn(p)
	}
	return b
}

func isMember[V any](x any) bool {
	_, ok := x.(V)
	return ok
}

// Registry is a total mapping from the kinds of union V to renderers
// producing O.
type Registry[K ~string, V Variant[K], O any] struct {
	union     string
	kinds     []K
	renderers map[K]func(V) O
}

// NewRegistry builds a registry and checks that its bindings cover exactly the
// declared kinds.
func NewRegistry[K ~string, V Variant[K], O any](union string, kinds []K, bindings ...Binding[K, V, O]) (*Registry[K, V, O], error) {
	var bindErrs []error
	exh := &ExhaustivenessError{Union: union}

	declared := make(map[K]bool, len(kinds))
	for _, k := range kinds {
		if declared[k] {
			exh.Duplicate = append(exh.Duplicate, string(k))
		}
		declared[k] = true
	}

	renderers := make(map[K]func(V) O, len(bindings))
	for _, b := range bindings {
		if b.err != nil {
			bindErrs = append(bindErrs, b.err)
			continue
		}
		if _, dup := renderers[b.kind]; dup {
			exh.Duplicate = append(exh.Duplicate, string(b.kind))
			continue
		}
		if !declared[b.kind] {
			exh.Extra = append(exh.Extra, string(b.kind))
			continue
		}
		render := b.render
		renderers[b.kind] = func(v V) O { return render(union, v) }
	}
	for _, k := range kinds {
		if _, ok := renderers[k]; !ok {
			exh.Missing = append(exh.Missing, string(k))
		}
	}
	exh.Missing = dedupe(exh.Missing)

	if len(bindErrs) > 0 {
		return nil, fmt.Errorf("view: %s registry: %w", union, errors.Join(bindErrs...))
	}
	if len(exh.Missing) > 0 || len(exh.Extra) > 0 || len(exh.Duplicate) > 0 {
		return nil, exh
	}
	return &Registry[K, V, O]{
		union:     union,
		kinds:     slices.Clone(kinds),
		renderers: renderers,
	}, nil
}

// MustRegistry is like NewRegistry but panics if the registry is not
// exhaustive. It is meant for package-level registries.
func MustRegistry[K ~string, V Variant[K], O any](union string, kinds []K, bindings ...Binding[K, V, O]) *Registry[K, V, O] {
	r, err := NewRegistry(union, kinds, bindings...)
	if err != nil {
		panic(err)
	}
	return r
}

// Union returns the name the registry was built for.
func (r *Registry[K, V, O]) Union() string { return r.union }

// Has reports whether kind has a renderer.
func (r *Registry[K, V, O]) Has(kind K) bool {
	_, ok := r.renderers[kind]
	return ok
}

// Kinds returns the registered kinds in declaration order.
func (r *Registry[K, V, O]) Kinds() []K {
	out := make([]K, 0, len(r.kinds))
	for _, k := range r.kinds {
		if r.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

// Coverage summarises a registry for diagnostics.
type Coverage struct {
	Union string   `json:"union"`
	Kinds []string `json:"kinds"`
}

// Coverage returns the registry's union name and registered kinds.
func (r *Registry[K, V, O]) Coverage() Coverage {
	c := Coverage{Union: r.union}
	for _, k := range r.Kinds() {
		c.Kinds = append(c.Kinds, string(k))
	}
	return c
}

func dedupe(s []string) []string {
	if len(s) < 2 {
		return s
	}
	seen := make(map[string]bool, len(s))
	out := s[:0]
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
