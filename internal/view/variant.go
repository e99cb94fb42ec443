// Package view is the configuration-driven rendering engine shared by every
// dashboard and detail page.
//
// A page is described by a configuration built from tagged variants: values of
// a closed union whose members each report a distinct Kind. A Registry maps
// every kind of a union to exactly one renderer, Dispatch narrows a variant to
// its member type and invokes that renderer, and Layouts partition a flat
// variant list into named regions.
//
// Each union lives in its own package as a sealed interface:
//
//	type Widget interface {
//		view.Variant[Kind]
//		businessWidget()
//	}
//
// Members are value types whose Kind method returns a constant, so the zero
// value of a member reports the member's kind.
package view

import "fmt"

// Variant is a member of a closed union discriminated by K.
type Variant[K ~string] interface {
	Kind() K
}

// KindsOf returns the kinds reported by members, in order.
func KindsOf[K ~string, V Variant[K]](members []V) []K {
	kinds := make([]K, 0, len(members))
	for _, m := range members {
		kinds = append(kinds, m.Kind())
	}
	return kinds
}

// Tagged is the wire form of a variant: its discriminant plus its payload.
type Tagged struct {
	Kind string `json:"kind"`
	Data any    `json:"data"`
}

// Tag wraps each variant with its kind for encoding.
func Tag[K ~string, V Variant[K]](vs []V) []Tagged {
	out := make([]Tagged, 0, len(vs))
	for _, v := range vs {
		out = append(out, Tagged{Kind: string(v.Kind()), Data: v})
	}
	return out
}

// NarrowingError reports a variant that could not be narrowed to the member
// type its renderer expects.
type NarrowingError struct {
	Union string
	Kind  string
	Want  string
	Got   string
}

func (e *NarrowingError) Error() string {
	return fmt.Sprintf("view: %s kind %q: renderer expects %s, got %s", e.Union, e.Kind, e.Want, e.Got)
}
