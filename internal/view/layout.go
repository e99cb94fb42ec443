package view

import "slices"

// Region names produced by the engine itself.
const (
	// SequentialRegion holds a tab's variants in list order when the tab has
	// no registered strategy.
	SequentialRegion = "sequential"
	// RestRegion collects variants that no slot of a Partition claims.
	RestRegion = "rest"
)

// Region is a named UI area holding an ordered list of variants.
type Region[V any] struct {
	Name     string
	Variants []V
}

// Strategy re-partitions a tab's variants into regions.
type Strategy[V any] func(variants []V) []Region[V]

// Slot declares one region of a Partition and the kinds it accepts.
type Slot[K ~string] struct {
	Name  string
	Kinds []K
}

// Partition returns a strategy that fills one region per slot. A region lists
// its variants in the slot's kind order, keeping input order among variants of
// the same kind. Variants no slot accepts go to a trailing RestRegion.
func Partition[K ~string, V Variant[K]](slots ...Slot[K]) Strategy[V] {
	return func(variants []V) []Region[V] {
		claimed := make([]bool, len(variants))
		regions := make([]Region[V], 0, len(slots)+1)
		for _, s := range slots {
			reg := Region[V]{Name: s.Name}
			for _, k := range s.Kinds {
				for i, v := range variants {
					if !claimed[i] && v.Kind() == k {
						reg.Variants = append(reg.Variants, v)
						claimed[i] = true
					}
				}
			}
			regions = append(regions, reg)
		}
		var rest []V
		for i, v := range variants {
			if !claimed[i] {
				rest = append(rest, v)
			}
		}
		if len(rest) > 0 {
			regions = append(regions, Region[V]{Name: RestRegion, Variants: rest})
		}
		return regions
	}
}

// Layouts selects a strategy per tab id.
type Layouts[V any] struct {
	strategies map[string]Strategy[V]
}

// NewLayouts returns a selector over the given strategies, keyed by tab id.
func NewLayouts[V any](strategies map[string]Strategy[V]) Layouts[V] {
	m := make(map[string]Strategy[V], len(strategies))
	for id, s := range strategies {
		if s != nil {
			m[id] = s
		}
	}
	return Layouts[V]{strategies: m}
}

// Has reports whether tabID has a registered strategy.
func (l Layouts[V]) Has(tabID string) bool {
	_, ok := l.strategies[tabID]
	return ok
}

// Arrange partitions variants for tabID, falling back to a single
// SequentialRegion in list order.
func (l Layouts[V]) Arrange(tabID string, variants []V) []Region[V] {
	if s, ok := l.strategies[tabID]; ok {
		return s(variants)
	}
	return []Region[V]{{Name: SequentialRegion, Variants: slices.Clone(variants)}}
}

// Rendered is a region whose variants have been dispatched.
type Rendered[O any] struct {
	Name  string
	Items []O
}

// RenderRegions dispatches every region's variants through r.
func RenderRegions[K ~string, V Variant[K], O any](r *Registry[K, V, O], regions []Region[V]) []Rendered[O] {
	out := make([]Rendered[O], 0, len(regions))
	for _, reg := range regions {
		out = append(out, Rendered[O]{Name: reg.Name, Items: DispatchAll(r, reg.Variants)})
	}
	return out
}
