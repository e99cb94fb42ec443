package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lab-dashboard/internal/view"
)

func TestDispatch_NarrowsToRegisteredRenderer(t *testing.T) {
	r := shapeRegistry()
	tests := []struct {
		in   shape
		want string
	}{
		{circle{R: 3}, "circle r=3"},
		{square{Side: 4}, "square side=4"},
		{triangle{Base: 2, Height: 5}, "triangle 2x5"},
		{line{Len: 7}, "line len=7"},
		{dot{}, "dot"},
	}
	for _, tt := range tests {
		t.Run(string(tt.in.Kind()), func(t *testing.T) {
			assert.Equal(t, tt.want, view.Dispatch(r, tt.in))
		})
	}
}

func TestDispatchAll_KeepsOrder(t *testing.T) {
	got := view.DispatchAll(shapeRegistry(), []shape{dot{}, circle{R: 1}, dot{}})
	assert.Equal(t, []string{"dot", "circle r=1", "dot"}, got)
}

func TestDispatch_MissPanicsWithExhaustivenessError(t *testing.T) {
	// A registry for a narrower union than the value being dispatched.
	r := view.MustRegistry("round-shape", []shapeKind{kindCircle, kindDot},
		view.Bind[shapeKind, shape](kindCircle, describeCircle),
		view.Bind[shapeKind, shape](kindDot, describeDot),
	)

	defer func() {
		rec := recover()
		require.NotNil(t, rec, "dispatch of an unregistered kind must panic")
		exh, ok := rec.(*view.ExhaustivenessError)
		require.True(t, ok, "panic value %T", rec)
		assert.Equal(t, "round-shape", exh.Union)
		assert.Equal(t, []string{"square"}, exh.Missing)
	}()
	view.Dispatch(r, shape(square{Side: 1}))
}

func TestDispatch_NarrowingFailurePanics(t *testing.T) {
	// liar reports "square" but is not the square member type.
	defer func() {
		rec := recover()
		nerr, ok := rec.(*view.NarrowingError)
		require.True(t, ok, "panic value %T", rec)
		assert.Equal(t, "shape", nerr.Union)
		assert.Equal(t, "square", nerr.Kind)
		assert.Contains(t, nerr.Error(), "view_test.liar")
	}()
	view.Dispatch(shapeRegistry(), shape(liar{}))
}

func TestDispatch_NilVariantPanics(t *testing.T) {
	assert.Panics(t, func() {
		var s shape
		view.Dispatch(shapeRegistry(), s)
	})
}
