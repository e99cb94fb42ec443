package view_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lab-dashboard/internal/view"
)

func TestNewRegistry_Exhaustive(t *testing.T) {
	r, err := view.NewRegistry("shape", shapeKinds(), shapeBindings()...)
	require.NoError(t, err)
	assert.Equal(t, shapeKinds(), r.Kinds())
	assert.Equal(t, "shape", r.Union())
	for _, k := range shapeKinds() {
		assert.True(t, r.Has(k), "kind %s", k)
	}
	assert.False(t, r.Has("hexagon"))
}

func TestNewRegistry_MissingEntry(t *testing.T) {
	// Five declared kinds, four renderers.
	bindings := shapeBindings()[:4]
	_, err := view.NewRegistry("shape", shapeKinds(), bindings...)
	require.Error(t, err)

	var exh *view.ExhaustivenessError
	require.ErrorAs(t, err, &exh)
	assert.Equal(t, []string{"dot"}, exh.Missing)
	assert.Empty(t, exh.Extra)
	assert.Contains(t, err.Error(), "missing dot")
}

func TestNewRegistry_ExtraAndDuplicate(t *testing.T) {
	kinds := []shapeKind{kindCircle, kindSquare}
	_, err := view.NewRegistry("shape", kinds,
		view.Bind[shapeKind, shape](kindCircle, describeCircle),
		view.Bind[shapeKind, shape](kindCircle, describeCircle),
		view.Bind[shapeKind, shape](kindSquare, describeSquare),
		view.Bind[shapeKind, shape](kindLine, describeLine),
	)
	var exh *view.ExhaustivenessError
	require.ErrorAs(t, err, &exh)
	assert.Equal(t, []string{"line"}, exh.Extra)
	assert.Equal(t, []string{"circle"}, exh.Duplicate)
	assert.Empty(t, exh.Missing)
}

func TestNewRegistry_DuplicateDeclaredKind(t *testing.T) {
	kinds := append(shapeKinds(), kindDot)
	_, err := view.NewRegistry("shape", kinds, shapeBindings()...)
	var exh *view.ExhaustivenessError
	require.ErrorAs(t, err, &exh)
	assert.Equal(t, []string{"dot"}, exh.Duplicate)
}

func TestBind_RejectsBadRenderers(t *testing.T) {
	tests := []struct {
		name    string
		binding view.Binding[shapeKind, shape, string]
		want    string
	}{
		{
			name:    "non-member type",
			binding: view.Bind[shapeKind, shape](kindCircle, func(impostor) string { return "" }),
			want:    "is not a member",
		},
		{
			name:    "kind mismatch",
			binding: view.Bind[shapeKind, shape](kindCircle, describeSquare),
			want:    `reports kind "square"`,
		},
		{
			name:    "member reporting a foreign kind",
			binding: view.Bind[shapeKind, shape](kindDot, func(liar) string { return "" }),
			want:    `reports kind "square"`,
		},
		{
			name:    "nil renderer",
			binding: view.Bind[shapeKind, shape, circle, string](kindCircle, nil),
			want:    "nil renderer",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bindings := append(shapeBindings()[1:], tt.binding)
			_, err := view.NewRegistry("shape", shapeKinds(), bindings...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)

			var exh *view.ExhaustivenessError
			assert.False(t, errors.As(err, &exh), "binding errors are reported before coverage")
		})
	}
}

func TestMustRegistry_Panics(t *testing.T) {
	assert.PanicsWithError(t, "view: shape registry is not exhaustive: missing dot", func() {
		view.MustRegistry("shape", shapeKinds(), shapeBindings()[:4]...)
	})
}

func TestRegistry_Coverage(t *testing.T) {
	c := shapeRegistry().Coverage()
	assert.Equal(t, "shape", c.Union)
	assert.Equal(t, []string{"circle", "square", "triangle", "line", "dot"}, c.Kinds)
}

func TestKindsOf(t *testing.T) {
	assert.Equal(t, []shapeKind{"circle", "square", "triangle", "line", "dot"}, shapeKinds())
}

func TestTag(t *testing.T) {
	tagged := view.Tag[shapeKind]([]shape{circle{R: 2}, dot{}})
	require.Len(t, tagged, 2)
	assert.Equal(t, "circle", tagged[0].Kind)
	assert.Equal(t, circle{R: 2}, tagged[0].Data)
	assert.Equal(t, "dot", tagged[1].Kind)
}
