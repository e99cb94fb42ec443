package app_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lab-dashboard/internal/app"
	"lab-dashboard/internal/core"
	"lab-dashboard/internal/details/equipment"
)

func TestSchema_EveryUnion(t *testing.T) {
	for _, u := range app.Unions {
		s, err := app.Schema(u)
		require.NoError(t, err, u)
		assert.Len(t, s.Members, len(s.Kinds), u)
	}
}

func TestSchema_MemberPayload(t *testing.T) {
	s, err := app.Schema("equipment")
	require.NoError(t, err)

	var want []string
	for _, k := range equipment.Kinds() {
		want = append(want, string(k))
	}
	assert.Equal(t, want, s.Kinds)

	raw, err := json.Marshal(s.Members["calibration"])
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"due_in"`)
}

func TestSchema_UnknownUnion(t *testing.T) {
	_, err := app.Schema("widgets")
	assert.ErrorIs(t, err, core.ErrNotFound)
}
