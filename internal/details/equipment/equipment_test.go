package equipment_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lab-dashboard/internal/core"
	"lab-dashboard/internal/details/equipment"
	"lab-dashboard/internal/view"
)

func repo(t *testing.T) core.Repository {
	t.Helper()
	s, err := core.DefaultSnapshot()
	require.NoError(t, err)
	return s
}

func TestRegistries_CoverEveryKind(t *testing.T) {
	assert.Equal(t, equipment.Kinds(), equipment.HTML.Kinds())
	assert.Equal(t, equipment.Kinds(), equipment.Text.Kinds())
	assert.Len(t, equipment.Kinds(), 7)
}

func TestAssemble_NotFound(t *testing.T) {
	cfg, ok := equipment.Assemble("EQ-999", repo(t))
	assert.False(t, ok)
	assert.Empty(t, cfg.Main)
}

func TestAssemble_Idempotent(t *testing.T) {
	r := repo(t)
	for _, eq := range r.AllEquipment() {
		a, okA := equipment.Assemble(eq.ID, r)
		b, okB := equipment.Assemble(eq.ID, r)
		require.True(t, okA && okB)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("%s: not idempotent (-first +second):\n%s", eq.ID, diff)
		}
	}
}

func TestAssemble_PlateReader(t *testing.T) {
	cfg, ok := equipment.Assemble("EQ-001", repo(t))
	require.True(t, ok)

	assert.Equal(t, "Plate reader", cfg.Header.Title)
	require.NotNil(t, cfg.Header.Badge)
	assert.Equal(t, "Operational", cfg.Header.Badge.Text)

	assert.Equal(t,
		[]equipment.Kind{equipment.KindSpecifications, equipment.KindUsage, equipment.KindMaintenanceHistory, equipment.KindLinkedExperiments},
		view.KindsOf[equipment.Kind](cfg.Main))
	assert.Equal(t,
		[]equipment.Kind{equipment.KindCalibration, equipment.KindWarranty, equipment.KindAssignment},
		view.KindsOf[equipment.Kind](cfg.Sidebar))

	maint := cfg.Main[2].(equipment.MaintenanceHistorySection)
	assert.Equal(t, "$1,650.00", maint.TotalCost)
	assert.Equal(t, "Apr 2, 2025", maint.Records[0].Date, "newest first")

	linked := cfg.Main[3].(equipment.LinkedExperimentsSection)
	var ids []string
	for _, e := range linked.Experiments {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"EXP-103", "EXP-301"}, ids)

	calib := cfg.Sidebar[0].(equipment.CalibrationSection)
	assert.Equal(t, "Sep 29, 2025", calib.Next)
	assert.Equal(t, "in 91 days", calib.DueIn)
	assert.Equal(t, view.ToneGood, calib.Status.Tone)

	warranty := cfg.Sidebar[1].(equipment.WarrantySection)
	assert.Equal(t, "Expired", warranty.Status.Text)
}

func TestRender_AllEquipment(t *testing.T) {
	r := repo(t)
	for _, eq := range r.AllEquipment() {
		cfg, ok := equipment.Assemble(eq.ID, r)
		require.True(t, ok)
		var buf bytes.Buffer
		for _, c := range view.DispatchAll(equipment.HTML, append(cfg.Main, cfg.Sidebar...)) {
			require.NoError(t, c.Render(context.Background(), &buf))
		}
		assert.Contains(t, buf.String(), "Specifications")
		for _, s := range view.DispatchAll(equipment.Text, cfg.Main) {
			assert.NotEmpty(t, s)
		}
	}
}
