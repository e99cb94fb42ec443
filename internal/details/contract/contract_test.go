package contract_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lab-dashboard/internal/core"
	"lab-dashboard/internal/details/contract"
	"lab-dashboard/internal/view"
)

func repo(t *testing.T) core.Repository {
	t.Helper()
	s, err := core.DefaultSnapshot()
	require.NoError(t, err)
	return s
}

func TestRegistries_CoverEveryKind(t *testing.T) {
	assert.Equal(t, contract.Kinds(), contract.HTML.Kinds())
	assert.Equal(t, contract.Kinds(), contract.Text.Kinds())
	assert.Len(t, contract.Kinds(), 6)
}

func TestAssemble_NotFound(t *testing.T) {
	_, ok := contract.Assemble("CT-9999", repo(t))
	assert.False(t, ok)
}

func TestAssemble_Idempotent(t *testing.T) {
	r := repo(t)
	for _, c := range r.Contracts() {
		a, okA := contract.Assemble(c.ID, r)
		b, okB := contract.Assemble(c.ID, r)
		require.True(t, okA && okB)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("%s: not idempotent (-first +second):\n%s", c.ID, diff)
		}
	}
}

func TestAssemble_StabilityContract(t *testing.T) {
	cfg, ok := contract.Assemble("CT-1001", repo(t))
	require.True(t, ok)

	assert.Equal(t, "Stability testing for oral suspension", cfg.Header.Title)
	assert.Equal(t, "CT-1001 · Meridian Pharmaceuticals", cfg.Header.Subtitle)
	require.NotNil(t, cfg.Header.Badge)
	assert.Equal(t, view.ToneGood, cfg.Header.Badge.Tone)

	kpis := map[string]view.KPI{}
	for _, k := range cfg.KPIs {
		kpis[k.Label] = k
	}
	assert.Equal(t, "$185,000.00", kpis["Contract value"].Value)
	assert.Equal(t, "$92,500.00", kpis["Paid"].Value)
	assert.Equal(t, "50% of value", kpis["Paid"].Hint)
	assert.Equal(t, "$92,500.00", kpis["Outstanding"].Value)
	assert.Equal(t, "2 of 4", kpis["Milestones"].Value)
	assert.Equal(t, "ends in 168 days", kpis["End date"].Hint)

	assert.Equal(t,
		[]contract.Kind{contract.KindOverview, contract.KindMilestones, contract.KindPayments, contract.KindTimeline},
		view.KindsOf[contract.Kind](cfg.Main))
	assert.Equal(t,
		[]contract.Kind{contract.KindClientInfo, contract.KindDocuments},
		view.KindsOf[contract.Kind](cfg.Sidebar))

	milestones := cfg.Main[1].(contract.MilestonesSection)
	assert.Equal(t, 50, milestones.Progress)
	assert.Equal(t, "Upcoming", milestones.Rows[2].Status.Text)

	payments := cfg.Main[2].(contract.PaymentsSection)
	require.Len(t, payments.Rows, 4)
	assert.Equal(t, "May 20, 2025", payments.Rows[1].Paid)
	assert.Equal(t, "-", payments.Rows[2].Paid)

	tl := cfg.Main[3].(contract.TimelineSection)
	require.Len(t, tl.Events, 10)
	assert.Equal(t, "Contract starts", tl.Events[0].Text)
	assert.Equal(t, "Contract ends", tl.Events[9].Text)
	assert.True(t, tl.Events[4].Past)
	assert.False(t, tl.Events[5].Past)

	client := cfg.Sidebar[0].(contract.ClientInfoSection)
	assert.Equal(t, "Meridian Pharmaceuticals", client.Name)
	require.Len(t, client.Contract, 1)
	assert.Equal(t, "/contracts/CT-1006", client.Contract[0].Href)

	docs := cfg.Sidebar[1].(contract.DocumentsSection)
	require.Len(t, docs.Rows, 2)
	assert.Equal(t, "842 kB", docs.Rows[0].Size)
}

func TestAssemble_DraftWithoutMilestones(t *testing.T) {
	cfg, ok := contract.Assemble("CT-1006", repo(t))
	require.True(t, ok)
	milestones := cfg.Main[1].(contract.MilestonesSection)
	assert.Empty(t, milestones.Rows)
	assert.Equal(t, "0 of 0", milestones.ProgressLabel)
}

func TestRender_AllContracts(t *testing.T) {
	r := repo(t)
	for _, c := range r.Contracts() {
		cfg, ok := contract.Assemble(c.ID, r)
		require.True(t, ok)
		var buf bytes.Buffer
		for _, comp := range view.DispatchAll(contract.HTML, append(cfg.Main, cfg.Sidebar...)) {
			require.NoError(t, comp.Render(context.Background(), &buf))
		}
		assert.Contains(t, buf.String(), "Overview")
		for _, s := range view.DispatchAll(contract.Text, cfg.Sidebar) {
			assert.NotEmpty(t, s)
		}
	}
}
