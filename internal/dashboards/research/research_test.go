package research_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lab-dashboard/internal/core"
	"lab-dashboard/internal/dashboards/research"
	"lab-dashboard/internal/view"
)

func assemble(t *testing.T) view.DashboardConfig[research.Widget] {
	t.Helper()
	s, err := core.DefaultSnapshot()
	require.NoError(t, err)
	return research.Assemble(s)
}

func widget[W research.Widget](t *testing.T, cfg view.DashboardConfig[research.Widget], tabID string) W {
	t.Helper()
	tab, ok := cfg.Tab(tabID)
	require.True(t, ok, "tab %s", tabID)
	for _, w := range tab.Variants {
		if v, ok := w.(W); ok {
			return v
		}
	}
	var zero W
	t.Fatalf("tab %s has no %T", tabID, zero)
	return zero
}

func TestRegistries_CoverEveryKind(t *testing.T) {
	assert.Equal(t, research.Kinds(), research.HTML.Kinds())
	assert.Equal(t, research.Kinds(), research.Text.Kinds())
	assert.Len(t, research.Kinds(), 8)
}

func TestAssemble_Idempotent(t *testing.T) {
	a, b := assemble(t), assemble(t)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("Assemble not idempotent (-first +second):\n%s", diff)
	}
	require.NoError(t, a.Validate())
}

func TestAssemble_Stats(t *testing.T) {
	cfg := assemble(t)
	stats := cfg.Global[0].(research.StatsWidget)
	got := map[string]string{}
	for _, s := range stats.Stats {
		got[s.Label] = s.Value
	}
	want := map[string]string{
		"Active projects":       "2",
		"Running experiments":   "2",
		"Success rate":          "80%",
		"Publications":          "5",
		"Equipment operational": "57%",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestAssemble_ExperimentTrend(t *testing.T) {
	chart := widget[research.LineChartWidget](t, assemble(t), research.TabOverview)
	values := make([]float64, len(chart.Data))
	for i, d := range chart.Data {
		values[i] = d.Value
	}
	// Jan..Jun 2025; experiments starting after the reference date are excluded.
	assert.Equal(t, []float64{1, 2, 0, 1, 1, 1}, values)
	assert.Equal(t, "Jan 25", chart.Data[0].Label)
}

func TestAssemble_UtilizationRanking(t *testing.T) {
	u := widget[research.EquipmentUtilizationWidget](t, assemble(t), research.TabEquipment)
	require.Len(t, u.Items, 6, "retired instruments are excluded")
	assert.Equal(t, "qPCR system", u.Items[0].Name)
	for i := 1; i < len(u.Items); i++ {
		assert.GreaterOrEqual(t, u.Items[i-1].Utilization, u.Items[i].Utilization)
	}
}

func TestAssemble_ActivityFeed(t *testing.T) {
	feed := widget[research.ActivityFeedWidget](t, assemble(t), research.TabOverview)
	require.NotEmpty(t, feed.Events)
	assert.LessOrEqual(t, len(feed.Events), 8)
	for _, e := range feed.Events {
		assert.NotContains(t, e.When, "in ", "future events are excluded: %s", e.Text)
	}
}

func TestAssemble_ExperimentTableNewestFirst(t *testing.T) {
	table := widget[research.ExperimentTableWidget](t, assemble(t), research.TabExperiments)
	require.Len(t, table.Rows, 9)
	assert.Equal(t, "EXP-401", table.Rows[0].ID)
	assert.Equal(t, "/experiments/EXP-401", table.Rows[0].Href)
}

func TestLayouts_Overview(t *testing.T) {
	cfg := assemble(t)
	tab, _ := cfg.Tab(research.TabOverview)
	regions := research.Layouts.Arrange(tab.ID, tab.Variants)
	require.Len(t, regions, 2)
	assert.Equal(t, research.RegionMain, regions[0].Name)
	assert.Equal(t, []research.Kind{research.KindLineChart, research.KindProjectProgress}, view.KindsOf[research.Kind](regions[0].Variants))
	assert.Equal(t, research.RegionSide, regions[1].Name)
	assert.Equal(t, []research.Kind{research.KindActivityFeed, research.KindEquipmentUtilization}, view.KindsOf[research.Kind](regions[1].Variants))
}

func TestLayouts_OtherTabsAreSequential(t *testing.T) {
	cfg := assemble(t)
	for _, tab := range cfg.Tabs[1:] {
		regions := research.Layouts.Arrange(tab.ID, tab.Variants)
		require.Len(t, regions, 1, tab.ID)
		assert.Equal(t, view.SequentialRegion, regions[0].Name)
		assert.Equal(t, tab.Variants, regions[0].Variants)
	}
}

func TestRender_EveryTab(t *testing.T) {
	cfg := assemble(t)
	for _, tab := range cfg.Tabs {
		var buf bytes.Buffer
		for _, r := range view.RenderRegions(research.HTML, research.Layouts.Arrange(tab.ID, tab.Variants)) {
			for _, c := range r.Items {
				require.NoError(t, c.Render(context.Background(), &buf))
			}
		}
		assert.NotEmpty(t, buf.String(), tab.ID)
		for _, s := range view.DispatchAll(research.Text, tab.Variants) {
			assert.NotEmpty(t, s)
		}
	}
}
