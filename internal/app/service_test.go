package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"lab-dashboard/internal/app"
	"lab-dashboard/internal/core"
	"lab-dashboard/internal/dashboards/business"
	"lab-dashboard/internal/view"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func service(t *testing.T) app.ApplicationService {
	t.Helper()
	s, err := core.DefaultSnapshot()
	require.NoError(t, err)
	return app.NewAppService(s, app.Options{Timeout: time.Second}, nil)
}

func TestBusinessDashboard_SelectsTab(t *testing.T) {
	svc := service(t)

	res, err := svc.BusinessDashboard(context.Background(), business.TabFinancials)
	require.NoError(t, err)
	assert.Equal(t, business.TabFinancials, res.Tab.ID)
	names := make([]string, len(res.Regions))
	for i, r := range res.Regions {
		names[i] = r.Name
	}
	assert.Equal(t, []string{business.RegionCharts, business.RegionFull}, names)
}

func TestBusinessDashboard_UnknownTabFallsBackToFirst(t *testing.T) {
	res, err := service(t).BusinessDashboard(context.Background(), "nope")
	require.NoError(t, err)
	assert.Equal(t, res.Config.Tabs[0].ID, res.Tab.ID)
}

func TestResearchDashboard_SequentialTab(t *testing.T) {
	res, err := service(t).ResearchDashboard(context.Background(), "publications")
	require.NoError(t, err)
	require.Len(t, res.Regions, 1)
	assert.Equal(t, view.SequentialRegion, res.Regions[0].Name)
}

func TestDetail_ReadyAndNotFound(t *testing.T) {
	svc := service(t)
	ctx := context.Background()

	eq, err := svc.Equipment(ctx, "EQ-001")
	require.NoError(t, err)
	assert.Equal(t, view.Ready, eq.State.Phase)
	require.NotNil(t, eq.State.Config)
	assert.Equal(t, "Plate reader", eq.State.Config.Header.Title)

	ct, err := svc.Contract(ctx, "CT-404")
	require.NoError(t, err)
	assert.Equal(t, view.NotFound, ct.State.Phase)
	assert.Nil(t, ct.State.Config)
	assert.Equal(t, app.EntityContract, ct.Entity)

	ex, err := svc.Experiment(ctx, "EXP-101")
	require.NoError(t, err)
	assert.Equal(t, view.Ready, ex.State.Phase)
}

func TestDetailRoot_TimeoutLeavesLoading(t *testing.T) {
	block := func(ctx context.Context, id string) (int, bool) {
		<-ctx.Done()
		return 0, false
	}
	root := app.NewDetailRoot[int](app.EntityEquipment, block, app.Options{Timeout: 20 * time.Millisecond}, nil)

	st, err := root.Open(context.Background(), "EQ-001")
	require.NoError(t, err)
	assert.Equal(t, view.Loading, st.Phase)
	assert.Equal(t, "EQ-001", st.ID)
}

func TestDetailRoot_CallerCancellation(t *testing.T) {
	block := func(ctx context.Context, id string) (int, bool) {
		<-ctx.Done()
		return 0, false
	}
	root := app.NewDetailRoot[int](app.EntityEquipment, block, app.Options{}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	st, err := root.Open(ctx, "EQ-001")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, view.Loading, st.Phase)
}

func TestDetailRoot_DelayApplies(t *testing.T) {
	root := app.NewDetailRoot[int](app.EntityEquipment,
		func(context.Context, string) (int, bool) { return 7, true },
		app.Options{Delay: 30 * time.Millisecond}, nil)

	start := time.Now()
	st, err := root.Open(context.Background(), "x")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	require.Equal(t, view.Ready, st.Phase)
	assert.Equal(t, 7, *st.Config)
}

func TestList(t *testing.T) {
	svc := service(t)
	for _, e := range app.Entities {
		res, err := svc.List(context.Background(), e)
		require.NoError(t, err)
		require.NotEmpty(t, res.Rows, e)
		assert.Equal(t, e.Href()+"/"+res.Rows[0].ID, res.Rows[0].Href)
	}
	eq, err := svc.List(context.Background(), app.EntityEquipment)
	require.NoError(t, err)
	assert.Len(t, eq.Rows, 7)

	_, err = svc.List(context.Background(), app.Entity("robots"))
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestParseEntity(t *testing.T) {
	for in, want := range map[string]app.Entity{
		"equipment": app.EntityEquipment, "contract": app.EntityContract,
		"Contracts": app.EntityContract, "experiment": app.EntityExperiment,
	} {
		got, err := app.ParseEntity(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := app.ParseEntity("robot")
	assert.Error(t, err)
}

func TestRegistries_AllExhaustive(t *testing.T) {
	cov := service(t).Registries()
	assert.Len(t, cov, 10)
	for _, c := range cov {
		assert.NotEmpty(t, c.Kinds, c.Union)
	}
}
