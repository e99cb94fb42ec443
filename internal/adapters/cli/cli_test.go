package cli_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"lab-dashboard/internal/adapters/cli"
	"lab-dashboard/internal/app"
	"lab-dashboard/internal/core"
	"lab-dashboard/internal/dashboards/business"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	s, err := core.DefaultSnapshot()
	require.NoError(t, err)
	root := cli.NewRootCommand(app.NewAppService(s, app.Options{Timeout: time.Second}, nil))
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err = root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRender_DetailText(t *testing.T) {
	out, err := run(t, "render", "equipment", "EQ-001", "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, out, "Equipment / EQ-001")
	assert.Contains(t, out, "Plate reader")
	assert.NotContains(t, out, "\x1b[")
}

func TestRender_PluralEntityAccepted(t *testing.T) {
	out, err := run(t, "render", "contracts", "CT-1001")
	require.NoError(t, err)
	assert.Contains(t, out, "$185,000.00")
}

func TestRender_NotFound(t *testing.T) {
	_, err := run(t, "render", "contract", "CT-9999")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.Contains(t, err.Error(), "CT-9999")
}

func TestRender_NotFoundJSONStillPrintsDocument(t *testing.T) {
	out, err := run(t, "render", "experiment", "EXP-000", "--format", "json")
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.JSONEq(t, `{"entity":"experiments","id":"EXP-000","phase":"not-found"}`, out)
}

func TestRender_MissingID(t *testing.T) {
	_, err := run(t, "render", "equipment")
	assert.EqualError(t, err, "render Equipment: missing id")
}

func TestRender_DashboardJSON(t *testing.T) {
	out, err := run(t, "render", "business", "--tab", business.TabFinancials, "--format", "json")
	require.NoError(t, err)

	var doc app.DashboardDoc
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, business.TabFinancials, doc.Tab)
	require.Len(t, doc.Regions, 2)
	assert.Equal(t, business.RegionCharts, doc.Regions[0].Name)
	assert.Equal(t, business.RegionFull, doc.Regions[1].Name)
}

func TestRender_DashboardText(t *testing.T) {
	out, err := run(t, "render", "research")
	require.NoError(t, err)
	assert.Contains(t, out, "Tabs: [")
	assert.Contains(t, out, "== ")
}

func TestList(t *testing.T) {
	out, err := run(t, "list", "contracts")
	require.NoError(t, err)
	assert.Contains(t, out, "CT-1001")
	assert.Contains(t, out, "STATUS")
}

func TestRegistries(t *testing.T) {
	out, err := run(t, "registries", "--format", "json")
	require.NoError(t, err)
	var cov []struct {
		Union string   `json:"union"`
		Kinds []string `json:"kinds"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &cov))
	assert.Len(t, cov, 10)
}

func TestSchema(t *testing.T) {
	out, err := run(t, "schema", "contract")
	require.NoError(t, err)
	assert.Contains(t, out, `"milestones"`)

	_, err = run(t, "schema", "nope")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestUnknownFormat(t *testing.T) {
	_, err := run(t, "list", "equipment", "--format", "xml")
	assert.EqualError(t, err, `unknown format "xml" (want text or json)`)
}

func TestStyles_Plain(t *testing.T) {
	st := cli.NewStyles(false)
	assert.Equal(t, "Title", st.Title("Title"))
}
