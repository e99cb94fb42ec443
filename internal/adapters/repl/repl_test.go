package repl_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"lab-dashboard/internal/adapters/cli"
	"lab-dashboard/internal/adapters/repl"
	"lab-dashboard/internal/app"
	"lab-dashboard/internal/core"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func session(t *testing.T, opts app.Options, input string) string {
	t.Helper()
	s, err := core.DefaultSnapshot()
	require.NoError(t, err)
	var out bytes.Buffer
	err = repl.Run(context.Background(), app.NewAppService(s, opts, nil), strings.NewReader(input), &out, cli.NewStyles(false))
	require.NoError(t, err)
	return out.String()
}

func TestOpenAndWait(t *testing.T) {
	out := session(t, app.Options{}, "open equipment EQ-001\nwait\nstatus\nquit\n")
	assert.Contains(t, out, "Loading Equipment EQ-001...")
	assert.Contains(t, out, "Plate reader")
	assert.Contains(t, out, "ready")
	assert.Contains(t, out, "Goodbye!")
}

func TestOpen_NotFound(t *testing.T) {
	out := session(t, app.Options{}, "/open contract CT-9999\n/wait\n/q\n")
	assert.Contains(t, out, "Contract CT-9999 not found. Try: list contracts")
}

func TestOpen_NewerRequestSupersedes(t *testing.T) {
	out := session(t, app.Options{Delay: 200 * time.Millisecond}, "open equipment EQ-001\nopen equipment EQ-002\nwait\nquit\n")
	assert.Contains(t, out, "Loading Equipment EQ-001...")
	assert.Contains(t, out, "qPCR system")
	assert.NotContains(t, out, "Plate reader")
}

func TestEOFClosesPendingLookups(t *testing.T) {
	out := session(t, app.Options{Delay: time.Hour}, "open experiment EXP-101\n")
	assert.Contains(t, out, "Loading Experiment EXP-101...")
	assert.NotContains(t, out, "Goodbye!")
}

func TestDashboardAndList(t *testing.T) {
	out := session(t, app.Options{}, "dashboard business financials\nlist experiments\nbogus\nquit\n")
	assert.Contains(t, out, "Tabs: ")
	assert.Contains(t, out, "EXP-101")
	assert.Contains(t, out, "Unknown command: bogus")
}

func TestUsageErrors(t *testing.T) {
	out := session(t, app.Options{}, "open equipment\ndashboard\nopen widgets X\nquit\n")
	assert.Contains(t, out, "Error: usage: open <equipment|contract|experiment> <id>")
	assert.Contains(t, out, "Error: usage: dashboard <business|research> [tab]")
	assert.Contains(t, out, `Error: unknown entity "widgets"`)
}
