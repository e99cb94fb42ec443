package experiment_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lab-dashboard/internal/core"
	"lab-dashboard/internal/details/experiment"
	"lab-dashboard/internal/view"
)

func repo(t *testing.T) core.Repository {
	t.Helper()
	s, err := core.DefaultSnapshot()
	require.NoError(t, err)
	return s
}

func hint(cfg view.DetailConfig[experiment.Section], label string) string {
	for _, k := range cfg.KPIs {
		if k.Label == label {
			return k.Hint
		}
	}
	return ""
}

func TestRegistries_CoverEveryKind(t *testing.T) {
	assert.Equal(t, experiment.Kinds(), experiment.HTML.Kinds())
	assert.Equal(t, experiment.Kinds(), experiment.Text.Kinds())
	assert.Len(t, experiment.Kinds(), 7)
}

func TestAssemble_NotFound(t *testing.T) {
	_, ok := experiment.Assemble("EXP-999", repo(t))
	assert.False(t, ok)
}

func TestAssemble_Idempotent(t *testing.T) {
	r := repo(t)
	for _, e := range r.Experiments() {
		a, okA := experiment.Assemble(e.ID, r)
		b, okB := experiment.Assemble(e.ID, r)
		require.True(t, okA && okB)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("%s: not idempotent (-first +second):\n%s", e.ID, diff)
		}
	}
}

func TestAssemble_CompletedScreen(t *testing.T) {
	cfg, ok := experiment.Assemble("EXP-101", repo(t))
	require.True(t, ok)

	assert.Equal(t, "EXP-101 · Antimicrobial peptide discovery", cfg.Header.Subtitle)
	require.NotNil(t, cfg.Header.Badge)
	assert.Equal(t, "Completed", cfg.Header.Badge.Text)
	assert.Equal(t, "ran 39 days", hint(cfg, "Started"))

	assert.Equal(t,
		[]experiment.Kind{experiment.KindHypothesis, experiment.KindProtocol, experiment.KindResults, experiment.KindSamples, experiment.KindNotes},
		view.KindsOf[experiment.Kind](cfg.Main))
	assert.Equal(t,
		[]experiment.Kind{experiment.KindTeam, experiment.KindEquipmentUsed},
		view.KindsOf[experiment.Kind](cfg.Sidebar))

	protocol := cfg.Main[1].(experiment.ProtocolSection)
	assert.Equal(t, 100, protocol.Progress)
	assert.Equal(t, "3 of 3 steps", protocol.ProgressLabel)

	results := cfg.Main[2].(experiment.ResultsSection)
	assert.Equal(t, []experiment.Result{
		{Metric: "Hit rate", Value: "7.2%", Note: "23 of 320 peptides"},
		{Metric: "Best MIC", Value: "2 µg/mL", Note: "AMP-A-117"},
	}, results.Results)

	used := cfg.Sidebar[1].(experiment.EquipmentUsedSection)
	require.Len(t, used.Instruments, 2)
	assert.Equal(t, "Biosafety cabinet", used.Instruments[0].Name)
	assert.Equal(t, "/equipment/EQ-003", used.Instruments[0].Href)
	assert.Equal(t, view.ToneWarn, used.Instruments[0].Status.Tone)
}

func TestAssemble_RunningAndPlanned(t *testing.T) {
	r := repo(t)

	running, ok := experiment.Assemble("EXP-102", r)
	require.True(t, ok)
	assert.Equal(t, "56 days so far", hint(running, "Started"))
	assert.Equal(t, 67, running.Main[1].(experiment.ProtocolSection).Progress)

	planned, ok := experiment.Assemble("EXP-103", r)
	require.True(t, ok)
	assert.Equal(t, "starts in 14 days", hint(planned, "Started"))
	assert.Empty(t, planned.Main[1].(experiment.ProtocolSection).Steps)
}

func TestRender_AllExperiments(t *testing.T) {
	r := repo(t)
	for _, e := range r.Experiments() {
		cfg, ok := experiment.Assemble(e.ID, r)
		require.True(t, ok)
		var buf bytes.Buffer
		for _, c := range view.DispatchAll(experiment.HTML, append(cfg.Main, cfg.Sidebar...)) {
			require.NoError(t, c.Render(context.Background(), &buf))
		}
		assert.Contains(t, buf.String(), "Hypothesis")
		for _, s := range view.DispatchAll(experiment.Text, cfg.Main) {
			assert.NotEmpty(t, s)
		}
	}
}
