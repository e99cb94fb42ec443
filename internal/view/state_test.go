package view_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"lab-dashboard/internal/view"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type page struct{ Title string }

var pages = map[string]page{
	"A": {Title: "alpha"},
	"B": {Title: "beta"},
}

func mapLoader(_ context.Context, id string) (page, bool) {
	p, ok := pages[id]
	return p, ok
}

// gatedLoader blocks each lookup until its id is released, ignoring
// cancellation so that superseded lookups still complete.
type gatedLoader struct {
	mu    sync.Mutex
	gates map[string]chan struct{}
}

func newGatedLoader(ids ...string) *gatedLoader {
	g := &gatedLoader{gates: make(map[string]chan struct{})}
	for _, id := range ids {
		g.gates[id] = make(chan struct{})
	}
	return g
}

func (g *gatedLoader) release(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	close(g.gates[id])
}

func (g *gatedLoader) load(_ context.Context, id string) (page, bool) {
	g.mu.Lock()
	gate := g.gates[id]
	g.mu.Unlock()
	<-gate
	return mapLoader(context.Background(), id)
}

func waitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestMachine_ReachesReadyOrNotFound(t *testing.T) {
	tests := []struct {
		id        string
		wantPhase view.Phase
		wantTitle string
	}{
		{id: "A", wantPhase: view.Ready, wantTitle: "alpha"},
		{id: "B", wantPhase: view.Ready, wantTitle: "beta"},
		{id: "missing", wantPhase: view.NotFound},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			m := view.NewMachine[page](mapLoader, view.WithDelay[page](time.Millisecond))
			defer m.Close()

			m.Request(context.Background(), tt.id)
			st, err := m.Wait(waitCtx(t))
			require.NoError(t, err)
			assert.Equal(t, tt.id, st.ID)
			assert.Equal(t, tt.wantPhase, st.Phase)
			assert.True(t, st.Terminal())
			if tt.wantPhase == view.Ready {
				require.NotNil(t, st.Config)
				assert.Equal(t, tt.wantTitle, st.Config.Title)
			} else {
				assert.Nil(t, st.Config)
			}
		})
	}
}

func TestMachine_StartsLoading(t *testing.T) {
	g := newGatedLoader("A")
	m := view.NewMachine[page](g.load)
	defer m.Close()

	m.Request(context.Background(), "A")
	st := m.State()
	assert.Equal(t, view.Loading, st.Phase)
	assert.Equal(t, "A", st.ID)
	assert.Nil(t, st.Config)
	assert.False(t, st.Terminal())

	g.release("A")
	st, err := m.Wait(waitCtx(t))
	require.NoError(t, err)
	assert.Equal(t, view.Ready, st.Phase)
}

func TestMachine_StaleLookupIsDiscarded(t *testing.T) {
	g := newGatedLoader("A", "B")
	var (
		mu   sync.Mutex
		seen []view.State[page]
	)
	m := view.NewMachine[page](g.load, view.WithObserver(func(s view.State[page]) {
		mu.Lock()
		seen = append(seen, s)
		mu.Unlock()
	}))
	defer m.Close()

	m.Request(context.Background(), "A")
	m.Request(context.Background(), "B")
	assert.Equal(t, uint64(2), m.Generation())

	// A resolves after B was requested; its result must not be applied.
	g.release("A")
	g.release("B")

	st, err := m.Wait(waitCtx(t))
	require.NoError(t, err)
	assert.Equal(t, "B", st.ID)
	assert.Equal(t, view.Ready, st.Phase)
	assert.Equal(t, "beta", st.Config.Title)

	mu.Lock()
	defer mu.Unlock()
	for _, s := range seen {
		if s.ID == "A" {
			assert.Equal(t, view.Loading, s.Phase, "A must never commit a terminal state")
		}
	}
	last := seen[len(seen)-1]
	assert.Equal(t, "B", last.ID)
	assert.Equal(t, view.Ready, last.Phase)
}

func TestMachine_SupersededDelayIsCancelled(t *testing.T) {
	var (
		mu    sync.Mutex
		calls []string
	)
	load := func(ctx context.Context, id string) (page, bool) {
		mu.Lock()
		calls = append(calls, id)
		mu.Unlock()
		return mapLoader(ctx, id)
	}
	m := view.NewMachine[page](load, view.WithDelay[page](50*time.Millisecond))
	defer m.Close()

	m.Request(context.Background(), "A")
	m.Request(context.Background(), "B")
	st, err := m.Wait(waitCtx(t))
	require.NoError(t, err)
	assert.Equal(t, "B", st.ID)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"B"}, calls, "the superseded lookup never reaches the loader")
}

func TestMachine_NewIdentifierRestartsAtLoading(t *testing.T) {
	m := view.NewMachine[page](mapLoader)
	defer m.Close()

	m.Request(context.Background(), "A")
	st, err := m.Wait(waitCtx(t))
	require.NoError(t, err)
	require.Equal(t, view.Ready, st.Phase)

	m.Request(context.Background(), "missing")
	st, err = m.Wait(waitCtx(t))
	require.NoError(t, err)
	assert.Equal(t, "missing", st.ID)
	assert.Equal(t, view.NotFound, st.Phase)
	assert.Nil(t, st.Config)
}

func TestMachine_WaitHonoursContext(t *testing.T) {
	g := newGatedLoader("A")
	m := view.NewMachine[page](g.load)

	m.Request(context.Background(), "A")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	st, err := m.Wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, view.Loading, st.Phase)

	g.release("A")
	m.Close()
}

func TestMachine_CloseCancelsPendingLookup(t *testing.T) {
	m := view.NewMachine[page](mapLoader, view.WithDelay[page](time.Hour))
	m.Request(context.Background(), "A")
	m.Close()

	assert.Equal(t, view.Loading, m.State().Phase)
	m.Request(context.Background(), "B")
	assert.Equal(t, "A", m.State().ID, "requests after Close are ignored")

	st, err := m.Wait(waitCtx(t))
	require.NoError(t, err)
	assert.Equal(t, view.Loading, st.Phase)
}

func TestMachine_CallerCancellation(t *testing.T) {
	m := view.NewMachine[page](mapLoader, view.WithDelay[page](time.Hour))
	defer m.Close()

	ctx, cancel := context.WithCancel(context.Background())
	m.Request(ctx, "A")
	cancel()

	// The lookup gives up without committing; the page stays Loading.
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, view.Loading, m.State().Phase)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "loading", view.Loading.String())
	assert.Equal(t, "ready", view.Ready.String())
	assert.Equal(t, "not-found", view.NotFound.String())
}
