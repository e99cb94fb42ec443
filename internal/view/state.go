package view

import (
	"context"
	"sync"
	"time"
)

// Phase is the lifecycle position of a detail page.
type Phase int

const (
	// Loading is entered whenever a new identifier is requested.
	Loading Phase = iota
	// Ready holds the assembled configuration.
	Ready
	// NotFound means the identifier does not resolve to an entity.
	NotFound
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case NotFound:
		return "not-found"
	default:
		return "unknown"
	}
}

// State is a snapshot of a Machine. Config is non-nil if and only if Phase
// is Ready.
type State[C any] struct {
	ID     string
	Phase  Phase
	Config *C
}

// Terminal reports whether the state is Ready or NotFound.
func (s State[C]) Terminal() bool { return s.Phase != Loading }

// Loader resolves an identifier to a page configuration. The boolean is false
// when the identifier is unknown.
type Loader[C any] func(ctx context.Context, id string) (C, bool)

// MachineOption configures a Machine.
type MachineOption[C any] func(*Machine[C])

// WithDelay sets the latency applied before every lookup.
func WithDelay[C any](d time.Duration) MachineOption[C] {
	return func(m *Machine[C]) { m.delay = d }
}

// WithObserver registers fn to receive every committed state, including the
// Loading state entered by Request. Calls are serialised and made without the
// machine's lock held; fn must not call Request.
func WithObserver[C any](fn func(State[C])) MachineOption[C] {
	return func(m *Machine[C]) { m.observe = fn }
}

type pending struct {
	gen    uint64
	cancel context.CancelFunc
	done   chan struct{}
}

// Machine drives one detail page through Loading to Ready or NotFound.
//
// Each Request supersedes the previous one: its lookup is cancelled and its
// generation retired, so only the most recently requested identifier can
// commit a terminal state.
type Machine[C any] struct {
	load    Loader[C]
	delay   time.Duration
	observe func(State[C])

	obsMu   sync.Mutex // serialises observer calls
	mu      sync.Mutex
	gen     uint64
	state   State[C]
	pending *pending
	closed  bool
	wg      sync.WaitGroup
}

// NewMachine returns an idle machine using load for lookups.
func NewMachine[C any](load Loader[C], opts ...MachineOption[C]) *Machine[C] {
	m := &Machine[C]{load: load}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Request restarts the machine at Loading for id and schedules its lookup.
// Requests made after Close are ignored.
func (m *Machine[C]) Request(ctx context.Context, id string) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.retireLocked()
	m.gen++
	lctx, cancel := context.WithCancel(ctx)
	p := &pending{gen: m.gen, cancel: cancel, done: make(chan struct{})}
	m.pending = p
	m.state = State[C]{ID: id, Phase: Loading}
	loading := m.state
	m.wg.Add(1)
	m.mu.Unlock()

	m.notify(loading, p.gen)
	go m.lookup(lctx, p, id)
}

func (m *Machine[C]) lookup(ctx context.Context, p *pending, id string) {
	defer m.wg.Done()
	if m.delay > 0 {
		timer := time.NewTimer(m.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
	if ctx.Err() != nil {
		return
	}
	cfg, ok := m.load(ctx, id)

	next := State[C]{ID: id, Phase: NotFound}
	if ok {
		next.Phase = Ready
		next.Config = &cfg
	}

	m.mu.Lock()
	if m.pending != p || m.closed {
		// Superseded while loading: discard.
		m.mu.Unlock()
		return
	}
	m.state = next
	m.pending = nil
	p.cancel()
	close(p.done)
	m.mu.Unlock()

	m.notify(next, p.gen)
}

// retireLocked cancels the in-flight lookup and wakes its waiters.
func (m *Machine[C]) retireLocked() {
	if m.pending == nil {
		return
	}
	m.pending.cancel()
	close(m.pending.done)
	m.pending = nil
}

// notify delivers s unless a newer request has been made since it was
// committed, so observers never see a superseded state after its successor.
func (m *Machine[C]) notify(s State[C], gen uint64) {
	if m.observe == nil {
		return
	}
	m.obsMu.Lock()
	defer m.obsMu.Unlock()
	if m.Generation() != gen {
		return
	}
	m.observe(s)
}

// State returns the current state.
func (m *Machine[C]) State() State[C] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Generation returns the number of requests made so far.
func (m *Machine[C]) Generation() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gen
}

// Wait blocks until the latest request settles or ctx is done, and returns
// the state at that point. A request superseding the awaited one extends the
// wait to the new request.
func (m *Machine[C]) Wait(ctx context.Context) (State[C], error) {
	for {
		m.mu.Lock()
		st, p := m.state, m.pending
		m.mu.Unlock()
		if p == nil {
			return st, nil
		}
		select {
		case <-p.done:
		case <-ctx.Done():
			return m.State(), ctx.Err()
		}
	}
}

// Close cancels any pending lookup and waits for lookup goroutines to exit.
func (m *Machine[C]) Close() {
	m.mu.Lock()
	m.closed = true
	m.retireLocked()
	m.mu.Unlock()
	m.wg.Wait()
}
