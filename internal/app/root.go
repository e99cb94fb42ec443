package app

import (
	"context"

	"lab-dashboard/internal/platform/logger"
	"lab-dashboard/internal/view"
)

// DetailRoot wires one detail page: it owns the loader, the lookup latency
// and the wait budget, and builds page state machines from them.
type DetailRoot[C any] struct {
	entity Entity
	load   view.Loader[C]
	opts   Options
	log    *logger.Logger
}

// NewDetailRoot returns a root resolving entity pages with load.
func NewDetailRoot[C any](entity Entity, load view.Loader[C], opts Options, log *logger.Logger) *DetailRoot[C] {
	if log == nil {
		log = logger.Nop()
	}
	return &DetailRoot[C]{entity: entity, load: load, opts: opts, log: log.With("entity", string(entity))}
}

// Entity returns the entity the root serves.
func (r *DetailRoot[C]) Entity() Entity { return r.entity }

// Machine returns a new page machine. observe, if non-nil, receives every
// state the machine commits. The caller must Close the machine.
func (r *DetailRoot[C]) Machine(observe func(view.State[C])) *view.Machine[C] {
	return view.NewMachine[C](r.load,
		view.WithDelay[C](r.opts.Delay),
		view.WithObserver[C](func(s view.State[C]) {
			r.log.Debug("page state", "id", s.ID, "phase", s.Phase.String())
			if observe != nil {
				observe(s)
			}
		}),
	)
}

// Open requests id on a fresh machine and waits for it to settle. When the
// timeout passes first the Loading state is returned with a nil error; the
// caller's own cancellation is returned as an error.
func (r *DetailRoot[C]) Open(ctx context.Context, id string) (view.State[C], error) {
	m := r.Machine(nil)
	defer m.Close()

	m.Request(ctx, id)

	wctx := ctx
	if r.opts.Timeout > 0 {
		var cancel context.CancelFunc
		wctx, cancel = context.WithTimeout(ctx, r.opts.Timeout)
		defer cancel()
	}
	st, err := m.Wait(wctx)
	if err != nil {
		if ctx.Err() != nil {
			return st, ctx.Err()
		}
		r.log.Warn("page lookup timed out", "id", id, "timeout", r.opts.Timeout)
		return st, nil
	}
	return st, nil
}
