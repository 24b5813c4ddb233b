package reactive

// Effect represents a reactive side effect that runs when its dependencies
// change. Effects are created with Scope.Effect, run once immediately to
// collect their dependencies, and then re-run whenever any signal or memo
// they read during their latest run changes.
type Effect struct {
	comp *computation

	// fn is the effect body.
	fn func(tr *Tracker) error
}

// EffectOption configures an Effect at creation.
type EffectOption func(*Effect)

// Named sets the effect name used in logs, metrics and error reports.
func Named(name string) EffectOption {
	return func(e *Effect) {
		e.comp.name = name
	}
}

// Effect registers fn as an effect owned by s and runs it immediately.
//
// An error returned (or a panic raised) by fn is wrapped in
// ErrEffectExecution and delivered to the runtime's error handler; other
// effects in the same pass still run, and the failing effect keeps the
// dependencies it read before failing. Reads through a disposed scope or a
// foreign tracker are not isolated: the effect is disposed and the panic
// continues out of Effect (or out of the write that scheduled the run).
//
// Effects created on a disposed scope never run.
func (s *Scope) Effect(fn func(tr *Tracker) error, opts ...EffectOption) *Effect {
	rt := s.rt
	e := &Effect{fn: fn}
	e.comp = &computation{
		id:    rt.nextID(),
		kind:  kindEffect,
		rt:    rt,
		owner: s,
	}
	e.comp.exec = e.body
	for _, opt := range opts {
		opt(e)
	}

	if s.disposed {
		e.comp.disposed = true
		rt.logger.Debug("effect created on disposed scope", "scope", s.id, "effect", e.comp.id)
		return e
	}

	s.adoptComputation(e.comp)
	rt.runInitial(e.comp)
	return e
}

// body runs the user function and reports failures.
func (e *Effect) body(tr *Tracker) {
	rt := tr.rt
	rt.stats.EffectRuns++
	rt.metrics.effectRan()
	if err := e.fn(tr); err != nil {
		rt.reportComputationError(e.comp, err)
	}
}

// Dispose removes the effect from every signal's subscriber set and runs its
// cleanups. After Dispose the effect never runs again.
func (e *Effect) Dispose() {
	e.comp.dispose()
}

// ID returns the unique identifier for this effect.
func (e *Effect) ID() uint64 {
	return e.comp.id
}

// Name returns the effect name, or "" if unnamed.
func (e *Effect) Name() string {
	return e.comp.name
}

// IsDisposed reports whether the effect has been disposed.
func (e *Effect) IsDisposed() bool {
	return e.comp.disposed
}

// Dependencies returns the number of sources read during the latest run.
func (e *Effect) Dependencies() int {
	return len(e.comp.sources)
}

// OnMount runs fn once, untracked, as an effect owned by s.
func (s *Scope) OnMount(fn func()) {
	s.Effect(func(*Tracker) error {
		fn()
		return nil
	})
}

// OnUpdate creates an effect that skips the callback on the first run.
//
// The deps function is called on every run to establish dependencies; the
// callback is only called on subsequent runs when those dependencies change.
func (s *Scope) OnUpdate(deps func(tr *Tracker), callback func()) *Effect {
	first := true
	return s.Effect(func(tr *Tracker) error {
		deps(tr)
		if first {
			first = false
			return nil
		}
		callback()
		return nil
	})
}
