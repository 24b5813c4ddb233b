package reactive

import "github.com/verdigris-dev/verdigris/internal/errors"

// Tracker is the explicit execution context handed to effect and memo
// bodies. Passing it to Reader.Get records the read as a dependency of the
// running computation.
//
// A Tracker is only valid for the run it was created for. Reads through an
// expired tracker (for example one captured by a closure that outlives the
// run) are untracked.
type Tracker struct {
	rt      *Runtime
	comp    *computation
	expired bool
}

// Runtime returns the runtime the tracker belongs to.
func (t *Tracker) Runtime() *Runtime {
	return t.rt
}

// Scope returns the scope owned by the current run. Signals, memos and
// effects created on it are disposed before the next run.
func (t *Tracker) Scope() *Scope {
	if t.expired || t.comp == nil {
		return nil
	}
	return t.comp.runScope
}

// OnCleanup registers fn to run before the next run and on disposal.
func (t *Tracker) OnCleanup(fn func()) {
	if t.expired || t.comp == nil {
		fn()
		return
	}
	t.comp.cleanups = append(t.comp.cleanups, fn)
}

// Name returns the name of the running computation, if any.
func (t *Tracker) Name() string {
	if t.comp == nil {
		return ""
	}
	return t.comp.name
}

// track subscribes the running computation to src.
func (t *Tracker) track(src *source) {
	if t == nil {
		return
	}
	if src.rt != t.rt {
		panic(errors.New("E001").
			WithField("source", src.id).
			WithSuggestion("Read signals only from effects and memos of the runtime that created them"))
	}
	if t.expired || t.comp == nil || t.comp.disposed {
		return
	}
	t.comp.track(src)
}
