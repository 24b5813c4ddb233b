package reactive

// Scope owns reactive primitives. When a Scope is disposed, all signals,
// memos, effects and child scopes it contains are disposed with it.
//
// Scopes form a hierarchy that mirrors the component tree: every effect run
// gets its own child scope, so anything created while composing a subtree is
// torn down before that subtree is rebuilt.
type Scope struct {
	id uint64
	rt *Runtime

	// parent is the parent Scope; nil for the runtime root.
	parent *Scope

	// children are child scopes, in creation order.
	children []*Scope

	// computations are the effects and memos owned by this scope.
	computations []*computation

	// sources are the signals and memos created on this scope.
	sources []*source

	// cleanups are manual cleanup functions registered via OnCleanup.
	cleanups []func()

	// values stores context values provided at this scope.
	values map[any]any

	disposed bool
}

func newScope(rt *Runtime, parent *Scope) *Scope {
	return &Scope{
		id:     rt.nextID(),
		rt:     rt,
		parent: parent,
	}
}

// NewChild creates a scope owned by s. A child of a disposed scope is
// returned already disposed.
func (s *Scope) NewChild() *Scope {
	child := newScope(s.rt, s)
	if s.disposed {
		child.disposed = true
		return child
	}
	s.children = append(s.children, child)
	return child
}

// ID returns the unique identifier for this Scope.
func (s *Scope) ID() uint64 {
	return s.id
}

// Parent returns the parent Scope, or nil for the root.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Runtime returns the runtime this scope belongs to.
func (s *Scope) Runtime() *Runtime {
	return s.rt
}

// IsDisposed returns true if this Scope has been disposed.
func (s *Scope) IsDisposed() bool {
	return s.disposed
}

// OnCleanup registers a cleanup function to run when this Scope is disposed.
// On an already disposed scope, fn runs immediately.
func (s *Scope) OnCleanup(fn func()) {
	if s.disposed {
		fn()
		return
	}
	s.cleanups = append(s.cleanups, fn)
}

// SetValue provides a context value to this scope and its descendants.
func (s *Scope) SetValue(key, value any) {
	if s.values == nil {
		s.values = make(map[any]any)
	}
	s.values[key] = value
}

// Value retrieves a context value from this Scope or the nearest ancestor
// that provides it.
func (s *Scope) Value(key any) (any, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.values[key]; ok {
			return v, true
		}
	}
	return nil, false
}

func (s *Scope) adoptSource(src *source) {
	if s.disposed {
		src.released = true
		return
	}
	s.sources = append(s.sources, src)
}

func (s *Scope) adoptComputation(c *computation) {
	s.computations = append(s.computations, c)
}

func (s *Scope) removeComputation(c *computation) {
	for i, existing := range s.computations {
		if existing == c {
			s.computations = append(s.computations[:i], s.computations[i+1:]...)
			return
		}
	}
}

func (s *Scope) removeChild(child *Scope) {
	for i, c := range s.children {
		if c == child {
			s.children = append(s.children[:i], s.children[i+1:]...)
			return
		}
	}
}

// Dispose disposes this Scope and everything it owns. Children are disposed
// in reverse order (last created first), then computations, then cleanups
// in reverse order; finally the scope's signals are released.
func (s *Scope) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true

	if s.parent != nil {
		s.parent.removeChild(s)
	}

	children := s.children
	s.children = nil
	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	computations := s.computations
	s.computations = nil
	for _, c := range computations {
		c.owner = nil
		c.dispose()
	}

	cleanups := s.cleanups
	s.cleanups = nil
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}

	for _, src := range s.sources {
		src.release()
	}
	s.sources = nil
	s.values = nil
}

// Stats returns the number of live child scopes, computations and sources
// directly owned by s.
func (s *Scope) Stats() (children, computations, sources int) {
	return len(s.children), len(s.computations), len(s.sources)
}
