package reactive

// Memo is a cached computation that automatically tracks its dependencies.
//
// Memos are lazy until something subscribes to them: the first Get computes
// the value. Once subscribed, a memo is recomputed during a flush before any
// of its consumers, and only notifies them when the recomputed value differs
// from the previous one.
type Memo[T any] struct {
	src  source
	comp *computation

	// compute is the function that computes the memo's value.
	compute func(tr *Tracker) T

	// value is the cached computed value.
	value T

	computed bool
	version  uint64

	// equal is the equality function for determining value changes.
	equal func(T, T) bool
}

// MemoOption configures a Memo at creation.
type MemoOption[T any] func(*Memo[T])

// MemoEquals sets a custom equality function for change detection.
func MemoEquals[T any](fn func(a, b T) bool) MemoOption[T] {
	return func(m *Memo[T]) {
		m.equal = fn
	}
}

// MemoName names the memo for logs and error reports.
func MemoName[T any](name string) MemoOption[T] {
	return func(m *Memo[T]) {
		m.comp.name = name
	}
}

// NewMemo creates a memo owned by scope. The computation is not run until
// the first read.
func NewMemo[T any](scope *Scope, compute func(tr *Tracker) T, opts ...MemoOption[T]) *Memo[T] {
	rt := scope.rt
	id := rt.nextID()
	m := &Memo[T]{
		src: source{
			id:    id,
			rt:    rt,
			scope: scope,
		},
		compute: compute,
	}
	m.comp = &computation{
		id:     id,
		kind:   kindMemo,
		rt:     rt,
		owner:  scope,
		output: &m.src,
		dirty:  true,
	}
	m.comp.exec = m.body
	for _, opt := range opts {
		opt(m)
	}
	scope.adoptSource(&m.src)
	scope.adoptComputation(m.comp)
	return m
}

// body recomputes the value and propagates a change to subscribers.
func (m *Memo[T]) body(tr *Tracker) {
	next := m.compute(tr)
	changed := !m.computed || !m.equals(m.value, next)
	m.value = next
	m.computed = true
	m.src.rt.stats.MemoRecomputes++
	m.src.rt.metrics.memoRecomputed()
	if changed {
		m.version++
		m.src.notify(false)
	}
}

// Get returns the memo's value, recomputing if necessary, and subscribes the
// tracker's computation.
func (m *Memo[T]) Get(tr *Tracker) T {
	return m.get(tr)
}

// Peek returns the memo's value without subscribing.
// Still triggers recomputation if the value is stale.
func (m *Memo[T]) Peek() T {
	return m.peek()
}

// Version returns a counter that increases whenever the value changes.
func (m *Memo[T]) Version() uint64 {
	return m.version
}

// ID returns the unique identifier for this memo.
func (m *Memo[T]) ID() uint64 {
	return m.src.id
}

// Reader returns a read handle for the memo.
func (m *Memo[T]) Reader() Reader[T] {
	return Reader[T]{r: m}
}

// Dispose stops the memo and releases it; later reads panic.
func (m *Memo[T]) Dispose() {
	m.comp.dispose()
	m.src.release()
}

func (m *Memo[T]) get(tr *Tracker) T {
	m.src.checkLive()
	m.ensureFresh()
	tr.track(&m.src)
	return m.value
}

func (m *Memo[T]) peek() T {
	m.src.checkLive()
	m.ensureFresh()
	return m.value
}

func (m *Memo[T]) currentVersion() uint64 {
	return m.version
}

func (m *Memo[T]) sourceID() uint64 {
	return m.src.id
}

// ensureFresh recomputes a stale memo on demand. A memo that is currently
// running (a read cycle) returns its previous value.
func (m *Memo[T]) ensureFresh() {
	c := m.comp
	if c.dirty && !c.running && !c.disposed {
		m.src.rt.pull(c)
	}
}

// equals checks if two values are equal.
func (m *Memo[T]) equals(a, b T) bool {
	if m.equal != nil {
		return m.equal(a, b)
	}
	return defaultEquals(a, b)
}
