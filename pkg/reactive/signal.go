package reactive

import (
	"reflect"

	"github.com/verdigris-dev/verdigris/internal/errors"
)

// Signal is a reactive value container. It is never used directly; NewSignal
// hands out a Reader and a Writer that share it.
type Signal[T any] struct {
	src source

	// value is the current signal value.
	value T

	// version is incremented on every write.
	version uint64

	// equal decides whether a write changed the value.
	// If nil, uses default equality checking.
	equal func(T, T) bool

	// alwaysNotify skips the equality check entirely.
	alwaysNotify bool
}

// SignalOption configures a Signal at creation.
type SignalOption[T any] func(*Signal[T])

// WithEquals sets a custom equality function. This is useful for custom
// types where reflect.DeepEqual is too expensive or has incorrect semantics.
func WithEquals[T any](fn func(a, b T) bool) SignalOption[T] {
	return func(s *Signal[T]) {
		s.equal = fn
	}
}

// AlwaysNotify makes every write notify subscribers, for types without a
// meaningful equality.
func AlwaysNotify[T any]() SignalOption[T] {
	return func(s *Signal[T]) {
		s.alwaysNotify = true
	}
}

// NewSignal creates a signal owned by scope and returns its read and write
// handles. The signal is released when scope is disposed.
func NewSignal[T any](scope *Scope, initial T, opts ...SignalOption[T]) (Reader[T], Writer[T]) {
	s := &Signal[T]{
		src: source{
			id:    scope.rt.nextID(),
			rt:    scope.rt,
			scope: scope,
		},
		value: initial,
	}
	for _, opt := range opts {
		opt(s)
	}
	scope.adoptSource(&s.src)
	return Reader[T]{r: s}, Writer[T]{s: s}
}

func (s *Signal[T]) get(tr *Tracker) T {
	s.src.checkLive()
	tr.track(&s.src)
	return s.value
}

func (s *Signal[T]) peek() T {
	s.src.checkLive()
	return s.value
}

func (s *Signal[T]) currentVersion() uint64 {
	return s.version
}

func (s *Signal[T]) sourceID() uint64 {
	return s.src.id
}

// set replaces the value and notifies subscribers if it changed.
func (s *Signal[T]) set(value T) {
	if s.src.released {
		s.src.rt.logger.Debug("write to released signal dropped", "signal", s.src.id)
		return
	}
	changed := s.alwaysNotify || !s.equals(s.value, value)
	s.value = value
	s.version++
	if changed {
		s.src.notify(true)
		s.src.rt.requestFlush()
	}
}

// equals checks if two values are equal using the configured equality function.
func (s *Signal[T]) equals(a, b T) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	return defaultEquals(a, b)
}

// checkLive fails fast when the owning scope has been torn down.
func (s *source) checkLive() {
	if s.released {
		panic(errors.New("E005").
			WithField("source", s.id).
			WithSuggestion("Do not keep readers of a scope alive past its Dispose"))
	}
}

// defaultEquals provides type-appropriate equality checking.
// Uses == for common comparable types and reflect.DeepEqual for others.
func defaultEquals[T any](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		return av == any(b).(int)
	case int8:
		return av == any(b).(int8)
	case int16:
		return av == any(b).(int16)
	case int32:
		return av == any(b).(int32)
	case int64:
		return av == any(b).(int64)
	case uint:
		return av == any(b).(uint)
	case uint8:
		return av == any(b).(uint8)
	case uint16:
		return av == any(b).(uint16)
	case uint32:
		return av == any(b).(uint32)
	case uint64:
		return av == any(b).(uint64)
	case float32:
		return av == any(b).(float32)
	case float64:
		return av == any(b).(float64)
	case string:
		return av == any(b).(string)
	case bool:
		return av == any(b).(bool)
	default:
		return reflect.DeepEqual(a, b)
	}
}

// readable is implemented by every value a Reader can front.
type readable[T any] interface {
	get(tr *Tracker) T
	peek() T
	currentVersion() uint64
	sourceID() uint64
}

// Reader is the read handle of a signal or memo.
type Reader[T any] struct {
	r readable[T]
}

// Get returns the current value. If tr belongs to a running effect or memo,
// that computation is subscribed to this value. A nil tracker reads
// without tracking.
//
// Get panics if the value's scope has been disposed, or if tr belongs to a
// different runtime.
func (r Reader[T]) Get(tr *Tracker) T {
	return r.r.get(tr)
}

// Peek returns the current value without subscribing.
func (r Reader[T]) Peek() T {
	return r.r.peek()
}

// Version returns a counter that increases on every write.
func (r Reader[T]) Version() uint64 {
	return r.r.currentVersion()
}

// ID returns the unique identifier of the underlying signal or memo.
func (r Reader[T]) ID() uint64 {
	return r.r.sourceID()
}

// Writer is the write handle of a signal.
type Writer[T any] struct {
	s *Signal[T]
}

// Set replaces the value. Subscribers are notified when the value differs
// from the previous one under the signal's equality.
func (w Writer[T]) Set(value T) {
	w.s.set(value)
}

// Update replaces the value with fn applied to the current value.
func (w Writer[T]) Update(fn func(T) T) {
	if w.s.src.released {
		w.s.src.rt.logger.Debug("write to released signal dropped", "signal", w.s.src.id)
		return
	}
	w.s.set(fn(w.s.value))
}
