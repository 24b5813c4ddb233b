package reactive

import (
	"errors"
	"testing"
)

func TestSignalBasic(t *testing.T) {
	rt, _ := newTestRuntime()
	count, setCount := NewSignal(rt.Root(), 0)

	if count.Peek() != 0 {
		t.Errorf("expected initial value 0, got %d", count.Peek())
	}

	setCount.Set(5)
	if count.Peek() != 5 {
		t.Errorf("expected value 5, got %d", count.Peek())
	}

	setCount.Update(func(n int) int { return n * 2 })
	if count.Get(nil) != 10 {
		t.Errorf("expected value 10, got %d", count.Get(nil))
	}
}

func TestSignalVersionIncrementsOnEveryWrite(t *testing.T) {
	rt, _ := newTestRuntime()
	name, setName := NewSignal(rt.Root(), "a")

	if name.Version() != 0 {
		t.Fatalf("expected version 0, got %d", name.Version())
	}
	setName.Set("b")
	setName.Set("b")
	if name.Version() != 2 {
		t.Errorf("expected version 2, got %d", name.Version())
	}
}

func TestSignalPeekDoesNotSubscribe(t *testing.T) {
	rt, _ := newTestRuntime()
	count, setCount := NewSignal(rt.Root(), 42)

	runs := 0
	rt.Root().Effect(func(tr *Tracker) error {
		runs++
		if count.Peek() != 42 && runs == 1 {
			t.Errorf("expected 42, got %d", count.Peek())
		}
		return nil
	})

	setCount.Set(100)
	if runs != 1 {
		t.Errorf("Peek should not subscribe, got %d runs", runs)
	}
}

func TestSignalSameValueDoesNotNotify(t *testing.T) {
	rt, _ := newTestRuntime()
	count, setCount := NewSignal(rt.Root(), 0)

	runs := 0
	rt.Root().Effect(func(tr *Tracker) error {
		_ = count.Get(tr)
		runs++
		return nil
	})

	setCount.Set(1)
	if runs != 2 {
		t.Errorf("expected 2 runs, got %d", runs)
	}

	setCount.Set(1)
	if runs != 2 {
		t.Errorf("same value should not notify, got %d runs", runs)
	}

	setCount.Set(2)
	if runs != 3 {
		t.Errorf("expected 3 runs, got %d", runs)
	}
}

func TestSignalDeepEqualForSlices(t *testing.T) {
	rt, _ := newTestRuntime()
	items, setItems := NewSignal(rt.Root(), []string{"a"})

	runs := 0
	rt.Root().Effect(func(tr *Tracker) error {
		_ = items.Get(tr)
		runs++
		return nil
	})

	setItems.Set([]string{"a"})
	if runs != 1 {
		t.Errorf("deep-equal slice should not notify, got %d runs", runs)
	}
	setItems.Set([]string{"a", "b"})
	if runs != 2 {
		t.Errorf("expected 2 runs, got %d", runs)
	}
}

func TestSignalWithEquals(t *testing.T) {
	rt, _ := newTestRuntime()
	type point struct{ X, Y int }
	p, setP := NewSignal(rt.Root(), point{1, 1}, WithEquals(func(a, b point) bool {
		return a.X == b.X
	}))

	runs := 0
	rt.Root().Effect(func(tr *Tracker) error {
		_ = p.Get(tr)
		runs++
		return nil
	})

	setP.Set(point{1, 2})
	if runs != 1 {
		t.Errorf("custom equality should suppress notification, got %d runs", runs)
	}
	if p.Peek().Y != 2 {
		t.Errorf("value should still be replaced, got %+v", p.Peek())
	}
	setP.Set(point{2, 2})
	if runs != 2 {
		t.Errorf("expected 2 runs, got %d", runs)
	}
}

func TestSignalAlwaysNotify(t *testing.T) {
	rt, _ := newTestRuntime()
	tick, setTick := NewSignal(rt.Root(), struct{}{}, AlwaysNotify[struct{}]())

	runs := 0
	rt.Root().Effect(func(tr *Tracker) error {
		_ = tick.Get(tr)
		runs++
		return nil
	})

	setTick.Set(struct{}{})
	setTick.Set(struct{}{})
	if runs != 3 {
		t.Errorf("expected 3 runs, got %d", runs)
	}
}

func TestSignalReadAfterDisposePanics(t *testing.T) {
	rt, _ := newTestRuntime()
	scope := rt.Root().NewChild()
	count, _ := NewSignal(scope, 1)

	scope.Dispose()

	r := expectPanic(func() { count.Peek() })
	if r == nil {
		t.Fatal("expected read of released signal to panic")
	}
	err, ok := r.(error)
	if !ok || !errors.Is(err, ErrScopeDisposed) {
		t.Errorf("expected ErrScopeDisposed, got %v", r)
	}
}

func TestSignalWriteAfterDisposeIsDropped(t *testing.T) {
	rt, _ := newTestRuntime()
	scope := rt.Root().NewChild()
	_, setCount := NewSignal(scope, 1)

	scope.Dispose()

	if r := expectPanic(func() { setCount.Set(2) }); r != nil {
		t.Errorf("write after dispose should not panic, got %v", r)
	}
}

func TestSignalCreatedOnDisposedScopeIsReleased(t *testing.T) {
	rt, _ := newTestRuntime()
	scope := rt.Root().NewChild()
	scope.Dispose()

	count, _ := NewSignal(scope, 1)
	if r := expectPanic(func() { count.Peek() }); r == nil {
		t.Error("signal on a disposed scope should fail fast on read")
	}
}

func TestSignalForeignTrackerPanics(t *testing.T) {
	rtA, _ := newTestRuntime()
	rtB, errsB := newTestRuntime()
	count, _ := NewSignal(rtA.Root(), 1)

	r := expectPanic(func() {
		rtB.Root().Effect(func(tr *Tracker) error {
			_ = count.Get(tr)
			return nil
		})
	})

	err, ok := r.(error)
	if !ok || !errors.Is(err, ErrForeignTracker) {
		t.Fatalf("expected ErrForeignTracker panic, got %v", r)
	}
	if len(*errsB) != 0 {
		t.Errorf("misuse should not be isolated, got %v", *errsB)
	}
	if _, computations, _ := rtB.Root().Stats(); computations != 0 {
		t.Errorf("aborted effect should be released, got %d computations", computations)
	}
}
