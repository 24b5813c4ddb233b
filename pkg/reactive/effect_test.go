package reactive

import (
	"errors"
	"testing"
)

func TestEffectRunsOnCreate(t *testing.T) {
	rt, _ := newTestRuntime()
	defer rt.Dispose()

	ran := false
	rt.Root().Effect(func(*Tracker) error {
		ran = true
		return nil
	})

	if !ran {
		t.Error("effect should run immediately on creation")
	}
}

func TestEffectTracksDependencies(t *testing.T) {
	rt, _ := newTestRuntime()
	defer rt.Dispose()

	count, setCount := NewSignal(rt.Root(), 0)
	runCount := 0

	e := rt.Root().Effect(func(tr *Tracker) error {
		_ = count.Get(tr)
		runCount++
		return nil
	})

	if runCount != 1 {
		t.Errorf("expected 1 run, got %d", runCount)
	}
	if e.Dependencies() != 1 {
		t.Errorf("expected 1 dependency, got %d", e.Dependencies())
	}

	setCount.Set(1)
	if runCount != 2 {
		t.Errorf("expected 2 runs after signal change, got %d", runCount)
	}
}

func TestEffectDynamicDependencies(t *testing.T) {
	rt, _ := newTestRuntime()
	defer rt.Dispose()

	useX, setUseX := NewSignal(rt.Root(), true)
	x, setX := NewSignal(rt.Root(), 1)
	y, setY := NewSignal(rt.Root(), 10)

	runCount := 0
	var last int
	rt.Root().Effect(func(tr *Tracker) error {
		runCount++
		if useX.Get(tr) {
			last = x.Get(tr)
		} else {
			last = y.Get(tr)
		}
		return nil
	})

	// y is not read yet
	setY.Set(11)
	if runCount != 1 {
		t.Errorf("unread signal should not trigger a run, got %d runs", runCount)
	}

	setUseX.Set(false)
	if runCount != 2 || last != 11 {
		t.Errorf("expected run 2 reading y=11, got run %d value %d", runCount, last)
	}

	// x is no longer read
	setX.Set(2)
	if runCount != 2 {
		t.Errorf("stale dependency should be dropped, got %d runs", runCount)
	}

	setY.Set(12)
	if runCount != 3 || last != 12 {
		t.Errorf("expected run 3 reading y=12, got run %d value %d", runCount, last)
	}
}

func TestEffectDisposeIsFinal(t *testing.T) {
	rt, _ := newTestRuntime()
	defer rt.Dispose()

	a, setA := NewSignal(rt.Root(), 0)
	b, setB := NewSignal(rt.Root(), 0)

	runCount := 0
	e := rt.Root().Effect(func(tr *Tracker) error {
		_ = a.Get(tr) + b.Get(tr)
		runCount++
		return nil
	})

	e.Dispose()
	if !e.IsDisposed() {
		t.Error("IsDisposed should report true")
	}

	setA.Set(1)
	setB.Set(1)
	rt.Batch(func() {
		setA.Set(2)
		setB.Set(2)
	})

	if runCount != 1 {
		t.Errorf("disposed effect should never run again, got %d runs", runCount)
	}
	if e.Dependencies() != 0 {
		t.Errorf("disposed effect should have no dependencies, got %d", e.Dependencies())
	}

	// Disposing twice is harmless.
	e.Dispose()
}

func TestEffectDisposedWhileQueuedDoesNotRun(t *testing.T) {
	rt, _ := newTestRuntime()
	defer rt.Dispose()

	count, setCount := NewSignal(rt.Root(), 0)
	runs := 0
	e := rt.Root().Effect(func(tr *Tracker) error {
		_ = count.Get(tr)
		runs++
		return nil
	})

	rt.Batch(func() {
		setCount.Set(1)
		e.Dispose()
	})

	if runs != 1 {
		t.Errorf("effect disposed inside a batch should not run, got %d runs", runs)
	}
}

func TestEffectCleanupBeforeRerunAndOnDispose(t *testing.T) {
	rt, _ := newTestRuntime()

	count, setCount := NewSignal(rt.Root(), 0)
	cleanupCount := 0
	runCount := 0

	rt.Root().Effect(func(tr *Tracker) error {
		_ = count.Get(tr)
		runCount++
		tr.OnCleanup(func() { cleanupCount++ })
		return nil
	})

	if cleanupCount != 0 {
		t.Errorf("cleanup should not run immediately, got %d", cleanupCount)
	}

	setCount.Set(1)
	if runCount != 2 || cleanupCount != 1 {
		t.Errorf("expected 2 runs and 1 cleanup, got %d runs %d cleanups", runCount, cleanupCount)
	}

	rt.Dispose()
	if cleanupCount != 2 {
		t.Errorf("cleanup should run on dispose, got %d", cleanupCount)
	}
}

func TestEffectErrorIsIsolated(t *testing.T) {
	rt, errs := newTestRuntime()
	defer rt.Dispose()

	count, setCount := NewSignal(rt.Root(), 0)
	boom := errors.New("boom")

	var before, after []int
	rt.Root().Effect(func(tr *Tracker) error {
		before = append(before, count.Get(tr))
		return nil
	})
	rt.Root().Effect(func(tr *Tracker) error {
		if count.Get(tr) == 1 {
			return boom
		}
		return nil
	}, Named("flaky"))
	rt.Root().Effect(func(tr *Tracker) error {
		after = append(after, count.Get(tr))
		return nil
	})

	setCount.Set(1)

	if len(before) != 2 || len(after) != 2 {
		t.Fatalf("sibling effects should keep running, got before=%v after=%v", before, after)
	}
	if len(*errs) != 1 {
		t.Fatalf("expected 1 reported error, got %d", len(*errs))
	}
	err := (*errs)[0]
	if !errors.Is(err, ErrEffectExecution) {
		t.Errorf("expected ErrEffectExecution, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("expected the cause to be wrapped, got %v", err)
	}

	// The failing effect keeps its dependencies and recovers.
	setCount.Set(2)
	if len(*errs) != 1 {
		t.Errorf("expected no new errors, got %d", len(*errs))
	}
	if rt.Stats().EffectErrors != 1 {
		t.Errorf("expected 1 effect error in stats, got %d", rt.Stats().EffectErrors)
	}
}

func TestEffectPanicIsIsolated(t *testing.T) {
	rt, errs := newTestRuntime()
	defer rt.Dispose()

	count, setCount := NewSignal(rt.Root(), 0)
	runs := 0
	rt.Root().Effect(func(tr *Tracker) error {
		if count.Get(tr) > 0 {
			panic("exploded")
		}
		return nil
	})
	rt.Root().Effect(func(tr *Tracker) error {
		_ = count.Get(tr)
		runs++
		return nil
	})

	setCount.Set(1)

	if runs != 2 {
		t.Errorf("expected sibling to run twice, got %d", runs)
	}
	if len(*errs) != 1 || !errors.Is((*errs)[0], ErrEffectExecution) {
		t.Errorf("expected one ErrEffectExecution, got %v", *errs)
	}
}

func TestEffectNestedEffectsAreRecreatedPerRun(t *testing.T) {
	rt, _ := newTestRuntime()
	defer rt.Dispose()

	outer, setOuter := NewSignal(rt.Root(), 0)
	inner, setInner := NewSignal(rt.Root(), 0)

	innerRuns := 0
	rt.Root().Effect(func(tr *Tracker) error {
		_ = outer.Get(tr)
		tr.Scope().Effect(func(tr *Tracker) error {
			_ = inner.Get(tr)
			innerRuns++
			return nil
		})
		return nil
	})

	if innerRuns != 1 {
		t.Fatalf("expected 1 inner run, got %d", innerRuns)
	}

	// Re-running the parent disposes the old child and creates a new one.
	setOuter.Set(1)
	if innerRuns != 2 {
		t.Fatalf("expected 2 inner runs, got %d", innerRuns)
	}

	// Only the live child reacts.
	setInner.Set(1)
	if innerRuns != 3 {
		t.Errorf("expected exactly one live inner effect, got %d inner runs", innerRuns)
	}
}

func TestEffectOnDisposedScopeNeverRuns(t *testing.T) {
	rt, _ := newTestRuntime()
	scope := rt.Root().NewChild()
	scope.Dispose()

	ran := false
	e := scope.Effect(func(*Tracker) error {
		ran = true
		return nil
	})

	if ran {
		t.Error("effect on a disposed scope should not run")
	}
	if !e.IsDisposed() {
		t.Error("effect on a disposed scope should be disposed")
	}
}

func TestEffectWritingItsOwnDependencyReruns(t *testing.T) {
	rt, errs := newTestRuntime()
	defer rt.Dispose()

	count, setCount := NewSignal(rt.Root(), 0)
	runs := 0
	rt.Root().Effect(func(tr *Tracker) error {
		runs++
		if v := count.Get(tr); v < 3 {
			setCount.Set(v + 1)
		}
		return nil
	})

	if count.Peek() != 3 {
		t.Errorf("expected the effect to converge on 3, got %d", count.Peek())
	}
	if runs != 4 {
		t.Errorf("expected 4 runs, got %d", runs)
	}
	if len(*errs) != 0 {
		t.Errorf("expected no errors, got %v", *errs)
	}
}

func TestOnMountAndOnUpdate(t *testing.T) {
	rt, _ := newTestRuntime()
	defer rt.Dispose()

	count, setCount := NewSignal(rt.Root(), 0)

	mounted := 0
	rt.Root().OnMount(func() {
		_ = count.Peek()
		mounted++
	})

	updates := 0
	rt.Root().OnUpdate(
		func(tr *Tracker) { _ = count.Get(tr) },
		func() { updates++ },
	)

	if updates != 0 {
		t.Errorf("OnUpdate callback should not run on mount, got %d", updates)
	}

	setCount.Set(1)
	setCount.Set(2)

	if mounted != 1 {
		t.Errorf("OnMount should run once, got %d", mounted)
	}
	if updates != 2 {
		t.Errorf("expected 2 updates, got %d", updates)
	}
}

func TestEffectReadingDisposedScopeAbortsConstruction(t *testing.T) {
	rt, errs := newTestRuntime()
	defer rt.Dispose()

	scope := rt.Root().NewChild()
	count, _ := NewSignal(scope, 1)
	scope.Dispose()

	runs := 0
	r := expectPanic(func() {
		rt.Root().Effect(func(tr *Tracker) error {
			runs++
			_ = count.Get(tr)
			return nil
		})
	})

	err, ok := r.(error)
	if !ok || !errors.Is(err, ErrScopeDisposed) {
		t.Fatalf("expected ErrScopeDisposed panic, got %v", r)
	}
	if len(*errs) != 0 {
		t.Errorf("misuse should not be isolated, got %v", *errs)
	}
	if runs != 1 {
		t.Errorf("expected 1 run, got %d", runs)
	}
}

func TestEffectMisuseDuringFlushPanicsAndRuntimeRecovers(t *testing.T) {
	rt, errs := newTestRuntime()
	defer rt.Dispose()

	trigger, setTrigger := NewSignal(rt.Root(), 0)
	scope := rt.Root().NewChild()
	stale, _ := NewSignal(scope, "gone")

	broken := rt.Root().Effect(func(tr *Tracker) error {
		if trigger.Get(tr) > 0 {
			_ = stale.Get(tr)
		}
		return nil
	})
	scope.Dispose()

	r := expectPanic(func() { setTrigger.Set(1) })
	err, ok := r.(error)
	if !ok || !errors.Is(err, ErrScopeDisposed) {
		t.Fatalf("expected ErrScopeDisposed panic, got %v", r)
	}
	if !broken.IsDisposed() {
		t.Error("the failing effect should be disposed")
	}
	if rt.Pending() != 0 {
		t.Errorf("queue should be empty after the panic, got %d", rt.Pending())
	}

	var seen []int
	rt.Root().Effect(func(tr *Tracker) error {
		seen = append(seen, trigger.Get(tr))
		return nil
	})
	setTrigger.Set(2)
	if len(seen) != 2 || seen[1] != 2 {
		t.Errorf("runtime should keep scheduling after the panic, got %v", seen)
	}
	if len(*errs) != 0 {
		t.Errorf("unexpected isolated errors: %v", *errs)
	}
}

func TestMemoMisusePropagatesThroughReader(t *testing.T) {
	rt, errs := newTestRuntime()
	defer rt.Dispose()

	scope := rt.Root().NewChild()
	stale, _ := NewSignal(scope, 1)
	scope.Dispose()

	doubled := NewMemo(rt.Root(), func(tr *Tracker) int { return stale.Get(tr) * 2 })

	r := expectPanic(func() {
		rt.Root().Effect(func(tr *Tracker) error {
			_ = doubled.Get(tr)
			return nil
		})
	})
	if err, ok := r.(error); !ok || !errors.Is(err, ErrScopeDisposed) {
		t.Fatalf("expected ErrScopeDisposed panic, got %v", r)
	}
	if len(*errs) != 0 {
		t.Errorf("misuse should not be isolated, got %v", *errs)
	}

	// The memo stays stale and fails again on the next read.
	if r := expectPanic(func() { doubled.Peek() }); r == nil {
		t.Error("expected the stale memo to fail again")
	}
}
