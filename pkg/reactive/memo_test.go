package reactive

import (
	"errors"
	"fmt"
	"testing"
)

func TestMemoIsLazy(t *testing.T) {
	rt, _ := newTestRuntime()
	defer rt.Dispose()

	count, setCount := NewSignal(rt.Root(), 1)
	computeCount := 0
	doubled := NewMemo(rt.Root(), func(tr *Tracker) int {
		computeCount++
		return count.Get(tr) * 2
	})

	if computeCount != 0 {
		t.Errorf("memo should not compute before first read, got %d", computeCount)
	}

	if v := doubled.Peek(); v != 2 {
		t.Errorf("expected 2, got %d", v)
	}
	_ = doubled.Peek()
	if computeCount != 1 {
		t.Errorf("cached reads should not recompute, got %d", computeCount)
	}

	// Unobserved: the write only marks the memo stale.
	setCount.Set(5)
	if computeCount != 1 {
		t.Errorf("unobserved memo should not recompute eagerly, got %d", computeCount)
	}
	if v := doubled.Peek(); v != 10 {
		t.Errorf("expected 10, got %d", v)
	}
	if computeCount != 2 {
		t.Errorf("expected 2 computations, got %d", computeCount)
	}
}

func TestMemoChain(t *testing.T) {
	rt, _ := newTestRuntime()
	defer rt.Dispose()

	base, setBase := NewSignal(rt.Root(), 2)
	squared := NewMemo(rt.Root(), func(tr *Tracker) int {
		v := base.Get(tr)
		return v * v
	})
	plusOne := NewMemo(rt.Root(), func(tr *Tracker) int {
		return squared.Get(tr) + 1
	})

	var seen []int
	rt.Root().Effect(func(tr *Tracker) error {
		seen = append(seen, plusOne.Get(tr))
		return nil
	})

	setBase.Set(3)

	want := []int{5, 10}
	if len(seen) != len(want) {
		t.Fatalf("expected %v, got %v", want, seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("seen[%d] = %d, want %d", i, seen[i], want[i])
		}
	}
}

func TestMemoDiamondIsGlitchFree(t *testing.T) {
	rt, _ := newTestRuntime()
	defer rt.Dispose()

	s, setS := NewSignal(rt.Root(), 1)
	a := NewMemo(rt.Root(), func(tr *Tracker) int { return s.Get(tr) * 2 })
	b := NewMemo(rt.Root(), func(tr *Tracker) int { return s.Get(tr) * 3 })

	type pair struct{ a, b int }
	var seen []pair
	rt.Root().Effect(func(tr *Tracker) error {
		seen = append(seen, pair{a.Get(tr), b.Get(tr)})
		return nil
	})

	setS.Set(2)

	if len(seen) != 2 {
		t.Fatalf("consumer should run once per write, got %v", seen)
	}
	if seen[1] != (pair{4, 6}) {
		t.Errorf("consumer observed a torn state: %v", seen[1])
	}
}

func TestEffectDiamondIsGlitchFree(t *testing.T) {
	rt, _ := newTestRuntime()
	defer rt.Dispose()

	s, setS := NewSignal(rt.Root(), 1)
	x, setX := NewSignal(rt.Root(), 0)
	y, setY := NewSignal(rt.Root(), 0)

	rt.Root().Effect(func(tr *Tracker) error {
		setX.Set(s.Get(tr) * 2)
		return nil
	}, Named("writeX"))
	rt.Root().Effect(func(tr *Tracker) error {
		setY.Set(s.Get(tr) * 3)
		return nil
	}, Named("writeY"))

	type pair struct{ x, y int }
	var seen []pair
	rt.Root().Effect(func(tr *Tracker) error {
		seen = append(seen, pair{x.Get(tr), y.Get(tr)})
		return nil
	}, Named("consumer"))

	setS.Set(2)

	if len(seen) != 2 {
		t.Fatalf("consumer should run once after both writers, got %v", seen)
	}
	if seen[0] != (pair{2, 3}) {
		t.Errorf("initial run = %v, want {2 3}", seen[0])
	}
	if seen[1] != (pair{4, 6}) {
		t.Errorf("consumer observed a torn state: %v", seen[1])
	}
}

func TestMemoEqualityCutoff(t *testing.T) {
	rt, _ := newTestRuntime()
	defer rt.Dispose()

	count, setCount := NewSignal(rt.Root(), 0)
	parity := NewMemo(rt.Root(), func(tr *Tracker) int {
		return count.Get(tr) % 2
	})

	runs := 0
	rt.Root().Effect(func(tr *Tracker) error {
		_ = parity.Get(tr)
		runs++
		return nil
	})

	setCount.Set(2)
	if runs != 1 {
		t.Errorf("unchanged memo value should not rerun consumers, got %d runs", runs)
	}
	if parity.Version() != 1 {
		t.Errorf("expected version 1, got %d", parity.Version())
	}

	setCount.Set(3)
	if runs != 2 {
		t.Errorf("changed memo value should rerun consumers, got %d runs", runs)
	}
	if parity.Version() != 2 {
		t.Errorf("expected version 2, got %d", parity.Version())
	}
}

func TestMemoCustomEquals(t *testing.T) {
	rt, _ := newTestRuntime()
	defer rt.Dispose()

	name, setName := NewSignal(rt.Root(), "Ada")
	upper := NewMemo(rt.Root(), func(tr *Tracker) string {
		return name.Get(tr)
	}, MemoEquals(func(a, b string) bool { return len(a) == len(b) }), MemoName[string]("name"))

	runs := 0
	rt.Root().Effect(func(tr *Tracker) error {
		_ = upper.Get(tr)
		runs++
		return nil
	})

	setName.Set("Bob")
	if runs != 1 {
		t.Errorf("same-length names compare equal, got %d runs", runs)
	}
	setName.Set("Grace")
	if runs != 2 {
		t.Errorf("expected 2 runs, got %d", runs)
	}
}

func TestMemoReaderAndDispose(t *testing.T) {
	rt, _ := newTestRuntime()
	defer rt.Dispose()

	count, _ := NewSignal(rt.Root(), 4)
	half := NewMemo(rt.Root(), func(tr *Tracker) int { return count.Get(tr) / 2 })

	r := half.Reader()
	if r.Peek() != 2 {
		t.Errorf("expected 2, got %d", r.Peek())
	}
	if r.ID() != half.ID() {
		t.Error("reader should share the memo's id")
	}

	half.Dispose()
	p := expectPanic(func() { half.Peek() })
	err, ok := p.(error)
	if !ok || !errors.Is(err, ErrScopeDisposed) {
		t.Errorf("expected ErrScopeDisposed panic, got %v", p)
	}
}

func TestMemoPanicIsReported(t *testing.T) {
	rt, errs := newTestRuntime()
	defer rt.Dispose()

	count, setCount := NewSignal(rt.Root(), 1)
	inverse := NewMemo(rt.Root(), func(tr *Tracker) int {
		return 100 / count.Get(tr)
	}, MemoName[int]("inverse"))

	var seen []int
	rt.Root().Effect(func(tr *Tracker) error {
		seen = append(seen, inverse.Get(tr))
		return nil
	})

	setCount.Set(0)
	if len(*errs) == 0 || !errors.Is((*errs)[0], ErrEffectExecution) {
		t.Fatalf("expected memo panic to be reported, got %v", *errs)
	}

	setCount.Set(4)
	if seen[len(seen)-1] != 25 {
		t.Errorf("memo should recover after the failure, got %v", seen)
	}
}

func TestMemoStats(t *testing.T) {
	rt, _ := newTestRuntime()
	defer rt.Dispose()

	count, setCount := NewSignal(rt.Root(), 1)
	m := NewMemo(rt.Root(), func(tr *Tracker) int { return count.Get(tr) + 1 })
	rt.Root().Effect(func(tr *Tracker) error {
		_ = m.Get(tr)
		return nil
	})
	setCount.Set(2)

	if got := rt.Stats().MemoRecomputes; got != 2 {
		t.Errorf("expected 2 memo recomputes, got %d", got)
	}
}

func TestMemoDeepeningDependenciesStayGlitchFree(t *testing.T) {
	rt, errs := newTestRuntime()
	defer rt.Dispose()

	useChain, setUseChain := NewSignal(rt.Root(), false)
	count, setCount := NewSignal(rt.Root(), 1)

	var chained *Memo[int]
	selected := NewMemo(rt.Root(), func(tr *Tracker) int {
		if useChain.Get(tr) {
			return chained.Get(tr)
		}
		return count.Get(tr)
	})

	type observation struct{ count, selected int }
	var seen []observation
	rt.Root().Effect(func(tr *Tracker) error {
		seen = append(seen, observation{count.Get(tr), selected.Get(tr)})
		return nil
	})

	// Created after the effect, so they sort after it on equal heights.
	mirror := NewMemo(rt.Root(), func(tr *Tracker) int { return count.Get(tr) })
	chained = NewMemo(rt.Root(), func(tr *Tracker) int { return mirror.Get(tr) })

	setUseChain.Set(true)
	if len(seen) != 1 {
		t.Fatalf("switching to an equal value should not rerun the effect, got %v", seen)
	}

	setCount.Set(2)
	want := []observation{{1, 1}, {2, 2}}
	if len(seen) != len(want) {
		t.Fatalf("expected %v, got %v", want, seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("observation %d = %v, want %v", i, seen[i], want[i])
		}
	}
	if len(*errs) != 0 {
		t.Errorf("unexpected errors: %v", *errs)
	}
}

func TestMemoHeightRaiseReachesIndirectConsumers(t *testing.T) {
	rt, _ := newTestRuntime()
	defer rt.Dispose()

	useChain, setUseChain := NewSignal(rt.Root(), false)
	count, setCount := NewSignal(rt.Root(), 1)

	var chained *Memo[int]
	selected := NewMemo(rt.Root(), func(tr *Tracker) int {
		if useChain.Get(tr) {
			return chained.Get(tr)
		}
		return count.Get(tr)
	})
	scaled := NewMemo(rt.Root(), func(tr *Tracker) int { return selected.Get(tr) * 10 })

	var seen []string
	rt.Root().Effect(func(tr *Tracker) error {
		seen = append(seen, fmt.Sprintf("%d/%d", count.Get(tr), scaled.Get(tr)))
		return nil
	})

	mirror := NewMemo(rt.Root(), func(tr *Tracker) int { return count.Get(tr) })
	twice := NewMemo(rt.Root(), func(tr *Tracker) int { return mirror.Get(tr) })
	chained = NewMemo(rt.Root(), func(tr *Tracker) int { return twice.Get(tr) })

	setUseChain.Set(true)
	setCount.Set(3)

	want := []string{"1/10", "3/30"}
	if len(seen) != len(want) || seen[0] != want[0] || seen[1] != want[1] {
		t.Errorf("expected %v, got %v", want, seen)
	}
}

func TestMemoReadingItselfIsNotADependency(t *testing.T) {
	rt, _ := newTestRuntime()
	defer rt.Dispose()

	count, setCount := NewSignal(rt.Root(), 1)
	var total *Memo[int]
	total = NewMemo(rt.Root(), func(tr *Tracker) int {
		return total.Get(tr) + count.Get(tr)
	})

	var seen []int
	rt.Root().Effect(func(tr *Tracker) error {
		seen = append(seen, total.Get(tr))
		return nil
	})
	setCount.Set(2)

	if len(seen) != 2 || seen[0] != 1 || seen[1] != 3 {
		t.Errorf("expected [1 3], got %v", seen)
	}
}
