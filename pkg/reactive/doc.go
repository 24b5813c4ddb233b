// Package reactive provides the signal store and effect scheduler for verdigris.
//
// The reactive system provides fine-grained reactivity: dependencies are
// tracked automatically at runtime. Reading a signal through a Tracker during
// an effect or memo run subscribes that computation to the signal.
//
// # Core Types
//
// Signals are typed state cells created on a Scope:
//
//	rt := reactive.NewRuntime()
//	count, setCount := reactive.NewSignal(rt.Root(), 0)
//	setCount.Set(5)
//	setCount.Update(func(n int) int { return n + 1 })
//
// Memos are cached derived computations:
//
//	doubled := reactive.NewMemo(rt.Root(), func(tr *reactive.Tracker) int {
//	    return count.Get(tr) * 2
//	})
//
// Effects run side effects when their dependencies change:
//
//	rt.Root().Effect(func(tr *reactive.Tracker) error {
//	    fmt.Println("Count is:", count.Get(tr))
//	    return nil
//	})
//
// # Tracking
//
// There is no ambient "current listener". Every effect and memo body
// receives a *Tracker and passes it to the reads it wants tracked. Peek reads
// without tracking. Dependencies are re-collected from scratch on every run,
// so a branch that stops reading a signal also stops being notified by it.
//
// # Scheduling
//
// A write marks subscribers dirty and, unless a batch is open, flushes
// immediately. A flush runs dirty computations in height order (a memo's
// height is one more than its highest source), so producers always finish
// before consumers and no computation observes a half-applied update.
// Writes made by effects during a flush are picked up by the next pass, so a
// consumer of several effect-written signals runs once, after all writers.
// A runaway loop is cut off after the pass budget (WithMaxPasses).
//
// # Batching
//
// Multiple writes can be coalesced into one flush:
//
//	rt.Batch(func() {
//	    setFirst.Set("John")
//	    setLast.Set("Doe")
//	})
//
// # Thread Safety
//
// A Runtime is single-threaded. All reads, writes and disposals must happen
// on the goroutine that drives the runtime; there are no locks.
package reactive
