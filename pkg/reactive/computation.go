package reactive

type computationKind uint8

const (
	kindEffect computationKind = iota + 1
	kindMemo
)

// String returns a human-readable name for the computation kind.
func (k computationKind) String() string {
	switch k {
	case kindEffect:
		return "effect"
	case kindMemo:
		return "memo"
	default:
		return "unknown"
	}
}

// computation is a node in the dependency graph that re-runs when one of
// its sources changes. Effects and memos both wrap one.
type computation struct {
	id    uint64
	name  string
	kind  computationKind
	rt    *Runtime
	owner *Scope

	// exec runs the body with dependency tracking in place.
	exec func(tr *Tracker)

	// sources are the signals/memos read during the most recent run.
	sources []*source

	// runScope owns everything created during the current run.
	runScope *Scope

	// cleanups registered through Tracker.OnCleanup during the current run.
	cleanups []func()

	// tracker is the tracker handed to the current run.
	tracker *Tracker

	// output is the memo's own source; its height follows the computation.
	output *source

	height   int
	dirty    bool
	queued   bool
	running  bool
	disposed bool
}

// track records a read of src during the current run. A memo reading its
// own value is not a dependency.
func (c *computation) track(src *source) {
	if src == c.output {
		return
	}
	for _, s := range c.sources {
		if s == src {
			return
		}
	}
	c.sources = append(c.sources, src)
	src.subscribe(c)
}

// dropSource forgets a source that was released by its scope.
func (c *computation) dropSource(src *source) {
	for i, s := range c.sources {
		if s == src {
			c.sources = append(c.sources[:i], c.sources[i+1:]...)
			return
		}
	}
}

// clearSources unsubscribes from every source of the previous run.
func (c *computation) clearSources() {
	for _, src := range c.sources {
		src.unsubscribe(c)
	}
	c.sources = c.sources[:0]
}

// runCleanups runs and clears cleanups in reverse registration order.
func (c *computation) runCleanups() {
	cleanups := c.cleanups
	c.cleanups = nil
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}

// teardown releases everything owned by the previous run.
func (c *computation) teardown() {
	if c.tracker != nil {
		c.tracker.expired = true
		c.tracker = nil
	}
	c.runCleanups()
	if c.runScope != nil {
		c.runScope.Dispose()
		c.runScope = nil
	}
	c.clearSources()
}

// execute re-runs the computation from a clean slate: previous
// dependencies, cleanups and child scope are discarded first.
func (c *computation) execute() {
	if c.disposed {
		return
	}
	c.dirty = false
	c.teardown()

	c.runScope = c.owner.NewChild()
	tr := &Tracker{rt: c.rt, comp: c}
	c.tracker = tr

	c.running = true
	defer func() { c.running = false }()
	c.exec(tr)

	c.setHeight(c.computeHeight())
}

// setHeight records c's new height. Consumers always stay strictly above
// their sources, so a raise is pushed down to them.
func (c *computation) setHeight(h int) {
	raised := h > c.height
	changed := h != c.height
	c.height = h
	if c.output != nil {
		c.output.height = h
	}
	// A memo pulled ahead of its turn may still sit in the queue.
	if changed && c.queued {
		c.rt.queue.fix(c)
	}
	if raised {
		c.raiseConsumers(map[*computation]bool{c: true})
	}
}

// raiseConsumers lifts the subscribers of c's output above c. path holds
// the computations on the current walk and stops it at read cycles.
func (c *computation) raiseConsumers(path map[*computation]bool) {
	if c.output == nil {
		return
	}
	for _, sub := range c.output.subs {
		if path[sub] || sub.disposed || sub.height > c.height {
			continue
		}
		sub.height = c.height + 1
		if sub.output != nil {
			sub.output.height = sub.height
		}
		if sub.queued {
			c.rt.queue.fix(sub)
		}
		path[sub] = true
		sub.raiseConsumers(path)
		delete(path, sub)
	}
}

// computeHeight returns one more than the highest source height.
func (c *computation) computeHeight() int {
	h := 0
	for _, src := range c.sources {
		if src.height > h {
			h = src.height
		}
	}
	return h + 1
}

// dispose stops the computation permanently.
func (c *computation) dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.dirty = false
	c.teardown()
	c.sources = nil
	if c.owner != nil {
		c.owner.removeComputation(c)
	}
}
