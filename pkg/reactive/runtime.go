package reactive

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/verdigris-dev/verdigris/internal/errors"
)

// tracerName is the instrumentation name used with the global provider.
const tracerName = "github.com/verdigris-dev/verdigris/pkg/reactive"

// ErrorHandler receives errors the scheduler isolates instead of returning:
// failed effect runs (ErrEffectExecution) and aborted flushes
// (ErrReactiveLoop).
type ErrorHandler func(err error)

// Stats are cumulative scheduler counters.
type Stats struct {
	EffectRuns     uint64
	EffectErrors   uint64
	MemoRecomputes uint64
	Passes         uint64
	Flushes        uint64
	Loops          uint64
}

// Runtime owns the dependency graph, the scheduler state and the root scope.
// It is single-threaded: drive it from one goroutine.
type Runtime struct {
	root   *Scope
	lastID uint64

	logger  *slog.Logger
	onError ErrorHandler
	metrics *Metrics
	tracer  trace.Tracer
	ctx     context.Context
	budget  *passBudget

	batchDepth int
	flushing   bool
	queue      dirtyQueue

	// ran holds the computations that already ran in the current pass.
	ran map[*computation]struct{}

	// deferred are computations dirtied after they ran in the current pass.
	deferred []*computation

	stats Stats
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithLogger sets the logger. If nil, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(rt *Runtime) {
		if logger != nil {
			rt.logger = logger
		}
	}
}

// WithErrorHandler sets the observer for isolated errors. Without one,
// errors are logged at error level.
func WithErrorHandler(h ErrorHandler) Option {
	return func(rt *Runtime) {
		rt.onError = h
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(rt *Runtime) {
		rt.metrics = m
	}
}

// WithTracer sets the tracer used for flush spans. Defaults to the tracer of
// the global OpenTelemetry provider.
func WithTracer(t trace.Tracer) Option {
	return func(rt *Runtime) {
		if t != nil {
			rt.tracer = t
		}
	}
}

// WithContext sets the parent context of flush spans.
func WithContext(ctx context.Context) Option {
	return func(rt *Runtime) {
		if ctx != nil {
			rt.ctx = ctx
		}
	}
}

// WithMaxPasses sets the pass budget of one flush (default DefaultMaxPasses).
func WithMaxPasses(n int) Option {
	return func(rt *Runtime) {
		rt.budget = newPassBudget(n)
	}
}

// NewRuntime creates a runtime with an empty root scope.
func NewRuntime(opts ...Option) *Runtime {
	rt := &Runtime{
		logger: slog.Default().With("component", "reactive"),
		tracer: otel.Tracer(tracerName),
		ctx:    context.Background(),
		budget: newPassBudget(DefaultMaxPasses),
	}
	for _, opt := range opts {
		opt(rt)
	}
	rt.root = newScope(rt, nil)
	return rt
}

// Root returns the runtime's root scope.
func (rt *Runtime) Root() *Scope {
	return rt.root
}

// Logger returns the runtime logger.
func (rt *Runtime) Logger() *slog.Logger {
	return rt.logger
}

// Stats returns a snapshot of the scheduler counters.
func (rt *Runtime) Stats() Stats {
	return rt.stats
}

// Pending returns the number of computations waiting for a flush.
func (rt *Runtime) Pending() int {
	return rt.queue.Len()
}

// Dispose tears down the root scope and everything in it.
func (rt *Runtime) Dispose() {
	rt.root.Dispose()
}

func (rt *Runtime) nextID() uint64 {
	rt.lastID++
	return rt.lastID
}

// Batch groups multiple signal writes into a single flush. Dirty effects
// run once, after fn returns, and observe every write made inside it.
//
// Batches can be nested. The flush only happens when the outermost batch
// completes.
func (rt *Runtime) Batch(fn func()) {
	rt.batchDepth++
	defer func() {
		rt.batchDepth--
		rt.requestFlush()
	}()
	fn()
}

// Dispatch runs fn as one externally triggered event (a click, a key press):
// all writes inside it are batched into a single flush.
func (rt *Runtime) Dispatch(name string, fn func()) {
	rt.logger.Debug("dispatch", "event", name)
	rt.Batch(fn)
}

// Flush runs pending computations now. Writes outside a batch flush on
// their own; Flush is only needed after manual queue manipulation such as
// a pull that happened inside a batch.
func (rt *Runtime) Flush() {
	rt.requestFlush()
}

// markDirty flags c and queues it for the current or next pass.
//
// During a flush, computations dirtied by a signal write always wait for the
// next pass: the writer's siblings in the current pass may write too, and a
// consumer must see all of those writes at once. Computations dirtied by a
// memo join the current pass, where height order already places them after
// the memo.
func (rt *Runtime) markDirty(c *computation, viaWrite bool) {
	if c.disposed || c.dirty {
		return
	}
	c.dirty = true

	// Unobserved memos stay lazy; the next read recomputes them.
	if c.kind == kindMemo && c.output != nil && len(c.output.subs) == 0 {
		return
	}

	if rt.flushing {
		if _, ok := rt.ran[c]; ok || viaWrite {
			rt.deferred = append(rt.deferred, c)
			return
		}
	}
	rt.queue.push(c)
}

// requestFlush flushes unless a batch is open or a flush is in progress.
func (rt *Runtime) requestFlush() {
	if rt.batchDepth > 0 || rt.flushing {
		return
	}
	rt.flush()
}

// runInitial executes a freshly created computation. Writes made by its
// first run are batched behind it.
func (rt *Runtime) runInitial(c *computation) {
	if rt.flushing {
		rt.ran[c] = struct{}{}
		rt.run(c)
		return
	}
	rt.batchDepth++
	completed := false
	defer func() {
		rt.batchDepth--
		if completed {
			rt.requestFlush()
		}
	}()
	rt.run(c)
	completed = true
}

// pull recomputes a stale memo on demand.
func (rt *Runtime) pull(c *computation) {
	if rt.flushing {
		rt.ran[c] = struct{}{}
	}
	rt.run(c)
	rt.requestFlush()
}

// run executes c, converting a panic into an isolated error. Misuse panics
// (reads through a disposed scope or a foreign tracker) are not isolated:
// an effect is disposed, a memo stays stale, and the panic continues.
func (rt *Runtime) run(c *computation) {
	defer func() {
		if r := recover(); r != nil {
			if isMisuse(r) {
				if c.kind == kindEffect {
					c.dispose()
				} else {
					c.dirty = true
				}
				panic(r)
			}
			var cause error
			if err, ok := r.(error); ok {
				cause = fmt.Errorf("panic: %w", err)
			} else {
				cause = fmt.Errorf("panic: %v", r)
			}
			rt.reportComputationError(c, cause)
		}
	}()
	c.execute()
}

func isMisuse(r any) bool {
	err, ok := r.(error)
	if !ok {
		return false
	}
	return stderrors.Is(err, ErrScopeDisposed) || stderrors.Is(err, ErrForeignTracker)
}

// flush runs dirty computations pass by pass until none are left or the
// pass budget is exhausted.
func (rt *Runtime) flush() {
	if rt.queue.Len() == 0 {
		return
	}
	rt.flushing = true
	defer func() {
		// Only still set when a misuse panic unwinds through the flush.
		if rt.flushing {
			rt.queue.drain()
			rt.deferred = nil
			rt.ran = nil
			rt.flushing = false
		}
	}()
	start := time.Now()
	_, span := rt.tracer.Start(rt.ctx, "reactive.flush")
	defer span.End()

	rt.budget.reset()
	runs := 0
	aborted := false

	for rt.queue.Len() > 0 {
		if !rt.budget.next() {
			aborted = true
			break
		}
		rt.stats.Passes++
		rt.metrics.passStarted()
		rt.ran = make(map[*computation]struct{})

		for rt.queue.Len() > 0 {
			c := rt.queue.pop()
			if c.disposed || !c.dirty {
				continue
			}
			rt.ran[c] = struct{}{}
			rt.run(c)
			runs++
		}

		deferred := rt.deferred
		rt.deferred = nil
		for _, c := range deferred {
			if !c.disposed && c.dirty {
				rt.queue.push(c)
			}
		}
	}

	if aborted {
		dropped := rt.queue.drain()
		rt.stats.Loops++
		rt.metrics.loopDetected()
		err := errors.New("E006").
			WithField("passes", rt.budget.max).
			WithField("dropped", dropped)
		span.RecordError(err)
		span.SetStatus(codes.Error, "reactive loop")
		rt.report(err)
	}

	rt.ran = nil
	rt.flushing = false
	rt.stats.Flushes++

	span.SetAttributes(
		attribute.Int("verdigris.passes", rt.budget.used),
		attribute.Int("verdigris.runs", runs),
	)
	rt.metrics.flushObserved(time.Since(start))
}

// reportComputationError wraps err as an effect execution error and reports it.
func (rt *Runtime) reportComputationError(c *computation, err error) {
	rt.stats.EffectErrors++
	rt.metrics.effectFailed(c.kind)

	name := c.name
	if name == "" {
		name = fmt.Sprintf("%s#%d", c.kind, c.id)
	}
	ke := errors.New("E040").
		Wrap(err).
		WithField("effect", name).
		WithField("kind", c.kind.String())
	rt.report(ke)
}

// report hands an isolated error to the observer, or logs it.
func (rt *Runtime) report(err error) {
	if rt.onError != nil {
		rt.onError(err)
		return
	}
	if ke, ok := err.(*errors.KitError); ok {
		rt.logger.Error(ke.Message, ke.LogAttrs()...)
		return
	}
	rt.logger.Error("reactive error", "error", err)
}
