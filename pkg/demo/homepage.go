package demo

import (
	"log/slog"
	"strconv"

	"github.com/verdigris-dev/verdigris/pkg/compose"
	"github.com/verdigris-dev/verdigris/pkg/kit"
	"github.com/verdigris-dev/verdigris/pkg/reactive"
	"github.com/verdigris-dev/verdigris/pkg/theme"
)

// Regions the page hands to its Sink.
const (
	RegionShowcase = "showcase"
	RegionCounter  = "counter"
)

// Sink is the presentation layer: it receives every composed subtree, keyed
// by the page region it replaces.
type Sink interface {
	Render(region string, node *compose.Node)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(region string, node *compose.Node)

// Render implements Sink.
func (f SinkFunc) Render(region string, node *compose.Node) {
	f(region, node)
}

// HomePage is a mounted showcase page.
type HomePage struct {
	scope    *reactive.Scope
	count    reactive.Reader[int]
	setCount reactive.Writer[int]
	counter  *reactive.Effect
	logger   *slog.Logger
}

// Mount composes the page on a child of parent and hands it to sink. The
// static showcase is rendered once; the counter button is recomposed by its
// own effect whenever the count changes. The theme comes from the nearest
// theme.Provide above parent.
func Mount(parent *reactive.Scope, sink Sink) (*HomePage, error) {
	scope := parent.NewChild()
	ctx := theme.From(scope)
	logger := parent.Runtime().Logger().With("page", "home")

	showcase, err := Showcase(ctx)
	if err != nil {
		scope.Dispose()
		return nil, err
	}
	sink.Render(RegionShowcase, showcase)

	p := &HomePage{scope: scope, logger: logger}
	p.count, p.setCount = reactive.NewSignal(scope, 0)
	p.counter = scope.Effect(func(tr *reactive.Tracker) error {
		node, err := CounterButton(ctx, p.count.Get(tr))
		if err != nil {
			return err
		}
		sink.Render(RegionCounter, node)
		return nil
	}, reactive.Named("counter-button"))

	logger.Debug("page mounted", "scope", scope.ID())
	return p, nil
}

// CounterButton composes the filled "Click Me: n" button.
func CounterButton(ctx *theme.Context, count int) (*compose.Node, error) {
	return kit.Button(theme.StyleProps{Variant: theme.Filled{}}).
		Text("Click Me: ", strconv.Itoa(count)).
		Build(ctx)
}

// Click is the event-layer entry for a click on the counter button. The
// increment runs as one dispatched event.
func (p *HomePage) Click() {
	p.scope.Runtime().Dispatch("click", func() {
		p.setCount.Update(func(n int) int { return n + 1 })
	})
}

// Count returns the current click count. It panics after Unmount.
func (p *HomePage) Count() int {
	return p.count.Peek()
}

// Scope returns the scope the page lives in.
func (p *HomePage) Scope() *reactive.Scope {
	return p.scope
}

// Unmount tears the page down. Clicks after Unmount are ignored.
func (p *HomePage) Unmount() {
	p.scope.Dispose()
	p.logger.Debug("page unmounted")
}
