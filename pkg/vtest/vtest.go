package vtest

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/verdigris-dev/verdigris/pkg/compose"
	"github.com/verdigris-dev/verdigris/pkg/config"
	"github.com/verdigris-dev/verdigris/pkg/reactive"
	"github.com/verdigris-dev/verdigris/pkg/theme"
)

// HarnessBuilder allows fluent construction of test harnesses.
type HarnessBuilder struct {
	theme  *theme.Theme
	config *config.Config
	logger *slog.Logger
	opts   []reactive.Option
}

// NewHarness creates a new harness builder for testing.
func NewHarness() *HarnessBuilder {
	return &HarnessBuilder{}
}

// WithTheme provides t on the root scope.
func (b *HarnessBuilder) WithTheme(t *theme.Theme) *HarnessBuilder {
	b.theme = t
	return b
}

// WithConfig builds the theme and runtime options from cfg. Metrics, when
// enabled, go to the harness's own registry. An explicit WithTheme wins
// over the configured theme.
func (b *HarnessBuilder) WithConfig(cfg *config.Config) *HarnessBuilder {
	b.config = cfg
	return b
}

// WithLogger sets the runtime logger. By default logs are discarded.
func (b *HarnessBuilder) WithLogger(logger *slog.Logger) *HarnessBuilder {
	b.logger = logger
	return b
}

// WithMaxPasses sets the pass budget of the runtime.
func (b *HarnessBuilder) WithMaxPasses(n int) *HarnessBuilder {
	b.opts = append(b.opts, reactive.WithMaxPasses(n))
	return b
}

// WithRuntimeOption adds an arbitrary runtime option.
func (b *HarnessBuilder) WithRuntimeOption(opt reactive.Option) *HarnessBuilder {
	b.opts = append(b.opts, opt)
	return b
}

// Build creates the harness. The runtime is disposed by t.Cleanup.
func (b *HarnessBuilder) Build(t testing.TB) *Harness {
	t.Helper()
	h := &Harness{Sink: NewRecorder()}

	logger := b.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	opts := []reactive.Option{
		reactive.WithLogger(logger),
		reactive.WithErrorHandler(func(err error) { h.Errors = append(h.Errors, err) }),
	}
	th := b.theme
	if b.config != nil {
		h.Registry = prometheus.NewRegistry()
		opts = append(opts, b.config.RuntimeOptions(logger, h.Registry)...)
		if th == nil {
			built, err := b.config.BuildTheme()
			if err != nil {
				t.Fatalf("vtest: invalid config theme: %v", err)
			}
			th = built
		}
	}
	h.Runtime = reactive.NewRuntime(append(opts, b.opts...)...)
	if th != nil {
		h.Theme = theme.Provide(h.Runtime.Root(), th)
	}
	t.Cleanup(h.Runtime.Dispose)
	return h
}

// Harness is a runtime wired for tests.
type Harness struct {
	Runtime *reactive.Runtime

	// Theme is the context provided on the root scope, or nil.
	Theme *theme.Context

	// Sink records everything rendered to it.
	Sink *Recorder

	// Errors are the isolated errors reported by the runtime.
	Errors []error

	// Registry holds the scheduler metrics of a configured harness, or nil.
	Registry *prometheus.Registry
}

// Root returns the runtime's root scope.
func (h *Harness) Root() *reactive.Scope {
	return h.Runtime.Root()
}

// ExpectNoErrors fails the test if the runtime reported any error.
func (h *Harness) ExpectNoErrors(t testing.TB) {
	t.Helper()
	for _, err := range h.Errors {
		t.Errorf("unexpected runtime error: %v", err)
	}
}

// Recorder is a presentation sink that keeps every render, per region.
type Recorder struct {
	renders map[string][]*compose.Node
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{renders: make(map[string][]*compose.Node)}
}

// Render records node as the latest render of region.
func (r *Recorder) Render(region string, node *compose.Node) {
	r.renders[region] = append(r.renders[region], node)
}

// Renders returns every node rendered to region, oldest first.
func (r *Recorder) Renders(region string) []*compose.Node {
	return r.renders[region]
}

// Last returns the latest node rendered to region, or nil.
func (r *Recorder) Last(region string) *compose.Node {
	nodes := r.renders[region]
	if len(nodes) == 0 {
		return nil
	}
	return nodes[len(nodes)-1]
}

// Texts returns the text content of every render of region.
func (r *Recorder) Texts(region string) []string {
	out := make([]string, 0, len(r.renders[region]))
	for _, n := range r.renders[region] {
		out = append(out, n.TextContent())
	}
	return out
}

// ExpectContains asserts that the node's text contains the substring.
func ExpectContains(t testing.TB, node *compose.Node, substr string) {
	t.Helper()
	if node == nil {
		t.Fatalf("ExpectContains: node is nil")
	}
	text := node.TextContent()
	if !strings.Contains(text, substr) {
		t.Errorf("expected text to contain %q\ngot: %s", substr, text)
	}
}

// ExpectNotContains asserts that the node's text does NOT contain the substring.
func ExpectNotContains(t testing.TB, node *compose.Node, substr string) {
	t.Helper()
	if node == nil {
		t.Fatalf("ExpectNotContains: node is nil")
	}
	text := node.TextContent()
	if strings.Contains(text, substr) {
		t.Errorf("expected text NOT to contain %q\ngot: %s", substr, text)
	}
}

// ExpectTexts asserts an exact sequence of rendered texts.
func ExpectTexts(t testing.TB, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d renders %q, got %d: %q", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("render %d = %q, want %q", i, got[i], want[i])
		}
	}
}

// ExpectKindCount asserts how many nodes of kind the tree contains.
func ExpectKindCount(t testing.TB, node *compose.Node, kind *compose.Kind, want int) {
	t.Helper()
	got := 0
	node.Walk(func(n *compose.Node) bool {
		if n.Kind() == kind {
			got++
		}
		return true
	})
	if got != want {
		t.Errorf("expected %d %s nodes, got %d", want, kind, got)
	}
}
