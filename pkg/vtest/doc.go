// Package vtest provides testing helpers for verdigris components.
//
// The vtest package reduces boilerplate when testing reactive pages by
// providing a fluent harness builder, a recording presentation sink and
// assertions on composed trees.
//
// # Quick Start
//
//	func TestCounter(t *testing.T) {
//	    h := vtest.NewHarness().WithTheme(theme.DefaultTheme()).Build(t)
//	    page, err := demo.Mount(h.Root(), h.Sink)
//	    if err != nil {
//	        t.Fatalf("unexpected error: %v", err)
//	    }
//	    page.Click()
//	    vtest.ExpectTexts(t, h.Sink.Texts("counter"), "Click Me: 0", "Click Me: 1")
//	    h.ExpectNoErrors(t)
//	}
//
// # Fluent Harness Builder
//
// The builder allows chaining multiple setup operations:
//
//	h := vtest.NewHarness().
//	    WithTheme(night).
//	    WithMaxPasses(5).
//	    WithRuntimeOption(reactive.WithMetrics(m)).
//	    Build(t)
//
// The runtime is disposed when the test ends. Isolated errors (failed
// effects, aborted flushes) are collected in h.Errors instead of logged.
//
// # Tree Assertions
//
//	vtest.ExpectContains(t, node, "Click Me")
//	vtest.ExpectNotContains(t, node, "Error")
//	vtest.ExpectKindCount(t, node, kit.ButtonKind, 5)
package vtest
