// Package compose builds immutable component trees.
//
// A Kind declares a component identity: its name, the named slots it
// accepts, and a template describing where its default children and slot
// contents go. A Node is one composed instance of a Kind. Nodes are
// immutable once built; the presentation layer reads them through accessor
// methods and Layout.
//
// Nodes are usually built with the Builder:
//
//	node, err := compose.New(kit.ButtonKind).
//	    Style(theme.StyleProps{Variant: theme.Filled{}}).
//	    Slot("leftIcon", icon).
//	    Text("Click Me").
//	    Build(themeCtx)
//
// Composition is pure: it never reads or writes signals. Calling Compose
// twice with the same arguments and Theme Context returns Equal nodes.
package compose
