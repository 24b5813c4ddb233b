package theme

import "github.com/verdigris-dev/verdigris/pkg/reactive"

// Context is an immutable Theme Context. Contexts nest: a provider wraps
// the enclosing context and shadows its theme for every descendant.
//
// A nil *Context is valid and resolves against DefaultTheme.
type Context struct {
	parent *Context
	theme  *Theme
}

// NewContext returns a root context for t. The theme is copied; later
// changes to t are not observed.
func NewContext(t *Theme) *Context {
	if t == nil {
		t = DefaultTheme()
	}
	return &Context{theme: t.Clone()}
}

// Provide returns a nested context in which t shadows c's theme.
func (c *Context) Provide(t *Theme) *Context {
	if t == nil {
		return c
	}
	return &Context{parent: c, theme: t.Clone()}
}

// Derive returns a nested context holding a copy of c's theme modified by
// fn. c itself is unchanged.
func (c *Context) Derive(fn func(t *Theme)) *Context {
	t := c.active().Clone()
	fn(t)
	return &Context{parent: c, theme: t}
}

// Theme returns a copy of the active theme.
func (c *Context) Theme() *Theme {
	return c.active().Clone()
}

// Parent returns the enclosing context, or nil at the root.
func (c *Context) Parent() *Context {
	if c == nil {
		return nil
	}
	return c.parent
}

// Depth returns the number of providers between c and the root.
func (c *Context) Depth() int {
	d := 0
	for cur := c; cur != nil && cur.parent != nil; cur = cur.parent {
		d++
	}
	return d
}

// active returns the shared theme; callers must not modify it.
func (c *Context) active() *Theme {
	if c == nil || c.theme == nil {
		return defaultTheme
	}
	return c.theme
}

var defaultTheme = DefaultTheme()

type scopeKey struct{}

// Provide attaches a nested context for t to scope: every descendant scope
// created afterwards sees it through From. The returned context is the one
// attached.
func Provide(scope *reactive.Scope, t *Theme) *Context {
	ctx := From(scope).Provide(t)
	scope.SetValue(scopeKey{}, ctx)
	return ctx
}

// From returns the context provided by scope or its nearest ancestor, or nil
// when none was provided.
func From(scope *reactive.Scope) *Context {
	if scope == nil {
		return nil
	}
	if v, ok := scope.Value(scopeKey{}); ok {
		return v.(*Context)
	}
	return nil
}
