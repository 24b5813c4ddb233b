package compose

import (
	stderrors "errors"

	"github.com/verdigris-dev/verdigris/internal/errors"
	"github.com/verdigris-dev/verdigris/pkg/theme"
)

// Builder assembles a node step by step. Mistakes are collected as they
// happen and returned together from Build; a Builder is single-use.
type Builder struct {
	kind *Kind
	in   Input
	errs []error
}

// New starts a builder for kind.
func New(kind *Kind) *Builder {
	return &Builder{kind: kind}
}

// Prop sets a prop.
func (b *Builder) Prop(name string, value any) *Builder {
	if b.in.Props == nil {
		b.in.Props = make(Props)
	}
	b.in.Props[name] = value
	return b
}

// Style sets the style intent.
func (b *Builder) Style(sp theme.StyleProps) *Builder {
	b.in.Style = sp
	return b
}

// StyleWith edits the style intent in place.
func (b *Builder) StyleWith(fn func(sp *theme.StyleProps)) *Builder {
	fn(&b.in.Style)
	return b
}

// Child appends nodes to the default children. Nil nodes are skipped.
func (b *Builder) Child(nodes ...*Node) *Builder {
	for _, n := range nodes {
		if n != nil {
			b.in.Children = append(b.in.Children, Component(n))
		}
	}
	return b
}

// Text appends text to the default children.
func (b *Builder) Text(parts ...string) *Builder {
	for _, s := range parts {
		b.in.Children = append(b.in.Children, Text(s))
	}
	return b
}

// Content appends prebuilt content to the default children.
func (b *Builder) Content(cs ...Content) *Builder {
	b.in.Children = append(b.in.Children, cs...)
	return b
}

// Slot places n in the named slot. An undeclared name is reported by Build.
func (b *Builder) Slot(name string, n *Node) *Builder {
	if b.kind != nil && !b.kind.HasSlot(name) {
		b.errs = append(b.errs, unknownSlot(b.kind, name))
		return b
	}
	if b.in.Slots == nil {
		b.in.Slots = make(map[string]*Node)
	}
	b.in.Slots[name] = n
	return b
}

// Add builds child and appends it, carrying its errors over.
func (b *Builder) Add(child *Builder, ctx *theme.Context) *Builder {
	n, err := child.Build(ctx)
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	return b.Child(n)
}

// Fail records an error found while preparing the node; Build returns it.
func (b *Builder) Fail(err error) *Builder {
	if err != nil {
		b.errs = append(b.errs, err)
	}
	return b
}

// Err returns the errors collected so far, joined.
func (b *Builder) Err() error {
	return stderrors.Join(b.errs...)
}

// Build composes the node against ctx.
func (b *Builder) Build(ctx *theme.Context) (*Node, error) {
	if b.kind == nil {
		b.errs = append(b.errs, errors.New("E032"))
	}
	if len(b.errs) > 0 {
		return nil, b.Err()
	}
	return Compose(b.kind, b.in, ctx)
}

// MustBuild is like Build but panics on error. For static trees known to be
// valid.
func (b *Builder) MustBuild(ctx *theme.Context) *Node {
	n, err := b.Build(ctx)
	if err != nil {
		panic(err)
	}
	return n
}
