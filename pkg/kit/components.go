package kit

import (
	"github.com/verdigris-dev/verdigris/internal/errors"
	"github.com/verdigris-dev/verdigris/pkg/compose"
	"github.com/verdigris-dev/verdigris/pkg/theme"
)

// Button starts a button. The variant defaults to the theme's.
func Button(style theme.StyleProps) *compose.Builder {
	return compose.New(ButtonKind).Style(style)
}

// Badge starts a badge. Set style.Dot for a dot badge.
func Badge(style theme.StyleProps) *compose.Builder {
	return compose.New(BadgeKind).Style(style)
}

// Card starts a card. Bordered and HoverTilt are read from style.
func Card(style theme.StyleProps) *compose.Builder {
	return compose.New(CardKind).Style(style)
}

// Alert starts an alert with a title. Alerts are Light unless style says
// otherwise.
func Alert(title string, style theme.StyleProps) *compose.Builder {
	if style.Variant == nil {
		style.Variant = theme.Light{}
	}
	return compose.New(AlertKind).Style(style).Prop(PropTitle, title)
}

// Space starts a spacer. Zero sizes leave that axis unset; the others are
// converted to pixels with the theme spacing of the same level.
func Space(ctx *theme.Context, width, height theme.Size) *compose.Builder {
	b := compose.New(SpaceKind)
	spacing := ctx.Theme().Spacing
	for _, axis := range []struct {
		prop string
		size theme.Size
	}{{PropWidth, width}, {PropHeight, height}} {
		if axis.size == theme.SizeDefault {
			continue
		}
		px, ok := spacing[spacingLevel(axis.size)]
		if !ok {
			return b.Fail(errors.New("E031").
				WithField("kind", SpaceKind.Name).
				WithField("prop", axis.prop).
				WithField("size", axis.size.String()))
		}
		b.Prop(axis.prop, px)
	}
	return b
}

func spacingLevel(s theme.Size) theme.Padding {
	switch s {
	case theme.SizeXS:
		return theme.PaddingXS
	case theme.SizeSM:
		return theme.PaddingSM
	case theme.SizeMD:
		return theme.PaddingMD
	case theme.SizeLG:
		return theme.PaddingLG
	case theme.SizeXL:
		return theme.PaddingXL
	default:
		return theme.PaddingDefault
	}
}

// Flex starts a flex row.
func Flex() *compose.Builder {
	return compose.New(FlexKind)
}

// Grid starts a grid with the given number of columns (0 for automatic).
func Grid(columns int) *compose.Builder {
	b := compose.New(GridKind)
	if columns > 0 {
		b.Prop(PropColumns, columns)
	}
	return b
}

// Section groups a titled block of the showcase.
func Section() *compose.Builder {
	return compose.New(SectionKind)
}

// Code starts an inline code span (or a block) highlighted with the named
// color; "" selects the theme highlight.
func Code(ctx *theme.Context, color string, block bool) *compose.Builder {
	b := highlighted(compose.New(CodeKind), ctx, color)
	if block {
		b.Prop(PropBlock, true)
	}
	return b
}

// Mark starts a highlighted span; "" selects the theme highlight.
func Mark(ctx *theme.Context, color string) *compose.Builder {
	return highlighted(compose.New(MarkKind), ctx, color)
}

func highlighted(b *compose.Builder, ctx *theme.Context, color string) *compose.Builder {
	c, err := theme.Highlight(color, ctx)
	if err != nil {
		return b.Fail(err)
	}
	return b.Prop(PropColor, c.Hex())
}

// Heading starts a heading of level 1 to 6.
func Heading(level int) *compose.Builder {
	b := compose.New(HeadingKind)
	if level < 1 || level > 6 {
		return b.Fail(errors.New("E031").
			WithDetail("heading level must be between 1 and 6").
			WithField("kind", HeadingKind.Name).
			WithField("level", level))
	}
	return b.Prop(PropLevel, level)
}

// Paragraph starts a paragraph.
func Paragraph() *compose.Builder {
	return compose.New(ParagraphKind)
}

// Icon returns a named icon node. Icon assets are resolved by the
// presentation layer.
func Icon(name string) *compose.Builder {
	return compose.New(IconKind).Prop(PropName, name)
}
