// Package demo is the verdigris showcase page: a static grid of kit
// components plus a click counter wired to a signal.
package demo

import (
	"github.com/verdigris-dev/verdigris/pkg/compose"
	"github.com/verdigris-dev/verdigris/pkg/kit"
	"github.com/verdigris-dev/verdigris/pkg/theme"
)

// Showcase composes the static part of the page.
func Showcase(ctx *theme.Context) (*compose.Node, error) {
	b := kit.Section().
		Add(kit.Heading(1).Text("Verdigris UI"), ctx).
		Add(kit.Heading(2).Text("Grid"), ctx).
		Add(kit.Grid(0).
			Add(cards(ctx), ctx).
			Add(alerts(ctx), ctx).
			Add(buttons(ctx), ctx).
			Add(badges(ctx), ctx).
			Add(flex(ctx), ctx).
			Add(typography(ctx), ctx), ctx)
	return b.Build(ctx)
}

func cards(ctx *theme.Context) *compose.Builder {
	space := func() *compose.Builder { return kit.Space(ctx, theme.SizeDefault, theme.SizeMD) }
	return kit.Section().
		Add(kit.Heading(2).Text("Card"), ctx).
		Add(kit.Card(theme.StyleProps{Padding: theme.PaddingMD}).
			Add(kit.Paragraph().Text("This is a card"), ctx), ctx).
		Add(space(), ctx).
		Add(kit.Card(theme.StyleProps{Padding: theme.PaddingMD, HoverTilt: true}).
			Add(kit.Paragraph().
				Text("This is a card has ").
				Add(kit.Code(ctx, "", false).Text("hover-tilt"), ctx).
				Text(" attribute"), ctx), ctx).
		Add(space(), ctx).
		Add(kit.Card(theme.StyleProps{Padding: theme.PaddingMD, Bordered: true}).
			Add(kit.Paragraph().Text("This is a card with border"), ctx), ctx)
}

func alerts(ctx *theme.Context) *compose.Builder {
	return kit.Section().
		Add(kit.Heading(2).Text("Alert"), ctx).
		Add(kit.Alert("Bummer!", theme.StyleProps{Variant: theme.Light{}}).
			Add(kit.Paragraph().Text("This is an alert!"), ctx), ctx)
}

// variants are the colorless variants in showcase order.
var variants = []struct {
	label   string
	variant theme.Variant
}{
	{"Filled", theme.Filled{}},
	{"Outline", theme.Outline{}},
	{"Light", theme.Light{}},
	{"Subtle", theme.Subtle{}},
}

func buttons(ctx *theme.Context) *compose.Builder {
	b := kit.Section().Add(kit.Heading(2).Text("Button"), ctx)
	for _, v := range variants {
		b.Add(kit.Button(theme.StyleProps{Variant: v.variant}).Text(v.label+" Button"), ctx).
			Add(kit.Space(ctx, theme.SizeMD, theme.SizeDefault), ctx)
	}
	return b.Add(kit.Button(theme.StyleProps{
		Variant: theme.Gradient{From: "#3eafa8", To: "#4bd5cc", Angle: 45},
	}).Text("Gradient Button"), ctx)
}

func badges(ctx *theme.Context) *compose.Builder {
	b := kit.Section().Add(kit.Heading(2).Text("Badge"), ctx)
	for _, v := range variants[:3] {
		b.Add(kit.Badge(theme.StyleProps{Variant: v.variant}).Text(v.label), ctx).
			Add(kit.Space(ctx, theme.SizeMD, theme.SizeDefault), ctx)
	}
	return b.Add(kit.Badge(theme.StyleProps{Variant: theme.Outline{}, Dot: true}).Text("Dot"), ctx)
}

func flex(ctx *theme.Context) *compose.Builder {
	return kit.Flex().
		Add(kit.Heading(2).Text("Flex"), ctx).
		Add(kit.Space(ctx, theme.SizeMD, theme.SizeDefault), ctx).
		Text("A container")
}

func typography(ctx *theme.Context) *compose.Builder {
	b := kit.Section().Add(kit.Heading(2).Text("Typography"), ctx)
	for level := 1; level <= 6; level++ {
		b.Add(kit.Heading(level).Text(headingLabels[level-1]), ctx)
	}
	space := func() *compose.Builder { return kit.Space(ctx, theme.SizeDefault, theme.SizeMD) }
	return b.
		Add(kit.Paragraph().Text("Paragraph"), ctx).
		Add(kit.Mark(ctx, "").Text("Mark"), ctx).
		Add(space(), ctx).
		Add(kit.Code(ctx, "", false).Text("Code"), ctx).
		Add(space(), ctx).
		Text("This ").
		Add(kit.Mark(ctx, "purple").Text("is example"), ctx).
		Text(" ").
		Add(kit.Mark(ctx, "").Text("text"), ctx).
		Text(" with ").
		Add(kit.Mark(ctx, "blue").Text("markings"), ctx).
		Text(" and custom ").
		Add(kit.Code(ctx, "orange", false).Text("inline code block"), ctx)
}

var headingLabels = []string{"Heading 1", "Heading 2", "Heading 3", "Heading 4", "Heading 5", "Heading 6"}
