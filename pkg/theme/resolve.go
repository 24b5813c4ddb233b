package theme

import (
	"math"

	"github.com/verdigris-dev/verdigris/internal/errors"
)

// StyleProps is the style intent of one component instance. Zero fields
// are omitted and take the theme default.
type StyleProps struct {
	Variant Variant
	Size    Size
	Padding Padding

	// Color is a color specification for the component; empty means the
	// palette's primary color. Ignored by Gradient, which carries its own.
	Color string

	Compact   bool
	Bordered  bool
	HoverTilt bool

	// Dot adds a leading indicator dot (badges).
	Dot bool
}

// ErrInvalidStyle is returned for style props that cannot resolve
// deterministically, such as a NaN gradient angle.
var ErrInvalidStyle error = errors.New("E022")

// Modifiers are the boolean treatments carried through to the descriptor.
type Modifiers struct {
	Compact   bool
	Bordered  bool
	HoverTilt bool
	Dot       bool
}

// GradientFill is the resolved form of a Gradient variant.
type GradientFill struct {
	From  Color
	To    Color
	Angle float64
}

// NormalizedAngle returns Angle modulo 360 in [0, 360).
func (g GradientFill) NormalizedAngle() float64 {
	a := math.Mod(g.Angle, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// Descriptor is a fully resolved style. Colors are lowercase #rrggbb strings
// or Transparent; dimensions are pixels.
type Descriptor struct {
	Variant string
	Size    Size
	Padding Padding

	Background      string
	HoverBackground string
	Foreground      string
	BorderColor     string
	BorderWidth     float64
	DotColor        string

	FontSize float64
	Height   float64
	PaddingX float64
	Spacing  float64
	Radius   float64

	Modifiers Modifiers

	// Gradient is set for the Gradient variant only.
	Gradient *GradientFill
}

// Equal reports whether two descriptors resolve to the same presentation.
func (d Descriptor) Equal(o Descriptor) bool {
	dg, og := d.Gradient, o.Gradient
	d.Gradient, o.Gradient = nil, nil
	if d != o {
		return false
	}
	if dg == nil || og == nil {
		return dg == og
	}
	return *dg == *og
}

const (
	compactFactor = 0.75
	hoverShade    = 0.08
	lightTint     = 0.85
	lightHover    = 0.75
	subtleHover   = 0.9
	outlineHover  = 0.95
)

// Resolve turns style props into a descriptor using the theme of ctx.
// Explicit props override the theme's defaults. Resolve has no side effects;
// the same inputs always yield an Equal descriptor.
func Resolve(props StyleProps, ctx *Context) (Descriptor, error) {
	t := ctx.active()

	variant := props.Variant
	if variant == nil {
		variant = t.DefaultVariant
	}
	size := props.Size
	if size == SizeDefault {
		size = t.DefaultSize
	}
	padding := props.Padding
	if padding == PaddingDefault {
		padding = t.DefaultPadding
	}

	scale, ok := t.Sizes[size]
	if !ok {
		return Descriptor{}, errors.New("E021").
			WithDetail("no scale for size").
			WithField("theme", t.Name).
			WithField("size", size.String())
	}
	spacing, ok := t.Spacing[padding]
	if !ok {
		return Descriptor{}, errors.New("E021").
			WithDetail("no spacing for padding").
			WithField("theme", t.Name).
			WithField("padding", padding.String())
	}

	d := Descriptor{
		Variant:  variant.String(),
		Size:     size,
		Padding:  padding,
		FontSize: scale.FontSize,
		Height:   scale.Height,
		PaddingX: scale.PaddingX,
		Spacing:  spacing,
		Radius:   t.Radius,
		Modifiers: Modifiers{
			Compact:   props.Compact,
			Bordered:  props.Bordered,
			HoverTilt: props.HoverTilt,
			Dot:       props.Dot,
		},
	}
	if props.Compact {
		d.Height *= compactFactor
		d.PaddingX *= compactFactor
	}

	colorSpec := props.Color
	if colorSpec == "" {
		colorSpec = t.Palette.Primary
	}

	if g, ok := variant.(Gradient); ok {
		if err := resolveGradient(&d, g, t); err != nil {
			return Descriptor{}, err
		}
	} else {
		base, err := ParseColor(colorSpec, t.Palette)
		if err != nil {
			return Descriptor{}, err
		}
		onBase, err := ParseColor(t.Palette.OnPrimary, t.Palette)
		if err != nil {
			return Descriptor{}, err
		}
		paint(&d, variant, base, onBase)
		if props.Dot {
			d.DotColor = base.Hex()
		}
	}

	if props.Bordered && d.BorderWidth == 0 {
		border, err := ParseColor(t.Palette.Border, t.Palette)
		if err != nil {
			return Descriptor{}, err
		}
		d.BorderColor = border.Hex()
		d.BorderWidth = 1
	}
	return d, nil
}

func resolveGradient(d *Descriptor, g Gradient, t *Theme) error {
	if math.IsNaN(g.Angle) || math.IsInf(g.Angle, 0) {
		return errors.New("E022").
			WithDetail("gradient angle must be finite").
			WithField("angle", g.Angle)
	}
	from, err := ParseColor(g.From, t.Palette)
	if err != nil {
		return err
	}
	to, err := ParseColor(g.To, t.Palette)
	if err != nil {
		return err
	}
	onBase, err := ParseColor(t.Palette.OnPrimary, t.Palette)
	if err != nil {
		return err
	}
	d.Gradient = &GradientFill{From: from, To: to, Angle: g.Angle}
	d.Background = from.Hex()
	d.HoverBackground = from.Shade(hoverShade).Hex()
	d.Foreground = onBase.Hex()
	d.BorderColor = Transparent
	if d.Modifiers.Dot {
		d.DotColor = onBase.Hex()
	}
	return nil
}

// paint fills the color fields of a colorless variant.
func paint(d *Descriptor, v Variant, base, onBase Color) {
	switch v.(type) {
	case Filled:
		d.Background = base.Hex()
		d.HoverBackground = base.Shade(hoverShade).Hex()
		d.Foreground = onBase.Hex()
		d.BorderColor = Transparent
	case Outline:
		d.Background = Transparent
		d.HoverBackground = base.Tint(outlineHover).Hex()
		d.Foreground = base.Hex()
		d.BorderColor = base.Hex()
		d.BorderWidth = 1
	case Light:
		d.Background = base.Tint(lightTint).Hex()
		d.HoverBackground = base.Tint(lightHover).Hex()
		d.Foreground = base.Hex()
		d.BorderColor = Transparent
	case Subtle:
		d.Background = Transparent
		d.HoverBackground = base.Tint(subtleHover).Hex()
		d.Foreground = base.Hex()
		d.BorderColor = Transparent
	}
}

// Highlight resolves the background color of a Mark or Code span. An empty
// name selects the palette's highlight color.
func Highlight(name string, ctx *Context) (Color, error) {
	t := ctx.active()
	if name == "" {
		name = t.Palette.Highlight
	}
	return ParseColor(name, t.Palette)
}
