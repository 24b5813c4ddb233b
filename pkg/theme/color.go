package theme

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/verdigris-dev/verdigris/internal/errors"
)

// ErrInvalidColorSpec is returned when a color string is neither a hex
// color (#rgb, #rrggbb) nor a known color name.
var ErrInvalidColorSpec error = errors.New("E020")

// Transparent is the background and border value of variants that paint
// nothing.
const Transparent = "transparent"

// Color is a parsed color. It keeps the text it was parsed from, so the
// caller's specification survives resolution unchanged.
type Color struct {
	spec string
	c    colorful.Color
}

// Spec returns the text the color was parsed from.
func (c Color) Spec() string {
	return c.spec
}

// Hex returns the color as a lowercase #rrggbb string.
func (c Color) Hex() string {
	return c.c.Clamped().Hex()
}

// Colorful returns the underlying go-colorful value.
func (c Color) Colorful() colorful.Color {
	return c.c
}

// IsZero reports whether c is the zero Color.
func (c Color) IsZero() bool {
	return c.spec == ""
}

// Tint blends c toward white in Lab space; amount 0 is c, 1 is white.
func (c Color) Tint(amount float64) Color {
	return c.blend(white, amount)
}

// Shade blends c toward black in Lab space.
func (c Color) Shade(amount float64) Color {
	return c.blend(black, amount)
}

func (c Color) blend(to colorful.Color, amount float64) Color {
	out := c.c.BlendLab(to, amount).Clamped()
	return Color{spec: out.Hex(), c: out}
}

var (
	white = colorful.Color{R: 1, G: 1, B: 1}
	black = colorful.Color{R: 0, G: 0, B: 0}
)

// ParseColor parses a color specification. Hex colors are accepted in the
// #rgb and #rrggbb forms. Anything else is looked up, case-insensitively,
// first in the palette's named colors and then in the CSS color names. A
// palette entry is a hex color or a CSS color name. Named colors resolve to
// their hex value but keep the name as Spec.
func ParseColor(text string, palette Palette) (Color, error) {
	spec := strings.TrimSpace(text)
	if spec == "" {
		return Color{}, invalidColor(text, "empty color")
	}

	if strings.HasPrefix(spec, "#") {
		if len(spec) != 4 && len(spec) != 7 {
			return Color{}, invalidColor(text, "hex colors are #rgb or #rrggbb")
		}
		c, err := colorful.Hex(spec)
		if err != nil {
			return Color{}, invalidColor(text, "malformed hex color").Wrap(err)
		}
		return Color{spec: text, c: c}, nil
	}

	name := strings.ToLower(spec)
	hex, ok := palette.Named[name]
	if ok && !strings.HasPrefix(hex, "#") {
		// Palette names may alias CSS names, one level deep.
		if css, known := cssColors[strings.ToLower(strings.TrimSpace(hex))]; known {
			hex = css
		}
	}
	if !ok {
		hex, ok = cssColors[name]
	}
	if !ok {
		return Color{}, invalidColor(text, "unknown color name")
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, invalidColor(text, "named color "+name+" maps to "+hex).Wrap(err)
	}
	return Color{spec: text, c: c}, nil
}

// MustParseColor is like ParseColor but panics on error. For literals.
func MustParseColor(text string) Color {
	c, err := ParseColor(text, Palette{})
	if err != nil {
		panic(err)
	}
	return c
}

func invalidColor(text, detail string) *errors.KitError {
	return errors.New("E020").
		WithDetail(detail).
		WithField("color", text).
		WithSuggestion("Use #rgb, #rrggbb or a named color such as \"teal\"")
}

// cssColors is the subset of CSS named colors accepted without a palette
// entry.
var cssColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"gray":    "#808080",
	"grey":    "#808080",
	"silver":  "#c0c0c0",
	"red":     "#ff0000",
	"maroon":  "#800000",
	"orange":  "#ffa500",
	"yellow":  "#ffff00",
	"olive":   "#808000",
	"lime":    "#00ff00",
	"green":   "#008000",
	"teal":    "#008080",
	"aqua":    "#00ffff",
	"cyan":    "#00ffff",
	"blue":    "#0000ff",
	"navy":    "#000080",
	"purple":  "#800080",
	"fuchsia": "#ff00ff",
	"magenta": "#ff00ff",
	"pink":    "#ffc0cb",
	"indigo":  "#4b0082",
	"violet":  "#ee82ee",
	"gold":    "#ffd700",
	"coral":   "#ff7f50",
	"salmon":  "#fa8072",
	"tomato":  "#ff6347",
	"crimson": "#dc143c",
}
