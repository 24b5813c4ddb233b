package theme

import (
	"maps"

	"github.com/verdigris-dev/verdigris/internal/errors"
)

// Palette holds the colors of a theme. Values are color specifications
// accepted by ParseColor.
type Palette struct {
	// Primary is the component color when StyleProps.Color is empty.
	Primary string

	// OnPrimary is the text color on filled and gradient backgrounds.
	OnPrimary string

	// Text is the body text color.
	Text string

	// Surface is the background of cards and alerts.
	Surface string

	// Border is the neutral border color.
	Border string

	// Highlight is the default Mark/Code highlight color name.
	Highlight string

	// Named maps lowercase names to color specifications. Names shadow the
	// CSS color names.
	Named map[string]string
}

// SizeScale is the set of dimensions a Size maps to, in pixels.
type SizeScale struct {
	FontSize float64
	Height   float64
	PaddingX float64
}

// Theme is a palette plus size and spacing scales and the defaults used for
// omitted style props.
type Theme struct {
	Name    string
	Palette Palette

	// Sizes maps every concrete Size to its dimensions.
	Sizes map[Size]SizeScale

	// Spacing maps every concrete Padding level to pixels.
	Spacing map[Padding]float64

	// Radius is the corner radius in pixels.
	Radius float64

	DefaultVariant Variant
	DefaultSize    Size
	DefaultPadding Padding
}

// DefaultTheme returns the verdigris teal theme. Each call returns a fresh
// copy.
func DefaultTheme() *Theme {
	return &Theme{
		Name: "verdigris",
		Palette: Palette{
			Primary:   "#3eafa8",
			OnPrimary: "#ffffff",
			Text:      "#1a1b1e",
			Surface:   "#ffffff",
			Border:    "#dee2e6",
			Highlight: "yellow",
			Named: map[string]string{
				"verdigris": "#3eafa8",
				"patina":    "#4bd5cc",
				"yellow":    "#ffec99",
				"purple":    "#e5dbff",
				"blue":      "#d0ebff",
				"orange":    "#ffe8cc",
				"red":       "#ffc9c9",
				"green":     "#d3f9d8",
				"gray":      "#e9ecef",
			},
		},
		Sizes: map[Size]SizeScale{
			SizeXS: {FontSize: 12, Height: 30, PaddingX: 14},
			SizeSM: {FontSize: 14, Height: 36, PaddingX: 18},
			SizeMD: {FontSize: 16, Height: 42, PaddingX: 22},
			SizeLG: {FontSize: 18, Height: 50, PaddingX: 26},
			SizeXL: {FontSize: 20, Height: 60, PaddingX: 32},
		},
		Spacing: map[Padding]float64{
			PaddingNone: 0,
			PaddingXS:   10,
			PaddingSM:   12,
			PaddingMD:   16,
			PaddingLG:   20,
			PaddingXL:   32,
		},
		Radius:         4,
		DefaultVariant: Filled{},
		DefaultSize:    SizeSM,
		DefaultPadding: PaddingNone,
	}
}

// Clone returns a deep copy of t.
func (t *Theme) Clone() *Theme {
	if t == nil {
		return nil
	}
	c := *t
	c.Palette.Named = maps.Clone(t.Palette.Named)
	c.Sizes = maps.Clone(t.Sizes)
	c.Spacing = maps.Clone(t.Spacing)
	return &c
}

// Validate checks that every palette color parses and that the scales
// cover every concrete size and padding level.
func (t *Theme) Validate() error {
	for _, entry := range []struct{ role, spec string }{
		{"primary", t.Palette.Primary},
		{"onPrimary", t.Palette.OnPrimary},
		{"text", t.Palette.Text},
		{"surface", t.Palette.Surface},
		{"border", t.Palette.Border},
		{"highlight", t.Palette.Highlight},
	} {
		if _, err := ParseColor(entry.spec, t.Palette); err != nil {
			return invalidTheme(t, "palette color "+entry.role).Wrap(err)
		}
	}
	for name, spec := range t.Palette.Named {
		if _, err := ParseColor(spec, Palette{}); err != nil {
			return invalidTheme(t, "named color "+name).Wrap(err)
		}
	}
	for _, s := range Sizes {
		if _, ok := t.Sizes[s]; !ok {
			return invalidTheme(t, "missing size "+s.String())
		}
	}
	for _, p := range Paddings {
		if _, ok := t.Spacing[p]; !ok {
			return invalidTheme(t, "missing spacing "+p.String())
		}
	}
	if t.DefaultVariant == nil {
		return invalidTheme(t, "missing default variant")
	}
	if !t.DefaultSize.Valid() {
		return invalidTheme(t, "default size must be concrete")
	}
	if !t.DefaultPadding.Valid() {
		return invalidTheme(t, "default padding must be concrete")
	}
	return nil
}

// ErrInvalidTheme is returned when a theme fails validation.
var ErrInvalidTheme error = errors.New("E021")

func invalidTheme(t *Theme, detail string) *errors.KitError {
	return errors.New("E021").WithDetail(detail).WithField("theme", t.Name)
}
