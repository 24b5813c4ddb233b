package config

import (
	"github.com/verdigris-dev/verdigris/pkg/theme"
)

// BuildTheme builds the configured theme: DefaultTheme with the configured
// overrides applied. The result is validated.
func (c *Config) BuildTheme() (*theme.Theme, error) {
	tc := c.Theme
	t := theme.DefaultTheme()

	if tc.Name != "" {
		t.Name = tc.Name
	}
	for name, spec := range tc.Colors {
		t.Palette.Named[name] = spec
	}
	setIfSet(&t.Palette.Primary, tc.Primary)
	setIfSet(&t.Palette.OnPrimary, tc.OnPrimary)
	setIfSet(&t.Palette.Text, tc.Text)
	setIfSet(&t.Palette.Surface, tc.Surface)
	setIfSet(&t.Palette.Border, tc.Border)
	setIfSet(&t.Palette.Highlight, tc.Highlight)

	if tc.DefaultVariant != "" {
		if v, ok := theme.ParseVariant(tc.DefaultVariant); ok {
			t.DefaultVariant = v
		}
	}
	if s, ok := theme.ParseSize(tc.DefaultSize); ok {
		t.DefaultSize = s
	}
	if p, ok := theme.ParsePadding(tc.DefaultPadding); ok {
		t.DefaultPadding = p
	}
	if tc.Radius != nil {
		t.Radius = *tc.Radius
	}
	for name, px := range tc.Spacing {
		if p, ok := theme.ParsePadding(name); ok {
			t.Spacing[p] = px
		}
	}
	for name, sc := range tc.Sizes {
		if s, ok := theme.ParseSize(name); ok {
			t.Sizes[s] = theme.SizeScale{FontSize: sc.FontSize, Height: sc.Height, PaddingX: sc.PaddingX}
		}
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func setIfSet(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
