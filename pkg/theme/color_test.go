package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	palette := DefaultTheme().Palette

	tests := []struct {
		name string
		spec string
		hex  string
	}{
		{"long hex", "#3eafa8", "#3eafa8"},
		{"upper hex", "#4BD5CC", "#4bd5cc"},
		{"short hex", "#abc", "#aabbcc"},
		{"palette name", "verdigris", "#3eafa8"},
		{"palette shadows css", "yellow", "#ffec99"},
		{"css name", "navy", "#000080"},
		{"case insensitive", "Navy", "#000080"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseColor(tt.spec, palette)
			require.NoError(t, err)
			assert.Equal(t, tt.hex, c.Hex())
			assert.Equal(t, tt.spec, c.Spec())
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, spec := range []string{"", "not-a-color", "#12", "#12345", "#ggg", "3eafa8", "#3eafa8ff"} {
		t.Run(spec, func(t *testing.T) {
			_, err := ParseColor(spec, DefaultTheme().Palette)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidColorSpec), "got %v", err)
		})
	}
}

func TestTintAndShade(t *testing.T) {
	c := MustParseColor("#3eafa8")

	assert.Equal(t, "#3eafa8", c.Tint(0).Hex())
	assert.Equal(t, "#ffffff", c.Tint(1).Hex())
	assert.Equal(t, "#000000", c.Shade(1).Hex())

	l0, _, _ := c.Colorful().Lab()
	l1, _, _ := c.Tint(0.5).Colorful().Lab()
	assert.Greater(t, l1, l0)
}

func TestMustParseColorPanics(t *testing.T) {
	assert.Panics(t, func() { MustParseColor("nope") })
}
