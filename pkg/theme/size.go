package theme

import "strings"

// Size is an ordered control size. The zero value means "use the theme
// default".
type Size uint8

const (
	SizeDefault Size = iota
	SizeXS
	SizeSM
	SizeMD
	SizeLG
	SizeXL
)

// Sizes lists every concrete size from smallest to largest.
var Sizes = []Size{SizeXS, SizeSM, SizeMD, SizeLG, SizeXL}

// String returns the short name of the size.
func (s Size) String() string {
	switch s {
	case SizeDefault:
		return "default"
	case SizeXS:
		return "xs"
	case SizeSM:
		return "sm"
	case SizeMD:
		return "md"
	case SizeLG:
		return "lg"
	case SizeXL:
		return "xl"
	default:
		return "unknown"
	}
}

// Valid reports whether s is a concrete size.
func (s Size) Valid() bool {
	return s >= SizeXS && s <= SizeXL
}

// ParseSize parses a short ("md") or long ("medium", "extra-large") size name.
func ParseSize(text string) (Size, bool) {
	switch normalizeScaleName(text) {
	case "xs", "extrasmall":
		return SizeXS, true
	case "sm", "small":
		return SizeSM, true
	case "md", "medium":
		return SizeMD, true
	case "lg", "large":
		return SizeLG, true
	case "xl", "extralarge":
		return SizeXL, true
	default:
		return SizeDefault, false
	}
}

// Padding is a spacing level. The zero value means "use the theme default";
// PaddingNone is an explicit zero.
type Padding uint8

const (
	PaddingDefault Padding = iota
	PaddingNone
	PaddingXS
	PaddingSM
	PaddingMD
	PaddingLG
	PaddingXL
)

// Paddings lists every concrete padding level.
var Paddings = []Padding{PaddingNone, PaddingXS, PaddingSM, PaddingMD, PaddingLG, PaddingXL}

// String returns the short name of the padding level.
func (p Padding) String() string {
	switch p {
	case PaddingDefault:
		return "default"
	case PaddingNone:
		return "none"
	case PaddingXS:
		return "xs"
	case PaddingSM:
		return "sm"
	case PaddingMD:
		return "md"
	case PaddingLG:
		return "lg"
	case PaddingXL:
		return "xl"
	default:
		return "unknown"
	}
}

// Valid reports whether p is a concrete padding level.
func (p Padding) Valid() bool {
	return p >= PaddingNone && p <= PaddingXL
}

// ParsePadding parses a padding level name.
func ParsePadding(text string) (Padding, bool) {
	switch normalizeScaleName(text) {
	case "none", "0":
		return PaddingNone, true
	case "xs", "extrasmall":
		return PaddingXS, true
	case "sm", "small":
		return PaddingSM, true
	case "md", "medium":
		return PaddingMD, true
	case "lg", "large":
		return PaddingLG, true
	case "xl", "extralarge":
		return PaddingXL, true
	default:
		return PaddingDefault, false
	}
}

func normalizeScaleName(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(text)
}
