package theme

import "strconv"

// Variant is the visual treatment of a component. The set of cases is
// closed: Filled, Outline, Light, Subtle and Gradient.
type Variant interface {
	// String returns the variant name used in descriptors and logs.
	String() string

	isVariant()
}

// Filled is a solid background in the component color.
type Filled struct{}

// Outline is a transparent background with a colored border.
type Outline struct{}

// Light is a pale tint of the component color.
type Light struct{}

// Subtle is transparent until hovered.
type Subtle struct{}

// Gradient is a two-color linear gradient. From and To are color
// specifications (hex or a named color); Angle is in degrees and is kept as
// given.
type Gradient struct {
	From  string
	To    string
	Angle float64
}

func (Filled) String() string  { return "filled" }
func (Outline) String() string { return "outline" }
func (Light) String() string   { return "light" }
func (Subtle) String() string  { return "subtle" }

func (g Gradient) String() string {
	return "gradient(" + g.From + ", " + g.To + ", " + strconv.FormatFloat(g.Angle, 'g', -1, 64) + ")"
}

func (Filled) isVariant()   {}
func (Outline) isVariant()  {}
func (Light) isVariant()    {}
func (Subtle) isVariant()   {}
func (Gradient) isVariant() {}

// ParseVariant parses the name of a colorless variant: filled, outline,
// light or subtle. Gradients carry data and are built directly.
func ParseVariant(name string) (Variant, bool) {
	switch name {
	case "filled":
		return Filled{}, true
	case "outline":
		return Outline{}, true
	case "light":
		return Light{}, true
	case "subtle":
		return Subtle{}, true
	default:
		return nil, false
	}
}
