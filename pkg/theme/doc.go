// Package theme resolves abstract style intent into concrete presentation
// values.
//
// A component states what it wants (a Variant, a Size, a Padding level, a
// color, a few boolean modifiers) in StyleProps. Resolve combines those
// props with the nearest Theme Context and returns a Descriptor holding
// concrete colors and dimensions. Props always win; the theme only fills in
// what the props leave unset.
//
//	ctx := theme.NewContext(theme.DefaultTheme())
//	d, err := theme.Resolve(theme.StyleProps{
//	    Variant: theme.Gradient{From: "#3eafa8", To: "#4bd5cc", Angle: 45},
//	    Size:    theme.SizeLG,
//	}, ctx)
//
// A Context is immutable. Nested providers shadow their parent by wrapping
// it (Context.Provide, Context.Derive); nothing ever changes a theme that
// has already been provided.
package theme
