package compose

import "slices"

// DefaultSlot is the template reference to a node's default children.
const DefaultSlot = "children"

// Kind is a component identity. Kinds are declared once, as package-level
// values, and compared by pointer.
type Kind struct {
	// Name identifies the kind in dumps and errors.
	Name string

	// Slots are the named insertion points the kind accepts, besides the
	// default children.
	Slots []string

	// Template orders the kind's content. A nil template lays out the
	// default children only.
	Template []Content

	// Styled kinds get a resolved style descriptor.
	Styled bool
}

// HasSlot reports whether name is a declared slot of k.
func (k *Kind) HasSlot(name string) bool {
	return slices.Contains(k.Slots, name)
}

// String returns the kind name.
func (k *Kind) String() string {
	if k == nil {
		return "<nil>"
	}
	return k.Name
}

func (k *Kind) template() []Content {
	if k.Template == nil {
		return []Content{SlotRef(DefaultSlot)}
	}
	return k.Template
}
