// Package kit declares the component kinds of the verdigris showcase and
// constructors that return ready-to-fill builders.
package kit

import "github.com/verdigris-dev/verdigris/pkg/compose"

// Slot names.
const (
	SlotLeftIcon    = "leftIcon"
	SlotRightIcon   = "rightIcon"
	SlotLeftSection = "leftSection"
	SlotIcon        = "icon"
)

// Prop names.
const (
	PropTitle   = "title"
	PropWidth   = "width"
	PropHeight  = "height"
	PropLevel   = "level"
	PropColor   = "color"
	PropBlock   = "block"
	PropName    = "name"
	PropColumns = "columns"
	PropGap     = "gap"
)

var (
	ButtonKind = &compose.Kind{
		Name:  "Button",
		Slots: []string{SlotLeftIcon, SlotRightIcon},
		Template: []compose.Content{
			compose.SlotRef(SlotLeftIcon),
			compose.SlotRef(compose.DefaultSlot),
			compose.SlotRef(SlotRightIcon),
		},
		Styled: true,
	}

	BadgeKind = &compose.Kind{
		Name:  "Badge",
		Slots: []string{SlotLeftSection},
		Template: []compose.Content{
			compose.SlotRef(SlotLeftSection),
			compose.SlotRef(compose.DefaultSlot),
		},
		Styled: true,
	}

	CardKind = &compose.Kind{Name: "Card", Styled: true}

	AlertKind = &compose.Kind{
		Name:  "Alert",
		Slots: []string{SlotIcon},
		Template: []compose.Content{
			compose.SlotRef(SlotIcon),
			compose.SlotRef(compose.DefaultSlot),
		},
		Styled: true,
	}

	SpaceKind     = &compose.Kind{Name: "Space"}
	FlexKind      = &compose.Kind{Name: "Flex"}
	GridKind      = &compose.Kind{Name: "Grid"}
	CodeKind      = &compose.Kind{Name: "Code"}
	MarkKind      = &compose.Kind{Name: "Mark"}
	HeadingKind   = &compose.Kind{Name: "Heading"}
	ParagraphKind = &compose.Kind{Name: "Paragraph"}
	IconKind      = &compose.Kind{Name: "Icon"}
	SectionKind   = &compose.Kind{Name: "Section"}
)
