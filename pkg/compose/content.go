package compose

// ContentKind is the discriminator of Content.
type ContentKind uint8

const (
	ContentText      ContentKind = iota + 1 // Plain text
	ContentComponent                        // Nested component node
	ContentSlotRef                          // Template reference to a slot
)

// String returns the string representation of the ContentKind.
func (k ContentKind) String() string {
	switch k {
	case ContentText:
		return "Text"
	case ContentComponent:
		return "Component"
	case ContentSlotRef:
		return "SlotRef"
	default:
		return "Unknown"
	}
}

// Content is one piece of a node's content: text, a nested node, or (in
// kind templates only) a reference to a slot.
type Content struct {
	kind ContentKind
	text string
	node *Node
	slot string
}

// Text returns text content.
func Text(s string) Content {
	return Content{kind: ContentText, text: s}
}

// Component returns nested node content.
func Component(n *Node) Content {
	return Content{kind: ContentComponent, node: n}
}

// SlotRef returns a template reference to the named slot. DefaultSlot
// refers to the default children.
func SlotRef(name string) Content {
	return Content{kind: ContentSlotRef, slot: name}
}

// Kind returns the content kind. The zero Content has kind 0.
func (c Content) Kind() ContentKind {
	return c.kind
}

// Text returns the text of ContentText, or "".
func (c Content) Text() string {
	return c.text
}

// Node returns the node of ContentComponent, or nil.
func (c Content) Node() *Node {
	return c.node
}

// SlotName returns the slot of ContentSlotRef, or "".
func (c Content) SlotName() string {
	return c.slot
}

// Equal reports structural equality.
func (c Content) Equal(o Content) bool {
	if c.kind != o.kind {
		return false
	}
	switch c.kind {
	case ContentText:
		return c.text == o.text
	case ContentComponent:
		return c.node.Equal(o.node)
	case ContentSlotRef:
		return c.slot == o.slot
	default:
		return true
	}
}

func contentsEqual(a, b []Content) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
