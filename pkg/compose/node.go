package compose

import (
	"math"
	"reflect"
	"slices"
	"sort"
	"strings"

	"github.com/verdigris-dev/verdigris/internal/errors"
	"github.com/verdigris-dev/verdigris/pkg/theme"
)

// Sentinel errors, matched with errors.Is.
var (
	// ErrUnknownSlot is returned when content is passed under a slot name
	// the kind does not declare.
	ErrUnknownSlot error = errors.New("E030")

	// ErrInvalidProp is returned for props that are not plain data.
	ErrInvalidProp error = errors.New("E031")

	// ErrMissingKind is returned when composing without a kind.
	ErrMissingKind error = errors.New("E032")
)

// Props holds a node's plain-data properties.
type Props map[string]any

// Input is everything a node is composed from besides its kind and theme.
type Input struct {
	Props    Props
	Style    theme.StyleProps
	Children []Content
	Slots    map[string]*Node
}

// Node is an immutable composed component.
type Node struct {
	kind     *Kind
	props    Props
	children []Content
	slots    map[string]*Node
	style    theme.StyleProps
	resolved theme.Descriptor
}

// Compose builds a node of kind from in, resolving its style against ctx.
//
// Every slot name in in.Slots must be declared by kind; empty slots are
// dropped. Props must be plain data. Children may be text or nodes but not
// slot references, which only belong in templates.
func Compose(kind *Kind, in Input, ctx *theme.Context) (*Node, error) {
	if kind == nil {
		return nil, errors.New("E032")
	}

	var props Props
	if in.Props != nil {
		props = make(Props, len(in.Props))
	}
	for name, value := range in.Props {
		copied, err := clonePlain(value)
		if err != nil {
			return nil, errors.New("E031").
				WithField("kind", kind.Name).
				WithField("prop", name).
				Wrap(err)
		}
		props[name] = copied
	}

	for _, c := range in.Children {
		if c.kind == ContentSlotRef {
			return nil, errors.New("E031").
				WithDetail("slot references are only valid in kind templates").
				WithField("kind", kind.Name).
				WithField("slot", c.slot)
		}
	}

	var slots map[string]*Node
	for _, name := range sortedKeys(in.Slots) {
		if !kind.HasSlot(name) {
			return nil, unknownSlot(kind, name)
		}
		if in.Slots[name] == nil {
			continue
		}
		if slots == nil {
			slots = make(map[string]*Node, len(in.Slots))
		}
		slots[name] = in.Slots[name]
	}

	n := &Node{
		kind:     kind,
		props:    props,
		children: slices.Clone(in.Children),
		slots:    slots,
		style:    in.Style,
	}
	if kind.Styled {
		d, err := theme.Resolve(in.Style, ctx)
		if err != nil {
			return nil, err
		}
		n.resolved = d
	}
	return n, nil
}

func unknownSlot(kind *Kind, name string) *errors.KitError {
	return errors.New("E030").
		WithDetail(kind.Name + " has no slot " + name).
		WithField("kind", kind.Name).
		WithField("slot", name).
		WithSuggestion("Declared slots: " + strings.Join(kind.Slots, ", "))
}

// maxPropDepth bounds the nesting of prop values.
const maxPropDepth = 64

// clonePlain returns a deep copy of v, rejecting values that would make
// composition depend on more than data: functions, channels, unsafe
// pointers and NaN floats. Unexported struct fields are checked but shared.
func clonePlain(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	c, err := cloneValue(reflect.ValueOf(v), 0)
	if err != nil {
		return nil, err
	}
	return c.Interface(), nil
}

// mustClonePlain copies a value already accepted by clonePlain.
func mustClonePlain(v any) any {
	c, err := clonePlain(v)
	if err != nil {
		panic(err)
	}
	return c
}

func cloneValue(v reflect.Value, depth int) (reflect.Value, error) {
	if !v.IsValid() {
		return v, nil
	}
	if depth > maxPropDepth {
		return v, errors.Newf(errors.CategoryComposition, "values nested deeper than %d levels are not allowed", maxPropDepth)
	}
	switch v.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return v, errors.Newf(errors.CategoryComposition, "%s values are not allowed", v.Kind())
	case reflect.Float32, reflect.Float64:
		if math.IsNaN(v.Float()) {
			return v, errors.Newf(errors.CategoryComposition, "NaN values are not allowed")
		}
	case reflect.Pointer:
		if v.IsNil() {
			return v, nil
		}
		elem, err := cloneValue(v.Elem(), depth+1)
		if err != nil {
			return v, err
		}
		out := reflect.New(v.Type().Elem())
		out.Elem().Set(elem)
		return out, nil
	case reflect.Interface:
		if v.IsNil() {
			return v, nil
		}
		elem, err := cloneValue(v.Elem(), depth+1)
		if err != nil {
			return v, err
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(elem)
		return out, nil
	case reflect.Slice:
		if v.IsNil() {
			return v, nil
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			elem, err := cloneValue(v.Index(i), depth+1)
			if err != nil {
				return v, err
			}
			out.Index(i).Set(elem)
		}
		return out, nil
	case reflect.Array:
		out := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			elem, err := cloneValue(v.Index(i), depth+1)
			if err != nil {
				return v, err
			}
			out.Index(i).Set(elem)
		}
		return out, nil
	case reflect.Map:
		if v.IsNil() {
			return v, nil
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			elem, err := cloneValue(iter.Value(), depth+1)
			if err != nil {
				return v, err
			}
			out.SetMapIndex(iter.Key(), elem)
		}
		return out, nil
	case reflect.Struct:
		out := reflect.New(v.Type()).Elem()
		out.Set(v)
		for i := 0; i < v.NumField(); i++ {
			if !out.Field(i).CanSet() {
				if err := checkValue(v.Field(i), depth+1); err != nil {
					return v, err
				}
				continue
			}
			field, err := cloneValue(v.Field(i), depth+1)
			if err != nil {
				return v, err
			}
			out.Field(i).Set(field)
		}
		return out, nil
	}
	return v, nil
}

// checkValue applies the clonePlain rules without copying, for values
// reached through unexported fields.
func checkValue(v reflect.Value, depth int) error {
	if !v.IsValid() {
		return nil
	}
	if depth > maxPropDepth {
		return errors.Newf(errors.CategoryComposition, "values nested deeper than %d levels are not allowed", maxPropDepth)
	}
	switch v.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return errors.Newf(errors.CategoryComposition, "%s values are not allowed", v.Kind())
	case reflect.Float32, reflect.Float64:
		if math.IsNaN(v.Float()) {
			return errors.Newf(errors.CategoryComposition, "NaN values are not allowed")
		}
	case reflect.Pointer, reflect.Interface:
		if !v.IsNil() {
			return checkValue(v.Elem(), depth+1)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := checkValue(v.Index(i), depth+1); err != nil {
				return err
			}
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			if err := checkValue(iter.Value(), depth+1); err != nil {
				return err
			}
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if err := checkValue(v.Field(i), depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// Kind returns the node's kind.
func (n *Node) Kind() *Kind {
	return n.kind
}

// Prop returns a copy of a prop value and whether it was set.
func (n *Node) Prop(name string) (any, bool) {
	v, ok := n.props[name]
	if !ok {
		return nil, false
	}
	return mustClonePlain(v), true
}

// Props returns a deep copy of the node's props.
func (n *Node) Props() Props {
	if n.props == nil {
		return nil
	}
	out := make(Props, len(n.props))
	for name, v := range n.props {
		out[name] = mustClonePlain(v)
	}
	return out
}

// Children returns a copy of the node's default children.
func (n *Node) Children() []Content {
	return slices.Clone(n.children)
}

// Slot returns the node placed in the named slot, or nil.
func (n *Node) Slot(name string) *Node {
	return n.slots[name]
}

// SlotNames returns the names of the filled slots, sorted.
func (n *Node) SlotNames() []string {
	return sortedKeys(n.slots)
}

// StyleProps returns the style intent the node was composed with.
func (n *Node) StyleProps() theme.StyleProps {
	return n.style
}

// Style returns the resolved style. It is the zero Descriptor for unstyled
// kinds.
func (n *Node) Style() theme.Descriptor {
	return n.resolved
}

// Layout expands the kind's template into the node's final ordered content:
// slot references are replaced by the slot's node (or nothing when the slot
// is empty) and DefaultSlot by the default children.
func (n *Node) Layout() []Content {
	var out []Content
	for _, c := range n.kind.template() {
		if c.kind != ContentSlotRef {
			out = append(out, c)
			continue
		}
		if c.slot == DefaultSlot {
			out = append(out, n.children...)
			continue
		}
		if s := n.slots[c.slot]; s != nil {
			out = append(out, Component(s))
		}
	}
	return out
}

// TextContent concatenates all text of the node and its descendants in
// layout order.
func (n *Node) TextContent() string {
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n *Node) writeText(b *strings.Builder) {
	for _, c := range n.Layout() {
		switch c.kind {
		case ContentText:
			b.WriteString(c.text)
		case ContentComponent:
			if c.node != nil {
				c.node.writeText(b)
			}
		}
	}
}

// Walk calls fn for n and every node below it, in layout order, until fn
// returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Layout() {
		if c.kind == ContentComponent && c.node != nil {
			if !c.node.Walk(fn) {
				return false
			}
		}
	}
	return true
}

// Equal reports whether two nodes are structurally equal: same kind, props,
// children, slots and resolved style.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.kind != o.kind {
		return false
	}
	if !reflect.DeepEqual(n.props, o.props) && (len(n.props) != 0 || len(o.props) != 0) {
		return false
	}
	if !contentsEqual(n.children, o.children) {
		return false
	}
	if len(n.slots) != len(o.slots) {
		return false
	}
	for name, s := range n.slots {
		if !s.Equal(o.slots[name]) {
			return false
		}
	}
	return n.style == o.style && n.resolved.Equal(o.resolved)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
