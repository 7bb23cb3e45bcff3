package tooltip

import (
	"fmt"
	"reflect"

	"github.com/go-drift/hovertip/pkg/hittest"
)

// HoverKind tags what an Identity refers to.
type HoverKind int

const (
	// HoverNone means nothing with a tooltip is under the pointer.
	HoverNone HoverKind = iota
	// HoverTitle means the plot title area.
	HoverTitle
	// HoverElement means a specific plot element.
	HoverElement
)

func (k HoverKind) String() string {
	switch k {
	case HoverTitle:
		return "title"
	case HoverElement:
		return "element"
	default:
		return "none"
	}
}

// Identity is what is currently under the pointer. Identities are values;
// the controller builds a new one on every hover change.
type Identity struct {
	kind    HoverKind
	element hittest.Element
	text    string
}

// None is the empty identity.
var None = Identity{}

// TitleIdentity returns the identity of the title area with its tooltip text.
func TitleIdentity(text string) Identity {
	return Identity{kind: HoverTitle, text: text}
}

// ElementIdentity returns the identity of el. The tooltip text is captured
// once, when the identity is created.
func ElementIdentity(el hittest.Element) Identity {
	if el == nil {
		return None
	}
	return Identity{kind: HoverElement, element: el, text: el.ToolTip()}
}

// Kind returns the identity's tag.
func (id Identity) Kind() HoverKind { return id.kind }

// Element returns the hovered element, or nil for None and Title.
func (id Identity) Element() hittest.Element { return id.element }

// Text returns the tooltip text captured for the identity.
func (id Identity) Text() string { return id.text }

// Equivalent reports whether id and other name the same hover target: both
// None, both Title, or both the same element. Tooltip text does not take
// part.
func (id Identity) Equivalent(other Identity) bool {
	if id.kind != other.kind {
		return false
	}
	if id.kind != HoverElement {
		return true
	}
	return sameElement(id.element, other.element)
}

// sameElement reports whether a and b are the same element. Reference
// kinds (pointers, maps, channels, funcs, slices) compare by address, and a
// slice also by length, so a slice-backed element equals itself. Value kinds
// carry no address: two equal values are the same element, and a scene that
// needs distinct targets with equal fields must report pointers.
func sameElement(a, b hittest.Element) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return va.UnsafePointer() == vb.UnsafePointer()
	case reflect.Slice:
		return va.UnsafePointer() == vb.UnsafePointer() && va.Len() == vb.Len()
	}
	if va.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

func (id Identity) String() string {
	if id.kind == HoverElement {
		return fmt.Sprintf("element(%T %q)", id.element, id.text)
	}
	return id.kind.String()
}
