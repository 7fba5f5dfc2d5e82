package chatcard

import (
	"bytes"
	"fmt"

	eng "github.com/reoring/chatcard/internal/engine"
)

// Wire names of union alternatives in declaration order.
var (
	widgetAlternatives  = []string{"textParagraph", "image", "decoratedText", "buttonList", "textInput", "selectionInput", "dateTimePicker", "divider", "grid"}
	controlAlternatives = []string{"button", "switchControl", "endIcon"}
	onClickAlternatives = []string{"action", "openLink", "openDynamicLinkAction", "card"}
)

// element is implemented by every node of the card tree.
type element interface {
	decodeNode(n *eng.Node, p PathRef) error
	encodeNode(e *encoder)
	validateNode(v *validator, p PathRef)
}

// variant returns the wire name and value of the populated alternative of
// w, or "" and nil. Typed nil pointers count as unset.
func (w *Widget) variant() (string, element) {
	switch b := w.Body.(type) {
	case *TextParagraph:
		if b != nil {
			return "textParagraph", b
		}
	case *Image:
		if b != nil {
			return "image", b
		}
	case *DecoratedText:
		if b != nil {
			return "decoratedText", b
		}
	case *ButtonList:
		if b != nil {
			return "buttonList", b
		}
	case *TextInput:
		if b != nil {
			return "textInput", b
		}
	case *SelectionInput:
		if b != nil {
			return "selectionInput", b
		}
	case *DateTimePicker:
		if b != nil {
			return "dateTimePicker", b
		}
	case *Divider:
		if b != nil {
			return "divider", b
		}
	case *Grid:
		if b != nil {
			return "grid", b
		}
	}
	return "", nil
}

func (d *DecoratedText) variant() (string, element) {
	switch c := d.Control.(type) {
	case *Button:
		if c != nil {
			return "button", c
		}
	case *SwitchControl:
		if c != nil {
			return "switchControl", c
		}
	case *EndIcon:
		if c != nil {
			return "endIcon", &c.Icon
		}
	}
	return "", nil
}

func (o *OnClick) variant() (string, element) {
	switch t := o.Target.(type) {
	case *Action:
		if t != nil {
			return "action", t
		}
	case *OpenLink:
		if t != nil {
			return "openLink", t
		}
	case *DynamicLinkAction:
		if t != nil {
			return "openDynamicLinkAction", &t.Action
		}
	case *Card:
		if t != nil {
			return "card", t
		}
	}
	return "", nil
}

// foreignAlternative reports a union slot that holds a type other than its
// alternatives, such as a struct embedding one of them. set is the wire name
// variant resolved, if any.
func foreignAlternative(v *validator, p PathRef, set, expected string, val any) {
	if set != "" {
		return
	}
	switch val.(type) {
	case nil, *TextParagraph, *Image, *DecoratedText, *ButtonList, *TextInput, *SelectionInput, *DateTimePicker, *Divider, *Grid,
		*Button, *SwitchControl, *EndIcon,
		*Action, *OpenLink, *DynamicLinkAction, *Card:
		return
	}
	v.add(p.Issue(CodeTypeMismatch, "expected", expected, "got", fmt.Sprintf("%T", val)))
}

// variant writes the populated alternative of a union, if any.
func (e *encoder) variant(key string, el element) {
	if el == nil {
		return
	}
	e.key(key)
	el.encodeNode(e)
}

// unionIssue reports the alternatives populated either through the typed
// slot (set) or through non-null pass-through members, when more than one.
func unionIssue(v *validator, p PathRef, set string, x Extras, alternatives []string) {
	var populated []string
	for _, alt := range alternatives {
		if alt == set || hasNonNull(x, alt) {
			populated = append(populated, alt)
		}
	}
	if len(populated) > 1 {
		v.add(p.Issue(CodeAmbiguousUnion, "alternatives", populated))
	}
}

func hasNonNull(x Extras, key string) bool {
	for _, e := range x {
		if e.Key == key && !bytes.Equal(bytes.TrimSpace(e.Value), []byte("null")) {
			return true
		}
	}
	return false
}
