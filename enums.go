package chatcard

import (
	"slices"
	"strconv"

	eng "github.com/reoring/chatcard/internal/engine"
)

// Enum fields hold the member token; the empty string means the field is
// absent. On the wire each field also accepts the member's declaration
// ordinal (0, 1, ...) as an alias, which decodes to the same token.

// ImageType is the shape used to crop an image.
type ImageType string

const (
	ImageTypeSquare ImageType = "SQUARE"
	ImageTypeCircle ImageType = "CIRCLE"
)

// LoadIndicator is the loading indicator an action displays while running.
type LoadIndicator string

const (
	LoadIndicatorSpinner LoadIndicator = "SPINNER"
	LoadIndicatorNone    LoadIndicator = "NONE"
)

// Interaction selects special handling of a user interaction, such as
// opening a dialog.
type Interaction string

const (
	InteractionUnspecified Interaction = "INTERACTION_UNSPECIFIED"
	InteractionOpenDialog  Interaction = "OPEN_DIALOG"
)

// OpenAs controls how a link opens.
type OpenAs string

const (
	OpenAsFullSize OpenAs = "FULL_SIZE"
	OpenAsOverlay  OpenAs = "OVERLAY"
)

// OnClose is what the client does when an opened link closes.
type OnClose string

const (
	OnCloseNothing OnClose = "NOTHING"
	OnCloseReload  OnClose = "RELOAD"
)

// ControlType is how a switch control appears.
type ControlType string

const (
	ControlTypeSwitch ControlType = "SWITCH"
	// Deprecated: use ControlTypeCheckBox.
	ControlTypeCheckbox ControlType = "CHECKBOX"
	ControlTypeCheckBox ControlType = "CHECK_BOX"
)

// TextInputType is the height of a text input field. Wire name: "type".
type TextInputType string

const (
	TextInputSingleLine   TextInputType = "SINGLE_LINE"
	TextInputMultipleLine TextInputType = "MULTIPLE_LINE"
)

// SelectionType is the way a selection input presents its options.
type SelectionType string

const (
	SelectionCheckBox    SelectionType = "CHECK_BOX"
	SelectionRadioButton SelectionType = "RADIO_BUTTON"
	SelectionSwitch      SelectionType = "SWITCH"
	SelectionDropdown    SelectionType = "DROPDOWN"
)

// DateTimePickerType is what a date-time picker lets users pick.
type DateTimePickerType string

const (
	DateTimePickerDateAndTime DateTimePickerType = "DATE_AND_TIME"
	DateTimePickerDateOnly    DateTimePickerType = "DATE_ONLY"
	DateTimePickerTimeOnly    DateTimePickerType = "TIME_ONLY"
)

// ImageCropType is the crop applied to an image component.
type ImageCropType string

const (
	ImageCropUnspecified     ImageCropType = "IMAGE_CROP_TYPE_UNSPECIFIED"
	ImageCropSquare          ImageCropType = "SQUARE"
	ImageCropCircle          ImageCropType = "CIRCLE"
	ImageCropRectangleCustom ImageCropType = "RECTANGLE_CUSTOM"
	ImageCropRectangle4x3    ImageCropType = "RECTANGLE_4_3"
)

// BorderType is the border drawn around a widget.
type BorderType string

const (
	BorderTypeUnspecified BorderType = "BORDER_TYPE_UNSPECIFIED"
	BorderTypeNoBorder    BorderType = "NO_BORDER"
	BorderTypeStroke      BorderType = "STROKE"
)

// GridItemLayout places a grid item's text relative to its image.
type GridItemLayout string

const (
	GridItemLayoutUnspecified GridItemLayout = "GRID_ITEM_LAYOUT_UNSPECIFIED"
	GridItemTextBelow         GridItemLayout = "TEXT_BELOW"
	GridItemTextAbove         GridItemLayout = "TEXT_ABOVE"
)

// DisplayStyle determines how an add-on card is displayed.
type DisplayStyle string

const (
	// Deprecated: use DisplayStylePeek or DisplayStyleReplace.
	DisplayStyleUnspecified DisplayStyle = "DISPLAY_STYLE_UNSPECIFIED"
	DisplayStylePeek        DisplayStyle = "PEEK"
	DisplayStyleReplace     DisplayStyle = "REPLACE"
)

// enumSet is a closed token set in declaration order.
type enumSet[E ~string] struct {
	name    string
	members []E
}

var (
	imageTypes          = enumSet[ImageType]{"ImageType", []ImageType{ImageTypeSquare, ImageTypeCircle}}
	loadIndicators      = enumSet[LoadIndicator]{"LoadIndicator", []LoadIndicator{LoadIndicatorSpinner, LoadIndicatorNone}}
	interactions        = enumSet[Interaction]{"Interaction", []Interaction{InteractionUnspecified, InteractionOpenDialog}}
	openAsValues        = enumSet[OpenAs]{"OpenAs", []OpenAs{OpenAsFullSize, OpenAsOverlay}}
	onCloseValues       = enumSet[OnClose]{"OnClose", []OnClose{OnCloseNothing, OnCloseReload}}
	controlTypes        = enumSet[ControlType]{"ControlType", []ControlType{ControlTypeSwitch, ControlTypeCheckbox, ControlTypeCheckBox}}
	textInputTypes      = enumSet[TextInputType]{"Type", []TextInputType{TextInputSingleLine, TextInputMultipleLine}}
	selectionTypes      = enumSet[SelectionType]{"SelectionType", []SelectionType{SelectionCheckBox, SelectionRadioButton, SelectionSwitch, SelectionDropdown}}
	dateTimePickerTypes = enumSet[DateTimePickerType]{"DateTimePickerType", []DateTimePickerType{DateTimePickerDateAndTime, DateTimePickerDateOnly, DateTimePickerTimeOnly}}
	imageCropTypes      = enumSet[ImageCropType]{"ImageCropType", []ImageCropType{ImageCropUnspecified, ImageCropSquare, ImageCropCircle, ImageCropRectangleCustom, ImageCropRectangle4x3}}
	borderTypes         = enumSet[BorderType]{"BorderType", []BorderType{BorderTypeUnspecified, BorderTypeNoBorder, BorderTypeStroke}}
	gridItemLayouts     = enumSet[GridItemLayout]{"GridItemLayout", []GridItemLayout{GridItemLayoutUnspecified, GridItemTextBelow, GridItemTextAbove}}
	displayStyles       = enumSet[DisplayStyle]{"DisplayStyle", []DisplayStyle{DisplayStyleUnspecified, DisplayStylePeek, DisplayStyleReplace}}
)

func (s enumSet[E]) ordinal(v E) int { return slices.Index(s.members, v) }

func (s enumSet[E]) tokens() []any {
	out := make([]any, len(s.members))
	for i, m := range s.members {
		out[i] = string(m)
	}
	return out
}

// decode normalizes a token or ordinal wire value. Null leaves dst untouched.
func (s enumSet[E]) decode(dst *E, n *eng.Node, p PathRef) error {
	switch n.Kind {
	case eng.NodeNull:
		return nil
	case eng.NodeString:
		for _, m := range s.members {
			if string(m) == n.Text {
				*dst = m
				return nil
			}
		}
		return singleIssue(p.Issue(CodeUnknownEnumValue, "enum", s.name, "value", n.Text))
	case eng.NodeNumber:
		if i, err := strconv.Atoi(n.Text); err == nil && i >= 0 && i < len(s.members) {
			*dst = s.members[i]
			return nil
		}
		return singleIssue(p.Issue(CodeUnknownEnumValue, "enum", s.name, "value", n.Text))
	default:
		return typeMismatch(p, "string", n)
	}
}

func (s enumSet[E]) validate(v *validator, p PathRef, val E) {
	if val == "" || s.ordinal(val) >= 0 {
		return
	}
	v.add(p.Issue(CodeUnknownEnumValue, "enum", s.name, "value", string(val)))
}

// Valid reports whether t is a member of its enum. Ordinal returns the
// declaration index accepted as the numeric wire alias, or -1 for
// non-members.
func (t ImageType) Valid() bool           { return imageTypes.ordinal(t) >= 0 }
func (t ImageType) Ordinal() int          { return imageTypes.ordinal(t) }
func (t LoadIndicator) Valid() bool       { return loadIndicators.ordinal(t) >= 0 }
func (t LoadIndicator) Ordinal() int      { return loadIndicators.ordinal(t) }
func (t Interaction) Valid() bool         { return interactions.ordinal(t) >= 0 }
func (t Interaction) Ordinal() int        { return interactions.ordinal(t) }
func (t OpenAs) Valid() bool              { return openAsValues.ordinal(t) >= 0 }
func (t OpenAs) Ordinal() int             { return openAsValues.ordinal(t) }
func (t OnClose) Valid() bool             { return onCloseValues.ordinal(t) >= 0 }
func (t OnClose) Ordinal() int            { return onCloseValues.ordinal(t) }
func (t ControlType) Valid() bool         { return controlTypes.ordinal(t) >= 0 }
func (t ControlType) Ordinal() int        { return controlTypes.ordinal(t) }
func (t TextInputType) Valid() bool       { return textInputTypes.ordinal(t) >= 0 }
func (t TextInputType) Ordinal() int      { return textInputTypes.ordinal(t) }
func (t SelectionType) Valid() bool       { return selectionTypes.ordinal(t) >= 0 }
func (t SelectionType) Ordinal() int      { return selectionTypes.ordinal(t) }
func (t DateTimePickerType) Valid() bool  { return dateTimePickerTypes.ordinal(t) >= 0 }
func (t DateTimePickerType) Ordinal() int { return dateTimePickerTypes.ordinal(t) }
func (t ImageCropType) Valid() bool       { return imageCropTypes.ordinal(t) >= 0 }
func (t ImageCropType) Ordinal() int      { return imageCropTypes.ordinal(t) }
func (t BorderType) Valid() bool          { return borderTypes.ordinal(t) >= 0 }
func (t BorderType) Ordinal() int         { return borderTypes.ordinal(t) }
func (t GridItemLayout) Valid() bool      { return gridItemLayouts.ordinal(t) >= 0 }
func (t GridItemLayout) Ordinal() int     { return gridItemLayouts.ordinal(t) }
func (t DisplayStyle) Valid() bool        { return displayStyles.ordinal(t) >= 0 }
func (t DisplayStyle) Ordinal() int       { return displayStyles.ordinal(t) }
