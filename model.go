package chatcard

// Every field is optional. Nil pointers and nil slices mean absent; a non-nil
// empty slice is a present, empty sequence. Each type keeps members it does
// not model in Extra so that decode followed by encode preserves them.

// Message is the webhook envelope carrying one or more cards.
type Message struct {
	CardsV2 []CardWithID
	Extra   Extras
}

// CardWithID pairs a card with a caller-chosen identifier. Uniqueness of
// CardID across a message is not checked.
type CardWithID struct {
	CardID *string
	Card   *Card
	Extra  Extras
}

// Card is the top-level renderable unit.
type Card struct {
	Header         *CardHeader
	Sections       []Section
	CardActions    []CardAction
	Name           *string
	FixedFooter    *CardFixedFooter
	DisplayStyle   DisplayStyle
	PeekCardHeader *CardHeader
	Extra          Extras
}

type CardHeader struct {
	Title        *string
	Subtitle     *string
	ImageType    ImageType
	ImageURL     *string
	ImageAltText *string
	Extra        Extras
}

// Section groups widgets. UncollapsibleWidgetsCount is carried even when
// Collapsible is false or the count exceeds len(Widgets).
type Section struct {
	Header                    *string
	Widgets                   []Widget
	Collapsible               *bool
	UncollapsibleWidgetsCount *int
	Extra                     Extras
}

// Widget holds at most one body; a nil Body is an empty widget.
type Widget struct {
	Body  WidgetBody
	Extra Extras
}

// WidgetBody is implemented by *TextParagraph, *Image, *DecoratedText,
// *ButtonList, *TextInput, *SelectionInput, *DateTimePicker, *Divider and
// *Grid.
type WidgetBody interface{ widgetBody() }

func (*TextParagraph) widgetBody()  {}
func (*Image) widgetBody()          {}
func (*DecoratedText) widgetBody()  {}
func (*ButtonList) widgetBody()     {}
func (*TextInput) widgetBody()      {}
func (*SelectionInput) widgetBody() {}
func (*DateTimePicker) widgetBody() {}
func (*Divider) widgetBody()        {}
func (*Grid) widgetBody()           {}

type TextParagraph struct {
	Text  *string
	Extra Extras
}

type Image struct {
	ImageURL *string
	OnClick  *OnClick
	AltText  *string
	Extra    Extras
}

type Divider struct {
	Extra Extras
}

// DecoratedText shows text with optional decorations. Icon is the
// deprecated spelling of StartIcon; both are carried independently.
type DecoratedText struct {
	Icon        *Icon
	StartIcon   *Icon
	TopLabel    *string
	Text        *string
	WrapText    *bool
	BottomLabel *string
	OnClick     *OnClick
	Control     DecoratedTextControl
	Extra       Extras
}

// DecoratedTextControl is implemented by *Button, *SwitchControl and
// *EndIcon. On the wire each is a sibling key of the decorated text.
type DecoratedTextControl interface{ decoratedTextControl() }

func (*Button) decoratedTextControl()        {}
func (*SwitchControl) decoratedTextControl() {}
func (*EndIcon) decoratedTextControl()       {}

// EndIcon is an Icon used as the trailing control of a DecoratedText.
type EndIcon struct {
	Icon
}

type Icon struct {
	AltText   *string
	ImageType ImageType
	KnownIcon *string
	IconURL   *string
	Extra     Extras
}

type Button struct {
	Text     *string
	Icon     *Icon
	Color    *Color
	OnClick  *OnClick
	Disabled *bool
	AltText  *string
	Extra    Extras
}

type SwitchControl struct {
	Name           *string
	Value          *string
	Selected       *bool
	OnChangeAction *Action
	ControlType    ControlType
	Extra          Extras
}

type ButtonList struct {
	Buttons []Button
	Extra   Extras
}

type TextInput struct {
	Name               *string
	Label              *string
	HintText           *string
	Value              *string
	Type               TextInputType
	OnChangeAction     *Action
	InitialSuggestions *Suggestions
	AutoCompleteAction *Action
	Extra              Extras
}

type Suggestions struct {
	Items []SuggestionItem
	Extra Extras
}

// SuggestionItem is a union with the single alternative Text.
type SuggestionItem struct {
	Text  *string
	Extra Extras
}

type SelectionInput struct {
	Name           *string
	Label          *string
	Type           SelectionType
	Items          []SelectionItem
	OnChangeAction *Action
	Extra          Extras
}

type SelectionItem struct {
	Text     *string
	Value    *string
	Selected *bool
	Extra    Extras
}

// DateTimePicker lets users pick a date, a time or both. ValueMsEpoch travels
// as a decimal string.
type DateTimePicker struct {
	Name               *string
	Label              *string
	Type               DateTimePickerType
	ValueMsEpoch       *int64
	TimezoneOffsetDate *int
	OnChangeAction     *Action
	Extra              Extras
}

type Grid struct {
	Title       *string
	Items       []GridItem
	BorderStyle *BorderStyle
	ColumnCount *int
	OnClick     *OnClick
	Extra       Extras
}

type GridItem struct {
	ID       *string
	Image    *ImageComponent
	Title    *string
	Subtitle *string
	Layout   GridItemLayout
	Extra    Extras
}

type ImageComponent struct {
	ImageURI    *string
	AltText     *string
	CropStyle   *ImageCropStyle
	BorderStyle *BorderStyle
	Extra       Extras
}

type ImageCropStyle struct {
	Type        ImageCropType
	AspectRatio *float64
	Extra       Extras
}

type BorderStyle struct {
	Type         BorderType
	StrokeColor  *Color
	CornerRadius *int
	Extra        Extras
}

// OnClick holds at most one click target; a nil Target is no target.
type OnClick struct {
	Target OnClickTarget
	Extra  Extras
}

// OnClickTarget is implemented by *Action, *OpenLink, *DynamicLinkAction
// and *Card.
type OnClickTarget interface{ onClickTarget() }

func (*Action) onClickTarget()   {}
func (*OpenLink) onClickTarget() {}
func (*Card) onClickTarget()     {}

// DynamicLinkAction is an Action that opens a link. Wire name:
// "openDynamicLinkAction".
type DynamicLinkAction struct {
	Action
}

// Action names a function to invoke. Parameters keep duplicates in order.
type Action struct {
	Function      *string
	Parameters    []ActionParameter
	LoadIndicator LoadIndicator
	PersistValues *bool
	Interaction   Interaction
	Extra         Extras
}

type ActionParameter struct {
	Key   *string
	Value *string
	Extra Extras
}

type OpenLink struct {
	URL     *string
	OpenAs  OpenAs
	OnClose OnClose
	Extra   Extras
}

type CardAction struct {
	ActionLabel *string
	OnClick     *OnClick
	Extra       Extras
}

type CardFixedFooter struct {
	PrimaryButton   *Button
	SecondaryButton *Button
	Extra           Extras
}
