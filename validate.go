package chatcard

import (
	"math"
	"strconv"
)

// validator accumulates issues for a hand-built tree. For each object the
// union check comes first, then fields in declaration order, then
// pass-through members.
type validator struct {
	issues Issues
}

type validatable interface {
	validateNode(v *validator, p PathRef)
}

func (v *validator) add(it Issue) { v.issues = append(v.issues, it) }

func (v *validator) finite(p PathRef, f *float64) {
	if f == nil || (!math.IsNaN(*f) && !math.IsInf(*f, 0)) {
		return
	}
	v.add(p.Issue(CodeTypeMismatch, "expected", "finite number", "got", strconv.FormatFloat(*f, 'g', -1, 64)))
}

func validateObject[T any, PT interface {
	*T
	validatable
}](v *validator, p PathRef, x *T) {
	if x != nil {
		PT(x).validateNode(v, p)
	}
}

func validateList[T any, PT interface {
	*T
	validatable
}](v *validator, p PathRef, xs []T) {
	for i := range xs {
		PT(&xs[i]).validateNode(v, p.Index(i))
	}
}

// Modelled wire keys per type. A pass-through member with one of these
// names would be read back as the field.
var (
	messageKeys         = []string{"cardsV2"}
	cardWithIDKeys      = []string{"cardId", "card"}
	cardKeys            = []string{"header", "sections", "cardActions", "name", "fixedFooter", "displayStyle", "peekCardHeader"}
	cardHeaderKeys      = []string{"title", "subtitle", "imageType", "imageUrl", "imageAltText"}
	sectionKeys         = []string{"header", "widgets", "collapsible", "uncollapsibleWidgetsCount"}
	textParagraphKeys   = []string{"text"}
	imageKeys           = []string{"imageUrl", "onClick", "altText"}
	decoratedTextKeys   = append([]string{"icon", "startIcon", "topLabel", "text", "wrapText", "bottomLabel", "onClick"}, controlAlternatives...)
	iconKeys            = []string{"altText", "imageType", "knownIcon", "iconUrl"}
	buttonKeys          = []string{"text", "icon", "color", "onClick", "disabled", "altText"}
	colorKeys           = []string{"red", "green", "blue", "alpha"}
	switchControlKeys   = []string{"name", "value", "selected", "onChangeAction", "controlType"}
	buttonListKeys      = []string{"buttons"}
	textInputKeys       = []string{"name", "label", "hintText", "value", "type", "onChangeAction", "initialSuggestions", "autoCompleteAction"}
	suggestionsKeys     = []string{"items"}
	suggestionItemKeys  = []string{"text"}
	selectionInputKeys  = []string{"name", "label", "type", "items", "onChangeAction"}
	selectionItemKeys   = []string{"text", "value", "selected"}
	dateTimePickerKeys  = []string{"name", "label", "type", "valueMsEpoch", "timezoneOffsetDate", "onChangeAction"}
	gridKeys            = []string{"title", "items", "borderStyle", "columnCount", "onClick"}
	gridItemKeys        = []string{"id", "image", "title", "subtitle", "layout"}
	imageComponentKeys  = []string{"imageUri", "altText", "cropStyle", "borderStyle"}
	imageCropStyleKeys  = []string{"type", "aspectRatio"}
	borderStyleKeys     = []string{"type", "strokeColor", "cornerRadius"}
	actionKeys          = []string{"function", "parameters", "loadIndicator", "persistValues", "interaction"}
	actionParameterKeys = []string{"key", "value"}
	openLinkKeys        = []string{"url", "openAs", "onClose"}
	cardActionKeys      = []string{"actionLabel", "onClick"}
	fixedFooterKeys     = []string{"primaryButton", "secondaryButton"}
)

func (m *Message) validateNode(v *validator, p PathRef) {
	validateList(v, p.Field("cardsV2"), m.CardsV2)
	validateExtras(v, p, m.Extra, messageKeys)
}

func (c *CardWithID) validateNode(v *validator, p PathRef) {
	validateObject(v, p.Field("card"), c.Card)
	validateExtras(v, p, c.Extra, cardWithIDKeys)
}

func (c *Card) validateNode(v *validator, p PathRef) {
	validateObject(v, p.Field("header"), c.Header)
	validateList(v, p.Field("sections"), c.Sections)
	validateList(v, p.Field("cardActions"), c.CardActions)
	validateObject(v, p.Field("fixedFooter"), c.FixedFooter)
	displayStyles.validate(v, p.Field("displayStyle"), c.DisplayStyle)
	validateObject(v, p.Field("peekCardHeader"), c.PeekCardHeader)
	validateExtras(v, p, c.Extra, cardKeys)
}

func (h *CardHeader) validateNode(v *validator, p PathRef) {
	imageTypes.validate(v, p.Field("imageType"), h.ImageType)
	validateExtras(v, p, h.Extra, cardHeaderKeys)
}

func (s *Section) validateNode(v *validator, p PathRef) {
	validateList(v, p.Field("widgets"), s.Widgets)
	validateExtras(v, p, s.Extra, sectionKeys)
}

func (w *Widget) validateNode(v *validator, p PathRef) {
	key, body := w.variant()
	foreignAlternative(v, p, key, "widget body", w.Body)
	unionIssue(v, p, key, w.Extra, widgetAlternatives)
	if body != nil {
		body.validateNode(v, p.Field(key))
	}
	validateExtras(v, p, w.Extra, widgetAlternatives)
}

func (t *TextParagraph) validateNode(v *validator, p PathRef) {
	validateExtras(v, p, t.Extra, textParagraphKeys)
}

func (im *Image) validateNode(v *validator, p PathRef) {
	validateObject(v, p.Field("onClick"), im.OnClick)
	validateExtras(v, p, im.Extra, imageKeys)
}

func (d *Divider) validateNode(v *validator, p PathRef) {
	validateExtras(v, p, d.Extra, nil)
}

func (d *DecoratedText) validateNode(v *validator, p PathRef) {
	key, control := d.variant()
	foreignAlternative(v, p.Field("control"), key, "decorated text control", d.Control)
	unionIssue(v, p.Field("control"), key, d.Extra, controlAlternatives)
	validateObject(v, p.Field("icon"), d.Icon)
	validateObject(v, p.Field("startIcon"), d.StartIcon)
	validateObject(v, p.Field("onClick"), d.OnClick)
	if control != nil {
		control.validateNode(v, p.Field(key))
	}
	validateExtras(v, p, d.Extra, decoratedTextKeys)
}

func (ic *Icon) validateNode(v *validator, p PathRef) {
	imageTypes.validate(v, p.Field("imageType"), ic.ImageType)
	validateExtras(v, p, ic.Extra, iconKeys)
}

func (b *Button) validateNode(v *validator, p PathRef) {
	validateObject(v, p.Field("icon"), b.Icon)
	validateObject(v, p.Field("color"), b.Color)
	validateObject(v, p.Field("onClick"), b.OnClick)
	validateExtras(v, p, b.Extra, buttonKeys)
}

func (c *Color) validateNode(v *validator, p PathRef) {
	v.finite(p.Field("red"), c.Red)
	v.finite(p.Field("green"), c.Green)
	v.finite(p.Field("blue"), c.Blue)
	v.finite(p.Field("alpha"), c.Alpha)
	validateExtras(v, p, c.Extra, colorKeys)
}

func (s *SwitchControl) validateNode(v *validator, p PathRef) {
	validateObject(v, p.Field("onChangeAction"), s.OnChangeAction)
	controlTypes.validate(v, p.Field("controlType"), s.ControlType)
	validateExtras(v, p, s.Extra, switchControlKeys)
}

func (b *ButtonList) validateNode(v *validator, p PathRef) {
	validateList(v, p.Field("buttons"), b.Buttons)
	validateExtras(v, p, b.Extra, buttonListKeys)
}

func (t *TextInput) validateNode(v *validator, p PathRef) {
	textInputTypes.validate(v, p.Field("type"), t.Type)
	validateObject(v, p.Field("onChangeAction"), t.OnChangeAction)
	validateObject(v, p.Field("initialSuggestions"), t.InitialSuggestions)
	validateObject(v, p.Field("autoCompleteAction"), t.AutoCompleteAction)
	validateExtras(v, p, t.Extra, textInputKeys)
}

func (s *Suggestions) validateNode(v *validator, p PathRef) {
	validateList(v, p.Field("items"), s.Items)
	validateExtras(v, p, s.Extra, suggestionsKeys)
}

func (s *SuggestionItem) validateNode(v *validator, p PathRef) {
	validateExtras(v, p, s.Extra, suggestionItemKeys)
}

func (s *SelectionInput) validateNode(v *validator, p PathRef) {
	selectionTypes.validate(v, p.Field("type"), s.Type)
	validateList(v, p.Field("items"), s.Items)
	validateObject(v, p.Field("onChangeAction"), s.OnChangeAction)
	validateExtras(v, p, s.Extra, selectionInputKeys)
}

func (s *SelectionItem) validateNode(v *validator, p PathRef) {
	validateExtras(v, p, s.Extra, selectionItemKeys)
}

func (d *DateTimePicker) validateNode(v *validator, p PathRef) {
	dateTimePickerTypes.validate(v, p.Field("type"), d.Type)
	validateObject(v, p.Field("onChangeAction"), d.OnChangeAction)
	validateExtras(v, p, d.Extra, dateTimePickerKeys)
}

func (g *Grid) validateNode(v *validator, p PathRef) {
	validateList(v, p.Field("items"), g.Items)
	validateObject(v, p.Field("borderStyle"), g.BorderStyle)
	validateObject(v, p.Field("onClick"), g.OnClick)
	validateExtras(v, p, g.Extra, gridKeys)
}

func (g *GridItem) validateNode(v *validator, p PathRef) {
	validateObject(v, p.Field("image"), g.Image)
	gridItemLayouts.validate(v, p.Field("layout"), g.Layout)
	validateExtras(v, p, g.Extra, gridItemKeys)
}

func (ic *ImageComponent) validateNode(v *validator, p PathRef) {
	validateObject(v, p.Field("cropStyle"), ic.CropStyle)
	validateObject(v, p.Field("borderStyle"), ic.BorderStyle)
	validateExtras(v, p, ic.Extra, imageComponentKeys)
}

func (c *ImageCropStyle) validateNode(v *validator, p PathRef) {
	imageCropTypes.validate(v, p.Field("type"), c.Type)
	v.finite(p.Field("aspectRatio"), c.AspectRatio)
	validateExtras(v, p, c.Extra, imageCropStyleKeys)
}

func (b *BorderStyle) validateNode(v *validator, p PathRef) {
	borderTypes.validate(v, p.Field("type"), b.Type)
	validateObject(v, p.Field("strokeColor"), b.StrokeColor)
	validateExtras(v, p, b.Extra, borderStyleKeys)
}

func (o *OnClick) validateNode(v *validator, p PathRef) {
	key, target := o.variant()
	foreignAlternative(v, p, key, "on-click target", o.Target)
	unionIssue(v, p, key, o.Extra, onClickAlternatives)
	if target != nil {
		target.validateNode(v, p.Field(key))
	}
	validateExtras(v, p, o.Extra, onClickAlternatives)
}

func (a *Action) validateNode(v *validator, p PathRef) {
	validateList(v, p.Field("parameters"), a.Parameters)
	loadIndicators.validate(v, p.Field("loadIndicator"), a.LoadIndicator)
	interactions.validate(v, p.Field("interaction"), a.Interaction)
	validateExtras(v, p, a.Extra, actionKeys)
}

func (a *ActionParameter) validateNode(v *validator, p PathRef) {
	validateExtras(v, p, a.Extra, actionParameterKeys)
}

func (o *OpenLink) validateNode(v *validator, p PathRef) {
	openAsValues.validate(v, p.Field("openAs"), o.OpenAs)
	onCloseValues.validate(v, p.Field("onClose"), o.OnClose)
	validateExtras(v, p, o.Extra, openLinkKeys)
}

func (c *CardAction) validateNode(v *validator, p PathRef) {
	validateObject(v, p.Field("onClick"), c.OnClick)
	validateExtras(v, p, c.Extra, cardActionKeys)
}

func (f *CardFixedFooter) validateNode(v *validator, p PathRef) {
	validateObject(v, p.Field("primaryButton"), f.PrimaryButton)
	validateObject(v, p.Field("secondaryButton"), f.SecondaryButton)
	validateExtras(v, p, f.Extra, fixedFooterKeys)
}
