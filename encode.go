package chatcard

import (
	"bytes"
	"strconv"

	j "github.com/goccy/go-json"

	eng "github.com/reoring/chatcard/internal/engine"
)

// encoder writes compact JSON. Known fields go out in declaration order and
// pass-through members follow in their stored order. The first write error
// sticks and later writes are skipped.
type encoder struct {
	buf   bytes.Buffer
	comma []bool
	err   error
}

type encodable interface {
	encodeNode(e *encoder)
}

func (e *encoder) begin() {
	e.buf.WriteByte('{')
	e.comma = append(e.comma, false)
}

// end flushes extras and closes the current object.
func (e *encoder) end(extra Extras) {
	for _, x := range extra {
		e.key(x.Key)
		if e.err != nil {
			return
		}
		var raw bytes.Buffer
		if err := j.Compact(&raw, x.Value); err != nil {
			e.err = err
			return
		}
		e.buf.Write(raw.Bytes())
	}
	e.buf.WriteByte('}')
	e.comma = e.comma[:len(e.comma)-1]
}

func (e *encoder) key(k string) {
	if e.err != nil {
		return
	}
	top := len(e.comma) - 1
	if e.comma[top] {
		e.buf.WriteByte(',')
	}
	e.comma[top] = true
	if err := eng.AppendString(&e.buf, k); err != nil {
		e.err = err
		return
	}
	e.buf.WriteByte(':')
}

func (e *encoder) str(k string, v *string) {
	if v == nil {
		return
	}
	e.key(k)
	if e.err != nil {
		return
	}
	if err := eng.AppendString(&e.buf, *v); err != nil {
		e.err = err
	}
}

func (e *encoder) boolean(k string, v *bool) {
	if v == nil {
		return
	}
	e.key(k)
	e.buf.WriteString(strconv.FormatBool(*v))
}

func (e *encoder) integer(k string, v *int) {
	if v == nil {
		return
	}
	e.key(k)
	e.buf.WriteString(strconv.Itoa(*v))
}

func (e *encoder) number(k string, v *float64) {
	if v == nil {
		return
	}
	e.key(k)
	e.buf.WriteString(strconv.FormatFloat(*v, 'g', -1, 64))
}

// int64String writes v as a quoted decimal.
func (e *encoder) int64String(k string, v *int64) {
	if v == nil {
		return
	}
	e.key(k)
	e.buf.WriteByte('"')
	e.buf.WriteString(strconv.FormatInt(*v, 10))
	e.buf.WriteByte('"')
}

func encodeEnum[E ~string](e *encoder, k string, v E) {
	if v == "" {
		return
	}
	s := string(v)
	e.str(k, &s)
}

func encodeObject[T any, PT interface {
	*T
	encodable
}](e *encoder, k string, v *T) {
	if v == nil {
		return
	}
	e.key(k)
	PT(v).encodeNode(e)
}

// encodeList writes nil as absent and an empty slice as [].
func encodeList[T any, PT interface {
	*T
	encodable
}](e *encoder, k string, v []T) {
	if v == nil {
		return
	}
	e.key(k)
	e.buf.WriteByte('[')
	for i := range v {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		PT(&v[i]).encodeNode(e)
	}
	e.buf.WriteByte(']')
}

func (m *Message) encodeNode(e *encoder) {
	e.begin()
	encodeList(e, "cardsV2", m.CardsV2)
	e.end(m.Extra)
}

func (c *CardWithID) encodeNode(e *encoder) {
	e.begin()
	e.str("cardId", c.CardID)
	encodeObject(e, "card", c.Card)
	e.end(c.Extra)
}

func (c *Card) encodeNode(e *encoder) {
	e.begin()
	encodeObject(e, "header", c.Header)
	encodeList(e, "sections", c.Sections)
	encodeList(e, "cardActions", c.CardActions)
	e.str("name", c.Name)
	encodeObject(e, "fixedFooter", c.FixedFooter)
	encodeEnum(e, "displayStyle", c.DisplayStyle)
	encodeObject(e, "peekCardHeader", c.PeekCardHeader)
	e.end(c.Extra)
}

func (h *CardHeader) encodeNode(e *encoder) {
	e.begin()
	e.str("title", h.Title)
	e.str("subtitle", h.Subtitle)
	encodeEnum(e, "imageType", h.ImageType)
	e.str("imageUrl", h.ImageURL)
	e.str("imageAltText", h.ImageAltText)
	e.end(h.Extra)
}

func (s *Section) encodeNode(e *encoder) {
	e.begin()
	e.str("header", s.Header)
	encodeList(e, "widgets", s.Widgets)
	e.boolean("collapsible", s.Collapsible)
	e.integer("uncollapsibleWidgetsCount", s.UncollapsibleWidgetsCount)
	e.end(s.Extra)
}

func (w *Widget) encodeNode(e *encoder) {
	e.begin()
	e.variant(w.variant())
	e.end(w.Extra)
}

func (t *TextParagraph) encodeNode(e *encoder) {
	e.begin()
	e.str("text", t.Text)
	e.end(t.Extra)
}

func (im *Image) encodeNode(e *encoder) {
	e.begin()
	e.str("imageUrl", im.ImageURL)
	encodeObject(e, "onClick", im.OnClick)
	e.str("altText", im.AltText)
	e.end(im.Extra)
}

func (d *Divider) encodeNode(e *encoder) {
	e.begin()
	e.end(d.Extra)
}

func (d *DecoratedText) encodeNode(e *encoder) {
	e.begin()
	encodeObject(e, "icon", d.Icon)
	encodeObject(e, "startIcon", d.StartIcon)
	e.str("topLabel", d.TopLabel)
	e.str("text", d.Text)
	e.boolean("wrapText", d.WrapText)
	e.str("bottomLabel", d.BottomLabel)
	encodeObject(e, "onClick", d.OnClick)
	e.variant(d.variant())
	e.end(d.Extra)
}

func (ic *Icon) encodeNode(e *encoder) {
	e.begin()
	e.str("altText", ic.AltText)
	encodeEnum(e, "imageType", ic.ImageType)
	e.str("knownIcon", ic.KnownIcon)
	e.str("iconUrl", ic.IconURL)
	e.end(ic.Extra)
}

func (b *Button) encodeNode(e *encoder) {
	e.begin()
	e.str("text", b.Text)
	encodeObject(e, "icon", b.Icon)
	encodeObject(e, "color", b.Color)
	encodeObject(e, "onClick", b.OnClick)
	e.boolean("disabled", b.Disabled)
	e.str("altText", b.AltText)
	e.end(b.Extra)
}

func (c *Color) encodeNode(e *encoder) {
	e.begin()
	e.number("red", c.Red)
	e.number("green", c.Green)
	e.number("blue", c.Blue)
	e.number("alpha", c.Alpha)
	e.end(c.Extra)
}

func (s *SwitchControl) encodeNode(e *encoder) {
	e.begin()
	e.str("name", s.Name)
	e.str("value", s.Value)
	e.boolean("selected", s.Selected)
	encodeObject(e, "onChangeAction", s.OnChangeAction)
	encodeEnum(e, "controlType", s.ControlType)
	e.end(s.Extra)
}

func (b *ButtonList) encodeNode(e *encoder) {
	e.begin()
	encodeList(e, "buttons", b.Buttons)
	e.end(b.Extra)
}

func (t *TextInput) encodeNode(e *encoder) {
	e.begin()
	e.str("name", t.Name)
	e.str("label", t.Label)
	e.str("hintText", t.HintText)
	e.str("value", t.Value)
	encodeEnum(e, "type", t.Type)
	encodeObject(e, "onChangeAction", t.OnChangeAction)
	encodeObject(e, "initialSuggestions", t.InitialSuggestions)
	encodeObject(e, "autoCompleteAction", t.AutoCompleteAction)
	e.end(t.Extra)
}

func (s *Suggestions) encodeNode(e *encoder) {
	e.begin()
	encodeList(e, "items", s.Items)
	e.end(s.Extra)
}

func (s *SuggestionItem) encodeNode(e *encoder) {
	e.begin()
	e.str("text", s.Text)
	e.end(s.Extra)
}

func (s *SelectionInput) encodeNode(e *encoder) {
	e.begin()
	e.str("name", s.Name)
	e.str("label", s.Label)
	encodeEnum(e, "type", s.Type)
	encodeList(e, "items", s.Items)
	encodeObject(e, "onChangeAction", s.OnChangeAction)
	e.end(s.Extra)
}

func (s *SelectionItem) encodeNode(e *encoder) {
	e.begin()
	e.str("text", s.Text)
	e.str("value", s.Value)
	e.boolean("selected", s.Selected)
	e.end(s.Extra)
}

func (d *DateTimePicker) encodeNode(e *encoder) {
	e.begin()
	e.str("name", d.Name)
	e.str("label", d.Label)
	encodeEnum(e, "type", d.Type)
	e.int64String("valueMsEpoch", d.ValueMsEpoch)
	e.integer("timezoneOffsetDate", d.TimezoneOffsetDate)
	encodeObject(e, "onChangeAction", d.OnChangeAction)
	e.end(d.Extra)
}

func (g *Grid) encodeNode(e *encoder) {
	e.begin()
	e.str("title", g.Title)
	encodeList(e, "items", g.Items)
	encodeObject(e, "borderStyle", g.BorderStyle)
	e.integer("columnCount", g.ColumnCount)
	encodeObject(e, "onClick", g.OnClick)
	e.end(g.Extra)
}

func (g *GridItem) encodeNode(e *encoder) {
	e.begin()
	e.str("id", g.ID)
	encodeObject(e, "image", g.Image)
	e.str("title", g.Title)
	e.str("subtitle", g.Subtitle)
	encodeEnum(e, "layout", g.Layout)
	e.end(g.Extra)
}

func (ic *ImageComponent) encodeNode(e *encoder) {
	e.begin()
	e.str("imageUri", ic.ImageURI)
	e.str("altText", ic.AltText)
	encodeObject(e, "cropStyle", ic.CropStyle)
	encodeObject(e, "borderStyle", ic.BorderStyle)
	e.end(ic.Extra)
}

func (c *ImageCropStyle) encodeNode(e *encoder) {
	e.begin()
	encodeEnum(e, "type", c.Type)
	e.number("aspectRatio", c.AspectRatio)
	e.end(c.Extra)
}

func (b *BorderStyle) encodeNode(e *encoder) {
	e.begin()
	encodeEnum(e, "type", b.Type)
	encodeObject(e, "strokeColor", b.StrokeColor)
	e.integer("cornerRadius", b.CornerRadius)
	e.end(b.Extra)
}

func (o *OnClick) encodeNode(e *encoder) {
	e.begin()
	e.variant(o.variant())
	e.end(o.Extra)
}

func (a *Action) encodeNode(e *encoder) {
	e.begin()
	e.str("function", a.Function)
	encodeList(e, "parameters", a.Parameters)
	encodeEnum(e, "loadIndicator", a.LoadIndicator)
	e.boolean("persistValues", a.PersistValues)
	encodeEnum(e, "interaction", a.Interaction)
	e.end(a.Extra)
}

func (a *ActionParameter) encodeNode(e *encoder) {
	e.begin()
	e.str("key", a.Key)
	e.str("value", a.Value)
	e.end(a.Extra)
}

func (o *OpenLink) encodeNode(e *encoder) {
	e.begin()
	e.str("url", o.URL)
	encodeEnum(e, "openAs", o.OpenAs)
	encodeEnum(e, "onClose", o.OnClose)
	e.end(o.Extra)
}

func (c *CardAction) encodeNode(e *encoder) {
	e.begin()
	e.str("actionLabel", c.ActionLabel)
	encodeObject(e, "onClick", c.OnClick)
	e.end(c.Extra)
}

func (f *CardFixedFooter) encodeNode(e *encoder) {
	e.begin()
	encodeObject(e, "primaryButton", f.PrimaryButton)
	encodeObject(e, "secondaryButton", f.SecondaryButton)
	e.end(f.Extra)
}
