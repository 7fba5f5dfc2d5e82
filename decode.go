package chatcard

import (
	"errors"
	"math"
	"strconv"

	eng "github.com/reoring/chatcard/internal/engine"
)

// Decoding is a single recursive descent over an engine.Node tree. It stops
// at the first problem; union checks on an object run before any of its
// members are visited. JSON null on a modelled field is treated as absent.

type decodable interface {
	decodeNode(n *eng.Node, p PathRef) error
}

// readTree turns src into a node tree, applying the limits in opt.
func readTree(src Source, opt DecodeOpt) (*eng.Node, error) {
	ts, err := src.tokens(opt)
	if err != nil {
		return nil, err
	}
	eopt := eng.EnforceOptions{MaxDepth: opt.MaxDepth, MaxBytes: opt.MaxBytes}
	if opt.Strictness.OnDuplicateKey == Error {
		eopt.OnDuplicate = eng.DupError
	}
	root, err := eng.BuildTree(eng.WrapWithEnforcement(ts, eopt))
	if err != nil {
		return nil, treeError(err, opt)
	}
	return root, nil
}

func treeError(err error, opt DecodeOpt) error {
	var ie eng.IssueError
	if errors.As(err, &ie) {
		p := PathRef{s: ie.Path}
		switch ie.Code {
		case CodeMaxDepth:
			return singleIssue(p.Issue(ie.Code, "limit", opt.MaxDepth))
		case CodeTruncated:
			return singleIssue(p.Issue(ie.Code, "limit", opt.MaxBytes))
		}
		return singleIssue(p.Issue(ie.Code))
	}
	return parseIssue(Root(), err)
}

func parseIssue(p PathRef, err error) error {
	it := p.Issue(CodeParseError)
	it.Cause = err
	return singleIssue(it)
}

func typeMismatch(p PathRef, expected string, n *eng.Node) error {
	return singleIssue(p.Issue(CodeTypeMismatch, "expected", expected, "got", n.Kind.String()))
}

// members walks an object in input order. fn reports whether key is a
// modelled field; every other member is kept in extra.
func members(n *eng.Node, p PathRef, extra *Extras, fn func(key string, v *eng.Node, fp PathRef) (bool, error)) error {
	if n.Kind != eng.NodeObject {
		return typeMismatch(p, "object", n)
	}
	for _, m := range n.Members {
		fp := p.Field(m.Key)
		known, err := fn(m.Key, m.Value, fp)
		if err != nil {
			return err
		}
		if known {
			continue
		}
		raw, err := rawValue(m.Value)
		if err != nil {
			return parseIssue(fp, err)
		}
		*extra = append(*extra, Extra{Key: m.Key, Value: raw})
	}
	return nil
}

// checkUnion fails when more than one of alternatives holds a non-null value
// in n. Alternatives are reported in declaration order.
func checkUnion(n *eng.Node, p PathRef, alternatives []string) error {
	if n.Kind != eng.NodeObject {
		return nil
	}
	var set []string
	for _, alt := range alternatives {
		for _, m := range n.Members {
			if m.Key == alt && m.Value.Kind != eng.NodeNull {
				set = append(set, alt)
				break
			}
		}
	}
	if len(set) > 1 {
		return singleIssue(p.Issue(CodeAmbiguousUnion, "alternatives", set))
	}
	return nil
}

func decodeString(dst **string, n *eng.Node, p PathRef) error {
	switch n.Kind {
	case eng.NodeNull:
		return nil
	case eng.NodeString:
		s := n.Text
		*dst = &s
		return nil
	}
	return typeMismatch(p, "string", n)
}

func decodeBool(dst **bool, n *eng.Node, p PathRef) error {
	switch n.Kind {
	case eng.NodeNull:
		return nil
	case eng.NodeBool:
		b := n.Bool
		*dst = &b
		return nil
	}
	return typeMismatch(p, "boolean", n)
}

func decodeFloat(dst **float64, n *eng.Node, p PathRef) error {
	switch n.Kind {
	case eng.NodeNull:
		return nil
	case eng.NodeNumber:
		f, err := strconv.ParseFloat(n.Text, 64)
		if err != nil {
			return singleIssue(p.Issue(CodeTypeMismatch, "expected", "finite number", "got", n.Text))
		}
		*dst = &f
		return nil
	}
	return typeMismatch(p, "number", n)
}

// decodeInt reads an integer-typed JSON number. Integral values written with
// a fraction or exponent ("3.0", "1e3") are accepted while they stay exact.
func decodeInt(dst **int, n *eng.Node, p PathRef) error {
	switch n.Kind {
	case eng.NodeNull:
		return nil
	case eng.NodeNumber:
		i, ok := parseInteger(n.Text)
		if !ok {
			return singleIssue(p.Issue(CodeMalformedInteger, "value", n.Text))
		}
		*dst = &i
		return nil
	}
	return typeMismatch(p, "integer", n)
}

func parseInteger(s string) (int, bool) {
	if i, err := strconv.ParseInt(s, 10, strconv.IntSize); err == nil {
		return int(i), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, false
	}
	return int(f), true
}

// decodeInt64String reads a 64-bit integer carried as a decimal string with
// an optional sign. A bare JSON integer is accepted as well.
func decodeInt64String(dst **int64, n *eng.Node, p PathRef) error {
	switch n.Kind {
	case eng.NodeNull:
		return nil
	case eng.NodeString, eng.NodeNumber:
		i, err := strconv.ParseInt(n.Text, 10, 64)
		if err != nil {
			return singleIssue(p.Issue(CodeMalformedInteger, "value", n.Text))
		}
		*dst = &i
		return nil
	}
	return typeMismatch(p, "string", n)
}

func decodeObject[T any, PT interface {
	*T
	decodable
}](dst **T, n *eng.Node, p PathRef) error {
	if n.Kind == eng.NodeNull {
		return nil
	}
	v := PT(new(T))
	if err := v.decodeNode(n, p); err != nil {
		return err
	}
	*dst = (*T)(v)
	return nil
}

// decodeList keeps an empty array as a non-nil empty slice.
func decodeList[T any, PT interface {
	*T
	decodable
}](dst *[]T, n *eng.Node, p PathRef) error {
	switch n.Kind {
	case eng.NodeNull:
		return nil
	case eng.NodeArray:
	default:
		return typeMismatch(p, "array", n)
	}
	out := make([]T, len(n.Items))
	for i, it := range n.Items {
		if err := PT(&out[i]).decodeNode(it, p.Index(i)); err != nil {
			return err
		}
	}
	*dst = out
	return nil
}

// decodeVariant decodes n into v and stores it in the union slot dst.
// v must implement I.
func decodeVariant[I any](dst *I, v decodable, n *eng.Node, p PathRef) error {
	if n.Kind == eng.NodeNull {
		return nil
	}
	if err := v.decodeNode(n, p); err != nil {
		return err
	}
	*dst = v.(I)
	return nil
}

func (m *Message) decodeNode(n *eng.Node, p PathRef) error {
	return members(n, p, &m.Extra, func(key string, v *eng.Node, fp PathRef) (bool, error) {
		if key == "cardsV2" {
			return true, decodeList(&m.CardsV2, v, fp)
		}
		return false, nil
	})
}

func (c *CardWithID) decodeNode(n *eng.Node, p PathRef) error {
	return members(n, p, &c.Extra, func(key string, v *eng.Node, fp PathRef) (bool, error) {
		switch key {
		case "cardId":
			return true, decodeString(&c.CardID, v, fp)
		case "card":
			return true, decodeObject(&c.Card, v, fp)
		}
		return false, nil
	})
}

func (c *Card) decodeNode(n *eng.Node, p PathRef) error {
	return members(n, p, &c.Extra, func(key string, v *eng.Node, fp PathRef) (bool, error) {
		switch key {
		case "header":
			return true, decodeObject(&c.Header, v, fp)
		case "sections":
			return true, decodeList(&c.Sections, v, fp)
		case "cardActions":
			return true, decodeList(&c.CardActions, v, fp)
		case "name":
			return true, decodeString(&c.Name, v, fp)
		case "fixedFooter":
			return true, decodeObject(&c.FixedFooter, v, fp)
		case "displayStyle":
			return true, displayStyles.decode(&c.DisplayStyle, v, fp)
		case "peekCardHeader":
			return true, decodeObject(&c.PeekCardHeader, v, fp)
		}
		return false, nil
	})
}

func (h *CardHeader) decodeNode(n *eng.Node, p PathRef) error {
	return members(n, p, &h.Extra, func(key string, v *eng.Node, fp PathRef) (bool, error) {
		switch key {
		case "title":
			return true, decodeString(&h.Title, v, fp)
		case "subtitle":
			return true, decodeString(&h.Subtitle, v, fp)
		case "imageType":
			return true, imageTypes.decode(&h.ImageType, v, fp)
		case "imageUrl":
			return true, decodeString(&h.ImageURL, v, fp)
		case "imageAltText":
			return true, decodeString(&h.ImageAltText, v, fp)
		}
		return false, nil
	})
}

func (s *Section) decodeNode(n *eng.Node, p PathRef) error {
	return members(n, p, &s.Extra, func(key string, v *eng.Node, fp PathRef) (bool, error) {
		switch key {
		case "header":
			return true, decodeString(&s.Header, v, fp)
		case "widgets":
			return true, decodeList(&s.Widgets, v, fp)
		case "collapsible":
			return true, decodeBool(&s.Collapsible, v, fp)
		case "uncollapsibleWidgetsCount":
			return true, decodeInt(&s.UncollapsibleWidgetsCount, v, fp)
		}
		return false, nil
	})
}

func (w *Widget) decodeNode(n *eng.Node, p PathRef) error {
	if err := checkUnion(n, p, widgetAlternatives); err != nil {
		return err
	}
	return members(n, p, &w.Extra, func(key string, v *eng.Node, fp PathRef) (bool, error) {
		switch key {
		case "textParagraph":
			return true, decodeVariant(&w.Body, new(TextParagraph), v, fp)
		case "image":
			return true, decodeVariant(&w.Body, new(Image), v, fp)
		case "decoratedText":
			return true, decodeVariant(&w.Body, new(DecoratedText), v, fp)
		case "buttonList":
			return true, decodeVariant(&w.Body, new(ButtonList), v, fp)
		case "textInput":
			return true, decodeVariant(&w.Body, new(TextInput), v, fp)
		case "selectionInput":
			return true, decodeVariant(&w.Body, new(SelectionInput), v, fp)
		case "dateTimePicker":
			return true, decodeVariant(&w.Body, new(DateTimePicker), v, fp)
		case "divider":
			return true, decodeVariant(&w.Body, new(Divider), v, fp)
		case "grid":
			return true, decodeVariant(&w.Body, new(Grid), v, fp)
		}
		return false, nil
	})
}

func (t *TextParagraph) decodeNode(n *eng.Node, p PathRef) error {
	return members(n, p, &t.Extra, func(key string, v *eng.Node, fp PathRef) (bool, error) {
		if key == "text" {
			return true, decodeString(&t.Text, v, fp)
		}
		return false, nil
	})
}

func (im *Image) decodeNode(n *eng.Node, p PathRef) error {
	return members(n, p, &im.Extra, func(key string, v *eng.Node, fp PathRef) (bool, error) {
		switch key {
		case "imageUrl":
			return true, decodeString(&im.ImageURL, v, fp)
		case "onClick":
			return true, decodeObject(&im.OnClick, v, fp)
		case "altText":
			return true, decodeString(&im.AltText, v, fp)
		}
		return false, nil
	})
}

func (d *Divider) decodeNode(n *eng.Node, p PathRef) error {
	return members(n, p, &d.Extra, func(string, *eng.Node, PathRef) (bool, error) {
		return false, nil
	})
}

func (d *DecoratedText) decodeNode(n *eng.Node, p PathRef) error {
	if err := checkUnion(n, p.Field("control"), controlAlternatives); err != nil {
		return err
	}
	return members(n, p, &d.Extra, func(key string, v *eng.Node, fp PathRef) (bool, error) {
		switch key {
		case "icon":
			return true, decodeObject(&d.Icon, v, fp)
		case "startIcon":
			return true, decodeObject(&d.StartIcon, v, fp)
		case "topLabel":
			return true, decodeString(&d.TopLabel, v, fp)
		case "text":
			return true, decodeString(&d.Text, v, fp)
		case "wrapText":
			return true, decodeBool(&d.WrapText, v, fp)
		case "bottomLabel":
			return true, decodeString(&d.BottomLabel, v, fp)
		case "onClick":
			return true, decodeObject(&d.OnClick, v, fp)
		case "button":
			return true, decodeVariant(&d.Control, new(Button), v, fp)
		case "switchControl":
			return true, decodeVariant(&d.Control, new(SwitchControl), v, fp)
		case "endIcon":
			return true, decodeVariant(&d.Control, new(EndIcon), v, fp)
		}
		return false, nil
	})
}

func (ic *Icon) decodeNode(n *eng.Node, p PathRef) error {
	return members(n, p, &ic.Extra, func(key string, v *eng.Node, fp PathRef) (bool, error) {
		switch key {
		case "altText":
			return true, decodeString(&ic.AltText, v, fp)
		case "imageType":
			return true, imageTypes.decode(&ic.ImageType, v, fp)
		case "knownIcon":
			return true, decodeString(&ic.KnownIcon, v, fp)
		case "iconUrl":
			return true, decodeString(&ic.IconURL, v, fp)
		}
		return false, nil
	})
}

func (b *Button) decodeNode(n *eng.Node, p PathRef) error {
	return members(n, p, &b.Extra, func(key string, v *eng.Node, fp PathRef) (bool, error) {
		switch key {
		case "text":
			return true, decodeString(&b.Text, v, fp)
		case "icon":
			return true, decodeObject(&b.Icon, v, fp)
		case "color":
			return true, decodeObject(&b.Color, v, fp)
		case "onClick":
			return true, decodeObject(&b.OnClick, v, fp)
		case "disabled":
			return true, decodeBool(&b.Disabled, v, fp)
		case "altText":
			return true, decodeString(&b.AltText, v, fp)
		}
		return false, nil
	})
}

func (c *Color) decodeNode(n *eng.Node, p PathRef) error {
	return members(n, p, &c.Extra, func(key string, v *eng.Node, fp PathRef) (bool, error) {
		switch key {
		case "red":
			return true, decodeFloat(&c.Red, v, fp)
		case "green":
			return true, decodeFloat(&c.Green, v, fp)
		case "blue":
			return true, decodeFloat(&c.Blue, v, fp)
		case "alpha":
			return true, decodeFloat(&c.Alpha, v, fp)
		}
		return false, nil
	})
}

func (s *SwitchControl) decodeNode(n *eng.Node, p PathRef) error {
	return members(n, p, &s.Extra, func(key string, v *eng.Node, fp PathRef) (bool, error) {
		switch key {
		case "name":
			return true, decodeString(&s.Name, v, fp)
		case "value":
			return true, decodeString(&s.Value, v, fp)
		case "selected":
			return true, decodeBool(&s.Selected, v, fp)
		case "onChangeAction":
			return true, decodeObject(&s.OnChangeAction, v, fp)
		case "controlType":
			return true, controlTypes.decode(&s.ControlType, v, fp)
		}
		return false, nil
	})
}

func (b *ButtonList) decodeNode(n *eng.Node, p PathRef) error {
	return members(n, p, &b.Extra, func(key string, v *eng.Node, fp PathRef) (bool, error) {
		if key == "buttons" {
			return true, decodeList(&b.Buttons, v, fp)
		}
		return false, nil
	})
}

func (t *TextInput) decodeNode(n *eng.Node, p PathRef) error {
	return members(n, p, &t.Extra, func(key string, v *eng.Node, fp PathRef) (bool, error) {
		switch key {
		case "name":
			return true, decodeString(&t.Name, v, fp)
		case "label":
			return true, decodeString(&t.Label, v, fp)
		case "hintText":
			return true, decodeString(&t.HintText, v, fp)
		case "value":
			return true, decodeString(&t.Value, v, fp)
		case "type":
			return true, textInputTypes.decode(&t.Type, v, fp)
		case "onChangeAction":
			return true, decodeObject(&t.OnChangeAction, v, fp)
		case "initialSuggestions":
			return true, decodeObject(&t.InitialSuggestions, v, fp)
		case "autoCompleteAction":
			return true, decodeObject(&t.AutoCompleteAction, v, fp)
		}
		return false, nil
	})
}

func (s *Suggestions) decodeNode(n *eng.Node, p PathRef) error {
	return members(n, p, &s.Extra, func(key string, v *eng.Node, fp PathRef) (bool, error) {
		if key == "items" {
			return true, decodeList(&s.Items, v, fp)
		}
		return false, nil
	})
}

func (s *SuggestionItem) decodeNode(n *eng.Node, p PathRef) error {
	return members(n, p, &s.Extra, func(key string, v *eng.Node, fp PathRef) (bool, error) {
		if key == "text" {
			return true, decodeString(&s.Text, v, fp)
		}
		return false, nil
	})
}

func (s *SelectionInput) decodeNode(n *eng.Node, p PathRef) error {
	return members(n, p, &s.Extra, func(key string, v *eng.Node, fp PathRef) (bool, error) {
		switch key {
		case "name":
			return true, decodeString(&s.Name, v, fp)
		case "label":
			return true, decodeString(&s.Label, v, fp)
		case "type":
			return true, selectionTypes.decode(&s.Type, v, fp)
		case "items":
			return true, decodeList(&s.Items, v, fp)
		case "onChangeAction":
			return true, decodeObject(&s.OnChangeAction, v, fp)
		}
		return false, nil
	})
}

func (s *SelectionItem) decodeNode(n *eng.Node, p PathRef) error {
	return members(n, p, &s.Extra, func(key string, v *eng.Node, fp PathRef) (bool, error) {
		switch key {
		case "text":
			return true, decodeString(&s.Text, v, fp)
		case "value":
			return true, decodeString(&s.Value, v, fp)
		case "selected":
			return true, decodeBool(&s.Selected, v, fp)
		}
		return false, nil
	})
}

func (d *DateTimePicker) decodeNode(n *eng.Node, p PathRef) error {
	return members(n, p, &d.Extra, func(key string, v *eng.Node, fp PathRef) (bool, error) {
		switch key {
		case "name":
			return true, decodeString(&d.Name, v, fp)
		case "label":
			return true, decodeString(&d.Label, v, fp)
		case "type":
			return true, dateTimePickerTypes.decode(&d.Type, v, fp)
		case "valueMsEpoch":
			return true, decodeInt64String(&d.ValueMsEpoch, v, fp)
		case "timezoneOffsetDate":
			return true, decodeInt(&d.TimezoneOffsetDate, v, fp)
		case "onChangeAction":
			return true, decodeObject(&d.OnChangeAction, v, fp)
		}
		return false, nil
	})
}

func (g *Grid) decodeNode(n *eng.Node, p PathRef) error {
	return members(n, p, &g.Extra, func(key string, v *eng.Node, fp PathRef) (bool, error) {
		switch key {
		case "title":
			return true, decodeString(&g.Title, v, fp)
		case "items":
			return true, decodeList(&g.Items, v, fp)
		case "borderStyle":
			return true, decodeObject(&g.BorderStyle, v, fp)
		case "columnCount":
			return true, decodeInt(&g.ColumnCount, v, fp)
		case "onClick":
			return true, decodeObject(&g.OnClick, v, fp)
		}
		return false, nil
	})
}

func (g *GridItem) decodeNode(n *eng.Node, p PathRef) error {
	return members(n, p, &g.Extra, func(key string, v *eng.Node, fp PathRef) (bool, error) {
		switch key {
		case "id":
			return true, decodeString(&g.ID, v, fp)
		case "image":
			return true, decodeObject(&g.Image, v, fp)
		case "title":
			return true, decodeString(&g.Title, v, fp)
		case "subtitle":
			return true, decodeString(&g.Subtitle, v, fp)
		case "layout":
			return true, gridItemLayouts.decode(&g.Layout, v, fp)
		}
		return false, nil
	})
}

func (ic *ImageComponent) decodeNode(n *eng.Node, p PathRef) error {
	return members(n, p, &ic.Extra, func(key string, v *eng.Node, fp PathRef) (bool, error) {
		switch key {
		case "imageUri":
			return true, decodeString(&ic.ImageURI, v, fp)
		case "altText":
			return true, decodeString(&ic.AltText, v, fp)
		case "cropStyle":
			return true, decodeObject(&ic.CropStyle, v, fp)
		case "borderStyle":
			return true, decodeObject(&ic.BorderStyle, v, fp)
		}
		return false, nil
	})
}

func (c *ImageCropStyle) decodeNode(n *eng.Node, p PathRef) error {
	return members(n, p, &c.Extra, func(key string, v *eng.Node, fp PathRef) (bool, error) {
		switch key {
		case "type":
			return true, imageCropTypes.decode(&c.Type, v, fp)
		case "aspectRatio":
			return true, decodeFloat(&c.AspectRatio, v, fp)
		}
		return false, nil
	})
}

func (b *BorderStyle) decodeNode(n *eng.Node, p PathRef) error {
	return members(n, p, &b.Extra, func(key string, v *eng.Node, fp PathRef) (bool, error) {
		switch key {
		case "type":
			return true, borderTypes.decode(&b.Type, v, fp)
		case "strokeColor":
			return true, decodeObject(&b.StrokeColor, v, fp)
		case "cornerRadius":
			return true, decodeInt(&b.CornerRadius, v, fp)
		}
		return false, nil
	})
}

func (o *OnClick) decodeNode(n *eng.Node, p PathRef) error {
	if err := checkUnion(n, p, onClickAlternatives); err != nil {
		return err
	}
	return members(n, p, &o.Extra, func(key string, v *eng.Node, fp PathRef) (bool, error) {
		switch key {
		case "action":
			return true, decodeVariant(&o.Target, new(Action), v, fp)
		case "openLink":
			return true, decodeVariant(&o.Target, new(OpenLink), v, fp)
		case "openDynamicLinkAction":
			return true, decodeVariant(&o.Target, new(DynamicLinkAction), v, fp)
		case "card":
			return true, decodeVariant(&o.Target, new(Card), v, fp)
		}
		return false, nil
	})
}

func (a *Action) decodeNode(n *eng.Node, p PathRef) error {
	return members(n, p, &a.Extra, func(key string, v *eng.Node, fp PathRef) (bool, error) {
		switch key {
		case "function":
			return true, decodeString(&a.Function, v, fp)
		case "parameters":
			return true, decodeList(&a.Parameters, v, fp)
		case "loadIndicator":
			return true, loadIndicators.decode(&a.LoadIndicator, v, fp)
		case "persistValues":
			return true, decodeBool(&a.PersistValues, v, fp)
		case "interaction":
			return true, interactions.decode(&a.Interaction, v, fp)
		}
		return false, nil
	})
}

func (a *ActionParameter) decodeNode(n *eng.Node, p PathRef) error {
	return members(n, p, &a.Extra, func(key string, v *eng.Node, fp PathRef) (bool, error) {
		switch key {
		case "key":
			return true, decodeString(&a.Key, v, fp)
		case "value":
			return true, decodeString(&a.Value, v, fp)
		}
		return false, nil
	})
}

func (o *OpenLink) decodeNode(n *eng.Node, p PathRef) error {
	return members(n, p, &o.Extra, func(key string, v *eng.Node, fp PathRef) (bool, error) {
		switch key {
		case "url":
			return true, decodeString(&o.URL, v, fp)
		case "openAs":
			return true, openAsValues.decode(&o.OpenAs, v, fp)
		case "onClose":
			return true, onCloseValues.decode(&o.OnClose, v, fp)
		}
		return false, nil
	})
}

func (c *CardAction) decodeNode(n *eng.Node, p PathRef) error {
	return members(n, p, &c.Extra, func(key string, v *eng.Node, fp PathRef) (bool, error) {
		switch key {
		case "actionLabel":
			return true, decodeString(&c.ActionLabel, v, fp)
		case "onClick":
			return true, decodeObject(&c.OnClick, v, fp)
		}
		return false, nil
	})
}

func (f *CardFixedFooter) decodeNode(n *eng.Node, p PathRef) error {
	return members(n, p, &f.Extra, func(key string, v *eng.Node, fp PathRef) (bool, error) {
		switch key {
		case "primaryButton":
			return true, decodeObject(&f.PrimaryButton, v, fp)
		case "secondaryButton":
			return true, decodeObject(&f.SecondaryButton, v, fp)
		}
		return false, nil
	})
}
