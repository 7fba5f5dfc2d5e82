package chatcard

// String returns a pointer to s.
func String(s string) *string { return &s }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to i.
func Int(i int) *int { return &i }

// Int64 returns a pointer to i.
func Int64(i int64) *int64 { return &i }

// Float returns a pointer to f.
func Float(f float64) *float64 { return &f }

// NewTextParagraph returns a widget showing text.
func NewTextParagraph(text string) Widget {
	return Widget{Body: &TextParagraph{Text: &text}}
}

// NewDecoratedText returns a widget showing text after a built-in icon such
// as "EMAIL" or "PHONE". An empty knownIcon leaves the icon unset.
func NewDecoratedText(knownIcon, text string) Widget {
	d := &DecoratedText{Text: &text}
	if knownIcon != "" {
		d.StartIcon = &Icon{KnownIcon: &knownIcon}
	}
	return Widget{Body: d}
}

// NewButtonList returns a widget holding buttons in order.
func NewButtonList(buttons ...Button) Widget {
	if buttons == nil {
		buttons = []Button{}
	}
	return Widget{Body: &ButtonList{Buttons: buttons}}
}

// NewDivider returns a horizontal line widget.
func NewDivider() Widget { return Widget{Body: &Divider{}} }

// LinkButton returns a button that opens url.
func LinkButton(text, url string) Button {
	return Button{Text: &text, OnClick: &OnClick{Target: &OpenLink{URL: &url}}}
}

// ActionButton returns a button that invokes function with params given as
// alternating key, value strings. A trailing odd key is ignored.
func ActionButton(text, function string, params ...string) Button {
	a := &Action{Function: &function}
	for i := 0; i+1 < len(params); i += 2 {
		k, v := params[i], params[i+1]
		a.Parameters = append(a.Parameters, ActionParameter{Key: &k, Value: &v})
	}
	return Button{Text: &text, OnClick: &OnClick{Target: a}}
}
