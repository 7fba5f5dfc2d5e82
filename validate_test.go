package chatcard_test

import (
	"math"
	"testing"

	j "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/reoring/chatcard"
)

type codeAt struct{ Code, Path string }

func codes(iss chatcard.Issues) []codeAt {
	out := make([]codeAt, 0, len(iss))
	for _, it := range iss {
		out = append(out, codeAt{it.Code, it.Path})
	}
	return out
}

func TestValidate_DecodedSampleIsValid(t *testing.T) {
	if iss := chatcard.Validate(chatcard.SampleMessage()); iss != nil {
		t.Fatalf("sample: %v", iss)
	}
	var nilCard *chatcard.Card
	if iss := chatcard.Validate(nilCard); iss != nil {
		t.Fatalf("nil document: %v", iss)
	}
}

func TestValidate_AccumulatesInTraversalOrder(t *testing.T) {
	card := &chatcard.Card{
		Header: &chatcard.CardHeader{ImageType: "OVAL"},
		Sections: []chatcard.Section{{
			Widgets: []chatcard.Widget{
				{
					Body:  &chatcard.Image{},
					Extra: chatcard.Extras{{Key: "grid", Value: j.RawMessage(`{}`)}},
				},
				{Body: &chatcard.DecoratedText{
					Control: &chatcard.Button{Color: &chatcard.Color{Red: chatcard.Float(math.NaN())}},
					Extra:   chatcard.Extras{{Key: "endIcon", Value: j.RawMessage(`{"knownIcon":"STAR"}`)}},
				}},
			},
		}},
		DisplayStyle: "SIDEWAYS",
		Extra: chatcard.Extras{
			{Key: "name", Value: j.RawMessage(`"shadow"`)},
			{Key: "broken", Value: j.RawMessage(`{oops`)},
			{Key: "fine", Value: j.RawMessage(`[1]`)},
		},
	}
	want := []codeAt{
		{chatcard.CodeUnknownEnumValue, "header.imageType"},
		{chatcard.CodeAmbiguousUnion, "sections[0].widgets[0]"},
		{chatcard.CodeShadowedKey, "sections[0].widgets[0].grid"},
		{chatcard.CodeAmbiguousUnion, "sections[0].widgets[1].decoratedText.control"},
		{chatcard.CodeTypeMismatch, "sections[0].widgets[1].decoratedText.button.color.red"},
		{chatcard.CodeShadowedKey, "sections[0].widgets[1].decoratedText.endIcon"},
		{chatcard.CodeUnknownEnumValue, "displayStyle"},
		{chatcard.CodeShadowedKey, "name"},
		{chatcard.CodeParseError, "broken"},
	}
	if diff := cmp.Diff(want, codes(chatcard.Validate(card))); diff != "" {
		t.Fatalf("issues (-want +got):\n%s", diff)
	}
}

func TestValidate_NullAlternativeInExtrasIsNotAmbiguous(t *testing.T) {
	w := &chatcard.Widget{
		Body:  &chatcard.Divider{},
		Extra: chatcard.Extras{{Key: "image", Value: j.RawMessage(`null`)}},
	}
	want := []codeAt{{chatcard.CodeShadowedKey, "image"}}
	if diff := cmp.Diff(want, codes(chatcard.Validate(w))); diff != "" {
		t.Fatalf("issues (-want +got):\n%s", diff)
	}
}

func TestValidate_OnClickAlternatives(t *testing.T) {
	o := &chatcard.OnClick{
		Target: &chatcard.DynamicLinkAction{Action: chatcard.Action{Interaction: "POPUP"}},
		Extra:  chatcard.Extras{{Key: "card", Value: j.RawMessage(`{}`)}},
	}
	iss := chatcard.Validate(o)
	want := []codeAt{
		{chatcard.CodeAmbiguousUnion, ""},
		{chatcard.CodeUnknownEnumValue, "openDynamicLinkAction.interaction"},
		{chatcard.CodeShadowedKey, "card"},
	}
	if diff := cmp.Diff(want, codes(iss)); diff != "" {
		t.Fatalf("issues (-want +got):\n%s", diff)
	}
	alts, _ := iss[0].Params["alternatives"].([]string)
	if diff := cmp.Diff([]string{"openDynamicLinkAction", "card"}, alts); diff != "" {
		t.Fatalf("alternatives (-want +got):\n%s", diff)
	}
}

func TestValidate_InfiniteFloats(t *testing.T) {
	c := &chatcard.ImageCropStyle{AspectRatio: chatcard.Float(math.Inf(1))}
	want := []codeAt{{chatcard.CodeTypeMismatch, "aspectRatio"}}
	if diff := cmp.Diff(want, codes(chatcard.Validate(c))); diff != "" {
		t.Fatalf("issues (-want +got):\n%s", diff)
	}
}

func TestIssues_Error(t *testing.T) {
	iss := chatcard.Issues{
		{Code: chatcard.CodeTypeMismatch},
		{Code: chatcard.CodeAmbiguousUnion, Path: "decoratedText.control"},
		{Code: chatcard.CodeShadowedKey, Path: "a"},
		{Code: chatcard.CodeShadowedKey, Path: "b"},
	}
	want := "type_mismatch at (root); ambiguous_union at decoratedText.control; shadowed_key at a; ... (total 4)"
	if got := iss.Error(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
	if iss.Has(chatcard.CodeMaxDepth) {
		t.Fatalf("Has reported an absent code")
	}
}

func TestEnums_ValidAndOrdinal(t *testing.T) {
	if !chatcard.ImageTypeCircle.Valid() || chatcard.ImageTypeCircle.Ordinal() != 1 {
		t.Fatalf("CIRCLE: valid=%v ordinal=%d", chatcard.ImageTypeCircle.Valid(), chatcard.ImageTypeCircle.Ordinal())
	}
	if chatcard.ImageType("OVAL").Valid() || chatcard.ImageType("OVAL").Ordinal() != -1 {
		t.Fatalf("OVAL must not be a member")
	}
	if chatcard.ControlTypeCheckBox.Ordinal() != 2 {
		t.Fatalf("CHECK_BOX ordinal: %d", chatcard.ControlTypeCheckBox.Ordinal())
	}
	if chatcard.DisplayStyleReplace.Ordinal() != 2 {
		t.Fatalf("REPLACE ordinal: %d", chatcard.DisplayStyleReplace.Ordinal())
	}
}

// Embedding an alternative promotes its marker method, so these satisfy the
// union interfaces without being one of their alternatives.
type (
	wrappedDivider struct{ *chatcard.Divider }
	wrappedButton  struct{ *chatcard.Button }
	wrappedLink    struct{ *chatcard.OpenLink }
)

func TestValidate_ForeignUnionMembers(t *testing.T) {
	card := &chatcard.Card{Sections: []chatcard.Section{{Widgets: []chatcard.Widget{
		{Body: wrappedDivider{&chatcard.Divider{}}},
		{Body: &chatcard.DecoratedText{
			Text:    chatcard.String("t"),
			Control: wrappedButton{&chatcard.Button{Text: chatcard.String("b")}},
			OnClick: &chatcard.OnClick{Target: wrappedLink{&chatcard.OpenLink{URL: chatcard.String("https://x")}}},
		}},
	}}}}
	iss := chatcard.Validate(card)
	want := []codeAt{
		{chatcard.CodeTypeMismatch, "sections[0].widgets[0]"},
		{chatcard.CodeTypeMismatch, "sections[0].widgets[1].decoratedText.control"},
		{chatcard.CodeTypeMismatch, "sections[0].widgets[1].decoratedText.onClick"},
	}
	if diff := cmp.Diff(want, codes(iss)); diff != "" {
		t.Fatalf("issues (-want +got):\n%s", diff)
	}
	if got := iss[0].Params["got"]; got != "chatcard_test.wrappedDivider" {
		t.Fatalf("got param: %v", got)
	}

	out, err := chatcard.Encode(card)
	if out != nil {
		t.Fatalf("nothing must be written, got %s", out)
	}
	if !mustIssues(t, err).Has(chatcard.CodeTypeMismatch) {
		t.Fatalf("want type_mismatch, got %v", err)
	}
}
