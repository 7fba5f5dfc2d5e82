package chatcard_test

import (
	"testing"

	"github.com/reoring/chatcard"
	js "github.com/reoring/chatcard/jsonschema"
)

func TestJSONSchema_Root(t *testing.T) {
	s := chatcard.JSONSchema()
	if s.Schema != js.Draft2020 || s.ID != chatcard.SchemaID {
		t.Fatalf("root: $schema=%q $id=%q", s.Schema, s.ID)
	}
	for _, name := range []string{"Card", "Widget", "DecoratedText", "OnClick", "Color", "DateTimePicker"} {
		if _, ok := s.Defs[name]; !ok {
			t.Errorf("missing $defs/%s", name)
		}
	}
	if s.Defs["Widget"].Not == nil {
		t.Fatalf("widget must exclude multiple alternatives")
	}
}

func TestCheckSchema(t *testing.T) {
	if err := chatcard.CheckSchema([]byte(sampleJSON)); err != nil {
		t.Fatalf("sample must satisfy the schema: %v", err)
	}
	cases := []struct {
		name string
		in   string
		ok   bool
	}{
		{"ordinal enum", `{"cardsV2":[{"card":{"header":{"imageType":1}}}]}`, true},
		{"unknown members", `{"cardsV2":[{"card":{"x":{"y":1}}}],"z":true}`, true},
		{"numeric valueMsEpoch", `{"cardsV2":[{"card":{"sections":[{"widgets":[{"dateTimePicker":{"valueMsEpoch":5}}]}]}}]}`, true},
		{"unknown enum", `{"cardsV2":[{"card":{"header":{"imageType":"OVAL"}}}]}`, false},
		{"two widget alternatives", `{"cardsV2":[{"card":{"sections":[{"widgets":[{"image":{},"divider":{}}]}]}}]}`, false},
		{"two controls", `{"cardsV2":[{"card":{"sections":[{"widgets":[{"decoratedText":{"button":{},"endIcon":{}}}]}]}}]}`, false},
		{"two onClick targets", `{"cardsV2":[{"card":{"cardActions":[{"onClick":{"action":{},"card":{}}}]}}]}`, false},
		{"malformed valueMsEpoch", `{"cardsV2":[{"card":{"sections":[{"widgets":[{"dateTimePicker":{"valueMsEpoch":"12a"}}]}]}}]}`, false},
		{"fractional count", `{"cardsV2":[{"card":{"sections":[{"uncollapsibleWidgetsCount":1.5}]}}]}`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := chatcard.CheckSchema([]byte(tc.in))
			if tc.ok && err != nil {
				t.Fatalf("want valid, got %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatalf("want a schema violation")
			}
		})
	}
}
