package jsonschema_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reoring/chatcard/jsonschema"
)

func TestCompile_AtMostOneOf(t *testing.T) {
	s := &jsonschema.Schema{
		Schema: jsonschema.Draft2020,
		Type:   "object",
		Properties: map[string]*jsonschema.Schema{
			"a": jsonschema.DefRef("Thing"),
			"b": jsonschema.DefRef("Thing"),
			"c": jsonschema.DefRef("Thing"),
		},
		Defs: map[string]*jsonschema.Schema{"Thing": {Type: "object"}},
		Not:  jsonschema.AnyTwoOf("a", "b", "c"),
	}
	c, err := jsonschema.Compile("https://example.com/at-most-one.json", s)
	require.NoError(t, err)

	require.NoError(t, c.Validate([]byte(`{}`)))
	require.NoError(t, c.Validate([]byte(`{"b":{},"other":1}`)))
	require.Error(t, c.Validate([]byte(`{"a":{},"c":{}}`)))
	require.Error(t, c.Validate([]byte(`{"a":1}`)))
	require.Error(t, c.Validate([]byte(`{not json`)))
}

func TestAnyTwoOf_Pairs(t *testing.T) {
	got := jsonschema.AnyTwoOf("x", "y", "z")
	require.Len(t, got.AnyOf, 3)
	require.Equal(t, []string{"x", "y"}, got.AnyOf[0].Required)
	require.Equal(t, []string{"y", "z"}, got.AnyOf[2].Required)
}

func TestCompile_RejectsBrokenSchema(t *testing.T) {
	_, err := jsonschema.Compile("https://example.com/broken.json", &jsonschema.Schema{Ref: "#/$defs/Missing"})
	require.Error(t, err)
}
