package jsonschema

// Draft2020 is the dialect URI written into exported root schemas.
const Draft2020 = "https://json-schema.org/draft/2020-12/schema"

// Schema is a minimal JSON Schema representation used for export.
// It covers the keywords the card projection needs and nothing more.
type Schema struct {
	// Core
	Schema      string             `json:"$schema,omitempty"`
	ID          string             `json:"$id,omitempty"`
	Ref         string             `json:"$ref,omitempty"`
	Defs        map[string]*Schema `json:"$defs,omitempty"`
	Title       string             `json:"title,omitempty"`
	Description string             `json:"description,omitempty"`
	Type        string             `json:"type,omitempty"`
	Format      string             `json:"format,omitempty"`
	Default     any                `json:"default,omitempty"`
	Enum        []any              `json:"enum,omitempty"`

	// String
	Pattern string `json:"pattern,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items    *Schema `json:"items,omitempty"`
	MinItems *int    `json:"minItems,omitempty"`
	MaxItems *int    `json:"maxItems,omitempty"`

	// Composition
	OneOf []*Schema `json:"oneOf,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty"`
	Not   *Schema   `json:"not,omitempty"`
}

// DefRef returns a schema referring to the named entry under $defs.
func DefRef(name string) *Schema { return &Schema{Ref: "#/$defs/" + name} }

// AnyTwoOf matches objects in which at least two of keys are present. Place
// it under Not to allow at most one.
func AnyTwoOf(keys ...string) *Schema {
	var pairs []*Schema
	for i := range keys {
		for k := i + 1; k < len(keys); k++ {
			pairs = append(pairs, &Schema{Required: []string{keys[i], keys[k]}})
		}
	}
	return &Schema{AnyOf: pairs}
}
