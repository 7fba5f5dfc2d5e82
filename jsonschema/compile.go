package jsonschema

import (
	"bytes"
	"fmt"

	j "github.com/goccy/go-json"
	sjs "github.com/santhosh-tekuri/jsonschema/v6"
)

// Compiled is a schema ready to validate instances.
type Compiled struct {
	sch *sjs.Schema
}

// Compile compiles s under the resource name url.
func Compile(url string, s *Schema) (*Compiled, error) {
	raw, err := j.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	doc, err := sjs.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}
	c := sjs.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	sch, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Compiled{sch: sch}, nil
}

// Validate checks a JSON document. Violations are returned as
// *jsonschema.ValidationError from santhosh-tekuri/jsonschema.
func (c *Compiled) Validate(data []byte) error {
	inst, err := sjs.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parse instance: %w", err)
	}
	return c.sch.Validate(inst)
}
