package chatcard

import (
	"bytes"
	"slices"

	j "github.com/goccy/go-json"

	eng "github.com/reoring/chatcard/internal/engine"
)

// Extra is one pass-through member: a key the codec does not model and its
// raw JSON value.
type Extra struct {
	Key   string
	Value j.RawMessage
}

// Extras holds pass-through members in input order. Keys may repeat.
type Extras []Extra

// Get returns the value of the last member named key.
func (x Extras) Get(key string) (j.RawMessage, bool) {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i].Key == key {
			return x[i].Value, true
		}
	}
	return nil, false
}

func rawValue(n *eng.Node) (j.RawMessage, error) {
	var buf bytes.Buffer
	if err := eng.AppendJSON(&buf, n); err != nil {
		return nil, err
	}
	return j.RawMessage(buf.Bytes()), nil
}

// validateExtras reports pass-through members that would be read back as a
// known field, and values that are not JSON.
func validateExtras(v *validator, p PathRef, x Extras, known []string) {
	for _, e := range x {
		fp := p.Field(e.Key)
		if slices.Contains(known, e.Key) {
			v.add(fp.Issue(CodeShadowedKey, "key", e.Key))
			continue
		}
		if !j.Valid(e.Value) {
			v.add(fp.Issue(CodeParseError))
		}
	}
}
