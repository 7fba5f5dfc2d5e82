package chatcard

import (
	"bytes"
	"errors"

	j "github.com/goccy/go-json"
)

// Document is the constraint satisfied by pointers to every node type of the
// card tree: *Message, *Card, *Widget, *Button and so on. It cannot be
// implemented outside this package.
type Document[T any] interface {
	*T
	element
}

// ErrNilDocument is returned when Encode is handed a nil document.
var ErrNilDocument = errors.New("chatcard: nil document")

// Decode parses src into a fresh T. It stops at the first problem and
// returns it as Issues with a single entry. A decoded document always
// passes Validate.
func Decode[T any, PT Document[T]](src Source, opts ...DecodeOpt) (*T, error) {
	root, err := readTree(src, lastOpt(opts))
	if err != nil {
		return nil, err
	}
	v := PT(new(T))
	if err := v.decodeNode(root, Root()); err != nil {
		return nil, err
	}
	return (*T)(v), nil
}

// DecodeMessage decodes a cardsV2 webhook envelope from JSON.
func DecodeMessage(data []byte, opts ...DecodeOpt) (*Message, error) {
	return Decode[Message](JSONBytes(data), opts...)
}

// DecodeCard decodes a single card from JSON.
func DecodeCard(data []byte, opts ...DecodeOpt) (*Card, error) {
	return Decode[Card](JSONBytes(data), opts...)
}

// Encode validates doc and writes its canonical JSON form: modelled fields in
// declaration order, then pass-through members, enums as tokens. Validation
// failures are returned as Issues and nothing is written.
func Encode[T any, PT Document[T]](doc *T, opts ...EncodeOpt) ([]byte, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	if iss := Validate[T, PT](doc); len(iss) > 0 {
		return nil, iss
	}
	var e encoder
	PT(doc).encodeNode(&e)
	if e.err != nil {
		return nil, e.err
	}
	opt := lastOpt(opts)
	if opt.Indent == "" {
		return e.buf.Bytes(), nil
	}
	var out bytes.Buffer
	if err := j.Indent(&out, e.buf.Bytes(), "", opt.Indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Validate checks a possibly hand-built document and returns every issue in
// traversal order, or nil. A nil document is valid.
func Validate[T any, PT Document[T]](doc *T) Issues {
	if doc == nil {
		return nil
	}
	var v validator
	PT(doc).validateNode(&v, Root())
	return v.issues
}

// MarshalJSON encodes m in canonical form.
func (m *Message) MarshalJSON() ([]byte, error) { return Encode(m) }

// UnmarshalJSON decodes data into m, replacing its contents.
func (m *Message) UnmarshalJSON(data []byte) error {
	v, err := DecodeMessage(data)
	if err != nil {
		return err
	}
	*m = *v
	return nil
}

// MarshalJSON encodes c in canonical form.
func (c *Card) MarshalJSON() ([]byte, error) { return Encode(c) }

// UnmarshalJSON decodes data into c, replacing its contents.
func (c *Card) UnmarshalJSON(data []byte) error {
	v, err := DecodeCard(data)
	if err != nil {
		return err
	}
	*c = *v
	return nil
}
