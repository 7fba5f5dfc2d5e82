package engine

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	json "github.com/goccy/go-json"
)

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token represents a streaming token with approximate input offset.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
	Offset int64
}

// TokenSource is a minimal interface required by the engine.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

// NodeKind is the shape of a decoded value.
type NodeKind uint8

const (
	NodeNull NodeKind = iota
	NodeBool
	NodeNumber
	NodeString
	NodeObject
	NodeArray
)

func (k NodeKind) String() string {
	switch k {
	case NodeNull:
		return "null"
	case NodeBool:
		return "boolean"
	case NodeNumber:
		return "number"
	case NodeString:
		return "string"
	case NodeObject:
		return "object"
	case NodeArray:
		return "array"
	default:
		return "unknown"
	}
}

// Member is one key/value pair of an object node. Input order is kept.
type Member struct {
	Key   string
	Value *Node
}

// Node is an order-preserving value tree. Text holds the string value or the
// number literal exactly as it appeared in the input.
type Node struct {
	Kind    NodeKind
	Text    string
	Bool    bool
	Members []Member
	Items   []*Node
}

// ErrTrailingData reports input left over after the first complete value.
var ErrTrailingData = errors.New("engine: unexpected data after top-level value")

// BuildTree consumes exactly one value from src and returns it as a Node.
// Any further token other than io.EOF is reported as ErrTrailingData.
func BuildTree(src TokenSource) (*Node, error) {
	tok, err := src.NextToken()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	n, err := buildValue(src, tok)
	if err != nil {
		return nil, err
	}
	if _, err := src.NextToken(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, ErrTrailingData
	}
	return n, nil
}

func buildValue(src TokenSource, tok Token) (*Node, error) {
	switch tok.Kind {
	case KindBeginObject:
		return buildObject(src)
	case KindBeginArray:
		return buildArray(src)
	case KindString:
		return &Node{Kind: NodeString, Text: tok.String}, nil
	case KindNumber:
		return &Node{Kind: NodeNumber, Text: tok.Number}, nil
	case KindBool:
		return &Node{Kind: NodeBool, Bool: tok.Bool}, nil
	case KindNull:
		return &Node{Kind: NodeNull}, nil
	default:
		return nil, io.ErrUnexpectedEOF
	}
}

func buildObject(src TokenSource) (*Node, error) {
	n := &Node{Kind: NodeObject}
	for {
		tok, err := src.NextToken()
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		if tok.Kind == KindEndObject {
			return n, nil
		}
		if tok.Kind != KindKey {
			return nil, io.ErrUnexpectedEOF
		}
		vt, err := src.NextToken()
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		v, err := buildValue(src, vt)
		if err != nil {
			return nil, err
		}
		n.Members = append(n.Members, Member{Key: tok.String, Value: v})
	}
}

func buildArray(src TokenSource) (*Node, error) {
	// Items stays non-nil so an empty array is distinguishable from null.
	n := &Node{Kind: NodeArray, Items: []*Node{}}
	for {
		tok, err := src.NextToken()
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		if tok.Kind == KindEndArray {
			return n, nil
		}
		v, err := buildValue(src, tok)
		if err != nil {
			return nil, err
		}
		n.Items = append(n.Items, v)
	}
}

func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// Lookup returns the last value stored under key, mirroring encoding/json's
// last-wins behavior for duplicate keys.
func (n *Node) Lookup(key string) (*Node, bool) {
	if n == nil || n.Kind != NodeObject {
		return nil, false
	}
	for i := len(n.Members) - 1; i >= 0; i-- {
		if n.Members[i].Key == key {
			return n.Members[i].Value, true
		}
	}
	return nil, false
}

// AppendJSON writes n as compact JSON. Number literals are emitted as read.
func AppendJSON(buf *bytes.Buffer, n *Node) error {
	switch n.Kind {
	case NodeNull:
		buf.WriteString("null")
	case NodeBool:
		buf.WriteString(strconv.FormatBool(n.Bool))
	case NodeNumber:
		buf.WriteString(n.Text)
	case NodeString:
		return AppendString(buf, n.Text)
	case NodeObject:
		buf.WriteByte('{')
		for i, m := range n.Members {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := AppendString(buf, m.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := AppendJSON(buf, m.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case NodeArray:
		buf.WriteByte('[')
		for i, it := range n.Items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := AppendJSON(buf, it); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	}
	return nil
}

// AppendString writes s as a JSON string literal without HTML escaping.
func AppendString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates the value with a newline.
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}
