// Package yamlsrc turns a YAML document into an engine token stream so cards
// authored in YAML go through the same decoder as JSON input.
package yamlsrc

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	eng "github.com/reoring/chatcard/internal/engine"
)

const maxAliasDepth = 64

type source struct {
	toks []eng.Token
	pos  int
	err  error
}

// NewBytes parses b as a single YAML document. Parse errors surface on the
// first NextToken call.
func NewBytes(b []byte) eng.TokenSource {
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return &source{err: err}
	}
	s := &source{}
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		s.err = s.emit(doc.Content[0], 0)
	}
	return s
}

func (s *source) NextToken() (eng.Token, error) {
	if s.err != nil {
		return eng.Token{}, s.err
	}
	if s.pos >= len(s.toks) {
		return eng.Token{}, io.EOF
	}
	t := s.toks[s.pos]
	s.pos++
	return t, nil
}

func (s *source) Location() int64 { return -1 }

func (s *source) push(t eng.Token) {
	t.Offset = -1
	s.toks = append(s.toks, t)
}

func (s *source) emit(n *yaml.Node, aliasDepth int) error {
	switch n.Kind {
	case yaml.AliasNode:
		if aliasDepth >= maxAliasDepth || n.Alias == nil {
			return errors.New("yaml: alias nesting too deep")
		}
		return s.emit(n.Alias, aliasDepth+1)
	case yaml.MappingNode:
		s.push(eng.Token{Kind: eng.KindBeginObject})
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != yaml.ScalarNode {
				return fmt.Errorf("yaml: line %d: mapping key must be a scalar", k.Line)
			}
			s.push(eng.Token{Kind: eng.KindKey, String: k.Value})
			if err := s.emit(n.Content[i+1], aliasDepth); err != nil {
				return err
			}
		}
		s.push(eng.Token{Kind: eng.KindEndObject})
	case yaml.SequenceNode:
		s.push(eng.Token{Kind: eng.KindBeginArray})
		for _, c := range n.Content {
			if err := s.emit(c, aliasDepth); err != nil {
				return err
			}
		}
		s.push(eng.Token{Kind: eng.KindEndArray})
	case yaml.ScalarNode:
		return s.emitScalar(n)
	default:
		return fmt.Errorf("yaml: line %d: unsupported node", n.Line)
	}
	return nil
}

func (s *source) emitScalar(n *yaml.Node) error {
	switch n.ShortTag() {
	case "!!null":
		s.push(eng.Token{Kind: eng.KindNull})
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return err
		}
		s.push(eng.Token{Kind: eng.KindBool, Bool: b})
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return fmt.Errorf("yaml: line %d: %w", n.Line, err)
		}
		s.push(eng.Token{Kind: eng.KindNumber, Number: strconv.FormatInt(i, 10)})
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return fmt.Errorf("yaml: line %d: %w", n.Line, err)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("yaml: line %d: %q has no JSON representation", n.Line, n.Value)
		}
		s.push(eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(f, 'g', -1, 64)})
	default:
		s.push(eng.Token{Kind: eng.KindString, String: n.Value})
	}
	return nil
}
