package chatcard

import (
	"errors"
	"io"

	j "github.com/goccy/go-json"

	eng "github.com/reoring/chatcard/internal/engine"
	"github.com/reoring/chatcard/source/gojson"
	yamlsrc "github.com/reoring/chatcard/source/yaml"
)

// Source is serialized input awaiting decode. Obtain one with JSONBytes,
// JSONReader or YAMLBytes.
type Source interface {
	tokens(opt DecodeOpt) (eng.TokenSource, error)
}

// JSONBytes wraps a byte slice as a JSON Source.
func JSONBytes(b []byte) Source { return bytesSource{data: b, open: gojson.NewBytes, json: true} }

// YAMLBytes wraps a byte slice holding a single YAML document as a Source.
// Mapping order is preserved, so pass-through keys keep their position.
func YAMLBytes(b []byte) Source { return bytesSource{data: b, open: yamlsrc.NewBytes} }

// JSONReader wraps an io.Reader as a JSON Source. The reader is consumed by
// the first decode.
func JSONReader(r io.Reader) Source { return readerSource{r: r} }

// errInvalidJSON is the cause of parse_error for input go-json rejects as a
// whole. The streaming tokenizer does not check separators on its own.
var errInvalidJSON = errors.New("chatcard: invalid JSON")

type bytesSource struct {
	data []byte
	open func([]byte) eng.TokenSource
	json bool
}

func (s bytesSource) tokens(opt DecodeOpt) (eng.TokenSource, error) {
	if opt.MaxBytes > 0 && int64(len(s.data)) > opt.MaxBytes {
		return nil, singleIssue(Root().Issue(CodeTruncated, "limit", opt.MaxBytes))
	}
	if s.json && !j.Valid(s.data) {
		return nil, parseIssue(Root(), errInvalidJSON)
	}
	return s.open(s.data), nil
}

type readerSource struct{ r io.Reader }

// tokens buffers the body so it can be checked as a whole before decoding.
func (s readerSource) tokens(opt DecodeOpt) (eng.TokenSource, error) {
	r := s.r
	if opt.MaxBytes > 0 {
		r = io.LimitReader(r, opt.MaxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, parseIssue(Root(), err)
	}
	return JSONBytes(data).tokens(opt)
}
