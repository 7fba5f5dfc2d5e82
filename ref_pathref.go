package chatcard

import (
	"fmt"

	"github.com/reoring/chatcard/i18n"
	eng "github.com/reoring/chatcard/internal/engine"
)

// PathRef builds dotted paths in a chain-safe way and creates Issues.
// The zero value is the document root.
type PathRef struct {
	s string
}

// Root returns the path of the top-level value.
func Root() PathRef { return PathRef{} }

// Field descends into an object member.
func (p PathRef) Field(name string) PathRef { return PathRef{s: eng.JoinField(p.s, name)} }

// Index descends into an array element.
func (p PathRef) Index(i int) PathRef { return PathRef{s: eng.JoinIndex(p.s, i)} }

// String renders the path; the root renders as "".
func (p PathRef) String() string { return p.s }

// Issue creates an Issue at p. kv pairs become Params; the message is taken
// from the active translator.
func (p PathRef) Issue(code string, kv ...any) Issue {
	var m map[string]any
	if len(kv) >= 2 {
		m = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			m[fmt.Sprint(kv[i])] = kv[i+1]
		}
	}
	return Issue{Path: p.s, Code: code, Message: i18n.T(code, stringParams(m)), Params: m}
}

func stringParams(m map[string]any) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = fmt.Sprint(v)
	}
	return out
}
