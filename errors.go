package chatcard

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes.
const (
	CodeUnknownEnumValue = "unknown_enum_value"
	CodeAmbiguousUnion   = "ambiguous_union"
	CodeMalformedInteger = "malformed_integer"
	CodeTypeMismatch     = "type_mismatch"
	// Input-level problems that precede schema decoding.
	CodeParseError   = "parse_error"
	CodeDuplicateKey = "duplicate_key"
	CodeMaxDepth     = "max_depth"
	CodeTruncated    = "truncated"
	// Hand-built documents only: a pass-through key named like a known field.
	CodeShadowedKey = "shadowed_key"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // Dotted path, e.g. sections[0].widgets[2].image; "" is the root.
	Code    string // One of the codes listed above.
	Message string
	// Params carries structured parameters (e.g. {"value":"OVAL"} or
	// {"alternatives":[...]}) for i18n and callers that branch on details.
	Params map[string]any
	Cause  error // Optional: underlying error.
}

func (it Issue) location() string {
	if it.Path == "" {
		return "(root)"
	}
	return it.Path
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. ambiguous_union at decoratedText.control
		fmt.Fprintf(b, "%s at %s", it.Code, it.location())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Has reports whether any issue carries code.
func (iss Issues) Has(code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

func singleIssue(it Issue) Issues { return Issues{it} }
