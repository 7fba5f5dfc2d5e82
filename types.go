package chatcard

// Severity expresses how an enforcement finding is treated.
type Severity int

const (
	Ignore Severity = iota
	Error
)

// Strictness configures enforcement for duplicate object keys. With Ignore
// the last occurrence of a known key wins and every occurrence of an unknown
// key is passed through.
type Strictness struct {
	OnDuplicateKey Severity
}

// DecodeOpt bundles decoding options. The zero value applies no limits.
type DecodeOpt struct {
	Strictness Strictness
	MaxDepth   int   // Maximum object/array nesting; 0 disables the check.
	MaxBytes   int64 // Maximum input size in bytes; 0 disables the check.
}

// EncodeOpt bundles encoding options.
type EncodeOpt struct {
	// Indent, when non-empty, pretty-prints the output with this indent string.
	Indent string
}

func lastOpt[T any](opts []T) T {
	var opt T
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return opt
}
