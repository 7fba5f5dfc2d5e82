// Package middleware holds the framework-neutral parts of the HTTP
// receivers in middleware/echo and middleware/gin.
package middleware

import (
	"context"
	"io"

	"github.com/reoring/chatcard"
)

// ctxKeyDocument is a typed context key for storing a decoded *T.
// Using a generic struct type ensures uniqueness per T.
type ctxKeyDocument[T any] struct{}

// ContextWithDocument attaches a decoded document to the context.
func ContextWithDocument[T any](ctx context.Context, doc *T) context.Context {
	return context.WithValue(ctx, ctxKeyDocument[T]{}, doc)
}

// DocumentFromContext retrieves a decoded document from the context.
func DocumentFromContext[T any](ctx context.Context) (*T, bool) {
	v, ok := ctx.Value(ctxKeyDocument[T]{}).(*T)
	return v, ok
}

// DefaultDecodeOpt returns a recommended default for HTTP JSON boundaries:
// duplicate keys are errors, nesting is capped at 64 and bodies at 1 MiB.
func DefaultDecodeOpt() chatcard.DecodeOpt {
	return chatcard.DecodeOpt{
		Strictness: chatcard.Strictness{OnDuplicateKey: chatcard.Error},
		MaxDepth:   64,
		MaxBytes:   1 << 20,
	}
}

// IssuePayload is the JSON shape of one issue in a 400 response.
type IssuePayload struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorPayload shapes Issues for JSON responses.
func ErrorPayload(issues chatcard.Issues) map[string]any {
	out := make([]IssuePayload, len(issues))
	for i, it := range issues {
		out[i] = IssuePayload{Path: it.Path, Code: it.Code, Message: it.Message}
	}
	return map[string]any{"issues": out}
}

// DecodeBody decodes a request body. On failure it returns the payload to
// answer with 400 Bad Request.
func DecodeBody[T any, PT chatcard.Document[T]](body io.Reader, opt chatcard.DecodeOpt) (*T, map[string]any) {
	doc, err := chatcard.Decode[T, PT](chatcard.JSONReader(body), opt)
	if err == nil {
		return doc, nil
	}
	if iss, ok := chatcard.AsIssues(err); ok {
		return nil, ErrorPayload(iss)
	}
	return nil, map[string]any{"error": err.Error()}
}
