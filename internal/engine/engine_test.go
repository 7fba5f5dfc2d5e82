package engine_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	eng "github.com/reoring/chatcard/internal/engine"
	"github.com/reoring/chatcard/source/gojson"
)

func tree(t *testing.T, in string, opt eng.EnforceOptions) (*eng.Node, error) {
	t.Helper()
	return eng.BuildTree(eng.WrapWithEnforcement(gojson.NewBytes([]byte(in)), opt))
}

func TestBuildTree_KeepsOrderAndLiterals(t *testing.T) {
	n, err := tree(t, `{"b":1.50,"a":[true,null,"<x>"],"b":{}}`, eng.EnforceOptions{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(n.Members) != 3 || n.Members[0].Key != "b" || n.Members[1].Key != "a" {
		t.Fatalf("members out of order: %+v", n.Members)
	}
	if v, _ := n.Lookup("b"); v.Kind != eng.NodeObject {
		t.Fatalf("Lookup must return the last duplicate, got %v", v.Kind)
	}
	var buf bytes.Buffer
	if err := eng.AppendJSON(&buf, n); err != nil {
		t.Fatalf("append: %v", err)
	}
	if want := `{"b":1.50,"a":[true,null,"<x>"],"b":{}}`; buf.String() != want {
		t.Fatalf("want %s, got %s", want, buf.String())
	}
}

func TestAppendString_KeepsHTMLAndAppends(t *testing.T) {
	buf := bytes.NewBufferString(`[`)
	if err := eng.AppendString(buf, "<b>&\"\n"); err != nil {
		t.Fatalf("append: %v", err)
	}
	if want := `["<b>&\"\n"`; buf.String() != want {
		t.Fatalf("want %s, got %s", want, buf.String())
	}
}

func TestBuildTree_EmptyArrayIsNotNil(t *testing.T) {
	n, err := tree(t, `[]`, eng.EnforceOptions{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if n.Kind != eng.NodeArray || n.Items == nil {
		t.Fatalf("want empty non-nil items, got %+v", n)
	}
}

func TestBuildTree_Errors(t *testing.T) {
	if _, err := tree(t, `{} 1`, eng.EnforceOptions{}); !errors.Is(err, eng.ErrTrailingData) {
		t.Fatalf("want ErrTrailingData, got %v", err)
	}
	if _, err := tree(t, ``, eng.EnforceOptions{}); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("want ErrUnexpectedEOF, got %v", err)
	}
}

func TestEnforcement(t *testing.T) {
	cases := []struct {
		name string
		in   string
		opt  eng.EnforceOptions
		code string
		path string
	}{
		{"duplicate", `{"a":[{"x":1,"x":2}]}`, eng.EnforceOptions{OnDuplicate: eng.DupError}, "duplicate_key", "a[0].x"},
		{"depth", `{"a":[[1]]}`, eng.EnforceOptions{MaxDepth: 2}, "max_depth", "a[0]"},
		{"depth in second element", `[1,{"k":{}}]`, eng.EnforceOptions{MaxDepth: 2}, "max_depth", "[1].k"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tree(t, tc.in, tc.opt)
			var ie eng.IssueError
			if !errors.As(err, &ie) {
				t.Fatalf("want IssueError, got %v", err)
			}
			if ie.Code != tc.code || ie.Path != tc.path {
				t.Fatalf("want %s at %q, got %s at %q", tc.code, tc.path, ie.Code, ie.Path)
			}
		})
	}

	if _, err := tree(t, `{"x":1,"x":2}`, eng.EnforceOptions{MaxDepth: 1}); err != nil {
		t.Fatalf("duplicates pass when ignored: %v", err)
	}
}

func TestJoin(t *testing.T) {
	if got := eng.JoinIndex(eng.JoinField(eng.JoinField("", "a"), "b"), 3); got != "a.b[3]" {
		t.Fatalf("got %q", got)
	}
}
