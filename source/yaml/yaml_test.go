package yamlsrc_test

import (
	"bytes"
	"testing"

	eng "github.com/reoring/chatcard/internal/engine"
	yamlsrc "github.com/reoring/chatcard/source/yaml"
)

func compact(t *testing.T, in string) string {
	t.Helper()
	n, err := eng.BuildTree(yamlsrc.NewBytes([]byte(in)))
	if err != nil {
		t.Fatalf("build %q: %v", in, err)
	}
	var buf bytes.Buffer
	if err := eng.AppendJSON(&buf, n); err != nil {
		t.Fatalf("append: %v", err)
	}
	return buf.String()
}

func TestScalarsAndOrder(t *testing.T) {
	in := `
z: 1
a: [yes, no, ~, 0x1F, 1.5e3, "007", text]
m: {k: v}
`
	want := `{"z":1,"a":["yes","no",null,31,1500,"007","text"],"m":{"k":"v"}}`
	if got := compact(t, in); got != want {
		t.Fatalf("want %s\ngot  %s", want, got)
	}
}

func TestAliases(t *testing.T) {
	in := `
base: &b {knownIcon: STAR}
icon: *b
`
	want := `{"base":{"knownIcon":"STAR"},"icon":{"knownIcon":"STAR"}}`
	if got := compact(t, in); got != want {
		t.Fatalf("want %s\ngot  %s", want, got)
	}
}

func TestRejects(t *testing.T) {
	for _, in := range []string{"a: .nan\n", "? [k]\n: v\n", "a: [\n"} {
		if _, err := eng.BuildTree(yamlsrc.NewBytes([]byte(in))); err == nil {
			t.Errorf("%q: want error", in)
		}
	}
}
