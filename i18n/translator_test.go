package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("type_mismatch", nil); msg == "type_mismatch" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("type_mismatch", nil); msg == "expected {expected}, got {got}" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_Placeholders(t *testing.T) {
	got := T("unknown_enum_value", map[string]string{"value": "OVAL", "enum": "ImageType"})
	if got != "unknown value OVAL for ImageType" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestTranslator_UnknownCodeFallsBack(t *testing.T) {
	if got := T("no_such_code", nil); got != "no_such_code" {
		t.Fatalf("expected code echo, got %q", got)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator_CustomAndReset(t *testing.T) {
	SetTranslator(upper{})
	if got := T("parse_error", nil); got != "X:parse_error" {
		t.Fatalf("custom translator not used, got %q", got)
	}
	SetTranslator(nil)
	if got := T("parse_error", nil); got != "parse error" {
		t.Fatalf("expected english reset, got %q", got)
	}
}
