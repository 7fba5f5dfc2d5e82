package chatcard_test

import (
	"testing"

	"github.com/reoring/chatcard"
)

func TestColor_Equal(t *testing.T) {
	base := chatcard.RGBA(0.2, 0.4, 0.6, 1)
	cases := []struct {
		name string
		a, b *chatcard.Color
		want bool
	}{
		{"identical", base, chatcard.RGBA(0.2, 0.4, 0.6, 1), true},
		{"within tolerance", base, chatcard.RGBA(0.2+0.9e-5, 0.4, 0.6-0.9e-5, 1), true},
		{"beyond tolerance", base, chatcard.RGBA(0.2+2e-5, 0.4, 0.6, 1), false},
		{"absent channel is zero", &chatcard.Color{Red: chatcard.Float(1)}, chatcard.RGBA(1, 0, 0, 0), true},
		{"absent channel differs", &chatcard.Color{Red: chatcard.Float(1)}, chatcard.RGBA(1, 0, 0, 1), false},
		{"both nil", nil, nil, true},
		{"one nil", base, nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Fatalf("a.Equal(b) = %v, want %v", got, tc.want)
			}
			if got := tc.b.Equal(tc.a); got != tc.want {
				t.Fatalf("b.Equal(a) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestColor_DecodedEqualsBuilt(t *testing.T) {
	b, err := chatcard.Decode[chatcard.Button](chatcard.JSONBytes([]byte(
		`{"color":{"red":0.2,"green":0.4000001,"blue":0.6,"alpha":1}}`)))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !b.Color.Equal(chatcard.RGBA(0.2, 0.4, 0.6, 1)) {
		t.Fatalf("decoded color should match within tolerance")
	}
}
