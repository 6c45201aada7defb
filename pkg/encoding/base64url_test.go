package encoding

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"
)

// TestDecodeBase64URLRoundTrip decodes encoder output back to the original bytes.
func TestDecodeBase64URLRoundTrip(t *testing.T) {
	inputs := [][]byte{
		[]byte("f"),
		[]byte("fo"),
		[]byte("foo"),
		[]byte("foob"),
		[]byte("fooba"),
		[]byte("foobar"),
		{0x00},
		{0xff, 0xfe, 0xfd, 0xfc},
		{0xfb, 0xef, 0xbe}, // encodes to "----", exercising the URL-safe alphabet
		[]byte(`{"alg":"HS256","typ":"JWT"}`),
	}

	for _, in := range inputs {
		// Unpadded, as token segments are written.
		unpadded := base64.RawURLEncoding.EncodeToString(in)
		got, err := DecodeBase64URL(unpadded)
		if err != nil {
			t.Fatalf("DecodeBase64URL(%q): %v", unpadded, err)
		}
		if !bytes.Equal(got, in) {
			t.Errorf("DecodeBase64URL(%q) = %x, want %x", unpadded, got, in)
		}

		// Padded input must decode identically.
		padded := base64.URLEncoding.EncodeToString(in)
		got, err = DecodeBase64URL(padded)
		if err != nil {
			t.Fatalf("DecodeBase64URL(%q): %v", padded, err)
		}
		if !bytes.Equal(got, in) {
			t.Errorf("DecodeBase64URL(%q) = %x, want %x", padded, got, in)
		}
	}
}

// TestDecodeBase64URLInvalid rejects input with no decodable groups.
func TestDecodeBase64URLInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"single char stub", "A"},
		{"invalid characters", "!!!!"},
		{"embedded dot", "ab.d"},
		{"padding only", "===="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeBase64URL(tt.input)
			if err == nil {
				t.Fatalf("expected error, got %x", got)
			}
			if !errors.Is(err, ErrDecode) {
				t.Errorf("expected ErrDecode, got %v", err)
			}
		})
	}
}

// TestDecodeBase64URLNoAliasing verifies decoded output is an independent buffer.
func TestDecodeBase64URLNoAliasing(t *testing.T) {
	got, err := DecodeBase64URL("Zm9vYmFy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "foobar" {
		t.Fatalf("got %q, want %q", got, "foobar")
	}
	got[0] = 'X' // must not panic or affect anything shared
}
